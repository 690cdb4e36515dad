package config

import (
	"strconv"
	"time"
)

type SecurityConfig interface {
	GetTokenSecret() []byte
	GetTokenTTL() time.Duration
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetTokenSecret() []byte {
	return []byte(GetEnv("TOKEN_SECRET", "dev-only-secret"))
}

func (Security) GetTokenTTL() time.Duration {
	minutes, err := strconv.Atoi(GetEnv("TOKEN_TTL_MINUTES", "60"))
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
