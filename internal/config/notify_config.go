package config

import (
	"strconv"
	"time"
)

type NotifyConfig interface {
	GetNotifyDelay() time.Duration
}

type Notify struct{}

var _ NotifyConfig = Notify{}

// GetNotifyDelay is the fixed delay between task creation and the
// local "new task" notification.
func (Notify) GetNotifyDelay() time.Duration {
	seconds, err := strconv.Atoi(GetEnv("NOTIFY_DELAY_SECONDS", "1"))
	if err != nil || seconds < 0 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}
