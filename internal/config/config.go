package config

type Config interface {
	EnvConfig
	CorsConfig
	SecurityConfig
	NotifyConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetDataFolder() string
	GetQuoteURL() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Security
	Notify
}

func New() Config {
	return mainConfig{}
}
