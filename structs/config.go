package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Storage   *StorageConfig
	Auth      *AuthConfig
	Admin     *AdminConfig
	Email     *EmailConfig
	Assistant *AssistantConfig
}

type ServerConfig struct {
	AppName        string        // Rosea
	Environment    string        // development, production
	Port           string        // :8082
	FrontendURL    string        // storefront origin, used in emails
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend  string // memory, redis, postgres
	Redis    *RedisConfig
	Postgres *PostgresConfig
}

type RedisConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
	MaxRetries   int
}

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
}

// AdminConfig holds the storefront admin credentials. The admin is a UI
// privilege, not a registered user; see services.AuthService.LoginAdmin.
type AdminConfig struct {
	Username string
	Password string
}

type EmailConfig struct {
	ApiKey string
	From   string
}

type AssistantConfig struct {
	ApiKey string
	Model  string
}
