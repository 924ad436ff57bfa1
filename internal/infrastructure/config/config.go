package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Quote       QuoteConfig    `mapstructure:"quote"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Trading     TradingConfig  `mapstructure:"trading"`
	Logger      LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	LogLevel        string        `mapstructure:"logLevel"`
}

// RedisConfig contains the cache and token revocation store settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// QuoteConfig contains quote provider settings
type QuoteConfig struct {
	BaseURL  string        `mapstructure:"baseUrl"`
	APIKey   string        `mapstructure:"apiKey"`
	Timeout  time.Duration `mapstructure:"timeout"`  // seconds
	CacheTTL time.Duration `mapstructure:"cacheTtl"` // seconds
}

// AuthConfig contains session token and password hashing settings
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwtSecret"`
	TokenTTL   time.Duration `mapstructure:"tokenTtl"` // minutes
	BcryptCost int           `mapstructure:"bcryptCost"`
}

// TradingConfig contains trade processing settings
type TradingConfig struct {
	StartingCash string `mapstructure:"startingCash"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}
