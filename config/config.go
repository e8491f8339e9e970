package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Cache   CacheConfig
	AMQP    AMQPConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Driver string `envconfig:"DB_DRIVER" default:"mysql"`

	// URL takes precedence over the discrete fields below.
	URL      string `envconfig:"DATABASE_URL"`
	MySQLURL string `envconfig:"MYSQL_URL"`

	User     string `envconfig:"DB_USER" default:"root"`
	Password string `envconfig:"DB_PASS"`
	Host     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	Port     string `envconfig:"DB_PORT" default:"3306"`
	Name     string `envconfig:"DB_NAME" default:"hotel_db"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	SlowThreshold   time.Duration `envconfig:"DB_SLOW_THRESHOLD" default:"1s"`
	Seed            bool          `envconfig:"DB_SEED" default:"true"`
}

type CORSConfig struct {
	Origins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

type LogConfig struct {
	Dir   string `envconfig:"LOG_DIR" default:"logs"`
	Debug bool   `envconfig:"LOG_DEBUG" default:"false"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" default:"change-me"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"hotel-reservations"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CacheConfig struct {
	Enabled bool          `envconfig:"CACHE_ENABLED" default:"true"`
	TTL     time.Duration `envconfig:"CACHE_TTL" default:"60s"`
	Prefix  string        `envconfig:"CACHE_PREFIX" default:"hotel:cache:"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"reservations"`
}

// BookingConfig holds the lead-time and minimum-stay guards of the
// reservation workflow.
type BookingConfig struct {
	MinLead time.Duration `envconfig:"BOOKING_MIN_LEAD" default:"3540s"`
	MinStay time.Duration `envconfig:"BOOKING_MIN_STAY" default:"42840s"`
}

// Load reads the process environment. Callers load .env files first.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		MinLead: 3540 * time.Second,
		MinStay: 42840 * time.Second,
	}
}

func NewTestConfig() Config {
	return Config{
		Server:  ServerConfig{Port: "8889", GinMode: "test", ShutdownTimeout: time.Second},
		DB:      DBConfig{Driver: "sqlite", Name: "file::memory:"},
		CORS:    CORSConfig{Origins: []string{"*"}},
		JWT:     JWTConfig{Secret: "test-secret", Duration: time.Hour, Issuer: "hotel-reservations-test"},
		Cache:   CacheConfig{Enabled: false, TTL: time.Minute, Prefix: "test:"},
		Booking: DefaultBookingConfig(),
	}
}
