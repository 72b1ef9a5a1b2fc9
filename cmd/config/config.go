package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	RabbitMQ    RabbitMQConfig
	SMTP        SMTPConfig
	Cache       CacheConfig
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type SMTPConfig struct {
	Host       string
	Port       int
	SenderName string
	Email      string
	Password   string
}

type CacheConfig struct {
	CategoriesTTL time.Duration
	TopFoodsTTL   time.Duration
}

// Load reads configuration from environment variables, loading a .env file
// first when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getString("APP_ENV", "development"),
		Server: ServerConfig{
			Port:           getString("SERVER_PORT", "8080"),
			ReadTimeout:    getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:    getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getDuration("SERVER_REQUEST_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "foodhive"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getString("JWT_SECRET", ""),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getString("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		SMTP: SMTPConfig{
			Host:       getString("SMTP_HOST", "localhost"),
			Port:       getInt("SMTP_PORT", 587),
			SenderName: getString("SMTP_SENDER_NAME", "FoodHive"),
			Email:      getString("SMTP_AUTH_EMAIL", ""),
			Password:   getString("SMTP_AUTH_PASSWORD", ""),
		},
		Cache: CacheConfig{
			CategoriesTTL: getDuration("CACHE_CATEGORIES_TTL", 10*time.Minute),
			TopFoodsTTL:   getDuration("CACHE_TOP_FOODS_TTL", time.Minute),
		},
	}
}

// Validate reports settings the API cannot start without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	return nil
}

// GetDSN builds the MySQL DSN. parseTime is required for DATETIME scanning.
func (c *Config) GetDSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.Database.User
	dsn.Passwd = c.Database.Password
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	dsn.DBName = c.Database.Name
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	return dsn.FormatDSN()
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getDuration accepts Go durations ("30s") or plain seconds ("30").
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
