package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config is the process configuration read from the environment
type Config struct {
	Env           string
	Port          string
	JWTSecret     string
	NodeID        int64
	CheckoutDelay time.Duration
	Storage       StorageConfig
	Log           LogConfig
	Admin         AdminConfig
	Mail          MailConfig
	Payment       PaymentConfig
}

// StorageConfig selects and configures the slots adapter
type StorageConfig struct {
	Driver        string // memory, bolt, mongo or postgres
	BoltPath      string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
}

// LogConfig configures the zap logger
type LogConfig struct {
	Mode     string // development or production
	Filename string // rotated with lumberjack when set
}

// AdminConfig holds the single panel account
type AdminConfig struct {
	Email        string
	Password     string
	PasswordHash string
}

// MailConfig selects the mail provider
type MailConfig struct {
	PostmarkToken string
	SendGridKey   string
	Sender        string
	SenderName    string
}

// PaymentConfig configures the payment link gateway
type PaymentConfig struct {
	BaseURL      string
	SellerID     string
	ClientID     string
	ClientSecret string
}

// LoadEnv loads a .env file when present; real environment variables still apply.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found. Proceeding with environment variables.")
	}
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// LoadConfig reads the configuration from the environment
func LoadConfig() *Config {
	return &Config{
		Env:           env("ENV", "development"),
		Port:          strings.TrimPrefix(env("PORT", "8000"), ":"),
		JWTSecret:     env("JWT_SECRET", "your_secret_key"),
		NodeID:        cast.ToInt64(env("NODE_ID", "1")),
		CheckoutDelay: cast.ToDuration(env("CHECKOUT_DELAY", "2s")),
		Storage: StorageConfig{
			Driver:        env("STORAGE_DRIVER", "memory"),
			BoltPath:      env("BOLT_PATH", "storefront.db"),
			MongoURI:      env("MONGO_URI", "mongodb://localhost:27017"),
			MongoDatabase: env("MONGO_DB", "storefront"),
			DatabaseURL:   env("DATABASE_URL", ""),
			DBHost:        env("DB_HOST", ""),
			DBPort:        env("DB_PORT", "5432"),
			DBUser:        env("DB_USER", ""),
			DBPassword:    env("DB_PASSWORD", ""),
			DBName:        env("DB_NAME", ""),
			DBSSLMode:     env("DB_SSLMODE", "disable"),
		},
		Log: LogConfig{
			Mode:     env("LOG_MODE", "development"),
			Filename: env("LOG_FILE", ""),
		},
		Admin: AdminConfig{
			Email:        env("ADMIN_EMAIL", "admin@hugodiaz.cl"),
			Password:     env("ADMIN_PASSWORD", "admin123"),
			PasswordHash: env("ADMIN_PASSWORD_HASH", ""),
		},
		Mail: MailConfig{
			PostmarkToken: env("POSTMARK_API_TOKEN", ""),
			SendGridKey:   env("SENDGRID_API_KEY", ""),
			Sender:        env("EMAIL_SENDER", "contacto@hugodiaz.cl"),
			SenderName:    env("EMAIL_SENDER_NAME", "Hugo Díaz y Cía."),
		},
		Payment: PaymentConfig{
			BaseURL:      env("GETNET_BASE_URL", "https://api-sandbox.getnet.cl"),
			SellerID:     env("GETNET_SELLER_ID", "DEMO_SELLER"),
			ClientID:     env("GETNET_CLIENT_ID", "DEMO_CLIENT"),
			ClientSecret: env("GETNET_CLIENT_SECRET", "DEMO_SECRET"),
		},
	}
}

// PostgresConnString returns DATABASE_URL or builds one from the DB_* variables
func (c StorageConfig) PostgresConnString() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode), nil
}
