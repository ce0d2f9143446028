package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Invoice rendering.
	PublicDir        string `mapstructure:"PUBLIC_DIR"`
	PublicBaseURL    string `mapstructure:"PUBLIC_BASE_URL"`
	InvoiceTemplate  string `mapstructure:"INVOICE_TEMPLATE"`
	RenderTimeoutSec int    `mapstructure:"RENDER_TIMEOUT_SEC"`

	// SMTP transport. Credentials are injected here, never hard-coded.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`
	AdminEmail   string `mapstructure:"ADMIN_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "5500")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tripDB")
	viper.SetDefault("PUBLIC_DIR", "public")
	viper.SetDefault("PUBLIC_BASE_URL", "http://127.0.0.1:5500")
	viper.SetDefault("INVOICE_TEMPLATE", "templates/bill.html")
	viper.SetDefault("RENDER_TIMEOUT_SEC", 30)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("EMAIL_FROM", "")
	viper.SetDefault("ADMIN_EMAIL", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// RenderTimeout returns the bounded timeout applied to each invoice render.
func (c Config) RenderTimeout() time.Duration {
	if c.RenderTimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RenderTimeoutSec) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
