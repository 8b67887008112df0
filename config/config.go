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
	TrustedProxies    string `mapstructure:"TRUSTED_PROXIES"`

	// Board clock.
	Timezone     string        `mapstructure:"TIMEZONE"`
	TickInterval time.Duration `mapstructure:"TICK_INTERVAL"`

	// Slot / timetable persistence ("redis" or "memory").
	SettingsBackend string `mapstructure:"SETTINGS_BACKEND"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSettingsDB int    `mapstructure:"REDIS_SETTINGS_DB"`

	// Grade ledger persistence ("memory" or "mongo").
	LedgerBackend string `mapstructure:"LEDGER_BACKEND"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`

	// Gemini.
	GeminiAPIKey   string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string        `mapstructure:"GEMINI_MODEL"`
	AdvisorTimeout time.Duration `mapstructure:"ADVISOR_TIMEOUT"`
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

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig.normalize()
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("TRUSTED_PROXIES", "")
	viper.SetDefault("TIMEZONE", "Asia/Taipei")
	viper.SetDefault("TICK_INTERVAL", "1s")
	viper.SetDefault("SETTINGS_BACKEND", "redis")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SETTINGS_DB", 0)
	viper.SetDefault("LEDGER_BACKEND", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "classboard")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-pro-preview")
	viper.SetDefault("ADVISOR_TIMEOUT", "60s")
}

// normalize clamps values the rest of the service relies on.
func (c *Config) normalize() {
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	// The status line has minute granularity; it must be refreshed at least once a minute.
	if c.TickInterval > time.Minute {
		c.TickInterval = time.Minute
	}
	if c.AdvisorTimeout <= 0 {
		c.AdvisorTimeout = 60 * time.Second
	}
	if c.MaxRequestsPerMin <= 0 {
		c.MaxRequestsPerMin = 200
	}
}

// Location returns the configured board timezone, falling back to the host's local zone.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using local time: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
