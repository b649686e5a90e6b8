package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Session storage drivers
const (
	SessionDriverMemory   = "memory"
	SessionDriverSQLite   = "sqlite"
	SessionDriverPostgres = "postgres"
	SessionDriverRedis    = "redis"
)

// LatencyConfig holds the simulated latency of every gateway operation as a duration string.
type LatencyConfig struct {
	Disabled          bool   `yaml:"disabled" env:"GATEWAY_LATENCY_DISABLED"`
	Login             string `yaml:"login" env:"GATEWAY_LATENCY_LOGIN"`
	Register          string `yaml:"register" env:"GATEWAY_LATENCY_REGISTER"`
	Logout            string `yaml:"logout" env:"GATEWAY_LATENCY_LOGOUT"`
	ListAlumni        string `yaml:"list_alumni" env:"GATEWAY_LATENCY_LIST_ALUMNI"`
	GetAlumni         string `yaml:"get_alumni" env:"GATEWAY_LATENCY_GET_ALUMNI"`
	UpdateProfile     string `yaml:"update_profile" env:"GATEWAY_LATENCY_UPDATE_PROFILE"`
	ListEvents        string `yaml:"list_events" env:"GATEWAY_LATENCY_LIST_EVENTS"`
	RegisterForEvent  string `yaml:"register_for_event" env:"GATEWAY_LATENCY_REGISTER_FOR_EVENT"`
	ListMentorship    string `yaml:"list_mentorship" env:"GATEWAY_LATENCY_LIST_MENTORSHIP"`
	CreateMentorship  string `yaml:"create_mentorship" env:"GATEWAY_LATENCY_CREATE_MENTORSHIP"`
	UpdateMentorship  string `yaml:"update_mentorship" env:"GATEWAY_LATENCY_UPDATE_MENTORSHIP"`
	ListDonations     string `yaml:"list_donations" env:"GATEWAY_LATENCY_LIST_DONATIONS"`
	CreateDonation    string `yaml:"create_donation" env:"GATEWAY_LATENCY_CREATE_DONATION"`
	ListJobs          string `yaml:"list_jobs" env:"GATEWAY_LATENCY_LIST_JOBS"`
	ListStories       string `yaml:"list_stories" env:"GATEWAY_LATENCY_LIST_STORIES"`
	ListBadges        string `yaml:"list_badges" env:"GATEWAY_LATENCY_LIST_BADGES"`
	ListConversations string `yaml:"list_conversations" env:"GATEWAY_LATENCY_LIST_CONVERSATIONS"`
	ListMessages      string `yaml:"list_messages" env:"GATEWAY_LATENCY_LIST_MESSAGES"`
	SendMessage       string `yaml:"send_message" env:"GATEWAY_LATENCY_SEND_MESSAGE"`
}

// Durations returns the configured latency strings keyed by operation name.
// Empty entries are left out so the gateway keeps its defaults for them.
func (l LatencyConfig) Durations() map[string]string {
	all := map[string]string{
		"login":              l.Login,
		"register":           l.Register,
		"logout":             l.Logout,
		"list_alumni":        l.ListAlumni,
		"get_alumni":         l.GetAlumni,
		"update_profile":     l.UpdateProfile,
		"list_events":        l.ListEvents,
		"register_for_event": l.RegisterForEvent,
		"list_mentorship":    l.ListMentorship,
		"create_mentorship":  l.CreateMentorship,
		"update_mentorship":  l.UpdateMentorship,
		"list_donations":     l.ListDonations,
		"create_donation":    l.CreateDonation,
		"list_jobs":          l.ListJobs,
		"list_stories":       l.ListStories,
		"list_badges":        l.ListBadges,
		"list_conversations": l.ListConversations,
		"list_messages":      l.ListMessages,
		"send_message":       l.SendMessage,
	}
	out := make(map[string]string, len(all))
	for op, v := range all {
		if strings.TrimSpace(v) != "" {
			out[op] = v
		}
	}
	return out
}

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Host            string `yaml:"host" env:"SERVER_HOST"`
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Security struct {
		BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST"`
	} `yaml:"security"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
		Caller bool   `yaml:"caller" env:"LOG_CALLER"`
	} `yaml:"logging"`

	Gateway struct {
		Latency LatencyConfig `yaml:"latency"`
	} `yaml:"gateway"`

	Session struct {
		Driver        string `yaml:"driver" env:"SESSION_DRIVER"`
		SQLitePath    string `yaml:"sqlite_path" env:"SESSION_SQLITE_PATH"`
		PostgresDSN   string `yaml:"postgres_dsn" env:"SESSION_POSTGRES_DSN"`
		RedisAddr     string `yaml:"redis_addr" env:"SESSION_REDIS_ADDR"`
		RedisPassword string `yaml:"redis_password" env:"SESSION_REDIS_PASSWORD"`
		RedisDB       int    `yaml:"redis_db" env:"SESSION_REDIS_DB"`
		KeyPrefix     string `yaml:"key_prefix" env:"SESSION_KEY_PREFIX"`
		TTL           string `yaml:"ttl" env:"SESSION_TTL"`
	} `yaml:"session"`

	Kafka struct {
		Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED"`
		Brokers string `yaml:"brokers" env:"KAFKA_BROKERS"`
		Topic   string `yaml:"topic" env:"KAFKA_TOPIC"`
	} `yaml:"kafka"`

	Email struct {
		Enabled   bool   `yaml:"enabled" env:"EMAIL_ENABLED"`
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"EMAIL_FROM_ADDRESS"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	} `yaml:"email"`

	Dashboard struct {
		FundraisingTarget float64 `yaml:"fundraising_target" env:"DASHBOARD_FUNDRAISING_TARGET"`
	} `yaml:"dashboard"`

	Mentorship struct {
		StrictTransitions bool `yaml:"strict_transitions" env:"MENTORSHIP_STRICT_TRANSITIONS"`
	} `yaml:"mentorship"`
}

// LoadEnvFiles loads .env files into the process environment.
// Nothing is loaded in production, where the environment is authoritative.
func LoadEnvFiles(files ...string) error {
	if strings.EqualFold(os.Getenv("APP_ENV"), "prod") {
		return nil
	}
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.ShutdownTimeout = "10s"

	// JWT defaults
	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "alumniconnect.app"

	config.Security.BcryptCost = 12

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Session defaults
	config.Session.Driver = SessionDriverSQLite
	config.Session.SQLitePath = "alumniconnect.db"
	config.Session.KeyPrefix = "alumniconnect:"
	config.Session.TTL = "720h"

	config.Kafka.Topic = "alumni-activity"

	config.Email.Port = 587
	config.Email.FromName = "AlumniConnect"
	config.Email.FromEmail = "no-reply@alumniconnect.app"

	config.Dashboard.FundraisingTarget = 50000
	config.Mentorship.StrictTransitions = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return overlayEnv(reflect.ValueOf(config).Elem(), "")
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if config.Security.BcryptCost < 4 || config.Security.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31")
	}

	for op, v := range config.Gateway.Latency.Durations() {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid latency for %s: %w", op, err)
		}
	}

	switch config.Session.Driver {
	case SessionDriverMemory:
	case SessionDriverSQLite:
		if config.Session.SQLitePath == "" {
			return fmt.Errorf("session sqlite path is required")
		}
	case SessionDriverPostgres:
		if config.Session.PostgresDSN == "" {
			return fmt.Errorf("session postgres dsn is required")
		}
	case SessionDriverRedis:
		if config.Session.RedisAddr == "" {
			return fmt.Errorf("session redis address is required")
		}
	default:
		return fmt.Errorf("unknown session driver %q", config.Session.Driver)
	}

	if config.Kafka.Enabled && len(config.KafkaBrokers()) == 0 {
		return fmt.Errorf("kafka brokers are required when kafka is enabled")
	}

	if config.Email.Enabled && config.Email.FromEmail == "" {
		return fmt.Errorf("email sender address is required when email is enabled")
	}

	if config.Dashboard.FundraisingTarget < 0 {
		return fmt.Errorf("fundraising target must not be negative")
	}

	return nil
}

// KafkaBrokers splits the comma separated broker list.
func (c *Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.Kafka.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
