package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/noshahi-devs/notification-service/internal/models"
)

// EmailConfig holds the SMTP transport settings. Immutable for the
// process lifetime; a restart picks up changes.
type EmailConfig struct {
	SMTPHost         string
	SMTPPort         int
	EnableSSL        bool
	SenderEmail      string
	SenderName       string
	SenderPassword   string
	DefaultReplyTo   string
	MaxRetryAttempts int
	RetryDelay       time.Duration
	AttemptTimeout   time.Duration
	EnableLogging    bool
}

// Config holds application configuration loaded from environment.
type Config struct {
	DB struct {
		DSN string
	}
	Email     EmailConfig
	Institute models.InstituteInfo
	Kafka     struct {
		Broker  string
		Topic   string
		GroupID string
	}
	API struct {
		Port     string
		BasePath string
	}
	Ops struct {
		TelegramToken  string
		TelegramChatID int64
	}
	Notification struct {
		TemplateDir     string
		EmailsPerSecond int
	}
	Logging struct {
		Dir   string
		Level string
	}
}

// Load reads environment variables, applies defaults, and returns a Config.
func Load() (Config, error) {
	// Load .env if present
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	// Database DSN
	cfg.DB.DSN = os.Getenv("DB_DSN")

	// SMTP transport settings
	cfg.Email.SMTPHost = os.Getenv("EMAIL_SMTP_HOST")
	if p, err := strconv.Atoi(os.Getenv("EMAIL_SMTP_PORT")); err == nil {
		cfg.Email.SMTPPort = p
	}
	cfg.Email.EnableSSL = os.Getenv("EMAIL_ENABLE_SSL") != "false"
	cfg.Email.SenderEmail = os.Getenv("EMAIL_SENDER")
	cfg.Email.SenderName = os.Getenv("EMAIL_SENDER_NAME")
	cfg.Email.SenderPassword = os.Getenv("EMAIL_PASSWORD")
	cfg.Email.DefaultReplyTo = os.Getenv("EMAIL_DEFAULT_REPLY_TO")
	if n, err := strconv.Atoi(os.Getenv("EMAIL_MAX_RETRY_ATTEMPTS")); err == nil {
		cfg.Email.MaxRetryAttempts = n
	}
	if secs, err := strconv.Atoi(os.Getenv("EMAIL_RETRY_DELAY_SECONDS")); err == nil {
		cfg.Email.RetryDelay = time.Duration(secs) * time.Second
	}
	if secs, err := strconv.Atoi(os.Getenv("EMAIL_ATTEMPT_TIMEOUT_SECONDS")); err == nil {
		cfg.Email.AttemptTimeout = time.Duration(secs) * time.Second
	}
	cfg.Email.EnableLogging = os.Getenv("EMAIL_ENABLE_LOGGING") != "false"

	// Institute branding
	cfg.Institute.Name = os.Getenv("INSTITUTE_NAME")
	cfg.Institute.Address = os.Getenv("INSTITUTE_ADDRESS")
	cfg.Institute.Phone = os.Getenv("INSTITUTE_PHONE")
	cfg.Institute.Email = os.Getenv("INSTITUTE_EMAIL")
	cfg.Institute.Website = os.Getenv("INSTITUTE_WEBSITE")
	cfg.Institute.Logo = os.Getenv("INSTITUTE_LOGO")

	// Kafka settings (event intake is optional)
	cfg.Kafka.Broker = os.Getenv("KAFKA_BROKER")
	cfg.Kafka.Topic = os.Getenv("KAFKA_TOPIC")
	cfg.Kafka.GroupID = os.Getenv("KAFKA_GROUP_ID")

	// API settings
	cfg.API.Port = os.Getenv("API_PORT")
	cfg.API.BasePath = os.Getenv("API_BASE_PATH")

	// Ops alerter
	cfg.Ops.TelegramToken = os.Getenv("OPS_TELEGRAM_TOKEN")
	if id, err := strconv.ParseInt(os.Getenv("OPS_TELEGRAM_CHAT_ID"), 10, 64); err == nil {
		cfg.Ops.TelegramChatID = id
	}

	// Dispatch settings
	cfg.Notification.TemplateDir = os.Getenv("TEMPLATE_DIR")
	if n, err := strconv.Atoi(os.Getenv("EMAILS_PER_SECOND")); err == nil {
		cfg.Notification.EmailsPerSecond = n
	}

	// Logging
	cfg.Logging.Dir = os.Getenv("LOG_DIR")
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")

	// Validate required settings
	missing := []string{}
	if cfg.DB.DSN == "" {
		missing = append(missing, "DB_DSN")
	}
	if cfg.Email.SMTPHost == "" {
		missing = append(missing, "EMAIL_SMTP_HOST")
	}
	if cfg.Email.SenderEmail == "" {
		missing = append(missing, "EMAIL_SENDER")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required configurations: %v", missing)
	}

	// Apply defaults
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Email.MaxRetryAttempts < 1 {
		cfg.Email.MaxRetryAttempts = 3
	}
	if cfg.Email.RetryDelay == 0 {
		cfg.Email.RetryDelay = 5 * time.Second
	}
	if cfg.Email.AttemptTimeout == 0 {
		cfg.Email.AttemptTimeout = 30 * time.Second
	}
	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = "school_notifications"
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "notification-service"
	}
	if cfg.API.Port == "" {
		cfg.API.Port = ":8080"
	}
	if cfg.API.BasePath == "" {
		cfg.API.BasePath = "/api/v0"
	}
	if cfg.Notification.TemplateDir == "" {
		cfg.Notification.TemplateDir = "templates"
	}
	if cfg.Notification.EmailsPerSecond == 0 {
		cfg.Notification.EmailsPerSecond = 10
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = "logs"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}
