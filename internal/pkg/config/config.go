package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Notifier NotifierConfig
	Resend   ResendConfig
	Twilio   TwilioConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Lagos"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Lagos"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// NotifierConfig drives the outbox worker that delivers reward completion notices
// to the business owner.
type NotifierConfig struct {
	Enabled       bool          `envconfig:"NOTIFIER_ENABLED" default:"true"`
	PollInterval  time.Duration `envconfig:"NOTIFIER_POLL_INTERVAL" default:"5s"`
	BatchSize     int32         `envconfig:"NOTIFIER_BATCH_SIZE" default:"20"`
	SendTimeout   time.Duration `envconfig:"NOTIFIER_SEND_TIMEOUT" default:"10s"`
	Channels      []string      `envconfig:"NOTIFIER_CHANNELS" default:"log"`
	OwnerEmail    string        `envconfig:"NOTIFIER_OWNER_EMAIL" default:""`
	OwnerPhone    string        `envconfig:"NOTIFIER_OWNER_PHONE" default:""`
	OwnerWhatsApp string        `envconfig:"NOTIFIER_OWNER_WHATSAPP" default:""`
}

type ResendConfig struct {
	BaseURL string `envconfig:"RESEND_BASE_URL" default:"https://api.resend.com"`
	APIKey  string `envconfig:"RESEND_API_KEY" default:""`
	From    string `envconfig:"RESEND_FROM" default:"RetailPlus <rewards@retailplus.local>"`
}

type TwilioConfig struct {
	BaseURL      string `envconfig:"TWILIO_BASE_URL" default:"https://api.twilio.com"`
	AccountSID   string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken    string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	FromNumber   string `envconfig:"TWILIO_FROM_NUMBER" default:""`
	WhatsAppFrom string `envconfig:"TWILIO_WHATSAPP_FROM" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Notifier.NormalizeChannels(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Notification channel names, stored as notification_jobs.kind.
const (
	ChannelLog      = "log"
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

var KnownChannels = []string{ChannelLog, ChannelEmail, ChannelSMS, ChannelWhatsApp}

// NormalizeChannels trims, lower-cases and de-duplicates NOTIFIER_CHANNELS and rejects
// unknown names, so a typo fails startup instead of every reward completion.
func (c *NotifierConfig) NormalizeChannels() error {
	channels := make([]string, 0, len(c.Channels))
	for _, raw := range c.Channels {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || slices.Contains(channels, name) {
			continue
		}
		if !slices.Contains(KnownChannels, name) {
			return fmt.Errorf("NOTIFIER_CHANNELS: unknown channel %q (known: %s)", raw, strings.Join(KnownChannels, ", "))
		}
		channels = append(channels, name)
	}
	if len(channels) == 0 {
		return fmt.Errorf("NOTIFIER_CHANNELS: at least one channel is required (known: %s)", strings.Join(KnownChannels, ", "))
	}
	c.Channels = channels
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889", // Test port
			GinMode: "test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Africa/Lagos",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Lagos",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:          "test-secret-key-for-reward-service",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Notifier: NotifierConfig{
			Enabled:      false,
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
			SendTimeout:  time.Second,
			Channels:     []string{ChannelLog},
		},
	}
}
