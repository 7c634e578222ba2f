package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	MailProviderEmailJS = "emailjs"
	MailProviderSMTP    = "smtp"
)

type EmailJSConfig struct {
	Endpoint        string
	ServiceID       string
	OwnerTemplateID string
	SenderTemplate  string
	UserID          string
	AccessToken     string
}

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

type ContactConfig struct {
	Enabled  bool
	Provider string
	Timeout  time.Duration
	EmailJS  EmailJSConfig
	SMTP     SMTPConfig
}

type Config struct {
	Port         string
	GinMode      string
	LogLevel     string
	ContentFile  string
	PageCacheTTL time.Duration
	Contact      ContactConfig
}

func Load() (*Config, error) {
	cacheTTL, err := getDurationOrDefault("PAGE_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	relayTimeout, err := getDurationOrDefault("RELAY_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	enabled, err := getBoolOrDefault("CONTACT_FORM_ENABLED", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		GinMode:      getEnvOrDefault("GIN_MODE", "release"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		ContentFile:  os.Getenv("CONTENT_FILE"),
		PageCacheTTL: cacheTTL,
		Contact: ContactConfig{
			Enabled:  enabled,
			Provider: strings.ToLower(getEnvOrDefault("MAIL_PROVIDER", MailProviderEmailJS)),
			Timeout:  relayTimeout,
			// Missing EmailJS ids are not checked here; they show up as a
			// rejected send, same as a misconfigured browser client.
			EmailJS: EmailJSConfig{
				Endpoint:        os.Getenv("EMAILJS_ENDPOINT"),
				ServiceID:       os.Getenv("EMAILJS_SERVICE_ID"),
				OwnerTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID_TO_OWNER"),
				SenderTemplate:  os.Getenv("EMAILJS_TEMPLATE_ID_TO_SENDER"),
				UserID:          os.Getenv("EMAILJS_USER_ID"),
				AccessToken:     os.Getenv("EMAILJS_ACCESS_TOKEN"),
			},
			SMTP: SMTPConfig{
				Host:    getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
				Port:    getEnvOrDefault("SMTP_PORT", "587"),
				User:    os.Getenv("SMTP_USER"),
				Pass:    os.Getenv("SMTP_PASS"),
				ToEmail: os.Getenv("TO_EMAIL"),
			},
		},
	}

	switch cfg.Contact.Provider {
	case MailProviderEmailJS, MailProviderSMTP:
	default:
		return nil, fmt.Errorf("MAIL_PROVIDER must be %q or %q, got %q",
			MailProviderEmailJS, MailProviderSMTP, cfg.Contact.Provider)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
