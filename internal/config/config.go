// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string
	ChatModel     string
	ImageModel    string

	// Sendy
	SendyBaseURL string
	SendyAPIKey  string
	SendyBrandID string
	SendyListIDs string
	FromName     string
	FromEmail    string
	ReplyTo      string

	// Image hosting fallback when S3 is not configured
	PublicBaseURL string
	ImageDir      string
	TemplateDir   string

	SMTP SMTPConfig

	GenerationTimeout time.Duration
	DownloadTimeout   time.Duration
	SubmitTimeout     time.Duration
}

type SMTPConfig struct {
	Host   string
	Port   string
	User   string
	Pass   string
	From   string
	UseTLS bool
}

// Configured reports whether direct SMTP test sends are available.
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.From != ""
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		ChatModel:     getEnv("OPENAI_CHAT_MODEL", "gpt-4"),
		ImageModel:    getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),

		SendyBaseURL: getEnv("SENDY_URL", "https://kemis.net/sendy"),
		SendyAPIKey:  os.Getenv("SENDY_API_KEY"),
		SendyBrandID: getEnv("SENDY_BRAND_ID", "1"),
		SendyListIDs: os.Getenv("SENDY_LIST_IDS"),
		FromName:     getEnv("SENDY_FROM_NAME", "KemisEmail"),
		FromEmail:    getEnv("SENDY_FROM_EMAIL", "offers@kemis.net"),
		ReplyTo:      getEnv("SENDY_REPLY_TO", "offers@kemis.net"),

		PublicBaseURL: os.Getenv("BASE_URL"),
		ImageDir:      getEnv("IMAGE_DIR", "images"),
		TemplateDir:   getEnv("TEMPLATE_DIR", "templates"),

		SMTP: SMTPConfig{
			Host:   os.Getenv("SMTP_HOST"),
			Port:   getEnv("SMTP_PORT", "587"),
			User:   os.Getenv("SMTP_USER"),
			Pass:   os.Getenv("SMTP_PASS"),
			From:   os.Getenv("SMTP_FROM"),
			UseTLS: getEnv("SMTP_TLS", "false") == "true",
		},

		GenerationTimeout: getEnvSeconds("GENERATION_TIMEOUT_SECONDS", 90),
		DownloadTimeout:   getEnvSeconds("DOWNLOAD_TIMEOUT_SECONDS", 30),
		SubmitTimeout:     getEnvSeconds("SUBMIT_TIMEOUT_SECONDS", 30),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
