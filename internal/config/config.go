package config

import (
	"errors"
	"os"
)

const (
	TelegramWebhookPath  = "/webhook/telegram"
	CryptoPayWebhookPath = "/webhook/cryptopay"

	// Header Telegram sends back on every webhook call when a secret
	// token was registered with setWebhook.
	TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

	DefaultTelegramAPIURL  = "https://api.telegram.org"
	DefaultCryptoPayAPIURL = "https://pay.crypt.bot/api"
)

type Config struct {
	BotToken       string
	CryptoPayToken string

	// Public base URL for webhook registration. Empty skips registration.
	BaseURL string

	WebhookSecret   string
	Port            string
	TelegramAPIURL  string
	CryptoPayAPIURL string
	CatalogFile     string
}

func Load() (Config, error) {
	cfg := Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		CryptoPayToken:  os.Getenv("CRYPTO_PAY_TOKEN"),
		BaseURL:         os.Getenv("BASE_URL"),
		WebhookSecret:   getEnv("TG_WEBHOOK_SECRET", "change-me"),
		Port:            getEnv("PORT", "8080"),
		TelegramAPIURL:  getEnv("TELEGRAM_API_URL", DefaultTelegramAPIURL),
		CryptoPayAPIURL: getEnv("CRYPTO_PAY_API_URL", DefaultCryptoPayAPIURL),
		CatalogFile:     os.Getenv("CATALOG_FILE"),
	}

	if cfg.BotToken == "" {
		return Config{}, errors.New("BOT_TOKEN is required")
	}

	if cfg.CryptoPayToken == "" {
		return Config{}, errors.New("CRYPTO_PAY_TOKEN is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
