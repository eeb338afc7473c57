package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the adapter needs to talk to the provider.
// Loaded once at startup and passed into constructors; handlers never read
// the environment themselves.
type Config struct {
	Addr            string
	BaseURL         string
	TokenPath       string
	MerchantPayPath string
	ConsumerKey     string
	ConsumerSecret  string
	PartnerName     string

	// OverrideCorrelation blanks requestDate and both transaction
	// references before transmission. Default on.
	OverrideCorrelation bool
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:            getEnv("MVOLA_ADDR", ":8080"),
		BaseURL:         getEnv("MVOLA_BASE_URL", "https://devapi.mvola.mg"),
		TokenPath:       "/token",
		MerchantPayPath: "/mvola/mm/transactions/type/merchantpay/1.0.0/",
		// Missing credentials stay empty; the provider reports the
		// failure on the first call.
		ConsumerKey:         os.Getenv("CONSUMER_KEY"),
		ConsumerSecret:      os.Getenv("CONSUMER_SECRET"),
		PartnerName:         getEnv("MVOLA_PARTNER_NAME", "MVola Adapter"),
		OverrideCorrelation: getEnv("MVOLA_OVERRIDE_CORRELATION", "true") != "false",
	}
}

func (c Config) HasCredentials() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
