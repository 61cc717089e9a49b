package config

import "os"

// Config collects everything the shop reads from the environment.
type Config struct {
	Port        string
	Env         string
	StoreName   string
	CartBackend string // memory | file | redis | mongo
	CartKey     string
	DataDir     string
	RedisURL    string
	MongoURI    string
	MongoDB     string
	OrderSender string // none | postmark | smtp | sendgrid
	OrderTo     string
	EmailSender string
	PostmarkAPI string
	SendGridAPI string
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
}

// Load reads the configuration with sensible defaults for a local run.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8000"),
		Env:         getEnv("ENV", "development"),
		StoreName:   getEnv("STORE_NAME", "Kitis Hardware"),
		CartBackend: getEnv("CART_BACKEND", "file"),
		CartKey:     getEnv("CART_KEY", "kitis_cart"),
		DataDir:     getEnv("DATA_DIR", "data"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "kitisshop"),
		OrderSender: getEnv("ORDER_SENDER", "none"),
		OrderTo:     getEnv("ORDER_TO", "kitis2cool@outlook.com"),
		EmailSender: getEnv("EMAIL_SENDER", ""),
		PostmarkAPI: getEnv("POSTMARK_API_TOKEN", ""),
		SendGridAPI: getEnv("SENDGRID_API_KEY", ""),
		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
