package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env                 string
	HTTPAddr            string
	PostgresDSN         string
	MongoURI            string
	MongoDB             string
	KafkaBrokers        []string
	KafkaGroupID        string
	RoomBookedTopic     string
	UserRegisteredTopic string
	NotifyTimeout       time.Duration
	ExportDir           string
	ShutdownTimeout     time.Duration
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:                 getEnv("APP_ENV", "dev"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		PostgresDSN:         os.Getenv("POSTGRES_DSN"),
		MongoURI:            os.Getenv("MONGO_URI"),
		MongoDB:             getEnv("MONGO_DB", "staybook_stats"),
		KafkaGroupID:        getEnv("KAFKA_GROUP_ID", "staybook-stats"),
		RoomBookedTopic:     getEnv("ROOM_BOOKED_TOPIC", "room-booked"),
		UserRegisteredTopic: getEnv("USER_REGISTERED_TOPIC", "user-registered"),
		ExportDir:           getEnv("EXPORT_DIR", "exports"),
	}
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	notifyTimeout, err := parseDurationEnv("NOTIFY_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.NotifyTimeout = notifyTimeout

	shutdown, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.ShutdownTimeout = shutdown

	if cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("POSTGRES_DSN is required")
	}
	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGO_URI is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return Config{}, fmt.Errorf("KAFKA_BROKERS is required")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
