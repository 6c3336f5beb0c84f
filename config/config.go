package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Payment PaymentConfig `yaml:"payment"`
}

type HTTPConfig struct {
	Address       string `yaml:"address"`
	AllowedOrigin string `yaml:"allowed_origin"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// Enabled reports whether event publishing is switched on at all. An empty
// broker list runs the API without Kafka.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type PaymentConfig struct {
	DelayMillis   int `yaml:"delay_ms"`
	TimeoutMillis int `yaml:"timeout_ms"`
}

func LoadConfig(path string) (*Config, error) {
	// .env is optional, local development convenience only.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if addr := os.Getenv("HTTP_ADDRESS"); addr != "" {
		cfg.HTTP.Address = addr
	}
	if origin := os.Getenv("ALLOWED_ORIGIN"); origin != "" {
		cfg.HTTP.AllowedOrigin = origin
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
}
