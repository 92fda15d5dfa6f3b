package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Validation ValidationConfig `mapstructure:"validation"`
	Archive    ArchiveConfig    `mapstructure:"archive"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// KafkaConfig holds the event-channel settings. Topic plays the role of the
// exchange name; RoutingKey becomes the message key on published records.
type KafkaConfig struct {
	Brokers    []string `mapstructure:"brokers"`
	Topic      string   `mapstructure:"topic"`
	RoutingKey string   `mapstructure:"routing_key"`
	GroupID    string   `mapstructure:"group_id"`
}

// GeminiConfig holds the outbound generative-AI endpoint settings.
type GeminiConfig struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
}

// ValidationConfig gates user validation on the track-activity path.
// Disabled by default: every user is treated as valid.
type ValidationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ArchiveConfig holds the optional S3-compatible storage used to archive raw
// AI provider responses for offline inspection.
type ArchiveConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment overrides, e.g. kafka.routing_key -> KAFKA_ROUTING_KEY
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "fitness_app")
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "fitness.activity")
	viper.SetDefault("kafka.routing_key", "activity.tracking")
	viper.SetDefault("kafka.group_id", "ai-service")
	viper.SetDefault("validation.enabled", false)
	viper.SetDefault("archive.enabled", false)

	err = viper.ReadInConfig()
	// A missing config file is fine; env vars and defaults still apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
