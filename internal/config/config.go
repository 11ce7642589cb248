package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Config holds all configuration for odds-comparison-service
type Config struct {
	Server     ServerConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	Classifier ClassifierConfig
	Logging    LoggingConfig
	Bookmakers []BookmakerEntry
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to consume from (odds_snapshots)
	GroupID string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// ClassifierConfig holds result classification parameters
type ClassifierConfig struct {
	NearMissThreshold float64 // Required improvement below this is a near miss (0.05 = 5%)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// BookmakerEntry is one row of the bookmaker presentation reference table
type BookmakerEntry struct {
	Key   string
	Title string
	Color string
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "odds_snapshots")
	v.SetDefault("kafka.group_id", "odds-comparison")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("classifier.near_miss_threshold", 0.05)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("bookmakers", defaultBookmakers())

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("ODDS_COMPARISON")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ToClassifierParams converts config to classifier parameters
func (c *ClassifierConfig) ToClassifierParams() models.ClassifierParams {
	return models.ClassifierParams{
		NearMissThreshold: decimal.NewFromFloat(c.NearMissThreshold),
	}
}

// BookmakerRefs converts the configured reference table to model form
func (c *Config) BookmakerRefs() []models.BookmakerRef {
	refs := make([]models.BookmakerRef, 0, len(c.Bookmakers))
	for _, b := range c.Bookmakers {
		refs = append(refs, models.BookmakerRef{
			Key:   b.Key,
			Title: b.Title,
			Color: b.Color,
		})
	}
	return refs
}

// defaultBookmakers is the built-in bookmaker presentation table, used
// when the config file does not supply one
func defaultBookmakers() []map[string]interface{} {
	return []map[string]interface{}{
		{"key": "draftkings", "title": "DraftKings", "color": "#53d337"},
		{"key": "fanduel", "title": "FanDuel", "color": "#1493ff"},
		{"key": "betmgm", "title": "BetMGM", "color": "#c5a44e"},
		{"key": "caesars", "title": "Caesars", "color": "#a89968"},
		{"key": "pointsbetus", "title": "PointsBet", "color": "#ed1c24"},
		{"key": "bovada", "title": "Bovada", "color": "#cc0000"},
		{"key": "betonlineag", "title": "BetOnline", "color": "#ff6600"},
		{"key": "betrivers", "title": "BetRivers", "color": "#ffc629"},
		{"key": "unibet_us", "title": "Unibet", "color": "#14805e"},
		{"key": "williamhill_us", "title": "William Hill", "color": "#00473b"},
		{"key": "fliff", "title": "Fliff", "color": "#7c3aed"},
		{"key": "hardrockbet", "title": "Hard Rock", "color": "#d4af37"},
	}
}
