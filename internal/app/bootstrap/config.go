package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string

	HTTPPort int

	DatabaseURL  string
	RedisURL     string
	KafkaBrokers []string

	MaxDBConns                  int32
	KafkaConsumerGroup          string
	KafkaTopicPlaylistSynced    string
	KafkaTopicPlaylistRemoved   string
	KafkaTopicAllocationCommits string

	OutboxPollInterval   time.Duration
	OutboxBatchSize      int
	ConsumerPollInterval time.Duration

	CatalogCacheTTL time.Duration
	IdempotencyTTL  time.Duration
	MaxDurationDays int
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL                 string   `yaml:"postgres_url"`
		RedisURL                    string   `yaml:"redis_url"`
		KafkaBrokers                []string `yaml:"kafka_brokers"`
		KafkaConsumerGroup          string   `yaml:"kafka_consumer_group"`
		KafkaTopicPlaylistSynced    string   `yaml:"kafka_topic_playlist_synced"`
		KafkaTopicPlaylistRemoved   string   `yaml:"kafka_topic_playlist_removed"`
		KafkaTopicAllocationCommits string   `yaml:"kafka_topic_allocation_committed"`
	} `yaml:"dependencies"`
	Allocation struct {
		CatalogCacheSeconds int `yaml:"catalog_cache_seconds"`
		IdempotencyTTLHours int `yaml:"idempotency_ttl_hours"`
		MaxDurationDays     int `yaml:"max_duration_days"`
	} `yaml:"allocation"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:                   "campaign-allocation-service",
		HTTPPort:                    8080,
		MaxDBConns:                  20,
		KafkaConsumerGroup:          "campaign-allocation-service",
		KafkaTopicPlaylistSynced:    "catalog.playlist_synced",
		KafkaTopicPlaylistRemoved:   "catalog.playlist_removed",
		KafkaTopicAllocationCommits: "campaign.allocation_committed",
		OutboxPollInterval:          2 * time.Second,
		OutboxBatchSize:             100,
		ConsumerPollInterval:        2 * time.Second,
		CatalogCacheTTL:             5 * time.Minute,
		IdempotencyTTL:              7 * 24 * time.Hour,
		MaxDurationDays:             365,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = trimNonEmpty(f.Dependencies.KafkaBrokers)
		}
		if f.Dependencies.KafkaConsumerGroup != "" {
			cfg.KafkaConsumerGroup = f.Dependencies.KafkaConsumerGroup
		}
		if f.Dependencies.KafkaTopicPlaylistSynced != "" {
			cfg.KafkaTopicPlaylistSynced = f.Dependencies.KafkaTopicPlaylistSynced
		}
		if f.Dependencies.KafkaTopicPlaylistRemoved != "" {
			cfg.KafkaTopicPlaylistRemoved = f.Dependencies.KafkaTopicPlaylistRemoved
		}
		if f.Dependencies.KafkaTopicAllocationCommits != "" {
			cfg.KafkaTopicAllocationCommits = f.Dependencies.KafkaTopicAllocationCommits
		}
		if f.Allocation.CatalogCacheSeconds > 0 {
			cfg.CatalogCacheTTL = time.Duration(f.Allocation.CatalogCacheSeconds) * time.Second
		}
		if f.Allocation.IdempotencyTTLHours > 0 {
			cfg.IdempotencyTTL = time.Duration(f.Allocation.IdempotencyTTLHours) * time.Hour
		}
		if f.Allocation.MaxDurationDays > 0 {
			cfg.MaxDurationDays = f.Allocation.MaxDurationDays
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaConsumerGroup = envOrDefault("KAFKA_CONSUMER_GROUP", cfg.KafkaConsumerGroup)
	cfg.KafkaTopicPlaylistSynced = envOrDefault("KAFKA_TOPIC_PLAYLIST_SYNCED", cfg.KafkaTopicPlaylistSynced)
	cfg.KafkaTopicPlaylistRemoved = envOrDefault("KAFKA_TOPIC_PLAYLIST_REMOVED", cfg.KafkaTopicPlaylistRemoved)
	cfg.KafkaTopicAllocationCommits = envOrDefault("KAFKA_TOPIC_ALLOCATION_COMMITTED", cfg.KafkaTopicAllocationCommits)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))
	cfg.OutboxPollInterval = time.Duration(envInt("OUTBOX_POLL_SECONDS", int(cfg.OutboxPollInterval.Seconds()))) * time.Second
	cfg.OutboxBatchSize = envInt("OUTBOX_BATCH_SIZE", cfg.OutboxBatchSize)
	cfg.ConsumerPollInterval = time.Duration(envInt("CONSUMER_POLL_SECONDS", int(cfg.ConsumerPollInterval.Seconds()))) * time.Second
	cfg.CatalogCacheTTL = time.Duration(envInt("CATALOG_CACHE_SECONDS", int(cfg.CatalogCacheTTL.Seconds()))) * time.Second
	cfg.IdempotencyTTL = time.Duration(envInt("IDEMPOTENCY_TTL_HOURS", int(cfg.IdempotencyTTL.Hours()))) * time.Hour
	cfg.MaxDurationDays = envInt("MAX_DURATION_DAYS", cfg.MaxDurationDays)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envCSV(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	items := strings.Split(raw, ",")
	return trimNonEmpty(items)
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
