package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Session storage backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Report command transports.
const (
	TransportLog      = "log"
	TransportRabbitMQ = "rabbitmq"
	TransportKafka    = "kafka"
)

// Config holds application configuration.
type Config struct {
	APIURL      string        `env:"SYNTARA_API_URL" envDefault:"http://localhost:3000/api"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"warn"`

	Session  Session
	Reports  Reports
	RabbitMQ RabbitMQ
	Kafka    Kafka
}

// Session holds session storage configuration.
type Session struct {
	Backend     string `env:"SESSION_BACKEND" envDefault:"file"`
	File        string `env:"SESSION_FILE"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int    `env:"REDIS_DB" envDefault:"0"`
}

// Reports holds report requests configuration.
type Reports struct {
	Transport          string `env:"REPORT_TRANSPORT" envDefault:"log"`
	CompetitorMinDate  string `env:"COMPETITOR_MIN_DATE" envDefault:"2024-11-01"`
	DistributorMinDate string `env:"DISTRIBUTOR_MIN_DATE" envDefault:"2025-11-01"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL              string `env:"RABBITMQ_URL"`
	Exchange         string `env:"RABBITMQ_EXCHANGE" envDefault:"syntara-ex"`
	RoutingKey       string `env:"RABBITMQ_ROUTING_KEY" envDefault:"syntara.reports.commands"`
	Queue            string `env:"RABBITMQ_QUEUE" envDefault:"syntara-client.notices"`
	NoticeRoutingKey string `env:"RABBITMQ_NOTICE_ROUTING_KEY" envDefault:"syntara.reports.notices"`
}

// Kafka holds Kafka configuration.
type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"syntara.reports.commands"`
}

// Load parses configuration from env variables. Variables from .env files are loaded first,
// already set variables are not overridden. Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
