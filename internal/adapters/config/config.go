package config

import (
	"time"

	"github.com/joho/godotenv"
)

type StoreConfig struct {
	DataDir      string
	ProductsFile string
}

type RabbitMQConfig struct {
	Enabled         bool
	URL             string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
}

type HTTPConfig struct {
	Port          string
	BindInterface string
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

type Config struct {
	Store     StoreConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	RabbitMQ  RabbitMQConfig
	HTTP      HTTPConfig
	Logger    LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Store: StoreConfig{
			DataDir:      getStringEnv("STORE_DATA_DIR", "data"),
			ProductsFile: getStringEnv("STORE_PRODUCTS_FILE", "products.json"),
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("RATE_LIMIT_ENABLED", false),
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			RequestsPerWindow: getIntEnv("RATE_LIMIT_REQUESTS", 100),
			Window:            time.Duration(getIntEnv("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:    getBoolEnv("EVENTS_ENABLED", false),
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("RABBITMQ_RETRY_DELAY", 1)) * time.Second,
			ExchangeConfigs: []ExchangeConfig{
				{
					Name:       getStringEnv("RABBITMQ_EXCHANGE_NAME", "exchange.product"),
					Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "catalog"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}
