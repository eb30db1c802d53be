package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	APIGateway          = "api-gateway"
	EventService        = "event-service"
	BookingService      = "booking-service"
	PaymentService      = "payment-service"
	NotificationService = "notification-service"
)

var defaultPorts = map[string]int{
	APIGateway:          8080,
	EventService:        8081,
	BookingService:      8082,
	PaymentService:      8083,
	NotificationService: 8084,
}

type Config struct {
	ServiceName string `ignored:"true"`
	ServiceID   string `envconfig:"SERVICE_ID"`
	Port        int    `envconfig:"PORT"`

	// PostgreSQL
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"eventbooking"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"eventbooking123"`
	DBName     string `envconfig:"DB_NAME" default:"eventbooking"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// RabbitMQ
	RabbitMQHost      string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	RabbitMQPort      int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	RabbitMQUser      string `envconfig:"RABBITMQ_USER" default:"guest"`
	RabbitMQPassword  string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
	NotificationQueue string `envconfig:"NOTIFICATION_QUEUE" default:"notification"`
	PublishBuffer     int    `envconfig:"PUBLISH_BUFFER" default:"256"`
	ConsumerPrefetch  int    `envconfig:"CONSUMER_PREFETCH" default:"16"`

	// Redis
	RedisHost     string        `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int           `envconfig:"REDIS_PORT" default:"6379"`
	EventCacheTTL time.Duration `envconfig:"EVENT_CACHE_TTL" default:"5m"`

	// Consul
	ConsulEnabled bool   `envconfig:"CONSUL_ENABLED" default:"true"`
	ConsulHost    string `envconfig:"CONSUL_HOST" default:"localhost"`
	ConsulPort    int    `envconfig:"CONSUL_PORT" default:"8500"`

	// Downstream services, used when Consul has no healthy instance
	EventServiceURL   string        `envconfig:"EVENT_SERVICE_URL" default:"http://localhost:8081"`
	BookingServiceURL string        `envconfig:"BOOKING_SERVICE_URL" default:"http://localhost:8082"`
	PaymentServiceURL string        `envconfig:"PAYMENT_SERVICE_URL" default:"http://localhost:8083"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`

	// Tracing
	TracingEnabled bool   `envconfig:"TRACING_ENABLED" default:"false"`
	OTLPEndpoint   string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
}

// Load reads an optional .env file and then the environment for service.
func Load(service string) (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("✅ Loaded .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ServiceName = service
	if cfg.Port == 0 {
		cfg.Port = defaultPorts[service]
	}
	if cfg.ServiceID == "" {
		cfg.ServiceID = fmt.Sprintf("%s-%d", service, cfg.Port)
	}
	if cfg.PublishBuffer <= 0 {
		cfg.PublishBuffer = 1
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
