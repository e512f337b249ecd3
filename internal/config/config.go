package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Asia/Jakarta"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Registry struct {
		URL      string `env:"REGISTRY_URL"`
		Username string `env:"REGISTRY_USERNAME"`
		Password string `env:"REGISTRY_PASSWORD"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"availability_service:availability_service"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMq struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri string `env:"RABBITMQ_URL"`

		QueueConfig struct {
			BookingQueueName      string `env:"RABBITMQ_BOOKING_QUEUE" envDefault:"availability-svc.booking"`
			BookingQueueBind      string `env:"RABBITMQ_BOOKING_QUEUE_BIND" envDefault:"clinic.availability-svc.booking.*"`
			BookingQueueExchange  string `env:"RABBITMQ_BOOKING_QUEUE_EXCHANGE" envDefault:"clinic"`
			ScheduleQueueName     string `env:"RABBITMQ_SCHEDULE_QUEUE" envDefault:"availability-svc.schedule"`
			ScheduleQueueBind     string `env:"RABBITMQ_SCHEDULE_QUEUE_BIND" envDefault:"clinic.availability-svc.schedule.*"`
			ScheduleQueueExchange string `env:"RABBITMQ_SCHEDULE_QUEUE_EXCHANGE" envDefault:"clinic"`
			AllQueueName          string `env:"RABBITMQ_ALL_QUEUE" envDefault:"availability-svc._all_"`
			AllQueueBind          string `env:"RABBITMQ_ALL_QUEUE_BIND" envDefault:"clinic.availability-svc._all_.*"`
			AllQueueExchange      string `env:"RABBITMQ_ALL_QUEUE_EXCHANGE" envDefault:"clinic"`
		}
	}

	Cache struct {
		Enabled  bool `env:"CACHE_ENABLED"`
		DaysSize int  `env:"CACHE_DAYS_SIZE" envDefault:"1000"`
	}

	Slots struct {
		GranularityMinutes int `env:"SLOTS_GRANULARITY_MINUTES" envDefault:"15"`
		// Максимальный диапазон дат одного range-запроса
		MaxRangeDays int `env:"SLOTS_MAX_RANGE_DAYS" envDefault:"62"`
	}

	location *time.Location
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разбор basic-клиентов: "user:pass,user2:pass2"
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Без RabbitMQ кэш инвалидировать нечем, поэтому выключаем и его
	if !cfg.RabbitMq.Enabled {
		cfg.Cache.Enabled = false
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.UTC
	}
	cfg.location = loc

	return cfg, nil
}

func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
