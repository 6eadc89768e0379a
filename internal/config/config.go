package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	JWTSecret   string        // Общий секрет с мостом идентификации
	JWTTokenTTL time.Duration // Время жизни токенов, выпускаемых локально
	LogLevel    string        // Уровень логирования

	// Reconciler
	WorkerPoolSize     int
	WorkerQueueSize    int
	WorkerScanInterval time.Duration

	// Хранилище чеков
	BlobRoot      string
	BlobPublicURL string

	// Внешние уведомления: log, rabbitmq или kafka
	NotifyDriver string
	AMQPURL      string
	AMQPExchange string
	KafkaBrokers []string
	KafkaTopic   string

	CORSAllowedOrigins []string

	// Курс, если в settings нет usd_rate
	DefaultUSDRate decimal.Decimal
}

// Load загружает .env (если есть), флаги и переменные окружения.
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

func defaults() *Config {
	return &Config{
		RunAddress:         ":8080",
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		BlobRoot:           "./data/checks",
		NotifyDriver:       "log",
		AMQPExchange:       "deal_events",
		KafkaTopic:         "deal-events",
		CORSAllowedOrigins: []string{"*"},
		DefaultUSDRate:     decimal.NewFromInt(85),
	}
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := defaults()

	flags := flag.NewFlagSet("dropservice", flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	flags.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flags.StringVar(&cfg.BlobRoot, "b", cfg.BlobRoot, "directory for check images")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if v, ok := lookup("RUN_ADDRESS"); ok {
		cfg.RunAddress = v
	}
	if v, ok := lookup("DATABASE_URI"); ok {
		cfg.DatabaseURI = v
	}

	// JWT секрет только из env
	if v, ok := lookup("JWT_SECRET"); ok {
		cfg.JWTSecret = v
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	if v, ok := lookup("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}
	if v, ok := lookup("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}
	if v, ok := lookup("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(v); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	if v, ok := lookup("BLOB_ROOT"); ok {
		cfg.BlobRoot = v
	}
	if v, ok := lookup("BLOB_PUBLIC_URL"); ok {
		cfg.BlobPublicURL = v
	}

	if v, ok := lookup("NOTIFY_DRIVER"); ok {
		cfg.NotifyDriver = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("AMQP_URL"); ok {
		cfg.AMQPURL = v
	}
	if v, ok := lookup("AMQP_EXCHANGE"); ok && v != "" {
		cfg.AMQPExchange = v
	}
	if v, ok := lookup("KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = splitList(v)
	}
	if v, ok := lookup("KAFKA_TOPIC"); ok && v != "" {
		cfg.KafkaTopic = v
	}

	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok {
		if origins := splitList(v); len(origins) > 0 {
			cfg.CORSAllowedOrigins = origins
		}
	}

	if v, ok := lookup("DEFAULT_USD_RATE"); ok {
		rate, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("DEFAULT_USD_RATE must be a positive number, got %q", v)
		}
		cfg.DefaultUSDRate = rate
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	switch cfg.NotifyDriver {
	case "log":
	case "rabbitmq":
		if cfg.AMQPURL == "" {
			return nil, fmt.Errorf("AMQP_URL is required for rabbitmq notify driver")
		}
	case "kafka":
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("KAFKA_BROKERS is required for kafka notify driver")
		}
	default:
		return nil, fmt.Errorf("unknown NOTIFY_DRIVER %q", cfg.NotifyDriver)
	}

	return cfg, nil
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
