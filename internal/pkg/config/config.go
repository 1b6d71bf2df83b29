package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		AssignmentExpiryInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	// Shop - часовой пояс магазина и часы сетки расписания.
	Shop struct {
		Timezone      string
		Location      *time.Location
		SlotStartHour int
		SlotEndHour   int
	}

	Assignment struct {
		CourierTimeout  time.Duration
		ExternalTimeout time.Duration
	}

	Dispatch struct {
		Transport  string // kafka | grpc
		GRPCHost   string
		KafkaTopic string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		AssignmentResolved AssignmentResolved
	}

	AssignmentResolved struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks      Tasks
		Server     HTTPServer
		Database   Database
		Redis      Redis
		Shop       Shop
		Assignment Assignment
		Dispatch   Dispatch
		Kafka      Kafka
	}
)

const (
	DispatchTransportKafka = "kafka"
	DispatchTransportGRPC  = "grpc"

	defaultSlotStartHour = 7
	defaultSlotEndHour   = 23
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	expiryInterval, err := osGetEnvDuration("BACKGROUND_ASSIGNMENT_EXPIRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	courierTimeout, err := osGetEnvDuration("ASSIGNMENT_COURIER_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	externalTimeout, err := osGetEnvDuration("ASSIGNMENT_EXTERNAL_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	slotStartHour, err := osGetIntDefault("SCHEDULE_START_HOUR", defaultSlotStartHour)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	slotEndHour, err := osGetIntDefault("SCHEDULE_END_HOUR", defaultSlotEndHour)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	timezone := os.Getenv("SHOP_TIMEZONE")
	var location *time.Location
	if timezone != "" {
		location, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("loading config: invalid SHOP_TIMEZONE=%q: %w", timezone, err)
		}
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	assignmentResolvedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ASSIGNMENT_RESOLVED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			AssignmentExpiryInterval: expiryInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: loadDatabase(),
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Shop: Shop{
			Timezone:      timezone,
			Location:      location,
			SlotStartHour: slotStartHour,
			SlotEndHour:   slotEndHour,
		},
		Assignment: Assignment{
			CourierTimeout:  courierTimeout,
			ExternalTimeout: externalTimeout,
		},
		Dispatch: Dispatch{
			Transport:  os.Getenv("DISPATCH_TRANSPORT"),
			GRPCHost:   os.Getenv("DISPATCH_GRPC_HOST"),
			KafkaTopic: os.Getenv("DISPATCH_KAFKA_TOPIC"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				AssignmentResolved: AssignmentResolved{
					ProcessTimeout: assignmentResolvedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.AssignmentExpiryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ASSIGNMENT_EXPIRY_INTERVAL is required")
	}

	if cfg.Shop.Location == nil {
		return errors.New("SHOP_TIMEZONE is required")
	}
	if cfg.Shop.SlotStartHour < 0 || cfg.Shop.SlotEndHour > 23 || cfg.Shop.SlotStartHour > cfg.Shop.SlotEndHour {
		return fmt.Errorf("invalid schedule hours %d..%d", cfg.Shop.SlotStartHour, cfg.Shop.SlotEndHour)
	}

	if cfg.Assignment.CourierTimeout == time.Duration(0) {
		return errors.New("ASSIGNMENT_COURIER_TIMEOUT is required")
	}
	if cfg.Assignment.ExternalTimeout == time.Duration(0) {
		return errors.New("ASSIGNMENT_EXTERNAL_TIMEOUT is required")
	}

	switch cfg.Dispatch.Transport {
	case DispatchTransportKafka:
		if cfg.Dispatch.KafkaTopic == "" {
			return errors.New("DISPATCH_KAFKA_TOPIC is required for kafka transport")
		}
	case DispatchTransportGRPC:
		if cfg.Dispatch.GRPCHost == "" {
			return errors.New("DISPATCH_GRPC_HOST is required for grpc transport")
		}
	default:
		return fmt.Errorf("DISPATCH_TRANSPORT must be %q or %q, got %q",
			DispatchTransportKafka, DispatchTransportGRPC, cfg.Dispatch.Transport)
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.AssignmentResolved.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ASSIGNMENT_RESOLVED_PROCESS_TIMEOUT is required")
	}

	return nil
}

// LoadDatabase читает только настройки Postgres, их достаточно для cmd/migrate.
func LoadDatabase() (*Database, error) {
	cfg := loadDatabase()
	if err := validateDatabase(&cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg, nil
}

func loadDatabase() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetIntDefault(s string, def int) (int, error) {
	if os.Getenv(s) == "" {
		return def, nil
	}
	return osGetInt(s)
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
