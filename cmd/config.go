package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"shipmate/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
)

type Config struct {
	AppEnv   string
	HTTPPort int

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AuthJWTSecret string
	AuthAudience  string

	KafkaHost              string
	KafkaOrderChangedTopic string

	OrderTTL                time.Duration
	OrderExpirySchedule     string
	AvailableOrdersSchedule string

	PriceRateLimit float64
	PriceRateBurst int

	// TrustedProxies are the CIDR ranges whose X-Forwarded-For is believed when
	// identifying a client. Empty means the socket peer is the client.
	TrustedProxies []string

	TariffBaseFare int64
	TariffMinPrice int64
	TariffMaxPrice int64

	ShutdownTimeout time.Duration
}

// DefaultConfig is the configuration used for every key that is not set.
func DefaultConfig() Config {
	tariff := services.DefaultTariff()
	return Config{
		AppEnv:                  "production",
		HTTPPort:                8080,
		DBHost:                  "localhost",
		DBPort:                  5432,
		DBUser:                  "postgres",
		DBName:                  "shipmate",
		DBSslMode:               "disable",
		KafkaOrderChangedTopic:  "order.changed",
		OrderTTL:                72 * time.Hour,
		OrderExpirySchedule:     "0 */5 * * * *",
		AvailableOrdersSchedule: "*/30 * * * * *",
		PriceRateLimit:          5,
		PriceRateBurst:          10,
		TariffBaseFare:          tariff.BaseFare,
		TariffMinPrice:          tariff.MinPrice,
		TariffMaxPrice:          tariff.MaxPrice,
		ShutdownTimeout:         10 * time.Second,
	}
}

// LoadConfig reads configuration in order: .env (if present) → environment → flags.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return loadConfig(os.LookupEnv, args)
}

func loadConfig(lookup func(string) (string, bool), args []string) (Config, error) {
	cfg := DefaultConfig()
	env := envReader{lookup: lookup}

	cfg.AppEnv = env.string("APP_ENV", cfg.AppEnv)
	cfg.HTTPPort = env.int("HTTP_PORT", cfg.HTTPPort)
	cfg.DBHost = env.string("DB_HOST", cfg.DBHost)
	cfg.DBPort = env.int("DB_PORT", cfg.DBPort)
	cfg.DBUser = env.string("DB_USER", cfg.DBUser)
	cfg.DBPassword = env.string("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = env.string("DB_NAME", cfg.DBName)
	cfg.DBSslMode = env.string("DB_SSLMODE", cfg.DBSslMode)
	cfg.AuthJWTSecret = env.string("AUTH_JWT_SECRET", cfg.AuthJWTSecret)
	cfg.AuthAudience = env.string("AUTH_AUDIENCE", cfg.AuthAudience)
	cfg.KafkaHost = env.string("KAFKA_HOST", cfg.KafkaHost)
	cfg.KafkaOrderChangedTopic = env.string("KAFKA_ORDER_CHANGED_TOPIC", cfg.KafkaOrderChangedTopic)
	cfg.OrderTTL = env.duration("ORDER_TTL", cfg.OrderTTL)
	cfg.OrderExpirySchedule = env.string("ORDER_EXPIRY_SCHEDULE", cfg.OrderExpirySchedule)
	cfg.AvailableOrdersSchedule = env.string("AVAILABLE_ORDERS_SCHEDULE", cfg.AvailableOrdersSchedule)
	cfg.PriceRateLimit = env.float("PRICE_RATE_LIMIT", cfg.PriceRateLimit)
	cfg.PriceRateBurst = env.int("PRICE_RATE_BURST", cfg.PriceRateBurst)
	cfg.TrustedProxies = env.list("TRUSTED_PROXIES", cfg.TrustedProxies)
	cfg.TariffBaseFare = env.int64("TARIFF_BASE_FARE", cfg.TariffBaseFare)
	cfg.TariffMinPrice = env.int64("TARIFF_MIN_PRICE", cfg.TariffMinPrice)
	cfg.TariffMaxPrice = env.int64("TARIFF_MAX_PRICE", cfg.TariffMaxPrice)
	cfg.ShutdownTimeout = env.duration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	if env.err != nil {
		return Config{}, env.err
	}

	flags := pflag.NewFlagSet("shipmate", pflag.ContinueOnError)
	flags.IntVarP(&cfg.HTTPPort, "port", "p", cfg.HTTPPort, "port to listen on")
	flags.StringVar(&cfg.AppEnv, "env", cfg.AppEnv, "environment name, development switches to text logs")
	flags.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "PostgreSQL host")
	flags.IntVar(&cfg.DBPort, "db-port", cfg.DBPort, "PostgreSQL port")
	flags.StringVar(&cfg.DBName, "db-name", cfg.DBName, "PostgreSQL database")
	flags.StringVar(&cfg.KafkaHost, "kafka-host", cfg.KafkaHost, "comma separated Kafka brokers, events are not published when empty")
	flags.DurationVar(&cfg.OrderTTL, "order-ttl", cfg.OrderTTL, "age after which unaccepted orders expire")
	flags.StringVar(&cfg.OrderExpirySchedule, "order-expiry-schedule", cfg.OrderExpirySchedule,
		"cron schedule (with seconds) of the expiry job")
	flags.Float64Var(&cfg.PriceRateLimit, "price-rate-limit", cfg.PriceRateLimit,
		"price quotes per second allowed per client")
	flags.StringSliceVar(&cfg.TrustedProxies, "trusted-proxies", cfg.TrustedProxies,
		"CIDR ranges of reverse proxies allowed to set X-Forwarded-For")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the service cannot start with.
func (c Config) Validate() error {
	var err error
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		err = errors.Join(err, fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort))
	}
	if c.DBPort <= 0 || c.DBPort > 65535 {
		err = errors.Join(err, fmt.Errorf("invalid DB_PORT: %d", c.DBPort))
	}
	if c.DBHost == "" || c.DBName == "" {
		err = errors.Join(err, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.OrderTTL <= 0 {
		err = errors.Join(err, fmt.Errorf("ORDER_TTL must be positive, got %s", c.OrderTTL))
	}
	if c.ShutdownTimeout <= 0 {
		err = errors.Join(err, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	if c.PriceRateLimit <= 0 || c.PriceRateBurst <= 0 {
		err = errors.Join(err, errors.New("PRICE_RATE_LIMIT and PRICE_RATE_BURST must be positive"))
	}
	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		err = errors.Join(err, errors.New("KAFKA_ORDER_CHANGED_TOPIC is required when KAFKA_HOST is set"))
	}
	for _, cidr := range c.TrustedProxies {
		if _, _, parseErr := net.ParseCIDR(cidr); parseErr != nil {
			err = errors.Join(err, fmt.Errorf("invalid TRUSTED_PROXIES entry: %w", parseErr))
		}
	}
	for key, spec := range map[string]string{
		"ORDER_EXPIRY_SCHEDULE":     c.OrderExpirySchedule,
		"AVAILABLE_ORDERS_SCHEDULE": c.AvailableOrdersSchedule,
	} {
		if _, parseErr := cronParser.Parse(spec); parseErr != nil {
			err = errors.Join(err, fmt.Errorf("invalid %s: %w", key, parseErr))
		}
	}
	if _, tariffErr := c.Tariff(); tariffErr != nil {
		err = errors.Join(err, tariffErr)
	}
	return err
}

// Tariff is the default tariff with the configured overrides applied.
func (c Config) Tariff() (services.Tariff, error) {
	tariff := services.DefaultTariff()
	tariff.BaseFare = c.TariffBaseFare
	tariff.MinPrice = c.TariffMinPrice
	tariff.MaxPrice = c.TariffMaxPrice
	if err := tariff.Validate(); err != nil {
		return services.Tariff{}, fmt.Errorf("invalid tariff overrides: %w", err)
	}
	return tariff, nil
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// envReader parses typed values and keeps the first error per key.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) string(key, def string) string {
	if v, ok := r.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (r *envReader) list(key string, def []string) []string {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (r *envReader) int(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *envReader) int64(key string, def int64) int64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *envReader) float(key string, def float64) float64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
