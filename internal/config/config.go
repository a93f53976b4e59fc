package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         App     `mapstructure:"app"`
	DatabaseURL string  `mapstructure:"database_url"`
	Retry       Retry   `mapstructure:"retry"`
	Redis       Redis   `mapstructure:"redis"`
	Notify      Notify  `mapstructure:"notify"`
	SMTP        SMTP    `mapstructure:"smtp"`
	Kafka       Kafka   `mapstructure:"kafka"`
	Tracing     Tracing `mapstructure:"tracing"`
}

type App struct {
	Port            string        `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	MigrationDir    string        `mapstructure:"migration_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Retry configures repository statement retries.
type Retry struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	Backoff     string        `mapstructure:"backoff"`
	Base        time.Duration `mapstructure:"base"`
	Factor      float64       `mapstructure:"factor"`
	Max         time.Duration `mapstructure:"max"`
	Jitter      bool          `mapstructure:"jitter"`
}

type Redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Notify configures the notification dispatcher. Transport is one of
// "log", "smtp" or "kafka".
type Notify struct {
	Transport    string        `mapstructure:"transport"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	Base         time.Duration `mapstructure:"base"`
	Factor       float64       `mapstructure:"factor"`
	Max          time.Duration `mapstructure:"max"`
	Jitter       bool          `mapstructure:"jitter"`
}

type SMTP struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type Kafka struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

type Tracing struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	Endpoint    string  `mapstructure:"endpoint"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

const (
	TransportLog   = "log"
	TransportSMTP  = "smtp"
	TransportKafka = "kafka"
)

// Load reads the YAML file at path. Every key can be overridden from the
// environment, e.g. app.port -> APP_PORT.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.migration_dir", "migrations")
	v.SetDefault("app.shutdown_timeout", 10*time.Second)

	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.backoff", "constant")
	v.SetDefault("retry.base", 50*time.Millisecond)
	v.SetDefault("retry.factor", 2.0)
	v.SetDefault("retry.max", time.Second)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 10*time.Minute)

	v.SetDefault("notify.transport", TransportLog)
	v.SetDefault("notify.poll_interval", 3*time.Second)
	v.SetDefault("notify.batch_size", 50)
	v.SetDefault("notify.max_attempts", 5)
	v.SetDefault("notify.base", 15*time.Second)
	v.SetDefault("notify.factor", 2.0)
	v.SetDefault("notify.max", 30*time.Minute)

	v.SetDefault("smtp.port", "25")
	v.SetDefault("smtp.from", "no-reply@review-scheduler.local")

	v.SetDefault("kafka.topic", "scheduler.notification.v1")

	v.SetDefault("tracing.service_name", "review-scheduler")
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database_url is required")
	}

	port, err := strconv.Atoi(c.App.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("app.port must be a valid TCP port (got %q)", c.App.Port)
	}

	switch c.Notify.Transport {
	case TransportLog:
	case TransportSMTP:
		if c.SMTP.Host == "" {
			return errors.New("smtp.host is required for smtp transport")
		}
	case TransportKafka:
		if strings.TrimSpace(c.Kafka.Brokers) == "" {
			return errors.New("kafka.brokers is required for kafka transport")
		}
	default:
		return fmt.Errorf("unknown notify.transport %q", c.Notify.Transport)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio must be within [0,1] (got %v)", c.Tracing.SampleRatio)
	}

	return nil
}
