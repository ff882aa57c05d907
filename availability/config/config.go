package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hotelio/hotel-service/pkg/kafka"
	"github.com/hotelio/hotel-service/pkg/logger"
	"github.com/hotelio/hotel-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"AVAILABILITY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"AVAILABILITY_HTTP_PORT" default:"3000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database postgres.Config
	Kafka    kafka.Config
	// HorizonDays bounds how far ahead the availability projection is kept.
	HorizonDays int        `envconfig:"AVAILABILITY_HORIZON_DAYS" default:"30"`
	Log         logger.Log `yaml:"log"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) { c.Log.LogLevel = level }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) { c.Server.WriteTimeout = d }
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config := &Config{}
		for _, op := range ops {
			op(config)
		}
		if err := envconfig.Process("", config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
