package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hotelio/hotel-service/pkg/logger"
	"github.com/hotelio/hotel-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RESERVATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"RESERVATION_HTTP_PORT" default:"4000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration
}

type Availability struct {
	URL     string        `envconfig:"AVAILABILITY_URL" default:"http://localhost:3000/soap"`
	Timeout time.Duration `envconfig:"AVAILABILITY_TIMEOUT" default:"5s"`
}

type Config struct {
	Server       HTTPServer `yaml:"server"`
	Database     postgres.Config
	Availability Availability
	Log          logger.Log `yaml:"log"`
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
