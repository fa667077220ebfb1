package test

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the integration scenario from the environment, so CI can
// tighten timeouts without touching the code.
type Config struct {
	NotifyBufferSize int           `envconfig:"TEST_NOTIFY_BUFFER_SIZE" default:"100"`
	SinkTimeout      time.Duration `envconfig:"TEST_SINK_TIMEOUT" default:"2s"`
	RestartInterval  time.Duration `envconfig:"TEST_RESTART_INTERVAL" default:"100ms"`
	DeliveryTimeout  time.Duration `envconfig:"TEST_DELIVERY_TIMEOUT" default:"2s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
