package config

import (
	"os"
	"time"

	"oca-epak/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-yaml"
)

type (
	// Conf contains the gateway settings.
	Conf struct {
		Server Server `yaml:"server"`
		Oca    Oca    `yaml:"oca"`

		RunInDebug bool `yaml:"-"`
	}

	Server struct {
		Listen string `yaml:"listen"`
	}

	Oca struct {
		// Service addresses, production endpoints when empty.
		EpakAddr     string `yaml:"epak_addr"`
		TrackingAddr string `yaml:"tracking_addr"`

		// Per-call timeout in seconds, 10 when zero.
		TimeoutSec int `yaml:"timeout_sec"`
	}
)

// GetConfig loads the gateway configuration. A missing or broken config is
// fatal, the gateway has nothing sensible to do without one.
func GetConfig(configPath string, cnf *Conf) {
	logger.Debug("Loading configuration")

	input, err := os.Open(configPath)
	if err != nil {
		logger.Crit("Error while reading config!")
	}
	defer input.Close()

	decoder := yaml.NewDecoder(input)
	err = decoder.Decode(cnf)
	if err != nil {
		logger.Crit("Error while decoding config!")
	}

	if cnf.Server.Listen == "" {
		cnf.Server.Listen = ":8080"
	}
}

// Timeout converts the configured per-call limit.
func (o Oca) Timeout() time.Duration {
	return time.Duration(o.TimeoutSec) * time.Second
}

// Inject exposes the configuration to request handlers.
func Inject(key string, cnf *Conf) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(key, cnf)
	}
}
