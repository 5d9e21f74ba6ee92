// Package backends delivers encoded bit strings to a receiver.
package backends

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	log "github.com/harlequix/bitguard/log"
)

// Error is the class of delivery errors.
var Error = errs.Class("backend")

var logger *log.Logger

func init() {
	logger = log.NewLogger("Backend")
}

func init() {
	viper.SetDefault("Addr", "127.0.0.1:50007")
	viper.SetDefault("DialTimeout", 2*time.Second)
}

// Backend delivers one complete bit string per call.
type Backend interface {
	Deliver(ctx context.Context, payload []byte) error
	String() string
}

type Config struct {
	Addr        string
	DialTimeout time.Duration
	// Serial selects the serial backend when set.
	Serial   string
	BaudRate int
}

// Select returns the serial backend when a port is configured and the TCP
// backend otherwise.
func Select(cfg *Config) Backend {
	if cfg.Serial != "" {
		return NewSerialBackend(cfg.Serial, cfg.BaudRate)
	}
	return NewTCPBackend(cfg.Addr, cfg.DialTimeout)
}
