package bitguard

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultPort is the TCP port the receiver listens on.
const DefaultPort int = 50007

func init() {
	viper.SetDefault("Host", "")
	viper.SetDefault("Port", DefaultPort)
	viper.SetDefault("BaudRate", 115200)
	viper.SetDefault("ReadTimeout", "0s")
	viper.SetDefault("ChecksumSize", 16)
}

type Config struct {
	Host string
	Port int
	// Serial selects a serial port instead of the TCP listener.
	Serial      string
	BaudRate    int
	ReadTimeout time.Duration
	// Algorithm skips the interactive menu when set.
	Algorithm    string
	ChecksumSize int
}
