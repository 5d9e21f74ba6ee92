package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func init() {
	viper.SetDefault("LogLevel", "warning")
}

// base is shared by every module logger so that level, output and hooks
// can be changed in one place.
var base = newBase()

type Logger struct {
	*log.Entry
}

func newBase() *log.Logger {
	base := log.New()

	base.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})

	base.SetOutput(os.Stderr)
	base.SetLevel(log.WarnLevel)
	return base
}

func NewLogger(module string) *Logger {
	baselogger := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}

// With returns a copy of the logger carrying the additional fields.
func (self *Logger) With(fields log.Fields) *Logger {
	return &Logger{self.Entry.WithFields(fields)}
}

// SetLevel parses a logrus level name such as "debug" or "warning".
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	base.SetOutput(w)
}
