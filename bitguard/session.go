// Package bitguard receives bit strings from a transport and hands them to
// the Hamming and Fletcher codecs.
package bitguard

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs"

	log "github.com/harlequix/bitguard/log"
)

// Error is the class of transport and session errors.
var Error = errs.Class("bitguard")

// ErrExit is returned by a Handler to stop the server.
var ErrExit = errors.New("exit requested")

var logger *log.Logger

func init() {
	logger = log.NewLogger("Receiver")
}

// Session holds everything known about one delivered bit string.
type Session struct {
	ID      uint64
	Peer    string
	Started time.Time
	Payload string
	Log     *log.Logger
}

func newSession(id uint64, peer string) *Session {
	return &Session{
		ID:      id,
		Peer:    peer,
		Started: time.Now(),
		Log: logger.With(logrus.Fields{
			"session": id,
			"peer":    peer,
		}),
	}
}

// Source produces one session per delivered bit string.
type Source interface {
	Next(ctx context.Context) (*Session, error)
	Close() error
}

// closeOnDone closes c when ctx ends before release is called.
func closeOnDone(ctx context.Context, c io.Closer) (release func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			c.Close()
		case <-done:
		}
	}()
	return func() { close(done) }
}
