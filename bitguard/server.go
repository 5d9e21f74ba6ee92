package bitguard

import (
	"context"
	"errors"
)

type Server struct {
	handled uint64
}

func NewServer() *Server {
	return &Server{}
}

// Serve hands every session produced by src to h, one at a time, until ctx
// ends, h returns ErrExit, or src fails. The source is closed on return.
func (self *Server) Serve(ctx context.Context, src Source, h Handler) error {
	defer src.Close()
	for {
		sess, err := src.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.WithError(err).Error("Receive failed")
			return err
		}
		err = h.Handle(ctx, sess)
		self.handled++
		if errors.Is(err, ErrExit) {
			sess.Log.Info("Exit requested")
			return nil
		}
		if err != nil {
			sess.Log.WithError(err).Error("Handler failed")
		}
	}
}

// Handled returns the number of sessions passed to a handler.
func (self *Server) Handled() uint64 {
	return self.handled
}
