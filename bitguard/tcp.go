package bitguard

import (
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"time"
)

// TCPSource accepts one connection at a time and reads it until the peer
// closes its side.
type TCPSource struct {
	listener net.Listener
	timeout  time.Duration
	nextID   uint64
}

func ListenTCP(cfg *Config) (*TCPSource, error) {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	logger.WithField("addr", listener.Addr().String()).Info("Listening")
	return &TCPSource{
		listener: listener,
		timeout:  cfg.ReadTimeout,
	}, nil
}

func (self *TCPSource) Addr() net.Addr {
	return self.listener.Addr()
}

// Next blocks until a peer has delivered a complete payload. A connection
// that fails while being read is logged and dropped, and Next goes back to
// accepting; only listener failures are returned.
func (self *TCPSource) Next(ctx context.Context) (*Session, error) {
	for {
		release := closeOnDone(ctx, self.listener)
		conn, err := self.listener.Accept()
		release()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, Error.Wrap(err)
		}
		self.nextID++
		sess := newSession(self.nextID, conn.RemoteAddr().String())
		sess.Log.Info("Connected")

		err = self.receive(ctx, conn, sess)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err != nil {
			sess.Log.WithError(err).Warn("Read failed, dropping connection")
			continue
		}
		return sess, nil
	}
}

func (self *TCPSource) receive(ctx context.Context, conn net.Conn, sess *Session) error {
	defer conn.Close()
	if self.timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(self.timeout)); err != nil {
			return err
		}
	}
	release := closeOnDone(ctx, conn)
	data, err := io.ReadAll(conn)
	release()
	if err != nil {
		return err
	}
	sess.Payload = string(data)
	sess.Log.WithField("bytes", len(data)).Info("Received data")
	return nil
}

func (self *TCPSource) Close() error {
	err := self.listener.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return Error.Wrap(err)
}
