package backends

import (
	"context"
	"net"
	"time"
)

// TCPBackend writes the payload on a fresh connection and closes it; the
// receiver treats the close as the end of the message.
type TCPBackend struct {
	addr    string
	timeout time.Duration
}

func NewTCPBackend(addr string, timeout time.Duration) *TCPBackend {
	logger.WithField("addr", addr).WithField("timeout", timeout).Info("creating new Backend")
	return &TCPBackend{
		addr:    addr,
		timeout: timeout,
	}
}

func (self *TCPBackend) Deliver(ctx context.Context, payload []byte) error {
	dialer := &net.Dialer{Timeout: self.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", self.addr)
	if err != nil {
		return Error.Wrap(err)
	}
	if _, err := conn.Write(payload); err != nil {
		conn.Close()
		return Error.Wrap(err)
	}
	logger.WithField("addr", self.addr).WithField("bytes", len(payload)).Info("Message sent")
	return Error.Wrap(conn.Close())
}

func (self *TCPBackend) String() string {
	return "tcp://" + self.addr
}
