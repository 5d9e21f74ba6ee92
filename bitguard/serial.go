package bitguard

import (
	"bufio"
	"context"
	"io"
	"strings"

	"go.bug.st/serial"
)

// SerialSource reads one newline terminated bit string per session from a
// serial line.
type SerialSource struct {
	name   string
	port   io.ReadCloser
	reader *bufio.Reader
	nextID uint64
}

func OpenSerial(cfg *Config) (*SerialSource, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
	}
	port, err := serial.Open(cfg.Serial, mode)
	if err != nil {
		return nil, Error.New("open %s: %v", cfg.Serial, err)
	}
	logger.WithField("port", cfg.Serial).WithField("baud", cfg.BaudRate).Info("Serial port opened")
	return newSerialSource(cfg.Serial, port), nil
}

func newSerialSource(name string, port io.ReadCloser) *SerialSource {
	return &SerialSource{
		name:   name,
		port:   port,
		reader: bufio.NewReader(port),
	}
}

func (self *SerialSource) Next(ctx context.Context) (*Session, error) {
	release := closeOnDone(ctx, self.port)
	defer release()
	for {
		line, err := self.reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err != nil && (err != io.EOF || line == "") {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, Error.Wrap(err)
		}
		if line == "" {
			continue
		}
		self.nextID++
		sess := newSession(self.nextID, self.name)
		sess.Payload = line
		sess.Log.WithField("bytes", len(line)).Info("Received data")
		return sess, nil
	}
}

func (self *SerialSource) Close() error {
	return Error.Wrap(self.port.Close())
}
