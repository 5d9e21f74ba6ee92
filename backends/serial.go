package backends

import (
	"context"

	"go.bug.st/serial"
)

// SerialBackend writes the payload followed by a newline to a serial port.
type SerialBackend struct {
	port     string
	baudRate int
}

func NewSerialBackend(port string, baudRate int) *SerialBackend {
	return &SerialBackend{
		port:     port,
		baudRate: baudRate,
	}
}

func (self *SerialBackend) Deliver(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	port, err := serial.Open(self.port, &serial.Mode{BaudRate: self.baudRate})
	if err != nil {
		return Error.New("open %s: %v", self.port, err)
	}
	line := append(append([]byte(nil), payload...), '\n')
	if _, err := port.Write(line); err != nil {
		port.Close()
		return Error.Wrap(err)
	}
	if err := port.Drain(); err != nil {
		port.Close()
		return Error.Wrap(err)
	}
	logger.WithField("port", self.port).WithField("bytes", len(payload)).Info("Message sent")
	return Error.Wrap(port.Close())
}

func (self *SerialBackend) String() string {
	return "serial://" + self.port
}
