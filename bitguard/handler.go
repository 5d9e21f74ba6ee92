package bitguard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/harlequix/bitguard/internal/encoding"
)

// Handler processes one session. Returning ErrExit stops the server.
type Handler interface {
	Handle(ctx context.Context, sess *Session) error
}

const menuText string = "\nSelect an operation: \n[1] Perform Fletcher's Checksum.\n[2] Perform Hamming Code Error Detection.\n[3] Exit Program.\n"

// Menu asks an operator which codec to run for each received bit string.
type Menu struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

func NewMenu(in io.Reader, out io.Writer, opts Options) *Menu {
	opts.Text = true
	return &Menu{
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
	}
}

func (self *Menu) Handle(ctx context.Context, sess *Session) error {
	fmt.Fprintf(self.out, "Received data: %s\n", sess.Payload)
	fmt.Fprint(self.out, menuText)

	choice, err := self.in.ReadString('\n')
	if err != nil && choice == "" {
		if err == io.EOF {
			return ErrExit
		}
		return Error.Wrap(err)
	}

	switch strings.TrimSpace(choice) {
	case "1":
		fmt.Fprintf(self.out, "Data to process: %s\n", sess.Payload)
		self.run(sess, encoding.AlgoFletcher)
	case "2":
		self.run(sess, encoding.AlgoHamming)
	case "3":
		fmt.Fprintln(self.out, "Exiting program. Goodbye!")
		return ErrExit
	default:
		fmt.Fprintln(self.out, "Invalid choice. Please select a valid option from the menu.")
	}
	return nil
}

func (self *Menu) run(sess *Session, algorithm string) {
	text, err := Dispatch(algorithm, sess.Payload, self.opts)
	fmt.Fprintln(self.out, text)
	report(sess, algorithm, err)
}

// Auto runs one fixed codec for every session.
type Auto struct {
	algorithm string
	out       io.Writer
	opts      Options
}

func NewAuto(algorithm string, out io.Writer, opts Options) (*Auto, error) {
	if !Known(algorithm) {
		return nil, Error.New("unknown algorithm %q", algorithm)
	}
	return &Auto{
		algorithm: algorithm,
		out:       out,
		opts:      opts,
	}, nil
}

func (self *Auto) Handle(ctx context.Context, sess *Session) error {
	text, err := Dispatch(self.algorithm, sess.Payload, self.opts)
	fmt.Fprintf(self.out, "[%s] %s\n", sess.Peer, text)
	report(sess, self.algorithm, err)
	return nil
}

// report logs the codec outcome of a session.
func report(sess *Session, algorithm string, err error) {
	entry := sess.Log.With(logrus.Fields{
		"algorithm": algorithm,
		"elapsed":   time.Since(sess.Started),
	})
	if err != nil {
		entry.WithError(err).Warn("Message rejected or repaired")
		return
	}
	entry.Info("Message accepted")
}
