package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"

	"github.com/harlequix/bitguard/backends"
)

var sendCmd = &cobra.Command{
	Use:   "send <message> <fletcher|hamming>",
	Short: "Encode a message, add noise and send it to a receiver",
	Long: `Send encodes the message like "encode" does and delivers the bit
string to a receiver, over TCP by default or over a serial port with
--serial.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindCodecFlags(cmd, args); err != nil {
			return err
		}
		return bindFlags(cmd, map[string]string{
			"addr":     "Addr",
			"serial":   "Serial",
			"baudrate": "BaudRate",
		})
	},
	RunE: send,
}

func init() {
	addCodecFlags(sendCmd)
	sendCmd.Flags().String("addr", "127.0.0.1:50007", "receiver address")
	sendCmd.Flags().String("serial", "", "serial port to send on instead of TCP")
	sendCmd.Flags().Int("baudrate", 115200, "serial baud rate")
	rootCmd.AddCommand(sendCmd)
}

func send(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	bits, err := encodeNoisy(args[0], args[1], cfg)
	if err != nil {
		return err
	}

	var backendCfg backends.Config
	if err := copier.Copy(&backendCfg, cfg); err != nil {
		return err
	}
	backend := backends.Select(&backendCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := backend.Deliver(ctx, bits); err != nil {
		logger.WithError(err).WithField("backend", backend.String()).Error("Delivery failed")
		return err
	}
	fmt.Println("\nMessage sent.")
	return nil
}
