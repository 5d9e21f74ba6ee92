package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"

	"github.com/harlequix/bitguard/bitguard"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Receive bit strings and check them",
	Long: `Listen accepts one connection at a time and reads it until the sender
closes it. Each received bit string is checked with the codec chosen from an
interactive menu, or with --algorithm for unattended operation.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{
			"host":      "Host",
			"port":      "Port",
			"serial":    "Serial",
			"baudrate":  "BaudRate",
			"algorithm": "Algorithm",
			"size":      "ChecksumSize",
			"timeout":   "ReadTimeout",
		})
	},
	RunE: listen,
}

func init() {
	listenCmd.Flags().String("host", "", "address to bind, all interfaces when empty")
	listenCmd.Flags().Int("port", bitguard.DefaultPort, "TCP port")
	listenCmd.Flags().String("serial", "", "serial port to read from instead of TCP")
	listenCmd.Flags().Int("baudrate", 115200, "serial baud rate")
	listenCmd.Flags().String("algorithm", "", "fletcher or hamming; skips the menu")
	listenCmd.Flags().Int("size", 16, "Fletcher checksum size in bits (even, up to 64)")
	listenCmd.Flags().Duration("timeout", 0, "per-connection read timeout, 0 for none")
	rootCmd.AddCommand(listenCmd)
}

func openSource(cfg *bitguard.Config) (bitguard.Source, error) {
	if cfg.Serial != "" {
		return bitguard.OpenSerial(cfg)
	}
	return bitguard.ListenTCP(cfg)
}

func listen(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	var srvCfg bitguard.Config
	if err := copier.Copy(&srvCfg, cfg); err != nil {
		return err
	}

	opts := bitguard.Options{ChecksumSize: srvCfg.ChecksumSize}
	var handler bitguard.Handler
	if srvCfg.Algorithm != "" {
		handler, err = bitguard.NewAuto(srvCfg.Algorithm, os.Stdout, opts)
		if err != nil {
			return err
		}
	} else {
		handler = bitguard.NewMenu(os.Stdin, os.Stdout, opts)
	}

	src, err := openSource(&srvCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return bitguard.NewServer().Serve(ctx, src, handler)
}
