package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/bitguard/bitguard"
)

var checkCmd = &cobra.Command{
	Use:   "check <fletcher|hamming> <bits>",
	Short: "Check a bit string without a network connection",
	Long: `Check runs the Fletcher checksum verification or the Hamming decoder
over a bit string given on the command line and prints the outcome.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{"size": "ChecksumSize"})
	},
	RunE: check,
}

func init() {
	checkCmd.Flags().Int("size", 16, "Fletcher checksum size in bits (even, up to 64)")
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if !bitguard.Known(args[0]) {
		return fmt.Errorf("%s is not implemented. Options: fletcher, hamming", args[0])
	}
	text, err := bitguard.Dispatch(args[0], args[1], bitguard.Options{
		ChecksumSize: cfg.ChecksumSize,
		Text:         true,
	})
	fmt.Println(text)
	if err != nil {
		logger.WithError(err).Info("Check finished")
	}
	return nil
}
