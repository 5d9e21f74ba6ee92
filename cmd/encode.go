package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/bitguard/internal/encoding"
	"github.com/harlequix/bitguard/internal/format"
	"github.com/harlequix/bitguard/internal/noise"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <message> <fletcher|hamming>",
	Short: "Encode a text message and print the resulting bits",
	Long: `Encode converts every byte of the message to eight bits and either
appends a Fletcher checksum or interleaves Hamming parity bits. With --flip
each bit is flipped with the given chance in percent to simulate noise.`,
	Args:    cobra.ExactArgs(2),
	PreRunE: bindCodecFlags,
	RunE:    encode,
}

func init() {
	addCodecFlags(encodeCmd)
	rootCmd.AddCommand(encodeCmd)
}

func addCodecFlags(cmd *cobra.Command) {
	cmd.Flags().Int("size", encoding.DefaultChecksumSize, "Fletcher checksum size in bits (even, up to 64)")
	cmd.Flags().Int("flip", 0, "chance in percent to flip each bit")
}

func bindCodecFlags(cmd *cobra.Command, args []string) error {
	return bindFlags(cmd, map[string]string{
		"size": "ChecksumSize",
		"flip": "FlipChance",
	})
}

// encodeMessage turns text into the bit string sent on the wire.
func encodeMessage(message string, algorithm string, size int) (encoding.Bits, error) {
	switch algorithm {
	case encoding.AlgoFletcher:
		bits := encoding.ToWireBits(message)
		checksum, err := encoding.Fletcher(bits, size)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Fletcher checksum (hex): %x\n", checksum)
		return encoding.AppendFletcher(bits, size)
	case encoding.AlgoHamming:
		return encoding.EncodeHammingText(message)
	default:
		return nil, fmt.Errorf("%s is not implemented. Options: fletcher, hamming", algorithm)
	}
}

// encodeNoisy encodes message and runs it through the noise channel.
func encodeNoisy(message string, algorithm string, cfg *Config) (encoding.Bits, error) {
	bits, err := encodeMessage(message, algorithm, cfg.ChecksumSize)
	if err != nil {
		return nil, err
	}
	fmt.Printf("\nEncoded message before noise simulation: \n%s\n", bits)

	noisy, flipped := noise.NewChannel(cfg.FlipChance).Apply(bits)
	if len(flipped) > 0 {
		fmt.Printf("New message:\n%s\n\n", noisy)
	}
	fmt.Println(format.Flips(flipped))
	logger.WithField("algorithm", algorithm).WithField("flipped", len(flipped)).Debug("Message encoded")
	return noisy, nil
}

func encode(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	_, err = encodeNoisy(args[0], args[1], cfg)
	return err
}
