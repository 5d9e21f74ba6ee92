package bitguard

import (
	"github.com/harlequix/bitguard/internal/encoding"
	"github.com/harlequix/bitguard/internal/format"
)

type Options struct {
	ChecksumSize int
	// Text appends the decoded text of error-free Hamming messages.
	Text bool
}

// Dispatch validates payload, runs the named codec over it and returns the
// text to display. The error reports invalid input or the codec outcome
// (corrected, uncorrectable, checksum mismatch); the text is always set
// for known algorithms.
func Dispatch(algorithm string, payload string, opts Options) (string, error) {
	if !Known(algorithm) {
		return "", Error.New("unknown algorithm %q", algorithm)
	}
	bits, err := encoding.Validate(payload)
	if err != nil {
		return format.InvalidInput, err
	}
	switch algorithm {
	case encoding.AlgoFletcher:
		size := opts.ChecksumSize
		if size == 0 {
			size = encoding.DefaultChecksumSize
		}
		res, err := encoding.VerifyFletcher(bits, size)
		if err != nil {
			return "Error: " + err.Error(), err
		}
		return format.Fletcher(res), res.Err()
	default:
		res, err := encoding.DecodeHamming(bits)
		if err != nil {
			return "Error: " + err.Error(), err
		}
		return format.Hamming(res, opts.Text), res.Err()
	}
}

// Known reports whether algorithm names a supported codec.
func Known(algorithm string) bool {
	return algorithm == encoding.AlgoFletcher || algorithm == encoding.AlgoHamming
}
