// Package format renders codec results as the text shown to an operator.
package format

import (
	"fmt"
	"strings"

	"github.com/harlequix/bitguard/internal/encoding"
)

const InvalidInput string = "Error: Invalid input. Only binary strings (containing '0' and '1') are allowed."

// Hamming renders a decode result. The decoded text is only appended for
// error-free messages and only when withText is set.
func Hamming(res *encoding.HammingResult, withText bool) string {
	switch res.Status {
	case encoding.NoError:
		out := fmt.Sprintf("The message is error-free: %s", res.Corrected)
		if withText {
			out += fmt.Sprintf("\nDecoded text: %s", res.Text)
		}
		return out
	case encoding.CorrectableError:
		return fmt.Sprintf("Error: The message has errors at position %d. Message discarded.\nCorrect message: %s", res.Position, res.Corrected)
	default:
		return "Error: The message may have multiple errors."
	}
}

func Fletcher(res *encoding.FletcherResult) string {
	out := fmt.Sprintf("Computed checksum: %s, Original checksum: %s\n", res.Computed, res.Received)
	if !res.Valid {
		return out + "Error: This message has errors. Message discarded."
	}
	return out + fmt.Sprintf("Message is valid. Original message: %s", res.Payload)
}

// Flips lists flipped indices separated by spaces.
func Flips(indices []int) string {
	if len(indices) == 0 {
		return "Noise simulation yielded no changes. The message is unchanged."
	}
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = fmt.Sprint(index)
	}
	return "Bits were flipped at indices " + strings.Join(parts, " ")
}
