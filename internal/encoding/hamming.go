package encoding

import (
	"errors"
	"fmt"
)

var (
	// ErrCorrected reports that a single error was found and repaired.
	ErrCorrected = errors.New("found error")
	// ErrMultipleErrors reports a syndrome that does not point inside the code word.
	ErrMultipleErrors = errors.New("message may have multiple errors")
)

// Status tags the outcome of a Hamming decode.
type Status int

const (
	NoError Status = iota
	CorrectableError
	UncorrectableError
)

func (s Status) String() string {
	switch s {
	case NoError:
		return "no error"
	case CorrectableError:
		return "correctable error"
	case UncorrectableError:
		return "uncorrectable error"
	default:
		return "unknown"
	}
}

// HammingResult is the outcome of DecodeHamming.
type HammingResult struct {
	Status   Status
	Syndrome int
	// Position is the 1-indexed position of the repaired bit, counted from
	// the last transmitted bit. Zero unless Status is CorrectableError.
	Position int
	Received Bits
	// Corrected is nil when the error could not be corrected.
	Corrected Bits
	// Text is only decoded for error-free messages.
	Text string
}

// Err maps the result onto the package errors; nil for an error-free message.
func (r *HammingResult) Err() error {
	switch r.Status {
	case CorrectableError:
		return fmt.Errorf("%w at position %d", ErrCorrected, r.Position)
	case UncorrectableError:
		return ErrMultipleErrors
	default:
		return nil
	}
}

// ParityBitCount returns the smallest p with 2^p >= length + p + 1.
func ParityBitCount(length int) int {
	p := 0
	for 1<<uint(p) < length+p+1 {
		p++
	}
	return p
}

func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// EncodeHamming inserts parity bits into data. Bits are numbered from the
// end of the string, so parity lands on positions 1, 2, 4, ... counted
// from the last transmitted bit.
func EncodeHamming(data Bits) (Bits, error) {
	if _, err := Validate(string(data)); err != nil {
		return nil, err
	}
	reversed := Reverse(data)
	parityBits := ParityBitCount(len(reversed))
	bitfield := make(Bits, len(reversed)+parityBits)
	next := 0
	for i := range bitfield {
		if IsPowerOfTwo(i + 1) {
			bitfield[i] = ZERO
			continue
		}
		bitfield[i] = reversed[next]
		next++
	}
	for k := 0; k < parityBits; k++ {
		weight := 1 << uint(k)
		if calculateParity(bitfield, weight) {
			bitfield[weight-1] = ONE
		}
	}
	return Reverse(bitfield), nil
}

// EncodeHammingText encodes the eight-bit form of every byte of s so that
// HammingText reads it back in order. A single byte gives the same code
// word as EncodeHamming(ToWireBits(s)).
func EncodeHammingText(s string) (Bits, error) {
	return EncodeHamming(Reverse(ToBinaryBytes(s)))
}

// DecodeHamming checks a code word and repairs at most one flipped bit.
func DecodeHamming(b Bits) (*HammingResult, error) {
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	reversed := Reverse(b)
	s := syndrome(reversed, ParityBitCount(len(reversed)))
	res := &HammingResult{
		Syndrome: s,
		Received: b,
	}
	switch {
	case s == 0:
		res.Status = NoError
		res.Corrected = append(Bits(nil), b...)
		res.Text = HammingText(b)
	case s < len(reversed):
		Flip(reversed, s-1)
		res.Status = CorrectableError
		res.Position = s
		res.Corrected = Reverse(reversed)
	default:
		res.Status = UncorrectableError
	}
	return res, nil
}

// HammingData strips the parity bits from a code word. The data bits are
// returned in ascending position, counted from the last transmitted bit.
func HammingData(code Bits) Bits {
	return stripCode(Reverse(code))
}

// HammingText decodes the data bits of a code word as text.
func HammingText(code Bits) string {
	return DecodeMessage(HammingData(code))
}

// syndrome XORs the positions of all set bits, one column per parity weight.
func syndrome(reversed Bits, parityBits int) int {
	columns := make([]int, parityBits)
	for i, bit := range reversed {
		if bit != ONE {
			continue
		}
		position := i + 1
		for k := range columns {
			columns[k] ^= (position >> uint(k)) & 1
		}
	}
	s := 0
	for k, col := range columns {
		s |= col << uint(k)
	}
	return s
}

func stripCode(reversed Bits) Bits {
	out := make(Bits, 0, len(reversed))
	for i := range reversed {
		if !IsPowerOfTwo(i + 1) {
			out = append(out, reversed[i])
		}
	}
	return out
}

// calculateParity reports whether an odd number of bits is set among the
// positions covered by weight.
func calculateParity(bits Bits, weight int) bool {
	count := 0
	for i, bit := range bits {
		if (i+1)&weight != 0 && bit == ONE {
			count++
		}
	}
	return count%2 == 1
}
