package encoding

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultChecksumSize is the width in bits of the checksum field.
const DefaultChecksumSize = 16

// MaxChecksumSize is the widest field a checksum fits in.
const MaxChecksumSize = 64

const fletcherModulus = 255

var (
	ErrUnsupportedSize  = errors.New("unsupported checksum size")
	ErrTooShort         = errors.New("bit string shorter than checksum field")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// FletcherResult is the outcome of VerifyFletcher.
type FletcherResult struct {
	Valid bool
	Size  int
	// Payload is nil when the checksum did not match.
	Payload  Bits
	Computed Bits
	Received Bits
}

func (r *FletcherResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: computed %s, received %s", ErrChecksumMismatch, r.Computed, r.Received)
}

// checkSize accepts any positive even width up to MaxChecksumSize.
func checkSize(size int) error {
	if size <= 0 || size%2 != 0 || size > MaxChecksumSize {
		return fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	return nil
}

// Fletcher sums every bit of payload as one unit. Both running sums are
// reduced modulo 255 whatever the size, packed as sum2<<(size/2) | sum1 and
// truncated to size bits.
func Fletcher(payload Bits, size int) (uint64, error) {
	if err := checkSize(size); err != nil {
		return 0, err
	}
	half := uint(size / 2)
	modulus := uint64(fletcherModulus)
	var sum1, sum2 uint64
	for _, bit := range payload {
		var value uint64
		if bit == ONE {
			value = 1
		}
		sum1 = (sum1 + value) % modulus
		sum2 = (sum2 + sum1) % modulus
	}
	mask := uint64(1)<<uint(size) - 1
	return (sum2<<half | sum1) & mask, nil
}

// FormatChecksum renders a checksum as a zero-padded field of size bits.
func FormatChecksum(checksum uint64, size int) Bits {
	field := strconv.FormatUint(checksum, 2)
	out := make(Bits, 0, size)
	for i := len(field); i < size; i++ {
		out = append(out, ZERO)
	}
	return append(out, field...)
}

// AppendFletcher returns payload followed by its checksum field.
func AppendFletcher(payload Bits, size int) (Bits, error) {
	checksum, err := Fletcher(payload, size)
	if err != nil {
		return nil, err
	}
	out := make(Bits, 0, len(payload)+size)
	out = append(out, payload...)
	return append(out, FormatChecksum(checksum, size)...), nil
}

// VerifyFletcher splits the trailing size bits off b and compares them to
// the checksum of the rest.
func VerifyFletcher(b Bits, size int) (*FletcherResult, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(b) < size {
		return nil, fmt.Errorf("%w: %d < %d", ErrTooShort, len(b), size)
	}
	payload := b[:len(b)-size]
	received := b[len(b)-size:]
	checksum, err := Fletcher(payload, size)
	if err != nil {
		return nil, err
	}
	res := &FletcherResult{
		Size:     size,
		Computed: FormatChecksum(checksum, size),
		Received: append(Bits(nil), received...),
	}
	if string(res.Computed) == string(res.Received) {
		res.Valid = true
		res.Payload = append(Bits(nil), payload...)
	}
	return res, nil
}
