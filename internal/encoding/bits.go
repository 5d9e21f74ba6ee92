package encoding

import (
	"bytes"
	"errors"
	"fmt"
)

const ONE byte = 49
const ZERO byte = 48

const AlgoFletcher string = "fletcher"
const AlgoHamming string = "hamming"

var (
	// ErrEmpty is returned for a zero-length bit string.
	ErrEmpty = errors.New("empty bit string")
	// ErrInvalidBit is returned when a character other than '0' or '1' is present.
	ErrInvalidBit = errors.New("invalid bit")
)

// Bits is a bit string of ASCII '0' and '1' bytes in transmission order.
type Bits []byte

func (b Bits) String() string {
	return string(b)
}

// Validate checks that s is a non-empty string made only of '0' and '1'
// and returns it as Bits.
func Validate(s string) (Bits, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	for i := 0; i < len(s); i++ {
		if s[i] != ONE && s[i] != ZERO {
			return nil, fmt.Errorf("%w %q at index %d", ErrInvalidBit, s[i], i)
		}
	}
	return Bits(s), nil
}

func ByteToBit(input byte) []byte {
	return []byte(fmt.Sprintf("%.8b", input))
}

// ToBinaryBytes renders every byte of s as eight bits, most significant first.
func ToBinaryBytes(s string) Bits {
	var buffer bytes.Buffer
	block := NewBlock()
	for i := 0; i < len(s); i++ {
		block.SetByte(s[i])
		buffer.Write(block.GetBits())
	}
	return Bits(buffer.Bytes())
}

// ToWireBits renders every byte of s as eight bits, least significant
// first. This is the order the sender puts text on the wire.
func ToWireBits(s string) Bits {
	var buffer bytes.Buffer
	block := NewBlock()
	for i := 0; i < len(s); i++ {
		block.SetByte(s[i])
		buffer.Write(Reverse(block.GetBits()))
	}
	return Bits(buffer.Bytes())
}

// DecodeMessage groups bits into 8-bit blocks and returns the bytes they
// encode. A trailing partial block is padded on the right with zeros.
func DecodeMessage(received Bits) string {
	blocks := Blocks(received)
	out := make([]byte, len(blocks))
	for i, block := range blocks {
		out[i] = block.GetValue()
	}
	return string(out)
}

// Reverse returns a reversed copy of b.
func Reverse(b Bits) Bits {
	out := make(Bits, len(b))
	for i, j := 0, len(b)-1; j >= 0; i, j = i+1, j-1 {
		out[i] = b[j]
	}
	return out
}

// Flip toggles the bit at index in place.
func Flip(b Bits, index int) {
	if b[index] == ZERO {
		b[index] = ONE
	} else {
		b[index] = ZERO
	}
}
