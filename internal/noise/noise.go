// Package noise simulates a lossy channel by flipping bits at random.
package noise

import (
	"math/rand"
	"time"

	"github.com/harlequix/bitguard/internal/encoding"
)

// Channel flips each bit independently with a probability of Chance percent.
type Channel struct {
	Chance int
	Rand   *rand.Rand
}

func NewChannel(chance int) *Channel {
	return &Channel{
		Chance: chance,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Apply returns a noisy copy of bits and the indices that were flipped.
func (self *Channel) Apply(bits encoding.Bits) (encoding.Bits, []int) {
	out := append(encoding.Bits(nil), bits...)
	flipped := []int{}
	if self.Chance <= 0 {
		return out, flipped
	}
	for i := range out {
		if self.Rand.Float64() < float64(self.Chance)/100.0 {
			encoding.Flip(out, i)
			flipped = append(flipped, i)
		}
	}
	return out, flipped
}
