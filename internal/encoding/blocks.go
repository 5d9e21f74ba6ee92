package encoding

import (
	"strconv"
)

// BlockLen is the number of bits in one character block.
const BlockLen int = 8

// Block holds the bits of a single character.
type Block struct {
	field    []byte
	blockLen int
}

func NewBlock() *Block {
	field := make([]byte, BlockLen)
	for i := range field {
		field[i] = ZERO
	}
	return &Block{
		field:    field,
		blockLen: BlockLen,
	}
}

func (self *Block) SetByte(value byte) {
	copy(self.field, ByteToBit(value))
}

func (self *Block) SetBit(offset int, value byte) {
	self.field[offset] = value
}

func (self *Block) GetValue() byte {
	val, _ := strconv.ParseUint(string(self.field), 2, self.blockLen)
	return byte(val)
}

func (self *Block) GetBits() Bits {
	return self.field
}

// Blocks splits bits into consecutive blocks. Positions past the end of
// bits keep their zero value, so the last block is padded on the right.
func Blocks(bits Bits) []*Block {
	out := make([]*Block, 0, (len(bits)+BlockLen-1)/BlockLen)
	for index := 0; index < len(bits); index += BlockLen {
		block := NewBlock()
		for offset := 0; offset < BlockLen && index+offset < len(bits); offset++ {
			block.SetBit(offset, bits[index+offset])
		}
		out = append(out, block)
	}
	return out
}
