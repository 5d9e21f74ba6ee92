package encoding

import (
	"errors"
	"testing"
)

// flip toggles the bit at the 1-indexed position counted from the end.
func flip(b Bits, position int) Bits {
	out := append(Bits(nil), b...)
	Flip(out, len(out)-position)
	return out
}

func TestParityBitCount(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{1, 2},
		{2, 3},
		{4, 3},
		{5, 4},
		// 2^3 = 8 < 7+3+1 = 11, while 2^4 = 16 >= 7+4+1 = 12
		{7, 4},
		{11, 4},
		{12, 5},
		{26, 5},
		{27, 6},
	}
	for _, tt := range tests {
		if got := ParityBitCount(tt.length); got != tt.want {
			t.Errorf("ParityBitCount(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestParityBitCountMinimalAndMonotone(t *testing.T) {
	prev := 0
	for length := 1; length < 2048; length++ {
		p := ParityBitCount(length)
		if 1<<uint(p) < length+p+1 {
			t.Fatalf("ParityBitCount(%d) = %d is too small", length, p)
		}
		if p > 0 && 1<<uint(p-1) >= length+p {
			t.Fatalf("ParityBitCount(%d) = %d is not minimal", length, p)
		}
		if p < prev {
			t.Fatalf("ParityBitCount(%d) = %d decreased from %d", length, p, prev)
		}
		prev = p
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1024} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false", n)
		}
	}
	for _, n := range []int{-4, 0, 3, 6, 12} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true", n)
		}
	}
}

func TestEncodeHamming(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{"0", "000"},
		{"1", "111"},
		{"1011", "1010101"},
		{"11111111", "111101110111"},
		{"01001000", "010011001000"},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := EncodeHamming(Bits(tt.data))
			if err != nil {
				t.Fatalf("EncodeHamming(%s) error = %v", tt.data, err)
			}
			if got.String() != tt.want {
				t.Errorf("EncodeHamming(%s) = %s, want %s", tt.data, got, tt.want)
			}
		})
	}
}

func TestEncodeHammingRejectsInvalid(t *testing.T) {
	if _, err := EncodeHamming(Bits("")); !errors.Is(err, ErrEmpty) {
		t.Errorf("EncodeHamming(\"\") error = %v, want %v", err, ErrEmpty)
	}
	if _, err := EncodeHamming(Bits("10x1")); !errors.Is(err, ErrInvalidBit) {
		t.Errorf("EncodeHamming(10x1) error = %v, want %v", err, ErrInvalidBit)
	}
}

func TestDecodeHammingNoError(t *testing.T) {
	for _, code := range []string{"1010101", "111101110111", "010011001000", "00000"} {
		res, err := DecodeHamming(Bits(code))
		if err != nil {
			t.Fatalf("DecodeHamming(%s) error = %v", code, err)
		}
		if res.Status != NoError || res.Syndrome != 0 {
			t.Errorf("DecodeHamming(%s) = %v syndrome %d, want no error", code, res.Status, res.Syndrome)
		}
		if res.Corrected.String() != code {
			t.Errorf("DecodeHamming(%s) corrected = %s", code, res.Corrected)
		}
		if res.Err() != nil {
			t.Errorf("Err() = %v, want nil", res.Err())
		}
	}
}

func TestDecodeHammingSingleError(t *testing.T) {
	for _, code := range []string{"1010101", "111101110111", "010011001000"} {
		original := Bits(code)
		for k := 1; k < len(original); k++ {
			received := flip(original, k)
			res, err := DecodeHamming(received)
			if err != nil {
				t.Fatalf("DecodeHamming(%s) error = %v", received, err)
			}
			if res.Status != CorrectableError || res.Position != k {
				t.Errorf("DecodeHamming(%s) = %v at %d, want correctable at %d", received, res.Status, res.Position, k)
				continue
			}
			if res.Corrected.String() != code {
				t.Errorf("DecodeHamming(%s) corrected = %s, want %s", received, res.Corrected, code)
			}
			if res.Received.String() != received.String() {
				t.Errorf("received was modified: %s", res.Received)
			}
			if !errors.Is(res.Err(), ErrCorrected) {
				t.Errorf("Err() = %v, want %v", res.Err(), ErrCorrected)
			}
		}
	}
}

func TestDecodeHammingMultipleErrors(t *testing.T) {
	tests := []struct {
		name     string
		received string
		syndrome int
	}{
		{"positions 1 and 6", "1110100", 7},
		{"positions 4 and 8", "010001000000", 12},
		// position == length falls outside the correctable range
		{"last position", "0010101", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := DecodeHamming(Bits(tt.received))
			if err != nil {
				t.Fatalf("DecodeHamming() error = %v", err)
			}
			if res.Status != UncorrectableError {
				t.Fatalf("DecodeHamming(%s) = %v, want uncorrectable", tt.received, res.Status)
			}
			if res.Syndrome != tt.syndrome {
				t.Errorf("syndrome = %d, want %d", res.Syndrome, tt.syndrome)
			}
			if res.Corrected != nil || res.Position != 0 || res.Text != "" {
				t.Errorf("uncorrectable result claims a correction: %+v", res)
			}
			if !errors.Is(res.Err(), ErrMultipleErrors) {
				t.Errorf("Err() = %v, want %v", res.Err(), ErrMultipleErrors)
			}
		})
	}
}

func TestDecodeHammingEmpty(t *testing.T) {
	if _, err := DecodeHamming(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("DecodeHamming(nil) error = %v, want %v", err, ErrEmpty)
	}
}

func TestHammingTextRoundTrip(t *testing.T) {
	encoded, err := EncodeHammingText("Hi")
	if err != nil {
		t.Fatal(err)
	}
	if encoded.String() != "100100110000110010010" {
		t.Errorf("EncodeHammingText(Hi) = %s", encoded)
	}
	res, err := DecodeHamming(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != NoError || res.Text != "Hi" {
		t.Errorf("DecodeHamming() = %v %q, want no error \"Hi\"", res.Status, res.Text)
	}
}

func TestHammingTextSenderWire(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		// a single byte sent least significant bit first
		{"single byte", "A", "A"},
		// multi-byte payloads come back byte-reversed, as the sender
		// reverses the whole data vector
		{"two bytes", "Hi", "iH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := EncodeHamming(ToWireBits(tt.text))
			if err != nil {
				t.Fatal(err)
			}
			res, err := DecodeHamming(code)
			if err != nil {
				t.Fatal(err)
			}
			if res.Status != NoError || res.Text != tt.want {
				t.Errorf("DecodeHamming(%s) = %v %q, want %q", code, res.Status, res.Text, tt.want)
			}
		})
	}
}

func TestHammingTextKnownCodeWords(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"100010010001", "A"},
		{"000101010100110110010", "iH"},
		{"100100110000110010010", "Hi"},
	}
	for _, tt := range tests {
		if got := HammingText(Bits(tt.code)); got != tt.want {
			t.Errorf("HammingText(%s) = %q, want %q", tt.code, got, tt.want)
		}
	}
	if got := HammingData(Bits("1010101")).String(); got != "1101" {
		t.Errorf("HammingData(1010101) = %s, want 1101", got)
	}
}

func TestHammingDataPartialBlock(t *testing.T) {
	code := Bits("10000100010010")
	if got := HammingData(code).String(); got != "0100100001" {
		t.Errorf("HammingData(%s) = %s", code, got)
	}
	// the trailing "01" is read as 01000000
	if got := HammingText(code); got != "H@" {
		t.Errorf("HammingText(%s) = %q, want %q", code, got, "H@")
	}
}
