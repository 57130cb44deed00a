package utils

import "testing"

func TestSignExtendNegative(t *testing.T) {
	tests := []struct {
		x        uint16
		bitCount int
		want     uint16
	}{
		{0x1F, 5, 0xFFFF},
		{0x10, 5, 0xFFF0},
		{0x3F, 6, 0xFFFF},
		{0x1FF, 9, 0xFFFF},
		{0x7FF, 11, 0xFFFF},
	}
	for _, tt := range tests {
		if got := SignExtend(tt.x, tt.bitCount); got != tt.want {
			t.Errorf("SignExtend(%#x, %d) = %#x, want %#x", tt.x, tt.bitCount, got, tt.want)
		}
	}
}

func TestSignExtendPositive(t *testing.T) {
	if got := SignExtend[uint16](0x0F, 5); got != 0x0F {
		t.Errorf("SignExtend(0x0F, 5) = %#x, want 0x0F", got)
	}
	if got := SignExtend[uint16](0x00, 9); got != 0x00 {
		t.Errorf("SignExtend(0x00, 9) = %#x, want 0", got)
	}
}

func TestSwap16(t *testing.T) {
	if got := Swap16(0x1234); got != 0x3412 {
		t.Errorf("Swap16(0x1234) = %#x, want 0x3412", got)
	}
	if got := Swap16(Swap16(0xBEEF)); got != 0xBEEF {
		t.Errorf("Swap16 is not its own inverse: got %#x", got)
	}
}

func TestBEWord(t *testing.T) {
	b := []byte{0x30, 0x00, 0xFF, 0x01}
	if got := BEWord(b, 0); got != 0x3000 {
		t.Errorf("BEWord(b, 0) = %#x, want 0x3000", got)
	}
	if got := BEWord(b, 2); got != 0xFF01 {
		t.Errorf("BEWord(b, 2) = %#x, want 0xFF01", got)
	}
}
