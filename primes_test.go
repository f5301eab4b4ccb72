package slovoform

import "testing"

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    uint32
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{6, false},
		{7, true},
		{8, false},
		{9, false},
		{10, false},
		{11, true},
		{12, false},
		{13, true},
		{25, false},
		{29, true},
		{91, false}, // 7·13
		{97, true},
		{121, false}, // 11·11
		{7919, true},
		{7921, false}, // 89·89
		{4294967291, true}, // largest 32-bit prime
	}
	for _, tt := range tests {
		if got := isPrime(tt.n); got != tt.want {
			t.Errorf("isPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNextPrimeAfter(t *testing.T) {
	tests := []struct {
		n    uint32
		want uint32
	}{
		{0, 2},
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 5},
		{5, 7},
		{7, 11},
		{11, 13},
		{13, 17},
		{17, 19},
		{19, 23},
		{23, 29},
		{89, 97},
	}
	for _, tt := range tests {
		if got := nextPrimeAfter(tt.n); got != tt.want {
			t.Errorf("nextPrimeAfter(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
