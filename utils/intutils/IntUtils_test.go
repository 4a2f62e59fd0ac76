package intutils

import "testing"

func TestClip(t *testing.T) {
	tests := []struct{ value, min, max, want int }{
		{-1, 0, 4, 0},
		{0, 0, 4, 0},
		{3, 0, 4, 3},
		{5, 0, 4, 4},
	}

	for _, test := range tests {
		if got := Clip(test.value, test.min, test.max); got != test.want {
			t.Errorf("Clip(%d, %d, %d) = %d, want %d", test.value, test.min,
				test.max, got, test.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if got := Max(3, 9, -1); got != 9 {
		t.Errorf("Max = %d, want 9", got)
	}
	if got := Min(3, 9, -1); got != -1 {
		t.Errorf("Min = %d, want -1", got)
	}
}
