package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"10", "10"},
		{"10.005", "10"},    // half to even, 10.00
		{"10.015", "10.02"}, // half to even, up
		{"10.025", "10.02"}, // half to even, down
		{"10.016", "10.02"},
		{"-3.125", "-3.12"},
		{"0.001", "0"},
	}
	for _, c := range cases {
		got := Round(decimal.RequireFromString(c.input))
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("Round(%s) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestMul(t *testing.T) {
	// 12.5 kg at 8.00/kg
	got := Mul(decimal.RequireFromString("12.5"), decimal.RequireFromString("8"))
	if !got.Equal(decimal.RequireFromString("100")) {
		t.Errorf("Mul(12.5, 8) = %s, want 100", got)
	}
	// fractional rate producing a half-cent
	got = Mul(decimal.RequireFromString("0.5"), decimal.RequireFromString("0.05"))
	if !got.Equal(decimal.RequireFromString("0.02")) {
		t.Errorf("Mul(0.5, 0.05) = %s, want 0.02", got)
	}
}

func TestSum(t *testing.T) {
	got := Sum(
		decimal.RequireFromString("1.11"),
		decimal.RequireFromString("2.22"),
		decimal.RequireFromString("3.33"),
	)
	if !got.Equal(decimal.RequireFromString("6.66")) {
		t.Errorf("Sum = %s, want 6.66", got)
	}
	if !Sum().Equal(decimal.Zero) {
		t.Errorf("Sum() = %s, want 0", Sum())
	}
}

func TestSub(t *testing.T) {
	got := Sub(decimal.RequireFromString("100"), decimal.RequireFromString("37.5"))
	if !got.Equal(decimal.RequireFromString("62.5")) {
		t.Errorf("Sub(100, 37.5) = %s, want 62.5", got)
	}
}
