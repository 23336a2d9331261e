package matheval

import (
	"math"
	"testing"
)

func TestEvaluateArithmetic(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"2+2", 4},
		{"2 + 2", 4},
		{"10 / 4", 2.5},
		{"(1 + 2) * 3", 9},
		{"-5 + 3", -2},
		{"2 ** 3", 8},
	}
	for _, tc := range cases {
		got, err := Evaluate(tc.expr)
		if err != nil {
			t.Errorf("Evaluate(%q): %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEvaluateMalformedExpression(t *testing.T) {
	for _, expr := range []string{"(", "2 +", "1 ++* 2"} {
		if _, err := Evaluate(expr); err == nil {
			t.Errorf("Evaluate(%q): expected error", expr)
		}
	}
}

func TestEvaluateNonNumericResult(t *testing.T) {
	if _, err := Evaluate(`"not a number"`); err == nil {
		t.Fatal("expected error for non-numeric result")
	}
	if _, err := Evaluate(`true`); err == nil {
		t.Fatal("expected error for boolean result")
	}
}
