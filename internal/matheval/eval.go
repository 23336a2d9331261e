// Package matheval evaluates the arithmetic expressions behind the math
// command. It wraps expr-lang so a malformed expression is an error for the
// caller to report, never a crash.
package matheval

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Evaluate computes an arithmetic expression and returns its numeric value.
func Evaluate(input string) (float64, error) {
	program, err := expr.Compile(input)
	if err != nil {
		return 0, fmt.Errorf("compile expression: %w", err)
	}

	out, err := expr.Run(program, nil)
	if err != nil {
		return 0, fmt.Errorf("run expression: %w", err)
	}

	switch v := out.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expression result %T is not a number", out)
	}
}
