// File: evaluator_test.go
// Title: RPN Evaluator Unit Tests
// Description: Unit tests for stack evaluation covering arithmetic,
//              functions, angle modes, domain validation, and error
//              classification.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial test suite

package evaluator

import (
	"math"
	"testing"

	"github.com/msto63/mRW/foundation/calc/ast"
	"github.com/msto63/mRW/foundation/calc/parser"
)

const tolerance = 1e-9

func eval(t *testing.T, input string, mode ast.AngleMode) (float64, error) {
	t.Helper()
	tokens, err := parser.Tokenize(input)
	if err != nil {
		return 0, err
	}
	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix, mode)
}

func mustEval(t *testing.T, input string, mode ast.AngleMode) float64 {
	t.Helper()
	v, err := eval(t, input, mode)
	if err != nil {
		t.Fatalf("evaluate(%q) error: %v", input, err)
	}
	return v
}

func TestEvaluateArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"precedence", "2+3*4", 14},
		{"parens override", "(2+3)*4", 20},
		{"right assoc power", "2^3^2", 512},
		{"left assoc subtraction", "8-3-2", 3},
		{"division", "10/4", 2.5},
		{"modulo", "7%3", 1},
		{"unary minus", "-5+3", -2},
		{"double negation", "--5", 5},
		{"unary with power", "-2^2", -4},
		{"implicit mult with pi", "2π", 2 * math.Pi},
		{"euler power", "e^0", 1},
		{"mixed", "3*|2-7|", 15},
		{"abs of negative", "|-5|", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustEval(t, tt.input, ast.Radians)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluateTrigDegrees(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"sin(30)", 0.5},
		{"cos(60)", 0.5},
		{"tan(45)", 1},
		{"asin(0.5)", 30},
		{"acos(0.5)", 60},
		{"atan(1)", 45},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustEval(t, tt.input, ast.Degrees)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluateTrigRadians(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"sin(π/2)", 1},
		{"cos(π)", -1},
		{"asin(1)", math.Pi / 2},
		{"atan(1)", math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustEval(t, tt.input, ast.Radians)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluateLogarithms(t *testing.T) {
	if got := mustEval(t, "log(100)", ast.Radians); math.Abs(got-2) > tolerance {
		t.Errorf("log(100) = %v, want 2", got)
	}
	if got := mustEval(t, "ln(e)", ast.Radians); math.Abs(got-1) > tolerance {
		t.Errorf("ln(e) = %v, want 1", got)
	}
	if got := mustEval(t, "sqrt(16)", ast.Radians); math.Abs(got-4) > tolerance {
		t.Errorf("sqrt(16) = %v, want 4", got)
	}
	if got := mustEval(t, "exp(1)", ast.Radians); math.Abs(got-math.E) > tolerance {
		t.Errorf("exp(1) = %v, want e", got)
	}
}

func TestEvaluateArithmeticErrors(t *testing.T) {
	tests := []string{"1/0", "5%0", "1/(2-2)"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := eval(t, input, ast.Radians)
			if err == nil {
				t.Fatalf("evaluate(%q) expected error", input)
			}
			if !ast.IsArithmeticError(err) {
				t.Errorf("expected arithmetic error, got %v", err)
			}
		})
	}
}

func TestEvaluateDomainErrors(t *testing.T) {
	tests := []string{
		"sqrt(-1)",
		"log(0)",
		"log(-5)",
		"ln(0)",
		"asin(2)",
		"acos(-1.5)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := eval(t, input, ast.Degrees)
			if err == nil {
				t.Fatalf("evaluate(%q) expected error", input)
			}
			if !ast.IsDomainError(err) {
				t.Errorf("expected domain error, got %v", err)
			}
		})
	}
}

func TestEvaluateMalformedStreams(t *testing.T) {
	tests := []string{"2+", "*3", "2 3"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := eval(t, input, ast.Radians)
			if err == nil {
				t.Fatalf("evaluate(%q) expected error", input)
			}
			if !ast.IsSyntaxError(err) {
				t.Errorf("expected syntax error, got %v", err)
			}
		})
	}
}

func TestEvaluateNonFiniteResults(t *testing.T) {
	// Overflow and indeterminate forms are values, not errors
	got := mustEval(t, "10^309", ast.Radians)
	if !math.IsInf(got, 1) {
		t.Errorf("10^309 = %v, want +Inf", got)
	}

	got = mustEval(t, "ln(e)^(10^400)", ast.Radians)
	if got != 1 {
		// 1^Inf is 1 under IEEE pow semantics
		t.Errorf("1^Inf = %v, want 1", got)
	}
}

func TestEvaluateModeSnapshot(t *testing.T) {
	tokens, err := parser.Tokenize("sin(90)")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		t.Fatalf("ToPostfix error: %v", err)
	}

	deg, err := Evaluate(postfix, ast.Degrees)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	rad, err := Evaluate(postfix, ast.Radians)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	if math.Abs(deg-1) > tolerance {
		t.Errorf("sin(90) degrees = %v, want 1", deg)
	}
	if math.Abs(rad-math.Sin(90)) > tolerance {
		t.Errorf("sin(90) radians = %v, want %v", rad, math.Sin(90))
	}
}
