// File: functions.go
// Title: Calculator Function Table
// Description: Implements the supported functions with domain validation
//              and angle mode conversion. Direct trig functions convert
//              degree inputs to radians; inverse trig functions convert
//              radian outputs back to degrees.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial function table

package evaluator

import (
	"math"

	"github.com/msto63/mRW/foundation/calc/ast"
)

// applyFunction dispatches a function call with domain checks
func applyFunction(name string, operand float64, mode ast.AngleMode) (float64, error) {
	switch name {
	case "sin":
		return math.Sin(toRadians(operand, mode)), nil
	case "cos":
		return math.Cos(toRadians(operand, mode)), nil
	case "tan":
		return math.Tan(toRadians(operand, mode)), nil

	case "asin":
		if operand < -1 || operand > 1 {
			return 0, ast.NewDomainError("asin", operand)
		}
		return fromRadians(math.Asin(operand), mode), nil
	case "acos":
		if operand < -1 || operand > 1 {
			return 0, ast.NewDomainError("acos", operand)
		}
		return fromRadians(math.Acos(operand), mode), nil
	case "atan":
		return fromRadians(math.Atan(operand), mode), nil

	case "log":
		if operand <= 0 {
			return 0, ast.NewDomainError("log", operand)
		}
		return math.Log10(operand), nil
	case "ln":
		if operand <= 0 {
			return 0, ast.NewDomainError("ln", operand)
		}
		return math.Log(operand), nil

	case "exp":
		return math.Exp(operand), nil
	case "sqrt":
		if operand < 0 {
			return 0, ast.NewDomainError("sqrt", operand)
		}
		return math.Sqrt(operand), nil
	case "abs":
		return math.Abs(operand), nil

	default:
		return 0, &ast.CalcError{
			Kind:     ast.KindSyntax,
			Reason:   ast.ReasonUnknownFunction,
			Message:  "unknown function " + name,
			Position: -1,
		}
	}
}

// toRadians converts a trig input when the mode is degrees
func toRadians(angle float64, mode ast.AngleMode) float64 {
	if mode == ast.Degrees {
		return angle * math.Pi / 180
	}
	return angle
}

// fromRadians converts an inverse trig output when the mode is degrees
func fromRadians(angle float64, mode ast.AngleMode) float64 {
	if mode == ast.Degrees {
		return angle * 180 / math.Pi
	}
	return angle
}
