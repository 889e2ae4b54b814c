// File: evaluator.go
// Title: RPN Stack Evaluator
// Description: Evaluates postfix token streams on a float64 stack with an
//              explicit angle mode snapshot. Division and modulo by zero
//              raise arithmetic errors; IEEE infinities and NaN produced
//              by other operations are valid results.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial evaluator implementation

package evaluator

import (
	"math"
	"strconv"

	"github.com/msto63/mRW/foundation/calc/ast"
)

// Evaluate reduces a postfix token stream to a single value. The angle
// mode is a snapshot taken by the caller, so a mode switch during a
// running evaluation never affects it.
func Evaluate(postfix []ast.Token, mode ast.AngleMode) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	pop := func() (float64, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, tok := range postfix {
		switch tok.Type {
		case ast.TokenNumber:
			v, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil {
				return 0, ast.NewSyntaxError(ast.ReasonMalformedExpression, tok.Position,
					"malformed number %q", tok.Value)
			}
			stack = append(stack, v)

		case ast.TokenConstant:
			v, ok := ast.Constants[tok.Value]
			if !ok {
				return 0, ast.NewSyntaxError(ast.ReasonMalformedExpression, tok.Position,
					"unknown constant %q", tok.Value)
			}
			stack = append(stack, v)

		case ast.TokenFunction:
			operand, ok := pop()
			if !ok {
				return 0, ast.NewSyntaxError(ast.ReasonMalformedExpression, tok.Position,
					"missing argument for %s", tok.Value)
			}
			v, err := applyFunction(tok.Value, operand, mode)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		case ast.TokenOperator:
			if tok.Value == ast.UnaryMinus {
				operand, ok := pop()
				if !ok {
					return 0, ast.NewSyntaxError(ast.ReasonMalformedExpression, tok.Position,
						"missing operand for unary minus")
				}
				stack = append(stack, -operand)
				continue
			}

			right, okR := pop()
			left, okL := pop()
			if !okR || !okL {
				return 0, ast.NewSyntaxError(ast.ReasonMalformedExpression, tok.Position,
					"missing operand for %q", tok.Value)
			}
			v, err := applyOperator(tok.Value, left, right)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		default:
			return 0, ast.NewSyntaxError(ast.ReasonMalformedExpression, tok.Position,
				"unexpected token %s", tok)
		}
	}

	if len(stack) != 1 {
		return 0, ast.NewSyntaxError(ast.ReasonMalformedExpression, -1,
			"malformed expression")
	}
	return stack[0], nil
}

// applyOperator computes a binary operation. Division and modulo by an
// exact zero are arithmetic errors rather than IEEE infinities.
func applyOperator(symbol string, left, right float64) (float64, error) {
	switch symbol {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, ast.NewArithmeticError(ast.ReasonDivisionByZero, "division by zero")
		}
		return left / right, nil
	case "%":
		if right == 0 {
			return 0, ast.NewArithmeticError(ast.ReasonModuloByZero, "modulo by zero")
		}
		return math.Mod(left, right), nil
	case "^":
		return math.Pow(left, right), nil
	default:
		return 0, ast.NewSyntaxError(ast.ReasonMalformedExpression, -1,
			"unknown operator %q", symbol)
	}
}
