// File: token.go
// Title: Calculator Token Definitions
// Description: Defines the token types and token structure produced by the
//              calculator lexer and consumed by the shunting-yard parser
//              and RPN evaluator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial token definitions

package ast

import "fmt"

// TokenType classifies a lexical token of a calculator expression
type TokenType int

const (
	// TokenNumber is a numeric literal ("3", "2.5", ".5")
	TokenNumber TokenType = iota

	// TokenConstant is a named constant ("π", "pi", "e")
	TokenConstant

	// TokenOperator is a binary or unary operator ("+", "-", "*", "/",
	// "%", "^", "u-")
	TokenOperator

	// TokenFunction is a function name ("sin", "log", "sqrt", ...)
	TokenFunction

	// TokenLeftParen is "("
	TokenLeftParen

	// TokenRightParen is ")"
	TokenRightParen

	// TokenBar is the absolute value bar "|"
	TokenBar
)

// String returns the string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenNumber:
		return "number"
	case TokenConstant:
		return "constant"
	case TokenOperator:
		return "operator"
	case TokenFunction:
		return "function"
	case TokenLeftParen:
		return "lparen"
	case TokenRightParen:
		return "rparen"
	case TokenBar:
		return "bar"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit of an expression
type Token struct {
	Type     TokenType // Token classification
	Value    string    // Raw token text ("3.14", "sin", "u-")
	Position int       // Rune offset in the sanitized input (0-based)
}

// String returns a compact representation used in logs and error details
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// IsValue reports whether the token pushes a value during evaluation
func (t Token) IsValue() bool {
	return t.Type == TokenNumber || t.Type == TokenConstant
}

// OpensGroup reports whether the token begins a grouped subexpression
func (t Token) OpensGroup() bool {
	return t.Type == TokenLeftParen || t.Type == TokenFunction
}
