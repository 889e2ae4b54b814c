// File: errors.go
// Title: Calculator Error Classification
// Description: Defines the three calculator error kinds (syntax, domain,
//              arithmetic) with machine-readable reasons and positions,
//              and the mapping onto the foundation error codes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial error classification

package ast

import (
	"errors"
	"fmt"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

// ErrorKind is the coarse classification of an evaluation failure
type ErrorKind int

const (
	// KindSyntax covers malformed input: invalid characters, mismatched
	// parentheses, unbalanced bars, and malformed token streams
	KindSyntax ErrorKind = iota

	// KindDomain covers mathematically undefined function arguments,
	// such as sqrt of a negative number or log of a non-positive one
	KindDomain

	// KindArithmetic covers invalid arithmetic such as division or
	// modulo by zero. IEEE infinities and NaN produced by other
	// operations are valid results, not errors.
	KindArithmetic
)

// String returns the string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindDomain:
		return "domain"
	case KindArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// Reason identifies the specific failure within a kind
type Reason string

const (
	ReasonInvalidCharacter      Reason = "invalid_character"
	ReasonMismatchedParentheses Reason = "mismatched_parentheses"
	ReasonUnbalancedBars        Reason = "unbalanced_bars"
	ReasonMalformedExpression   Reason = "malformed_expression"
	ReasonEmptyExpression       Reason = "empty_expression"
	ReasonDivisionByZero        Reason = "division_by_zero"
	ReasonModuloByZero          Reason = "modulo_by_zero"
	ReasonDomainViolation       Reason = "domain_violation"
	ReasonUnknownFunction       Reason = "unknown_function"
	ReasonUnknownOperator       Reason = "unknown_operator"
)

// CalcError is a classified calculator failure. Position is the rune
// offset in the sanitized expression where the failure was detected, or
// -1 when no position applies.
type CalcError struct {
	Kind     ErrorKind
	Reason   Reason
	Message  string
	Position int
}

// Error implements the error interface
func (e *CalcError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s error at position %d: %s", e.Kind, e.Position, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Code returns the foundation error code for the error kind
func (e *CalcError) Code() mrwerror.Code {
	switch e.Kind {
	case KindSyntax:
		return mrwerror.CodeCalcSyntax
	case KindDomain:
		return mrwerror.CodeCalcDomain
	case KindArithmetic:
		return mrwerror.CodeCalcArithmetic
	default:
		return mrwerror.CodeUnknown
	}
}

// NewSyntaxError creates a syntax error at the given position
func NewSyntaxError(reason Reason, position int, format string, args ...interface{}) *CalcError {
	return &CalcError{
		Kind:     KindSyntax,
		Reason:   reason,
		Message:  fmt.Sprintf(format, args...),
		Position: position,
	}
}

// NewDomainError creates a domain error for a function argument
func NewDomainError(function string, argument float64) *CalcError {
	return &CalcError{
		Kind:     KindDomain,
		Reason:   ReasonDomainViolation,
		Message:  fmt.Sprintf("%s is undefined for %g", function, argument),
		Position: -1,
	}
}

// NewArithmeticError creates an arithmetic error
func NewArithmeticError(reason Reason, format string, args ...interface{}) *CalcError {
	return &CalcError{
		Kind:     KindArithmetic,
		Reason:   reason,
		Message:  fmt.Sprintf(format, args...),
		Position: -1,
	}
}

// IsKind reports whether err is a CalcError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var calcErr *CalcError
	if errors.As(err, &calcErr) {
		return calcErr.Kind == kind
	}
	return false
}

// IsSyntaxError reports whether err is a syntax error
func IsSyntaxError(err error) bool { return IsKind(err, KindSyntax) }

// IsDomainError reports whether err is a domain error
func IsDomainError(err error) bool { return IsKind(err, KindDomain) }

// IsArithmeticError reports whether err is an arithmetic error
func IsArithmeticError(err error) bool { return IsKind(err, KindArithmetic) }
