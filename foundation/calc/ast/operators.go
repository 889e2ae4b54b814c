// File: operators.go
// Title: Calculator Operator Table
// Description: Defines operator metadata (precedence and associativity)
//              shared by the shunting-yard parser and the evaluator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial operator table

package ast

// Associativity of an operator
type Associativity int

const (
	// AssocLeft groups left to right: a-b-c is (a-b)-c
	AssocLeft Associativity = iota

	// AssocRight groups right to left: a^b^c is a^(b^c)
	AssocRight
)

// String returns the string representation of the associativity
func (a Associativity) String() string {
	if a == AssocRight {
		return "right"
	}
	return "left"
}

// UnaryMinus is the internal operator symbol for sign negation. The lexer
// rewrites "-" to UnaryMinus where it cannot be a binary subtraction.
const UnaryMinus = "u-"

// Operator describes precedence and associativity of one operator symbol
type Operator struct {
	Symbol        string
	Precedence    int
	Associativity Associativity
	Unary         bool
}

// operators is the complete operator table. Higher precedence binds
// tighter. Exponentiation and unary minus are right-associative.
var operators = map[string]Operator{
	"+":        {Symbol: "+", Precedence: 1, Associativity: AssocLeft},
	"-":        {Symbol: "-", Precedence: 1, Associativity: AssocLeft},
	"*":        {Symbol: "*", Precedence: 2, Associativity: AssocLeft},
	"/":        {Symbol: "/", Precedence: 2, Associativity: AssocLeft},
	"%":        {Symbol: "%", Precedence: 2, Associativity: AssocLeft},
	UnaryMinus: {Symbol: UnaryMinus, Precedence: 3, Associativity: AssocRight, Unary: true},
	"^":        {Symbol: "^", Precedence: 4, Associativity: AssocRight},
}

// LookupOperator returns the operator entry for a symbol
func LookupOperator(symbol string) (Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}

// IsOperator reports whether the symbol is a known operator
func IsOperator(symbol string) bool {
	_, ok := operators[symbol]
	return ok
}

// Functions lists every supported function name, longest first so the
// lexer can match greedily ("asin" before "sin").
var Functions = []string{
	"asin", "acos", "atan", "sqrt",
	"sin", "cos", "tan", "log", "exp", "abs",
	"ln",
}

// IsFunction reports whether name is a supported function
func IsFunction(name string) bool {
	for _, f := range Functions {
		if f == name {
			return true
		}
	}
	return false
}

// Constants maps constant names to their values. Both the Unicode and
// the spelled-out form of pi are accepted on input.
var Constants = map[string]float64{
	"π":  3.141592653589793,
	"pi": 3.141592653589793,
	"e":  2.718281828459045,
}

// IsConstant reports whether name is a supported constant
func IsConstant(name string) bool {
	_, ok := Constants[name]
	return ok
}
