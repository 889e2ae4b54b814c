// File: lexer.go
// Title: Calculator Expression Lexer
// Description: Implements input sanitization and tokenization of infix
//              calculator expressions, including greedy function name
//              matching and implicit multiplication insertion.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial lexer implementation

package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/msto63/mRW/foundation/calc/ast"
)

// Sanitize normalizes raw user input before tokenization: thousands
// separators (commas) are removed and surrounding whitespace is trimmed.
// Sanitize is idempotent, so display output fed back as input is safe.
func Sanitize(input string) string {
	return strings.TrimSpace(strings.ReplaceAll(input, ",", ""))
}

// Lexer scans a sanitized expression into tokens
type Lexer struct {
	input  []rune
	pos    int
	tokens []ast.Token
}

// NewLexer creates a lexer over the sanitized form of input
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(Sanitize(input))}
}

// Tokenize sanitizes and scans input in one step
func Tokenize(input string) ([]ast.Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize scans the whole input and returns the token stream. Implicit
// multiplication operators are inserted while appending, so adjacency
// like "2π" or "(2)(3)" never reaches the parser unmultiplied.
func (l *Lexer) Tokenize() ([]ast.Token, error) {
	if len(l.input) == 0 {
		return nil, ast.NewSyntaxError(ast.ReasonEmptyExpression, -1, "expression is empty")
	}

	for l.pos < len(l.input) {
		c := l.input[l.pos]

		if unicode.IsSpace(c) {
			l.pos++
			continue
		}

		switch {
		case unicode.IsDigit(c) || c == '.':
			if err := l.scanNumber(); err != nil {
				return nil, err
			}

		case c == 'π':
			l.append(ast.Token{Type: ast.TokenConstant, Value: "π", Position: l.pos})
			l.pos++

		case unicode.IsLetter(c):
			if err := l.scanWord(); err != nil {
				return nil, err
			}

		case c == '(':
			l.append(ast.Token{Type: ast.TokenLeftParen, Value: "(", Position: l.pos})
			l.pos++

		case c == ')':
			l.append(ast.Token{Type: ast.TokenRightParen, Value: ")", Position: l.pos})
			l.pos++

		case c == '|':
			l.append(ast.Token{Type: ast.TokenBar, Value: "|", Position: l.pos})
			l.pos++

		case ast.IsOperator(string(c)):
			l.append(ast.Token{Type: ast.TokenOperator, Value: string(c), Position: l.pos})
			l.pos++

		default:
			return nil, ast.NewSyntaxError(ast.ReasonInvalidCharacter, l.pos,
				"invalid character %q", string(c))
		}
	}

	return l.tokens, nil
}

// scanNumber consumes a run of digits and decimal points
func (l *Lexer) scanNumber() error {
	start := l.pos
	for l.pos < len(l.input) && (unicode.IsDigit(l.input[l.pos]) || l.input[l.pos] == '.') {
		l.pos++
	}

	value := string(l.input[start:l.pos])
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return ast.NewSyntaxError(ast.ReasonMalformedExpression, start,
			"malformed number %q", value)
	}

	l.append(ast.Token{Type: ast.TokenNumber, Value: value, Position: start})
	return nil
}

// scanWord consumes letters and matches them greedily against function
// names (longest first, so "asin" wins over "sin") and then constants.
func (l *Lexer) scanWord() error {
	rest := string(l.input[l.pos:])

	for _, fn := range ast.Functions {
		if strings.HasPrefix(rest, fn) {
			l.append(ast.Token{Type: ast.TokenFunction, Value: fn, Position: l.pos})
			l.pos += len([]rune(fn))
			return nil
		}
	}

	if strings.HasPrefix(rest, "pi") {
		l.append(ast.Token{Type: ast.TokenConstant, Value: "pi", Position: l.pos})
		l.pos += 2
		return nil
	}
	if rest[0] == 'e' {
		l.append(ast.Token{Type: ast.TokenConstant, Value: "e", Position: l.pos})
		l.pos++
		return nil
	}

	return ast.NewSyntaxError(ast.ReasonInvalidCharacter, l.pos,
		"invalid character %q", string(l.input[l.pos]))
}

// append adds a token, inserting an implicit multiplication first when
// the adjacency calls for one
func (l *Lexer) append(tok ast.Token) {
	if len(l.tokens) > 0 && needsImplicitMultiplication(l.tokens[len(l.tokens)-1], tok) {
		l.tokens = append(l.tokens, ast.Token{
			Type:     ast.TokenOperator,
			Value:    "*",
			Position: tok.Position,
		})
	}
	l.tokens = append(l.tokens, tok)
}

// needsImplicitMultiplication applies the adjacency rules:
//
//	2π      → 2*π        (value before constant)
//	2(3)    → 2*(3)      (value or ")" before "(")
//	(3)2    → (3)*2      (")" before value)
//	2sin(x) → 2*sin(x)   (value before function)
func needsImplicitMultiplication(prev, cur ast.Token) bool {
	prevIsValue := prev.IsValue()
	prevIsClose := prev.Type == ast.TokenRightParen

	switch {
	case prevIsValue && cur.Type == ast.TokenConstant:
		return true
	case (prevIsValue || prevIsClose) && cur.Type == ast.TokenLeftParen:
		return true
	case prevIsClose && cur.IsValue():
		return true
	case prevIsValue && cur.Type == ast.TokenFunction:
		return true
	}
	return false
}
