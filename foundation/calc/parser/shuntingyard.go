// File: shuntingyard.go
// Title: Shunting-Yard Infix to Postfix Parser
// Description: Implements Dijkstra's shunting-yard algorithm over the
//              lexer's token stream, including absolute value bar
//              rewriting, unary minus detection, and parenthesis
//              validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial shunting-yard implementation

package parser

import "github.com/msto63/mRW/foundation/calc/ast"

// ToPostfix converts an infix token stream to postfix (RPN) order.
//
// Preprocessing runs in three passes before the main loop: absolute
// value bars become abs(...) calls, minus signs in prefix position
// become the unary operator, and parentheses are validated. Bars are
// rewritten first so a minus directly inside bars ("|-5|") sees an
// opening parenthesis and is detected as unary.
func ToPostfix(tokens []ast.Token) ([]ast.Token, error) {
	tokens, err := rewriteBars(tokens)
	if err != nil {
		return nil, err
	}
	tokens = rewriteUnaryMinus(tokens)
	if err := validateParentheses(tokens); err != nil {
		return nil, err
	}

	output := make([]ast.Token, 0, len(tokens))
	var stack []ast.Token

	for _, tok := range tokens {
		switch tok.Type {
		case ast.TokenNumber, ast.TokenConstant:
			output = append(output, tok)

		case ast.TokenFunction:
			stack = append(stack, tok)

		case ast.TokenLeftParen:
			stack = append(stack, tok)

		case ast.TokenRightParen:
			for len(stack) > 0 && stack[len(stack)-1].Type != ast.TokenLeftParen {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, ast.NewSyntaxError(ast.ReasonMismatchedParentheses, tok.Position,
					"mismatched parentheses")
			}
			stack = stack[:len(stack)-1] // discard "("

			// A function owning this group is complete now
			if len(stack) > 0 && stack[len(stack)-1].Type == ast.TokenFunction {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}

		case ast.TokenOperator:
			cur, ok := ast.LookupOperator(tok.Value)
			if !ok {
				return nil, ast.NewSyntaxError(ast.ReasonMalformedExpression, tok.Position,
					"unknown operator %q", tok.Value)
			}

			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != ast.TokenOperator {
					break
				}
				topOp, _ := ast.LookupOperator(top.Value)

				// Pop while the stack top binds tighter, or equally
				// tight with a left-associative current operator
				if topOp.Precedence > cur.Precedence ||
					(topOp.Precedence == cur.Precedence && cur.Associativity == ast.AssocLeft) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, tok)

		default:
			return nil, ast.NewSyntaxError(ast.ReasonMalformedExpression, tok.Position,
				"unexpected token %s", tok)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == ast.TokenLeftParen || top.Type == ast.TokenRightParen {
			return nil, ast.NewSyntaxError(ast.ReasonMismatchedParentheses, top.Position,
				"mismatched parentheses")
		}
		output = append(output, top)
	}

	return output, nil
}

// rewriteBars replaces absolute value bars with abs(...) calls. Bars
// alternate between opening and closing; an odd total count fails up
// front rather than producing a dangling group.
func rewriteBars(tokens []ast.Token) ([]ast.Token, error) {
	barCount := 0
	for _, tok := range tokens {
		if tok.Type == ast.TokenBar {
			barCount++
		}
	}
	if barCount == 0 {
		return tokens, nil
	}
	if barCount%2 != 0 {
		return nil, ast.NewSyntaxError(ast.ReasonUnbalancedBars, -1,
			"unbalanced absolute value bars")
	}

	result := make([]ast.Token, 0, len(tokens)+barCount)
	open := false
	for _, tok := range tokens {
		if tok.Type != ast.TokenBar {
			result = append(result, tok)
			continue
		}
		if !open {
			result = append(result,
				ast.Token{Type: ast.TokenFunction, Value: "abs", Position: tok.Position},
				ast.Token{Type: ast.TokenLeftParen, Value: "(", Position: tok.Position})
		} else {
			result = append(result,
				ast.Token{Type: ast.TokenRightParen, Value: ")", Position: tok.Position})
		}
		open = !open
	}
	return result, nil
}

// rewriteUnaryMinus marks minus signs in prefix position as the unary
// operator. A minus is unary at the start of the expression, after
// another operator, or after an opening parenthesis.
func rewriteUnaryMinus(tokens []ast.Token) []ast.Token {
	result := make([]ast.Token, 0, len(tokens))
	for i, tok := range tokens {
		if tok.Type == ast.TokenOperator && tok.Value == "-" {
			unary := i == 0 ||
				tokens[i-1].Type == ast.TokenOperator ||
				tokens[i-1].Type == ast.TokenLeftParen
			if unary {
				tok.Value = ast.UnaryMinus
			}
		}
		result = append(result, tok)
	}
	return result
}

// validateParentheses checks balance before the main loop so errors
// carry the position of the offending parenthesis
func validateParentheses(tokens []ast.Token) error {
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case ast.TokenLeftParen:
			depth++
		case ast.TokenRightParen:
			depth--
			if depth < 0 {
				return ast.NewSyntaxError(ast.ReasonMismatchedParentheses, tok.Position,
					"mismatched parentheses")
			}
		}
	}
	if depth != 0 {
		return ast.NewSyntaxError(ast.ReasonMismatchedParentheses, -1,
			"mismatched parentheses")
	}
	return nil
}
