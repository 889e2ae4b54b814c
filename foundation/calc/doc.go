// File: doc.go
// Title: Calculator Package Documentation
// Description: Package documentation for the high-level calculator engine.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial documentation

/*
Package calc provides the high-level calculator engine.

The engine wires the pipeline stages together:

	input → Sanitize → Tokenize → ToPostfix → Evaluate

and owns the angle mode, which evaluations snapshot once at start. Errors
returned by Evaluate are foundation errors carrying the calculator error
code (CALC_SYNTAX, CALC_DOMAIN, CALC_ARITHMETIC) and the offending
expression; the underlying *ast.CalcError remains reachable through
errors.As for kind checks.

Typical usage:

	engine := calc.NewEngine()
	result, err := engine.Evaluate("2+3*4")
	if err != nil {
		// handle classified error
	}
	fmt.Println(result.Value) // 14
*/
package calc
