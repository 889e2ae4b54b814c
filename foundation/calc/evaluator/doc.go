// File: doc.go
// Title: Calculator Evaluator Package Documentation
// Description: Package documentation for the RPN stack evaluator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial documentation

/*
Package evaluator reduces postfix token streams to float64 results.

The angle mode is passed explicitly per call; callers snapshot it once
at the start of an evaluation. Failures are classified *ast.CalcError
values: malformed streams are syntax errors, undefined function
arguments are domain errors, and division or modulo by zero are
arithmetic errors. Overflow to ±Inf and NaN are returned as values.
*/
package evaluator
