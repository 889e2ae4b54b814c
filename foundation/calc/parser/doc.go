// File: doc.go
// Title: Calculator Parser Package Documentation
// Description: Package documentation for the expression lexer and
//              shunting-yard parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial documentation

/*
Package parser turns infix calculator expressions into postfix token
streams.

The pipeline is Sanitize → Tokenize → ToPostfix. Tokenize inserts
implicit multiplication while appending tokens, so "2π(3)" arrives at
ToPostfix as "2 * π * ( 3 )". ToPostfix rewrites absolute value bars to
abs(...) calls and prefix minus signs to a unary operator before running
the shunting-yard loop.

All failures are *ast.CalcError values of kind syntax.
*/
package parser
