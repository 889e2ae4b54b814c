// File: doc.go
// Title: Calculator AST Package Documentation
// Description: Package documentation for the shared calculator token,
//              operator, angle mode, and error definitions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial documentation

/*
Package ast holds the types shared between the calculator lexer, the
shunting-yard parser, and the RPN evaluator: tokens, the operator table,
the angle mode, and the classified error types.

Keeping these in a leaf package lets parser and evaluator depend on the
same definitions without depending on each other.
*/
package ast
