// File: doc.go
// Title: Core Error Package Documentation
// Description: Package documentation for the mRW structured error system.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial documentation

/*
Package error provides the structured error system for mRW.

Errors carry a Code for classification, a Severity for log routing, and
optional context such as the operation, session, and the expression that was
being evaluated when the error occurred. The type remains a standard Go error
and supports errors.Is/errors.As unwrapping via Unwrap.

Basic usage:

	err := mrwerror.New("expression rejected").
		WithCode(mrwerror.CodeCalcSyntax).
		WithOperation("tokenize").
		WithExpression("2+#3")

Wrapping preserves the code, severity, and evaluation context of an inner
mRW error:

	if err != nil {
		return mrwerror.Wrap(err, "evaluation failed")
	}

Calculator engine errors (see foundation/calc/ast) are classified into the
three calculator codes CodeCalcSyntax, CodeCalcDomain, and
CodeCalcArithmetic at the facade boundary; all of these count as user
errors and default to low severity.
*/
package error
