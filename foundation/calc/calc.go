// File: calc.go
// Title: Calculator Main Interface and Engine
// Description: Provides the main calculator engine and high-level API for
//              evaluating infix expressions. Integrates lexer, shunting-
//              yard parser, and RPN evaluator, and owns the shared angle
//              mode state.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial calculator engine implementation

package calc

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/msto63/mRW/foundation/calc/ast"
	"github.com/msto63/mRW/foundation/calc/evaluator"
	"github.com/msto63/mRW/foundation/calc/parser"
	mrwerror "github.com/msto63/mRW/foundation/core/error"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	mrwstringx "github.com/msto63/mRW/foundation/utils/stringx"
)

// Engine coordinates the tokenize → parse → evaluate pipeline and holds
// the angle mode. Engines are safe for concurrent use; each evaluation
// snapshots the mode once, so a concurrent toggle affects only
// evaluations that start after it.
type Engine struct {
	logger  *mrwlog.Logger
	options Options
	mode    atomic.Int32
}

// Options configures the calculator engine behavior
type Options struct {
	// Logger for calculator operations (optional, defaults to default logger)
	Logger *mrwlog.Logger

	// MaxExpressionLength limits input expression length (default: 4096)
	MaxExpressionLength int

	// AngleMode is the initial trigonometric angle mode (default: Degrees)
	AngleMode ast.AngleMode
}

// Result represents a completed evaluation
type Result struct {
	// Value is the numeric result (may be ±Inf or NaN)
	Value float64

	// Expression is the sanitized input that was evaluated
	Expression string

	// Postfix is the RPN token stream the value was computed from
	Postfix []ast.Token

	// Mode is the angle mode snapshot used for this evaluation
	Mode ast.AngleMode

	// EvalTime is the time taken for the full pipeline
	EvalTime time.Duration
}

// NewEngine creates a calculator engine with the specified options
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger:              mrwlog.GetDefault(),
		MaxExpressionLength: 4096,
		AngleMode:           ast.Degrees,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxExpressionLength > 0 {
			options.MaxExpressionLength = provided.MaxExpressionLength
		}
		options.AngleMode = provided.AngleMode
	}

	engine := &Engine{
		logger:  options.Logger.WithField("component", "calc-engine"),
		options: options,
	}
	engine.mode.Store(int32(options.AngleMode))

	engine.logger.Info("Calculator engine initialized", mrwlog.Fields{
		"maxExpressionLength": options.MaxExpressionLength,
		"angleMode":           options.AngleMode.String(),
	})

	return engine
}

// Evaluate runs the full pipeline on an infix expression
func (e *Engine) Evaluate(expression string) (*Result, error) {
	timer := e.logger.StartTimer("expression_evaluation")
	mode := e.AngleMode()

	if err := e.validateInput(expression); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	sanitized := parser.Sanitize(expression)
	timer.Checkpoint("input_validated")

	tokens, err := parser.Tokenize(sanitized)
	if err != nil {
		timer.StopWithError(err)
		return nil, e.wrapCalcError(err, sanitized)
	}
	timer.Checkpoint("tokenized")

	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		timer.StopWithError(err)
		return nil, e.wrapCalcError(err, sanitized)
	}
	timer.Checkpoint("parsed")

	value, err := evaluator.Evaluate(postfix, mode)
	if err != nil {
		timer.StopWithError(err)
		e.logger.Warn("Expression evaluation failed", mrwlog.Fields{
			"expression": sanitized,
			"error":      err.Error(),
		})
		return nil, e.wrapCalcError(err, sanitized)
	}
	elapsed := timer.Stop()

	e.logger.Debug("Expression evaluated", mrwlog.Fields{
		"expression": sanitized,
		"value":      value,
		"angleMode":  mode.String(),
	})

	return &Result{
		Value:      value,
		Expression: sanitized,
		Postfix:    postfix,
		Mode:       mode,
		EvalTime:   elapsed,
	}, nil
}

// Tokenize exposes the lexer stage of the pipeline
func (e *Engine) Tokenize(expression string) ([]ast.Token, error) {
	if err := e.validateInput(expression); err != nil {
		return nil, err
	}
	tokens, err := parser.Tokenize(expression)
	if err != nil {
		return nil, e.wrapCalcError(err, parser.Sanitize(expression))
	}
	return tokens, nil
}

// Parse exposes the lexer and shunting-yard stages of the pipeline
func (e *Engine) Parse(expression string) ([]ast.Token, error) {
	tokens, err := e.Tokenize(expression)
	if err != nil {
		return nil, err
	}
	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		return nil, e.wrapCalcError(err, parser.Sanitize(expression))
	}
	return postfix, nil
}

// AngleMode returns the current angle mode
func (e *Engine) AngleMode() ast.AngleMode {
	return ast.AngleMode(e.mode.Load())
}

// SetAngleMode switches the angle mode for subsequent evaluations
func (e *Engine) SetAngleMode(mode ast.AngleMode) {
	e.mode.Store(int32(mode))
	e.logger.Info("Angle mode changed", mrwlog.Fields{
		"angleMode": mode.String(),
	})
}

// ToggleAngleMode flips between degrees and radians and returns the new mode
func (e *Engine) ToggleAngleMode() ast.AngleMode {
	for {
		current := e.mode.Load()
		next := int32(ast.AngleMode(current).Toggle())
		if e.mode.CompareAndSwap(current, next) {
			mode := ast.AngleMode(next)
			e.logger.Info("Angle mode toggled", mrwlog.Fields{
				"angleMode": mode.String(),
			})
			return mode
		}
	}
}

// validateInput rejects blank and oversized expressions
func (e *Engine) validateInput(expression string) error {
	if mrwstringx.IsBlank(expression) {
		return mrwerror.New("expression is empty").
			WithCode(mrwerror.CodeCalcSyntax).
			WithOperation("validate_input")
	}
	if len(expression) > e.options.MaxExpressionLength {
		return mrwerror.New("expression exceeds maximum length").
			WithCode(mrwerror.CodeCalcSyntax).
			WithOperation("validate_input").
			WithDetail("length", len(expression)).
			WithDetail("max_length", e.options.MaxExpressionLength)
	}
	return nil
}

// wrapCalcError converts a classified pipeline error into a foundation
// error carrying the expression and calculator error code
func (e *Engine) wrapCalcError(err error, expression string) error {
	var calcErr *ast.CalcError
	if !errors.As(err, &calcErr) {
		return mrwerror.Wrap(err, "expression evaluation failed").
			WithCode(mrwerror.CodeInternal).
			WithExpression(expression)
	}

	wrapped := mrwerror.Wrap(err, calcErr.Message).
		WithCode(calcErr.Code()).
		WithExpression(expression).
		WithDetail("kind", calcErr.Kind.String()).
		WithDetail("reason", string(calcErr.Reason))
	if calcErr.Position >= 0 {
		wrapped = wrapped.WithDetail("position", calcErr.Position)
	}
	return wrapped
}
