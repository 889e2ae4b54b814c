// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across mRW. These codes enable structured
//              error handling, gateway response formatting, and mapping
//              of engine errors onto transport and log output.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with mRW error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for mRW
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Calculator engine
	CodeCalcSyntax     Code = "CALC_SYNTAX"
	CodeCalcDomain     Code = "CALC_DOMAIN"
	CodeCalcArithmetic Code = "CALC_ARITHMETIC"

	// Session and history
	CodeSessionClosed Code = "SESSION_CLOSED"
	CodeHistoryEmpty  Code = "HISTORY_EMPTY"

	// Gateway and network
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeNetworkError       Code = "NETWORK_ERROR"
	CodeProtocolError      Code = "PROTOCOL_ERROR"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeCalcSyntax, CodeCalcDomain, CodeCalcArithmetic,
		CodeSessionClosed, CodeHistoryEmpty,
		CodeServiceUnavailable, CodeNetworkError, CodeProtocolError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeCalcSyntax, CodeCalcDomain, CodeCalcArithmetic:
		return "calculator"
	case CodeSessionClosed, CodeHistoryEmpty:
		return "session"
	case CodeServiceUnavailable, CodeNetworkError, CodeProtocolError:
		return "network"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

// IsUserError returns true for codes caused by user input rather than
// system failure. User errors are expected during normal operation and
// are logged at reduced severity.
func (c Code) IsUserError() bool {
	switch c {
	case CodeCalcSyntax, CodeCalcDomain, CodeCalcArithmetic,
		CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch {
	case code.IsUserError():
		return SeverityLow
	case code.Category() == "configuration":
		return SeverityHigh
	case code == CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
