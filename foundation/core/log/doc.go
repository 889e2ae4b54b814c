// File: doc.go
// Title: Core Log Package Documentation
// Description: Package documentation for the mRW structured logging system.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial documentation

/*
Package log provides structured logging for mRW.

Loggers are immutable: With* methods return clones, so a component can derive
its own logger without affecting others:

	logger := mrwlog.GetDefault().WithField("component", "calc-engine")
	logger.Info("engine initialized", mrwlog.Fields{"angleMode": "degrees"})

Output formats are JSON (default), plain text, and a colored console format
for development. The Audit level bypasses level filtering and is used for the
evaluation trail. Timers measure operation latency with optional checkpoints:

	timer := logger.StartTimer("evaluate")
	defer timer.Stop()
*/
package log
