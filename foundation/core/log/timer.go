// File: timer.go
// Title: Performance Timer
// Description: Provides timing functionality for measuring and logging
//              performance metrics. Integrates with the logging system to
//              automatically log timing information for evaluations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with performance timing

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	t.fields[key] = value
	return t
}

// WithFields adds multiple fields to be logged when the timer completes
func (t *Timer) WithFields(fields Fields) *Timer {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// StartTime returns the time the timer was started
func (t *Timer) StartTime() time.Time {
	return t.startTime
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Checkpoint logs an intermediate timing point without stopping the timer
func (t *Timer) Checkpoint(name string) {
	if t.stopped {
		return
	}

	fields := t.fields.Merge(Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed":    t.Elapsed(),
	})
	t.logger.log(t.level, "checkpoint reached", nil, fields)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	fields := t.fields.Merge(Fields{
		"operation": t.operation,
		"duration":  elapsed,
	})
	t.logger.log(t.level, "operation completed", nil, fields)

	return elapsed
}

// StopWithError stops the timer and logs the elapsed time with an error
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	fields := t.fields.Merge(Fields{
		"operation": t.operation,
		"duration":  elapsed,
	})
	t.logger.log(LevelWarn, "operation failed", err, fields)

	return elapsed
}
