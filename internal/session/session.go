// ============================================================================
// meinRECHENWERK (mRW) - Wissenschaftlicher Rechner
// ============================================================================
//
// Package:     session
// Description: Calculation session with bounded in-memory history
// Author:      Mike Stoffels with Claude
// Created:     2026-08-19
// License:     MIT
// ============================================================================

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/mRW/foundation/calc"
	mrwerror "github.com/msto63/mRW/foundation/core/error"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/format"
)

// DefaultHistorySize bounds the history when no size is configured
const DefaultHistorySize = 100

// Entry is one completed calculation in the history
type Entry struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Value      float64   `json:"value"`
	Mode       string    `json:"mode"`
	Timestamp  time.Time `json:"timestamp"`
}

// Session couples a calculator engine with a bounded FIFO history.
// Sessions are safe for concurrent use.
type Session struct {
	id      string
	engine  *calc.Engine
	logger  *mrwlog.Logger
	maxSize int

	mu      sync.RWMutex
	history []Entry
}

// Options configures a session
type Options struct {
	// Engine to evaluate with (required)
	Engine *calc.Engine

	// Logger for session operations (optional)
	Logger *mrwlog.Logger

	// HistorySize bounds the history (default: 100; 0 means default)
	HistorySize int
}

// New creates a session with a fresh UUID
func New(opts Options) *Session {
	id := uuid.NewString()

	logger := opts.Logger
	if logger == nil {
		logger = mrwlog.GetDefault()
	}

	size := opts.HistorySize
	if size <= 0 {
		size = DefaultHistorySize
	}

	s := &Session{
		id:      id,
		engine:  opts.Engine,
		logger:  logger.WithField("component", "session").WithSessionID(id),
		maxSize: size,
	}

	s.logger.Info("Session created", mrwlog.Fields{
		"historySize": size,
	})
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Engine returns the underlying calculator engine
func (s *Session) Engine() *calc.Engine {
	return s.engine
}

// Evaluate runs an expression and records it in the history. Failed
// evaluations are not recorded.
func (s *Session) Evaluate(expression string) (*Entry, error) {
	result, err := s.engine.Evaluate(expression)
	if err != nil {
		s.logger.LogError(attachSession(err, s.id))
		return nil, err
	}

	entry := Entry{
		ID:         uuid.NewString(),
		Expression: result.Expression,
		Result:     format.Number(result.Value),
		Value:      result.Value,
		Mode:       result.Mode.String(),
		Timestamp:  time.Now(),
	}

	s.mu.Lock()
	s.history = append(s.history, entry)
	if len(s.history) > s.maxSize {
		s.history = s.history[len(s.history)-s.maxSize:]
	}
	s.mu.Unlock()

	s.logger.Audit("Calculation recorded", mrwlog.Fields{
		"expression": entry.Expression,
		"result":     entry.Result,
		"mode":       entry.Mode,
	})

	return &entry, nil
}

// History returns a copy of the history, oldest first
func (s *Session) History() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// Last returns the most recent entry
func (s *Session) Last() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.history) == 0 {
		return Entry{}, false
	}
	return s.history[len(s.history)-1], true
}

// Len returns the number of history entries
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// ClearHistory removes all history entries
func (s *Session) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()

	s.logger.Info("History cleared")
}

// attachSession stamps the session ID onto foundation errors
func attachSession(err error, id string) error {
	if mrwErr, ok := err.(*mrwerror.Error); ok {
		return mrwErr.WithSessionID(id)
	}
	return err
}
