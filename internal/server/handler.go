package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msto63/mRW/foundation/calc/ast"
	mrwerror "github.com/msto63/mRW/foundation/core/error"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/session"
)

// Handler serves the JSON evaluation API
type Handler struct {
	session *session.Session
	logger  *mrwlog.Logger
}

// NewHandler creates the API handler for a session
func NewHandler(sess *session.Session, logger *mrwlog.Logger) *Handler {
	return &Handler{
		session: sess,
		logger:  logger.WithField("component", "api-handler"),
	}
}

// EvaluateRequest is the body of POST /api/v1/evaluate
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the result of a successful evaluation
type EvaluateResponse struct {
	ID         string  `json:"id"`
	Expression string  `json:"expression"`
	Result     string  `json:"result"`
	Value      float64 `json:"value"`
	Mode       string  `json:"mode"`
}

// ModeResponse reports the current angle mode
type ModeResponse struct {
	Mode string `json:"mode"`
}

// ModeRequest is the body of PUT /api/v1/mode
type ModeRequest struct {
	Mode string `json:"mode"`
}

// ErrorResponse is the body of all error replies
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Register attaches all API routes to the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/evaluate", h.handleEvaluate)
	mux.HandleFunc("GET /api/v1/history", h.handleHistory)
	mux.HandleFunc("DELETE /api/v1/history", h.handleClearHistory)
	mux.HandleFunc("GET /api/v1/mode", h.handleGetMode)
	mux.HandleFunc("PUT /api/v1/mode", h.handleSetMode)
	mux.HandleFunc("POST /api/v1/mode/toggle", h.handleToggleMode)
	mux.HandleFunc("GET /health", h.handleHealth)
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	entry, err := h.session.Evaluate(req.Expression)
	if err != nil {
		h.writeEvaluationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, EvaluateResponse{
		ID:         entry.ID,
		Expression: entry.Expression,
		Result:     entry.Result,
		Value:      entry.Value,
		Mode:       entry.Mode,
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.session.History())
}

func (h *Handler) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	h.session.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetMode(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, ModeResponse{Mode: h.session.Engine().AngleMode().String()})
}

func (h *Handler) handleSetMode(w http.ResponseWriter, r *http.Request) {
	var req ModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	mode, err := ast.ParseAngleMode(req.Mode)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_mode", err.Error())
		return
	}

	h.session.Engine().SetAngleMode(mode)
	h.writeJSON(w, http.StatusOK, ModeResponse{Mode: mode.String()})
}

func (h *Handler) handleToggleMode(w http.ResponseWriter, r *http.Request) {
	mode := h.session.Engine().ToggleAngleMode()
	h.writeJSON(w, http.StatusOK, ModeResponse{Mode: mode.String()})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"session": h.session.ID(),
	})
}

// writeEvaluationError maps classified calculator errors to HTTP replies
func (h *Handler) writeEvaluationError(w http.ResponseWriter, err error) {
	code := mrwerror.GetCode(err)

	status := http.StatusInternalServerError
	var calcErr *ast.CalcError
	if errors.As(err, &calcErr) {
		switch calcErr.Kind {
		case ast.KindSyntax:
			status = http.StatusBadRequest
		case ast.KindDomain, ast.KindArithmetic:
			status = http.StatusUnprocessableEntity
		}
	} else if code.IsUserError() {
		status = http.StatusBadRequest
	}

	h.writeError(w, status, string(code), err.Error())
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorWithErr("Failed to encode response", err)
	}
}
