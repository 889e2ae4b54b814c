package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/msto63/mRW/foundation/calc/ast"
	mrwerror "github.com/msto63/mRW/foundation/core/error"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/session"
)

// WebSocket upgrader with permissive settings for local use
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local use
	},
}

// WebSocketHandler handles WebSocket connections for interactive evaluation
type WebSocketHandler struct {
	session *session.Session
	logger  *mrwlog.Logger
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(sess *session.Session, logger *mrwlog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		session: sess,
		logger:  logger.WithField("component", "ws-handler"),
	}
}

// WSMessage represents an incoming WebSocket message
type WSMessage struct {
	Type    string          `json:"type"`    // "eval", "mode", "history", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSEvalPayload carries the expression for an "eval" message
type WSEvalPayload struct {
	Expression string `json:"expression"`
}

// WSModePayload carries the target mode for a "mode" message; an empty
// mode requests a toggle
type WSModePayload struct {
	Mode string `json:"mode,omitempty"`
}

// WSResponse represents an outgoing WebSocket message
type WSResponse struct {
	Type    string      `json:"type"`    // "result", "mode", "history", "error", "pong"
	Payload interface{} `json:"payload"` // Response-specific payload
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.ErrorWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection serves a single WebSocket connection until it closes
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	h.logger.Info("WebSocket connection established", mrwlog.Fields{
		"remote": conn.RemoteAddr().String(),
	})

	conn.SetReadDeadline(time.Now().Add(120 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.ErrorWithErr("WebSocket read error", err)
			} else {
				h.logger.Info("WebSocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, WSResponse{Type: "pong", Payload: nil})

		case "eval":
			var payload WSEvalPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(conn, "invalid_payload", "Invalid eval payload")
				continue
			}
			h.handleEval(conn, payload)

		case "mode":
			var payload WSModePayload
			if msg.Payload != nil {
				if err := json.Unmarshal(msg.Payload, &payload); err != nil {
					h.sendError(conn, "invalid_payload", "Invalid mode payload")
					continue
				}
			}
			h.handleMode(conn, payload)

		case "history":
			h.sendResponse(conn, WSResponse{Type: "history", Payload: h.session.History()})

		default:
			h.sendError(conn, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

// handleEval evaluates an expression and replies with result or error
func (h *WebSocketHandler) handleEval(conn *websocket.Conn, payload WSEvalPayload) {
	entry, err := h.session.Evaluate(payload.Expression)
	if err != nil {
		code := string(mrwerror.GetCode(err))
		var calcErr *ast.CalcError
		if errors.As(err, &calcErr) {
			code = string(calcErr.Code())
		}
		h.sendError(conn, code, err.Error())
		return
	}

	h.sendResponse(conn, WSResponse{
		Type: "result",
		Payload: EvaluateResponse{
			ID:         entry.ID,
			Expression: entry.Expression,
			Result:     entry.Result,
			Value:      entry.Value,
			Mode:       entry.Mode,
		},
	})
}

// handleMode sets or toggles the angle mode
func (h *WebSocketHandler) handleMode(conn *websocket.Conn, payload WSModePayload) {
	engine := h.session.Engine()

	var mode ast.AngleMode
	if payload.Mode == "" {
		mode = engine.ToggleAngleMode()
	} else {
		parsed, err := ast.ParseAngleMode(payload.Mode)
		if err != nil {
			h.sendError(conn, "invalid_mode", err.Error())
			return
		}
		engine.SetAngleMode(parsed)
		mode = parsed
	}

	h.sendResponse(conn, WSResponse{Type: "mode", Payload: ModeResponse{Mode: mode.String()}})
}

// sendResponse sends a response message via WebSocket
func (h *WebSocketHandler) sendResponse(conn *websocket.Conn, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.ErrorWithErr("WebSocket send error", err)
	}
}

// sendError sends an error response via WebSocket
func (h *WebSocketHandler) sendError(conn *websocket.Conn, code, message string) {
	h.sendResponse(conn, WSResponse{
		Type: "error",
		Payload: WSErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}
