// ============================================================================
// meinRECHENWERK (mRW) - Wissenschaftlicher Rechner
// ============================================================================
//
// Package:     integration
// Description: End-to-end tests for the evaluation pipeline through the
//              gateway (REST and WebSocket)
// Author:      Mike Stoffels with Claude
// Created:     2026-08-21
// License:     MIT
// ============================================================================

package integration

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/msto63/mRW/foundation/calc/ast"
	"github.com/msto63/mRW/foundation/core/config"
	"github.com/msto63/mRW/internal/server"
	"github.com/msto63/mRW/internal/session"
)

func TestGateway_EvaluateAndHistory(t *testing.T) {
	ts, sess := startGateway(t, ast.Degrees)

	resp := postJSON(t, ts.URL+"/api/v1/evaluate", server.EvaluateRequest{Expression: "2+3*4"})
	requireEqual(t, http.StatusOK, resp.StatusCode, "evaluate status")

	var result server.EvaluateResponse
	decodeBody(t, resp, &result)
	requireEqual(t, "14", result.Result, "result")
	requireEqual(t, "degrees", result.Mode, "mode")

	resp = postJSON(t, ts.URL+"/api/v1/evaluate", server.EvaluateRequest{Expression: "sin(30)"})
	requireEqual(t, http.StatusOK, resp.StatusCode, "evaluate status")

	histResp, err := http.Get(ts.URL + "/api/v1/history")
	requireNoError(t, err, "GET history")

	var entries []session.Entry
	decodeBody(t, histResp, &entries)
	requireEqual(t, 2, len(entries), "history length")
	requireEqual(t, "2+3*4", entries[0].Expression, "first entry")
	requireEqual(t, "0.5", entries[1].Result, "second entry result")

	requireEqual(t, 2, sess.Len(), "session history length")
}

func TestGateway_ErrorClassification(t *testing.T) {
	ts, _ := startGateway(t, ast.Degrees)

	tests := []struct {
		expression string
		wantStatus int
		wantCode   string
	}{
		{"(2+3", http.StatusBadRequest, "CALC_SYNTAX"},
		{"sqrt(-1)", http.StatusUnprocessableEntity, "CALC_DOMAIN"},
		{"1/0", http.StatusUnprocessableEntity, "CALC_ARITHMETIC"},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/v1/evaluate", server.EvaluateRequest{Expression: tt.expression})
			requireEqual(t, tt.wantStatus, resp.StatusCode, "status")

			var errResp server.ErrorResponse
			decodeBody(t, resp, &errResp)
			requireEqual(t, tt.wantCode, errResp.Code, "error code")
		})
	}
}

func TestGateway_ModeAffectsEvaluation(t *testing.T) {
	ts, _ := startGateway(t, ast.Degrees)

	resp := postJSON(t, ts.URL+"/api/v1/evaluate", server.EvaluateRequest{Expression: "sin(30)"})
	var degResult server.EvaluateResponse
	decodeBody(t, resp, &degResult)
	requireEqual(t, "0.5", degResult.Result, "degrees result")

	toggleResp := postJSON(t, ts.URL+"/api/v1/mode/toggle", nil)
	var mode server.ModeResponse
	decodeBody(t, toggleResp, &mode)
	requireEqual(t, "radians", mode.Mode, "mode after toggle")

	resp = postJSON(t, ts.URL+"/api/v1/evaluate", server.EvaluateRequest{Expression: "sin(π/2)"})
	var radResult server.EvaluateResponse
	decodeBody(t, resp, &radResult)
	requireEqual(t, "1", radResult.Result, "radians result")
}

func TestGateway_WebSocketPipeline(t *testing.T) {
	ts, _ := startGateway(t, ast.Degrees)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	requireNoError(t, err, "dial websocket")
	defer conn.Close()

	payload, _ := json.Marshal(server.WSEvalPayload{Expression: "2^3^2"})
	requireNoError(t, conn.WriteJSON(server.WSMessage{Type: "eval", Payload: payload}), "write eval")

	var resp struct {
		Type    string                  `json:"type"`
		Payload server.EvaluateResponse `json:"payload"`
	}
	requireNoError(t, conn.ReadJSON(&resp), "read result")
	requireEqual(t, "result", resp.Type, "response type")
	requireEqual(t, "512", resp.Payload.Result, "right-associative power")
}

func TestConfigDrivesSessionSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[calculator]
angle_mode = "radians"
history_size = 3
`
	requireNoError(t, os.WriteFile(path, []byte(content), 0o644), "write config")

	cfg, err := config.Load(path)
	requireNoError(t, err, "load config")
	requireEqual(t, false, cfg.DegreeMode(), "configured mode")
	requireEqual(t, 3, cfg.Calculator.HistorySize, "configured history size")
}
