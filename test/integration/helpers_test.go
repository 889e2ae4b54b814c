package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msto63/mRW/foundation/calc"
	"github.com/msto63/mRW/foundation/calc/ast"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/server"
	"github.com/msto63/mRW/internal/session"
)

// startGateway spins up an in-process gateway on an ephemeral port
func startGateway(t *testing.T, mode ast.AngleMode) (*httptest.Server, *session.Session) {
	t.Helper()

	logger := mrwlog.NewWithConfig(mrwlog.Config{
		Level:  mrwlog.LevelError,
		Format: mrwlog.FormatJSON,
		Output: &bytes.Buffer{},
	})
	sess := session.New(session.Options{
		Engine: calc.NewEngine(calc.Options{
			Logger:    logger,
			AngleMode: mode,
		}),
		Logger: logger,
	})

	mux := http.NewServeMux()
	server.NewHandler(sess, logger).Register(mux)
	mux.Handle("/ws", server.NewWebSocketHandler(sess, logger))

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, sess
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	requireNoError(t, err, "marshal request")

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	requireNoError(t, err, "POST "+url)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	requireNoError(t, json.NewDecoder(resp.Body).Decode(v), "decode response body")
}

func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}
