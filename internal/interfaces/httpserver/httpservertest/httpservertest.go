// Package httpservertest serves the full HTTP API over an in-memory store for tests.
package httpservertest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/config"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/repositorytest"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/conversationhandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/messagehandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/stephandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/workflowhandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/workingmemoryhandler"
	v1 "github.com/janhq/agent-memory-store/internal/interfaces/httpserver/routes/v1"
)

// Server is the assembled API plus the services behind it.
type Server struct {
	*repositorytest.Services
	HTTP *httpserver.HTTPServer
}

// Config returns the settings used by New.
func Config() *config.Config {
	return &config.Config{
		ServiceName:        "memory-store-test",
		Environment:        "test",
		RequestTimeout:     5 * time.Second,
		ShutdownTimeout:    time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
}

// New builds the HTTP server over services private to t.
func New(t testing.TB, opts ...repositorytest.Option) *Server {
	t.Helper()
	return NewWithConfig(t, Config(), opts...)
}

// NewWithConfig is New with explicit server settings.
func NewWithConfig(t testing.TB, cfg *config.Config, opts ...repositorytest.Option) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	services := repositorytest.New(t, opts...)
	log := zerolog.Nop()
	route := v1.NewV1Route(
		conversationhandler.NewConversationHandler(services.Conversations, log),
		messagehandler.NewMessageHandler(services.Messages, log),
		stephandler.NewStepHandler(services.Steps, log),
		workingmemoryhandler.NewWorkingMemoryHandler(services.WorkingMemory, log),
		workflowhandler.NewWorkflowHandler(services.Workflows, log),
	)
	return &Server{
		Services: services,
		HTTP:     httpserver.NewHTTPServer(cfg, log, services.DB.DB(), route),
	}
}

// Do sends a request straight to the engine. A non-nil body is encoded as JSON.
func (s *Server) Do(t testing.TB, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.HTTP.Handler().ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals the recorded body into out.
func Decode(t testing.TB, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

// ErrorBody is the decoded error envelope.
type ErrorBody struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      string `json:"code"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

// RequireError asserts the status code and returns the decoded error envelope.
func RequireError(t testing.TB, rec *httptest.ResponseRecorder, status int) ErrorBody {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	var body ErrorBody
	Decode(t, rec, &body)
	return body
}

// StatusOK asserts a 200 response.
func StatusOK(t testing.TB, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
