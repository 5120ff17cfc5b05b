package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsguard/config"
	deliverycontext "newsguard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "client id reused", incoming: "client-123", reuse: true},
		{name: "missing id minted", incoming: ""},
		{name: "malformed id replaced", incoming: "bad id\nwith newline"},
		{name: "oversized id replaced", incoming: strings.Repeat("a", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			var hasLogger bool
			handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})

			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenInContext)
			assert.True(t, hasLogger)
			if tt.reuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		want    string
	}{
		{
			name:    "success hidden outside debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			want:    "",
		},
		{
			name:    "success logged in debug",
			debug:   true,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			want:    "level=INFO",
		},
		{
			name:    "client error",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusNotFound) },
			want:    "level=WARN",
		},
		{
			name:    "handler error goes through error handler",
			handler: func(echo.Context) error { return errors.New("boom") },
			want:    "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			require.NoError(t, NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c))

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "uri=/x")
		})
	}
}
