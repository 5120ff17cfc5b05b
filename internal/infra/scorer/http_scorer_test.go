package scorer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	deliverycontext "newsguard/internal/delivery/context"
	"newsguard/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScorer(url string, timeout time.Duration, maxConcurrent int64) *httpScorer {
	return NewHTTPScorer(url, timeout, maxConcurrent, metrics.New(), newDiscardLogger()).(*httpScorer)
}

func TestHTTPScorer_Score(t *testing.T) {
	var gotBody scoreRequest
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = w.Write([]byte(`{"input_text":"x","prediction":"FAKE","confidence":0.91}`))
	}))
	defer server.Close()

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	score, err := newTestScorer(server.URL, time.Second, 4).Score(ctx, "some article text")
	require.NoError(t, err)

	assert.Equal(t, "some article text", gotBody.Text)
	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, "FAKE", score.Label)
	require.NotNil(t, score.Confidence)
	assert.InDelta(t, 0.91, *score.Confidence, 1e-9)
}

func TestHTTPScorer_ResponseShapes(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantLabel      string
		wantConfidence bool
	}{
		{name: "label wins over prediction", body: `{"label":"REAL","prediction":"FAKE"}`, wantLabel: "REAL"},
		{name: "prediction fallback", body: `{"prediction":"REAL"}`, wantLabel: "REAL"},
		{name: "no label", body: `{"confidence":0.5}`, wantLabel: "", wantConfidence: true},
		{name: "null confidence", body: `{"label":"FAKE","confidence":null}`, wantLabel: "FAKE"},
		{name: "string confidence", body: `{"label":"FAKE","confidence":"high"}`, wantLabel: "FAKE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			score, err := newTestScorer(server.URL, time.Second, 1).Score(context.Background(), "text")
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, score.Label)
			assert.Equal(t, tt.wantConfidence, score.Confidence != nil)
		})
	}
}

func TestHTTPScorer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Model not loaded."}`))
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"label":`))
			},
		},
		{
			name: "not an object",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`"FAKE"`))
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(`{"label":"REAL"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			score, err := newTestScorer(server.URL, 50*time.Millisecond, 1).Score(context.Background(), "text")
			assert.Error(t, err)
			assert.Nil(t, score)
		})
	}
}

func TestHTTPScorer_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestScorer(url, time.Second, 1).Score(context.Background(), "text")
	assert.Error(t, err)
}

func TestHTTPScorer_SaturationFailsFast(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"label":"REAL"}`))
	}))
	defer server.Close()

	s := newTestScorer(server.URL, 5*time.Second, 1)

	done := make(chan error, 1)
	go func() {
		_, err := s.Score(context.Background(), "first")
		done <- err
	}()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	_, err := s.Score(context.Background(), "second")
	assert.ErrorIs(t, err, ErrSaturated)

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load())
}
