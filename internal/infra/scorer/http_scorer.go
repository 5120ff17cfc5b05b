// Package scorer is the HTTP client of the remote classification model.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"newsguard/config"
	deliverycontext "newsguard/internal/delivery/context"
	"newsguard/internal/domain/service"
	"newsguard/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/semaphore"
)

const maxResponseBytes = 1 << 20

// ErrSaturated is returned without calling the model when every slot is busy.
var ErrSaturated = errors.New("scorer saturated")

type scoreRequest struct {
	Text string `json:"text"`
}

// scoreResponse accepts either "label" or "prediction" for the verdict.
// Confidence is kept raw so a non-numeric value drops the field, not the reply.
type scoreResponse struct {
	Label      *string         `json:"label"`
	Prediction *string         `json:"prediction"`
	Confidence json.RawMessage `json:"confidence"`
}

// httpScorer implements Scorer by POSTing the text to the model endpoint.
type httpScorer struct {
	endpoint   string
	httpClient *http.Client
	slots      *semaphore.Weighted
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// Params holds dependencies for the scorer, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// New builds the scorer from scorer.url, scorer.timeout and scorer.maxConcurrent.
func New(params Params) (service.Scorer, error) {
	cfg := params.Config.Scorer
	if cfg.URL == "" {
		return nil, errors.New("scorer.url must be provided")
	}

	return NewHTTPScorer(cfg.URL, cfg.Timeout, cfg.MaxConcurrent, params.Metrics, params.Logger), nil
}

// NewHTTPScorer creates a scorer with an explicit endpoint and limits.
func NewHTTPScorer(endpoint string, timeout time.Duration, maxConcurrent int64, m *metrics.Metrics, logger *slog.Logger) service.Scorer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 32
	}

	return &httpScorer{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		slots:   semaphore.NewWeighted(maxConcurrent),
		metrics: m,
		logger:  logger,
	}
}

// Score makes exactly one call; there are no retries.
func (s *httpScorer) Score(ctx context.Context, text string) (*service.Score, error) {
	if !s.slots.TryAcquire(1) {
		s.observe("saturated", 0)

		return nil, ErrSaturated
	}
	defer s.slots.Release(1)

	start := time.Now()
	score, err := s.call(ctx, text)
	elapsed := time.Since(start)

	if err != nil {
		s.observe("error", elapsed)
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Scorer call failed",
			slog.String("endpoint", s.endpoint),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)

		return nil, err
	}
	s.observe("ok", elapsed)

	return score, nil
}

func (s *httpScorer) call(ctx context.Context, text string) (*service.Score, error) {
	body, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "scorer request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

		return nil, errors.Errorf("scorer returned non-success status: %d", resp.StatusCode)
	}

	var parsed scoreResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode scorer response")
	}

	return parsed.toScore(), nil
}

func (r *scoreResponse) toScore() *service.Score {
	score := &service.Score{}

	switch {
	case r.Label != nil && *r.Label != "":
		score.Label = *r.Label
	case r.Prediction != nil:
		score.Label = *r.Prediction
	}

	if len(r.Confidence) > 0 && !bytes.Equal(r.Confidence, []byte("null")) {
		var confidence float64
		if err := json.Unmarshal(r.Confidence, &confidence); err == nil {
			score.Confidence = &confidence
		}
	}

	return score
}

func (s *httpScorer) observe(outcome string, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveScorer(outcome, elapsed.Seconds())
}
