package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"newsguard/config"
	deliverycontext "newsguard/internal/delivery/context"
	"newsguard/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func statement() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		elapsed time.Duration
		want    string
	}{
		{name: "failure", err: errors.New("connection reset"), want: "Query failed"},
		{name: "missing row is expected", err: gorm.ErrRecordNotFound, want: ""},
		{name: "duplicate key is expected", err: gorm.ErrDuplicatedKey, want: ""},
		{name: "slow", elapsed: time.Second, want: "Slow query"},
		{name: "fast success is quiet", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), statement, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.want)
				assert.Contains(t, buf.String(), "SELECT 1")
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&base), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), newBufferedLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now(), statement, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
}

func TestGormSlogLogger_DebugLogsEveryStatement(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(newBufferedLogger(&buf), cfg)

	l.Trace(context.Background(), time.Now(), statement, nil)
	assert.Contains(t, buf.String(), "msg=Query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), statement, errors.New("boom"))
	assert.Empty(t, buf.String())
}
