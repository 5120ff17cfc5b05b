package main

import (
	"context"
	"sync"
	"testing"
	"time"

	"newsguard/internal/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestAppGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(appOptions()...))
}

type startupLog struct {
	mu     sync.Mutex
	events []string
	served chan struct{}
}

func (l *startupLog) record(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *startupLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.events...)
}

// migratedStore stands in for a storage provider that prepares its schema on start.
type migratedStore struct{}

type recordingDelivery struct {
	log *startupLog
}

func (d *recordingDelivery) Serve(context.Context) error {
	d.log.record("serve")
	close(d.log.served)

	return nil
}

func TestStartServer_WaitsForStartHooks(t *testing.T) {
	log := &startupLog{served: make(chan struct{})}

	app := fxtest.New(t,
		fx.Supply(log),
		fx.Provide(
			context.Background,
			func(lc fx.Lifecycle, log *startupLog) *migratedStore {
				lc.Append(fx.Hook{OnStart: func(context.Context) error {
					log.record("migrate")

					return nil
				}})

				return &migratedStore{}
			},
			fx.Annotate(
				func(_ *migratedStore, log *startupLog) delivery.Delivery {
					return &recordingDelivery{log: log}
				},
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	)

	assert.Empty(t, log.snapshot(), "nothing serves before start")

	app.RequireStart()
	defer app.RequireStop()

	select {
	case <-log.served:
	case <-time.After(time.Second):
		t.Fatal("delivery was not served")
	}
	assert.Equal(t, []string{"migrate", "serve"}, log.snapshot())
}
