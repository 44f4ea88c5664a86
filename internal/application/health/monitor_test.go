package health_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/partner-portal/internal/application/health"
)

type fakeProbe struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (f *fakeProbe) Ping(_ context.Context) error {
	f.calls.Add(1)
	if f.fail.Load() {
		return errors.New("backend caído")
	}
	return nil
}

func TestCheck_ActualizaFlag(t *testing.T) {
	probe := &fakeProbe{}
	var changes []bool
	m := health.NewMonitor(probe, time.Minute, nil, func(online bool) { changes = append(changes, online) })

	m.Check(context.Background())
	assert.True(t, m.Online())
	assert.False(t, m.Snapshot().LastCheck.IsZero())

	probe.fail.Store(true)
	m.Check(context.Background())
	assert.False(t, m.Online())
	assert.Equal(t, "backend caído", m.Snapshot().LastError)
	assert.Equal(t, []bool{true, false}, changes)
}

func TestStart_SondeoInmediatoYStopAlCancelar(t *testing.T) {
	probe := &fakeProbe{}
	m := health.NewMonitor(probe, time.Hour, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	assert.True(t, m.Online())
	assert.Equal(t, int32(1), probe.calls.Load())

	cancel()
	m.Stop()

	// Tras el teardown el estado ya no cambia.
	probe.fail.Store(true)
	m.Check(context.Background())
	assert.True(t, m.Online())
}

func TestNewMonitor_IntervaloPorDefecto(t *testing.T) {
	assert.Equal(t, 30*time.Second, health.DefaultInterval)
	m := health.NewMonitor(&fakeProbe{}, 0, nil, nil)
	m.Stop()
}
