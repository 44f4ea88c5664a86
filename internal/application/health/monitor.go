// Package health consulta periódicamente la salud del backend y expone un flag online/offline.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/pkg/logger"
)

// DefaultInterval cadencia de sondeo.
const DefaultInterval = 30 * time.Second

// Status foto del último sondeo.
type Status struct {
	Online    bool
	LastCheck time.Time
	LastError string
}

// Monitor dueño exclusivo del flag online; no comparte más estado.
type Monitor struct {
	probe    ports.HealthProbe
	interval time.Duration
	timeout  time.Duration
	log      *logger.Logger
	onChange func(online bool)

	mu      sync.RWMutex
	status  Status
	stopped bool

	cron     *cron.Cron
	stopOnce sync.Once
	done     chan struct{}
	watch    sync.WaitGroup
	now      func() time.Time
}

// NewMonitor construye el monitor. interval <= 0 usa DefaultInterval.
// onChange (opcional) se invoca tras cada sondeo con el estado resultante.
func NewMonitor(probe ports.HealthProbe, interval time.Duration, log *logger.Logger, onChange func(bool)) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &Monitor{
		probe:    probe,
		interval: interval,
		timeout:  timeout,
		log:      log.Named("health"),
		onChange: onChange,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		done:     make(chan struct{}),
		now:      time.Now,
	}
}

// Start hace un sondeo inmediato y programa los siguientes. Cuando ctx se cancela
// el monitor se detiene solo; Stop también puede llamarse explícitamente.
func (m *Monitor) Start(ctx context.Context) {
	m.Check(ctx)
	m.cron.Schedule(cron.Every(m.interval), cron.FuncJob(func() {
		m.Check(ctx)
	}))
	m.cron.Start()
	m.watch.Add(1)
	go func() {
		defer m.watch.Done()
		select {
		case <-ctx.Done():
			m.Stop()
		case <-m.done:
		}
	}()
}

// Stop cancela el temporizador y espera al sondeo en curso. Después de Stop el estado
// ya no se actualiza.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		<-m.cron.Stop().Done()
		m.mu.Lock()
		m.stopped = true
		m.mu.Unlock()
		close(m.done)
	})
}

// Check ejecuta un sondeo y actualiza el estado.
func (m *Monitor) Check(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.probe.Ping(probeCtx)

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	prev := m.status.Online
	m.status = Status{Online: err == nil, LastCheck: m.now()}
	if err != nil {
		m.status.LastError = err.Error()
	}
	online := m.status.Online
	m.mu.Unlock()

	if prev != online {
		ev := m.log.Info()
		if !online {
			ev = m.log.Warn().Err(err)
		}
		ev.Bool("online", online).Msg("cambio de estado del backend")
	}
	if m.onChange != nil {
		m.onChange(online)
	}
}

// Online flag actual.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Online
}

// Snapshot copia del último estado.
func (m *Monitor) Snapshot() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}
