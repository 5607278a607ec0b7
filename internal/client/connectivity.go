package client

import (
	"context"
	"sync"
	"time"

	"github.com/avelichko/spellsync/internal/adapter"
	"github.com/avelichko/spellsync/internal/logger"
)

// defaultProbeInterval is how often the remote health endpoint is probed when
// no interval is given.
const defaultProbeInterval = 15 * time.Second

// connectivityMonitor derives an online/offline signal by probing the remote
// health endpoint on a ticker. Until the first probe completes the monitor
// reports offline, so an early sync trigger fails fast instead of timing out.
type connectivityMonitor struct {
	remote adapter.RemoteService
	logger *logger.Logger

	mu        sync.Mutex
	online    bool
	nextSubID int
	subs      map[int]func(online bool)

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityMonitor creates an idle monitor; call Start to begin
// probing.
func NewConnectivityMonitor(remote adapter.RemoteService, logger *logger.Logger) *connectivityMonitor {
	return &connectivityMonitor{
		remote: remote,
		logger: logger,
		subs:   make(map[int]func(bool)),
	}
}

// Online implements [service.Connectivity].
func (m *connectivityMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe implements [service.Connectivity]. fn is invoked on every
// transition between online and offline; the current state is not replayed.
func (m *connectivityMonitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Start launches the probe loop. A non-positive interval defaults to 15
// seconds. The first probe runs immediately so startup does not wait a full
// tick for a usable signal.
func (m *connectivityMonitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	m.Stop()

	m.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		m.probe(probeCtx)

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				m.probe(probeCtx)
			}
		}
	}()
}

func (m *connectivityMonitor) probe(ctx context.Context) {
	err := m.remote.Ping(ctx)
	m.setOnline(err == nil)
}

// setOnline records the probe result and notifies subscribers on a state
// transition. Callbacks run outside the lock so a subscriber may call back
// into the monitor.
func (m *connectivityMonitor) setOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	if online {
		m.logger.Info().Msg("remote service reachable")
	} else {
		m.logger.Warn().Msg("remote service unreachable, queueing locally")
	}

	for _, fn := range subs {
		fn(online)
	}
}

// Stop halts the probe loop and blocks until it has exited. Safe to call when
// the monitor is not running.
func (m *connectivityMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}
