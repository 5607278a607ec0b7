// Package telemetry tracks the local health of the offline queues: per-kind
// counters, the single-flight sync flag, timing of the last sync pass, and a
// bounded in-memory error log. The hub is a purely local observer — nothing
// here is ever transmitted anywhere.
package telemetry

import (
	"sync"
	"time"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/models"
)

// errorLogCapacity bounds the in-memory error log; when full, the oldest
// entry is evicted.
const errorLogCapacity = 50

// Kind identifies one queued-entity family in counters and error sources.
type Kind string

const (
	KindAttempts         Kind = "attempts"
	KindAudio            Kind = "audio"
	KindSrsUpdates       Kind = "srs_updates"
	KindStarTransactions Kind = "star_transactions"
)

// Counters holds the monotonic per-kind event counts since process start.
type Counters struct {
	Queued int `json:"queued"`
	Synced int `json:"synced"`
	Failed int `json:"failed"`
}

// Snapshot is an immutable copy of the hub state handed to subscribers and
// status readers.
type Snapshot struct {
	Counters         map[Kind]Counters
	SyncInProgress   bool
	LastSyncAt       *time.Time
	LastSyncDuration time.Duration
	Errors           []models.QueueError
}

// Hub is the process-wide telemetry aggregate. All methods are safe for
// concurrent use.
type Hub struct {
	mu sync.Mutex

	counters         map[Kind]Counters
	syncInProgress   bool
	lastSyncAt       *time.Time
	lastSyncDuration time.Duration
	errors           []models.QueueError

	nextSubID int
	subs      map[int]func(Snapshot)
	errSubs   map[int]func(models.QueueError)

	logger *logger.Logger
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		counters: make(map[Kind]Counters),
		subs:     make(map[int]func(Snapshot)),
		errSubs:  make(map[int]func(models.QueueError)),
		logger:   logger,
	}
}

// IncQueued records that one item of the given kind entered its queue.
func (h *Hub) IncQueued(kind Kind) {
	h.mu.Lock()
	c := h.counters[kind]
	c.Queued++
	h.counters[kind] = c
	h.mu.Unlock()

	h.notify()
}

// IncSynced records that one item of the given kind was applied remotely.
func (h *Hub) IncSynced(kind Kind) {
	h.mu.Lock()
	c := h.counters[kind]
	c.Synced++
	h.counters[kind] = c
	h.mu.Unlock()

	h.notify()
}

// IncFailed records that one item of the given kind exhausted its retries.
func (h *Hub) IncFailed(kind Kind) {
	h.mu.Lock()
	c := h.counters[kind]
	c.Failed++
	h.counters[kind] = c
	h.mu.Unlock()

	h.notify()
}

// TryBeginSync attempts to claim the single sync-in-progress slot. It
// returns false when another sync pass is already running, in which case the
// caller must not start one.
func (h *Hub) TryBeginSync() bool {
	h.mu.Lock()
	if h.syncInProgress {
		h.mu.Unlock()
		return false
	}
	h.syncInProgress = true
	h.mu.Unlock()

	h.notify()
	return true
}

// EndSync releases the sync slot claimed by TryBeginSync and records the
// pass timing. startedAt is when the finished pass began.
func (h *Hub) EndSync(startedAt time.Time) {
	now := time.Now()

	h.mu.Lock()
	h.syncInProgress = false
	h.lastSyncAt = &now
	h.lastSyncDuration = now.Sub(startedAt)
	h.mu.Unlock()

	h.notify()
}

// SyncInProgress reports whether a sync pass currently holds the slot.
func (h *Hub) SyncInProgress() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.syncInProgress
}

// RecordError appends one entry to the bounded error log, evicting the
// oldest entry when the log is full.
func (h *Hub) RecordError(source, message string) {
	entry := models.QueueError{
		At:      time.Now(),
		Source:  source,
		Message: message,
	}

	h.mu.Lock()
	h.errors = append(h.errors, entry)
	if len(h.errors) > errorLogCapacity {
		h.errors = h.errors[len(h.errors)-errorLogCapacity:]
	}
	errSubs := make([]func(models.QueueError), 0, len(h.errSubs))
	for _, fn := range h.errSubs {
		errSubs = append(errSubs, fn)
	}
	h.mu.Unlock()

	for _, fn := range errSubs {
		h.deliver(func() { fn(entry) })
	}
	h.notify()
}

// Snapshot returns a deep copy of the current hub state.
func (h *Hub) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *Hub) snapshotLocked() Snapshot {
	counters := make(map[Kind]Counters, len(h.counters))
	for k, v := range h.counters {
		counters[k] = v
	}

	errs := make([]models.QueueError, len(h.errors))
	copy(errs, h.errors)

	var lastSyncAt *time.Time
	if h.lastSyncAt != nil {
		at := *h.lastSyncAt
		lastSyncAt = &at
	}

	return Snapshot{
		Counters:         counters,
		SyncInProgress:   h.syncInProgress,
		LastSyncAt:       lastSyncAt,
		LastSyncDuration: h.lastSyncDuration,
		Errors:           errs,
	}
}

// Subscribe registers fn for state-change notifications and returns an
// unsubscribe func. The current snapshot is replayed to fn immediately, so a
// late subscriber never misses counts accumulated before it attached.
func (h *Hub) Subscribe(fn func(Snapshot)) func() {
	h.mu.Lock()
	id := h.nextSubID
	h.nextSubID++
	h.subs[id] = fn
	snap := h.snapshotLocked()
	h.mu.Unlock()

	h.deliver(func() { fn(snap) })

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// SubscribeErrors registers fn to receive each new error-log entry and
// returns an unsubscribe func. Unlike Subscribe, no history is replayed;
// existing entries are available through Snapshot.
func (h *Hub) SubscribeErrors(fn func(models.QueueError)) func() {
	h.mu.Lock()
	id := h.nextSubID
	h.nextSubID++
	h.errSubs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.errSubs, id)
		h.mu.Unlock()
	}
}

func (h *Hub) notify() {
	h.mu.Lock()
	snap := h.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn := fn
		h.deliver(func() { fn(snap) })
	}
}

// deliver invokes one subscriber callback, isolating the hub and the
// remaining subscribers from a panicking listener.
func (h *Hub) deliver(call func()) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Any("panic", r).
				Str("func", "Hub.deliver").
				Msg("telemetry subscriber panicked")
		}
	}()

	call()
}
