// Package scanlog keeps the session-scoped scan history: an append-only,
// newest-first sequence held in memory for the lifetime of the process.
// It is never persisted; a restart starts with an empty history.
package scanlog

import (
	"sync"
	"time"

	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/models"
)

// SessionGate reports whether a session is active. The session store
// satisfies this interface.
type SessionGate interface {
	IsAuthenticated() bool
}

// Log is the in-memory scan history. Records are kept newest first.
type Log struct {
	mu      sync.Mutex
	gate    SessionGate
	records []models.ScanRecord

	now func() time.Time // test seam
}

func New(gate SessionGate) *Log {
	return &Log{gate: gate, now: time.Now}
}

// Append stamps the record with the current time and prepends it. A record
// without an owning profile is meaningless, so this fails with
// common.ErrNoActiveSession when no session is active.
func (l *Log) Append(rec models.ScanRecord) error {
	if !l.gate.IsAuthenticated() {
		return common.ErrNoActiveSession
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec.ScannedAt = l.now()
	l.records = append([]models.ScanRecord{rec}, l.records...)
	return nil
}

// All returns a copy of the history, newest first.
func (l *Log) All() []models.ScanRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.ScanRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Clear empties the history unconditionally.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}

// Len reports the number of recorded scans.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
