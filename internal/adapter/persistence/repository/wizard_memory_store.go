package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"monhajj/internal/domain/wizard"
	"monhajj/internal/usecase/interfaces"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// WizardMemoryStore is the single-process wizard store used for local runs.
// States are stored encoded, like in Redis, so callers never share slices.
// Expired wizards are swept on Save, at most once per ttl.
type WizardMemoryStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

var _ interfaces.IWizardStore = (*WizardMemoryStore)(nil)

func NewWizardMemoryStore(ttl time.Duration) *WizardMemoryStore {
	return &WizardMemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *WizardMemoryStore) Save(_ context.Context, st wizard.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e := memoryEntry{data: b}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
		if now.Sub(s.lastSweep) >= s.ttl {
			s.sweep(now)
		}
	}
	s.entries[st.ID] = e
	return nil
}

func (s *WizardMemoryStore) sweep(now time.Time) {
	for id, e := range s.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}

func (s *WizardMemoryStore) Get(_ context.Context, id string) (wizard.State, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return wizard.State{}, nil
	}
	return decodeWizardState(e.data)
}
