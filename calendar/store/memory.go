// Package store provides ProfileStore implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	profiles map[calendar.ProfileID]calendar.Profile
	now      func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[calendar.ProfileID]calendar.Profile),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SaveProfile inserts or replaces a profile, keeping the first CreatedAt.
func (m *Memory) SaveProfile(_ context.Context, p calendar.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	p.CreatedAt = now
	if existing, ok := m.profiles[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
	}
	p.UpdatedAt = now
	m.profiles[p.ID] = p
	return nil
}

func (m *Memory) GetProfile(_ context.Context, id calendar.ProfileID) (*calendar.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) ListProfiles(_ context.Context) ([]calendar.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]calendar.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *Memory) DeleteProfile(_ context.Context, id calendar.ProfileID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[id]; !ok {
		return calendar.ErrProfileNotFound
	}
	delete(m.profiles, id)
	return nil
}

var _ calendar.ProfileStore = (*Memory)(nil)
