package store

import (
	"errors"
	"sync"

	"github.com/octobees/huntflow/api/internal/entity"
)

// ErrLeadNotFound is returned when no lead matches the requested id.
var ErrLeadNotFound = errors.New("lead not found")

// Memory is the single shared session store. It owns the lead collection, the
// operator profile, the campaign counters and the transient hunt log. All of it
// lives for one process lifetime only; nothing is persisted.
type Memory struct {
	mu      sync.RWMutex
	leads   []entity.Lead
	profile entity.UserProfile
	stats   entity.CampaignStats
	huntLog []entity.LogEntry
}

// NewMemory creates a store seeded with the given profile and stats snapshot.
func NewMemory(profile entity.UserProfile, stats entity.CampaignStats) *Memory {
	return &Memory{profile: profile, stats: stats}
}

// PrependLeads inserts a batch at the front of the collection, newest first.
// Batches are never deduplicated against existing leads.
func (m *Memory) PrependLeads(batch []entity.Lead) {
	if len(batch) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads = append(append([]entity.Lead{}, batch...), m.leads...)
}

// Leads returns a snapshot copy of the collection.
func (m *Memory) Leads() []entity.Lead {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.Lead, len(m.leads))
	copy(out, m.leads)
	return out
}

// Lead returns the lead with the given id.
func (m *Memory) Lead(id string) (entity.Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return entity.Lead{}, ErrLeadNotFound
}

// UpdateLead applies the mutator to the lead with the given id. The update is
// atomic from the caller's point of view; last write wins.
func (m *Memory) UpdateLead(id string, mutate func(*entity.Lead)) (entity.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.leads {
		if m.leads[i].ID == id {
			mutate(&m.leads[i])
			return m.leads[i], nil
		}
	}
	return entity.Lead{}, ErrLeadNotFound
}

// Profile returns the current operator profile.
func (m *Memory) Profile() entity.UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// SetProfile replaces the operator profile atomically.
func (m *Memory) SetProfile(p entity.UserProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
}

// Stats returns the campaign counters with the live collection folded in.
func (m *Memory) Stats() entity.CampaignStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.stats
	s.TotalLeads += len(m.leads)
	for _, l := range m.leads {
		switch l.Status {
		case entity.StatusConverted, entity.StatusBlacklisted:
		default:
			s.ActiveLeads++
		}
	}
	return s
}

// IncrementEmailsSent bumps the outreach counter.
func (m *Memory) IncrementEmailsSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.EmailsSent++
}

// ResetLog discards the previous hunt narrative.
func (m *Memory) ResetLog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.huntLog = m.huntLog[:0]
}

// AppendLog adds one entry to the hunt narrative.
func (m *Memory) AppendLog(e entity.LogEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.huntLog = append(m.huntLog, e)
}

// LogEntries returns a snapshot copy of the hunt narrative.
func (m *Memory) LogEntries() []entity.LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.LogEntry, len(m.huntLog))
	copy(out, m.huntLog)
	return out
}
