package guard

import (
	"context"
	"sync"
	"time"
)

const stateRetention = 24 * time.Hour

// MemoryStore is the default single-process store. State older than 24 hours
// (1 hour for blocked events) is pruned on every access, so memory stays
// bounded without a background sweeper.
type MemoryStore struct {
	mu       sync.Mutex
	ipEvents map[string][]time.Time
	dedup    map[string]time.Time
	blocked  []time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ipEvents: make(map[string][]time.Time),
		dedup:    make(map[string]time.Time),
	}
}

func (s *MemoryStore) IPEventCounts(_ context.Context, clientIP string, now time.Time) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trimLocked(now)

	events := pruneBefore(s.ipEvents[clientIP], now.Add(-time.Hour))
	if len(events) == 0 {
		delete(s.ipEvents, clientIP)
	} else {
		s.ipEvents[clientIP] = events
	}

	minuteCutoff := now.Add(-time.Minute)
	minuteCount := 0
	for _, ts := range events {
		if !ts.Before(minuteCutoff) {
			minuteCount++
		}
	}
	return minuteCount, len(events), nil
}

func (s *MemoryStore) RecordIPEvent(_ context.Context, clientIP string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ipEvents[clientIP] = append(s.ipEvents[clientIP], now)
	return nil
}

func (s *MemoryStore) IsDuplicate(_ context.Context, key string, window time.Duration, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trimLocked(now)

	last, ok := s.dedup[key]
	if !ok {
		return false, nil
	}
	return now.Sub(last) < max(window, 0), nil
}

func (s *MemoryStore) RecordDuplicate(_ context.Context, key string, _ time.Duration, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dedup[key] = now
	return nil
}

func (s *MemoryStore) RecordBlocked(_ context.Context, window time.Duration, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trimLocked(now)

	s.blocked = append(s.blocked, now)
	s.blocked = pruneBefore(s.blocked, now.Add(-window))
	return len(s.blocked), nil
}

func (s *MemoryStore) trimLocked(now time.Time) {
	cutoff := now.Add(-stateRetention)

	for ip, events := range s.ipEvents {
		events = pruneBefore(events, cutoff)
		if len(events) == 0 {
			delete(s.ipEvents, ip)
		} else {
			s.ipEvents[ip] = events
		}
	}

	for key, ts := range s.dedup {
		if ts.Before(cutoff) {
			delete(s.dedup, key)
		}
	}

	s.blocked = pruneBefore(s.blocked, now.Add(-time.Hour))
}

func pruneBefore(events []time.Time, cutoff time.Time) []time.Time {
	idx := 0
	for idx < len(events) && events[idx].Before(cutoff) {
		idx++
	}
	return events[idx:]
}
