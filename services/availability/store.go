package availability

import (
	"sync"

	"salonbook/models"
)

// Store is the single source of truth for which slots are already taken on
// a calendar day. It is an explicitly owned instance handed to its callers;
// all mutation goes through Reserve and Release, so check-then-act races
// cannot occur outside the store.
//
// Days are keyed by the canonical yyyy-MM-dd string. Each day carries its
// own lock, so reservations for different dates never contend while
// reservations for the same date are linearized.
type Store struct {
	mu   sync.RWMutex
	days map[string]*daySlots
}

type daySlots struct {
	mu     sync.Mutex
	booked map[string]struct{}
}

// NewStore returns an empty availability store.
func NewStore() *Store {
	return &Store{days: make(map[string]*daySlots)}
}

// Warm preloads the index from persisted bookings, typically at startup.
func (s *Store) Warm(bookings []models.Booking) {
	for _, b := range bookings {
		day := s.day(b.Date)
		day.mu.Lock()
		day.booked[b.Time] = struct{}{}
		day.mu.Unlock()
	}
}

// Reserve atomically marks (date, slot) as taken. It returns true when the
// slot was free and is now held by the caller, false when the slot was
// already booked; in the latter case nothing is mutated.
func (s *Store) Reserve(date, slot string) bool {
	day := s.day(date)
	day.mu.Lock()
	defer day.mu.Unlock()

	if _, taken := day.booked[slot]; taken {
		return false
	}
	day.booked[slot] = struct{}{}
	return true
}

// Release removes a hold previously obtained via Reserve. It exists solely
// so the booking engine can roll back a provisional reservation when payment
// or persistence fails; no other caller releases slots.
func (s *Store) Release(date, slot string) {
	s.mu.RLock()
	day, ok := s.days[date]
	s.mu.RUnlock()
	if !ok {
		return
	}
	day.mu.Lock()
	delete(day.booked, slot)
	day.mu.Unlock()
}

// BlockedSlots returns a snapshot of the slots already booked for a date.
// A date with no bookings yields an empty set. Never fails.
func (s *Store) BlockedSlots(date string) map[string]struct{} {
	s.mu.RLock()
	day, ok := s.days[date]
	s.mu.RUnlock()
	if !ok {
		return map[string]struct{}{}
	}

	day.mu.Lock()
	defer day.mu.Unlock()
	out := make(map[string]struct{}, len(day.booked))
	for slot := range day.booked {
		out[slot] = struct{}{}
	}
	return out
}

// day returns the bucket for date, creating it if needed.
func (s *Store) day(date string) *daySlots {
	s.mu.RLock()
	day, ok := s.days[date]
	s.mu.RUnlock()
	if ok {
		return day
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if day, ok = s.days[date]; ok {
		return day
	}
	day = &daySlots{booked: make(map[string]struct{})}
	s.days[date] = day
	return day
}
