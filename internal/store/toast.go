package store

import (
	"time"

	"github.com/onlypets/go-petstore-api/internal/model"
)

// AddToast appends a transient notification. Ids derive from the current time
// in milliseconds and are forced monotonically increasing so two toasts in the
// same millisecond stay distinct.
func (s *Store) AddToast(message string, typ model.ToastType) {
	s.mu.Lock()
	s.addToastLocked(message, typ)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) addToastLocked(message string, typ model.ToastType) {
	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastToastID {
		id = s.lastToastID + 1
	}
	s.lastToastID = id
	s.toasts = append(s.toasts, model.Toast{ID: id, Message: message, Type: typ, CreatedAt: now})
}

// RemoveToast filters the toast out. Removing an id that is already gone is a
// no-op, which makes expiry and explicit dismissal safely overlap.
func (s *Store) RemoveToast(id int64) {
	s.mu.Lock()
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
	s.mu.Unlock()
	s.notify()
}

func (s *Store) Toasts() []model.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// ExpireToasts removes every toast created at or before the cutoff age and
// reports how many were dropped. The expiry worker calls this on a fixed
// interval; display code never has to.
func (s *Store) ExpireToasts(ttl time.Duration) int {
	s.mu.Lock()
	cutoff := s.now().Add(-ttl)
	kept := s.toasts[:0]
	removed := 0
	for _, t := range s.toasts {
		if t.CreatedAt.After(cutoff) {
			kept = append(kept, t)
		} else {
			removed++
		}
	}
	s.toasts = kept
	s.mu.Unlock()

	if removed > 0 {
		s.notify()
	}
	return removed
}
