package store

import "github.com/onlypets/go-petstore-api/internal/model"

func (s *Store) AddBooking(b model.Booking) {
	s.mu.Lock()
	s.bookings = append(s.bookings, b)
	s.mu.Unlock()
	s.notify()
}

// IsSlotBooked reports whether any booking occupies the (service, date, slot)
// triple. The check is deliberately status-agnostic: a cancelled booking keeps
// blocking its slot, matching the observed behavior this store preserves.
func (s *Store) IsSlotBooked(serviceID, date string, slot model.TimeSlot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ServiceID == serviceID && b.Date == date && b.TimeSlot == slot {
			return true
		}
	}
	return false
}

// CancelBooking marks the booking cancelled. Unknown ids are a silent no-op
// and repeated cancels are idempotent; a cancelled booking never returns to
// confirmed.
func (s *Store) CancelBooking(id string) {
	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = model.BookingCancelled
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) Bookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// UserBookings returns the current user's bookings, empty when signed out.
// Anonymous bookings carry an empty UserID and never match a signed-in user.
func (s *Store) UserBookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	var out []model.Booking
	for _, b := range s.bookings {
		if b.UserID == s.currentUser.ID {
			out = append(out, b)
		}
	}
	return out
}
