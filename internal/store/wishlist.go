package store

import "github.com/onlypets/go-petstore-api/internal/model"

// ToggleWishlist removes the item when an entry with the same id exists,
// otherwise appends it. Pets and services share the one list, keyed by id.
func (s *Store) ToggleWishlist(item model.WishlistItem) {
	s.mu.Lock()
	id := item.ItemID()
	found := false
	kept := s.wishlist[:0]
	for _, w := range s.wishlist {
		if w.ItemID() == id {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if found {
		s.wishlist = kept
	} else {
		s.wishlist = append(s.wishlist, item)
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) IsInWishlist(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.wishlist {
		if w.ItemID() == itemID {
			return true
		}
	}
	return false
}

func (s *Store) Wishlist() []model.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WishlistItem, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}
