package store

import (
	"github.com/shopspring/decimal"

	"github.com/onlypets/go-petstore-api/internal/model"
)

// AddToCart merges repeated adds of the same product into one line item.
func (s *Store) AddToCart(product model.Product) {
	s.mu.Lock()
	merged := false
	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, model.CartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: 1,
		})
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	s.removeFromCartLocked(productID)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) removeFromCartLocked(productID string) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
}

// UpdateCartQuantity sets the line quantity; zero or negative removes the line
// entirely. Unknown ids are a no-op.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	if quantity <= 0 {
		s.removeFromCartLocked(productID)
	} else {
		for i := range s.cart {
			if s.cart[i].ID == productID {
				s.cart[i].Quantity = quantity
				break
			}
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
	s.notify()
}

func (s *Store) Cart() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, item := range s.cart {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
