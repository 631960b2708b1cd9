// Package store is the single source of truth for all mutable application
// state: catalogs, wishlist, cart, bookings, toasts, the current user, and
// modal flags. Every mutation goes through a named operation and ends with a
// synchronous change notification on the event bus.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"

	"github.com/onlypets/go-petstore-api/internal/catalog"
	"github.com/onlypets/go-petstore-api/internal/model"
	"github.com/onlypets/go-petstore-api/internal/repository"
)

// ChangeTopic is published after every completed mutation. Listeners run
// synchronously and must not mutate the store reentrantly.
const ChangeTopic = "store:changed"

type Store struct {
	mu    sync.Mutex
	log   *slog.Logger
	users repository.UserRepository
	bus   EventBus.Bus
	now   func() time.Time

	pets     []model.Pet
	services []model.Service
	products []model.Product

	wishlist []model.WishlistItem
	cart     []model.CartItem
	bookings []model.Booking
	toasts   []model.Toast

	lastToastID int64

	currentUser      *model.User
	authModalOpen    bool
	profileModalOpen bool
}

func New(users repository.UserRepository, bus EventBus.Bus, log *slog.Logger) *Store {
	s := &Store{
		log:      log,
		users:    users,
		bus:      bus,
		now:      time.Now,
		pets:     catalog.Pets(),
		services: catalog.Services(),
		products: catalog.Products(),
	}
	s.loadCurrentUser()
	return s
}

// SeedDemoBooking pre-occupies one slot so conflict behavior is observable on
// a fresh install.
func (s *Store) SeedDemoBooking() {
	s.mu.Lock()
	s.bookings = append(s.bookings, catalog.DemoBooking(s.now()))
	s.mu.Unlock()
	s.notify()
}

// OnChange registers a listener invoked synchronously after every mutation.
func (s *Store) OnChange(fn func()) {
	if err := s.bus.Subscribe(ChangeTopic, fn); err != nil {
		s.log.Error("subscribe change listener", "error", err)
	}
}

// notify fires the change fan-out. Callers must not hold the store lock:
// listeners are free to read back through the public API.
func (s *Store) notify() {
	s.bus.Publish(ChangeTopic)
}

// loadCurrentUser restores the active session from the users file, if any.
// Unreadable or corrupt files degrade to "no session".
func (s *Store) loadCurrentUser() {
	users, err := s.users.LoadAll()
	if err != nil {
		s.log.Error("load users", "error", err)
		return
	}
	s.currentUser = repository.FindCurrent(users)
}

// --- catalog reads ---

func (s *Store) Pets() []model.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Pet, len(s.pets))
	copy(out, s.pets)
	return out
}

func (s *Store) PetByID(id string) (model.Pet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pets {
		if p.ID == id {
			return p, true
		}
	}
	return model.Pet{}, false
}

func (s *Store) Services() []model.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Service, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Store) ServiceByID(id string) (model.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return model.Service{}, false
}

func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// --- modal flags ---

func (s *Store) SetAuthModalOpen(open bool) {
	s.mu.Lock()
	s.authModalOpen = open
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetProfileModalOpen(open bool) {
	s.mu.Lock()
	s.profileModalOpen = open
	s.mu.Unlock()
	s.notify()
}

func (s *Store) AuthModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authModalOpen
}

func (s *Store) ProfileModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileModalOpen
}

// Snapshot is the read contract for the presentation layer: copies of every
// collection plus session and modal state, consistent at a single point.
type Snapshot struct {
	Pets             []model.Pet
	Services         []model.Service
	Products         []model.Product
	Wishlist         []model.WishlistItem
	Cart             []model.CartItem
	Bookings         []model.Booking
	Toasts           []model.Toast
	CurrentUser      *model.User
	AuthModalOpen    bool
	ProfileModalOpen bool
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Pets:             make([]model.Pet, len(s.pets)),
		Services:         make([]model.Service, len(s.services)),
		Products:         make([]model.Product, len(s.products)),
		Wishlist:         make([]model.WishlistItem, len(s.wishlist)),
		Cart:             make([]model.CartItem, len(s.cart)),
		Bookings:         make([]model.Booking, len(s.bookings)),
		Toasts:           make([]model.Toast, len(s.toasts)),
		AuthModalOpen:    s.authModalOpen,
		ProfileModalOpen: s.profileModalOpen,
	}
	copy(snap.Pets, s.pets)
	copy(snap.Services, s.services)
	copy(snap.Products, s.products)
	copy(snap.Wishlist, s.wishlist)
	copy(snap.Cart, s.cart)
	copy(snap.Bookings, s.bookings)
	copy(snap.Toasts, s.toasts)
	if s.currentUser != nil {
		u := *s.currentUser
		snap.CurrentUser = &u
	}
	return snap
}
