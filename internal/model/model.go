package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Species string

const (
	SpeciesDog   Species = "Dog"
	SpeciesCat   Species = "Cat"
	SpeciesBird  Species = "Bird"
	SpeciesOther Species = "Other"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

type Pet struct {
	ID          string
	Name        string
	Species     Species
	Breed       string
	Age         int
	Description string
	QuickFacts  []string
	ImageURLs   []string
}

type Service struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Duration    int // minutes
	Activities  []string
	Notes       string
}

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Image string
}

// CartItem carries the product id as its own id; repeated adds merge into Quantity.
type CartItem struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Image    string
	Quantity int
}

// Booking dates are plain "YYYY-MM-DD" strings; slots are coarse half-day windows.
// UserID is always present, empty when the booking was made signed out.
type Booking struct {
	ID        string
	ServiceID string
	Date      string
	TimeSlot  TimeSlot
	UserID    string
	Status    BookingStatus
}

type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
	Password       string `json:"password"`
}

type Toast struct {
	ID        int64
	Message   string
	Type      ToastType
	CreatedAt time.Time
}

type WishlistKind string

const (
	WishlistPet     WishlistKind = "pet"
	WishlistService WishlistKind = "service"
)

// WishlistItem is a tagged union: exactly one of Pet or Service is set,
// matching Kind. Pets and services share one wishlist keyed by id.
type WishlistItem struct {
	Kind    WishlistKind
	Pet     *Pet
	Service *Service
}

func (w WishlistItem) ItemID() string {
	switch w.Kind {
	case WishlistPet:
		if w.Pet != nil {
			return w.Pet.ID
		}
	case WishlistService:
		if w.Service != nil {
			return w.Service.ID
		}
	}
	return ""
}

func PetItem(p *Pet) WishlistItem { return WishlistItem{Kind: WishlistPet, Pet: p} }

func ServiceItem(s *Service) WishlistItem {
	return WishlistItem{Kind: WishlistService, Service: s}
}
