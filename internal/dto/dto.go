package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/onlypets/go-petstore-api/internal/model"
)

// --- Auth ---

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SocialLoginRequest struct {
	Provider string `json:"provider" binding:"required"`
}

type UpdateProfileRequest struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

// --- Catalog ---

type ListPetsRequest struct {
	Species string `form:"species" binding:"omitempty,oneof=Dog Cat Bird Other"`
}

type PetResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Species     string   `json:"species"`
	Breed       string   `json:"breed"`
	Age         int      `json:"age"`
	Description string   `json:"description"`
	QuickFacts  []string `json:"quick_facts"`
	ImageURLs   []string `json:"image_urls"`
}

type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Duration    int             `json:"duration"`
	Activities  []string        `json:"activities"`
	Notes       string          `json:"notes,omitempty"`
}

type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Quantity is a pointer so zero is a valid, present value: zero and negative
// both remove the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CartItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// --- Wishlist ---

type ToggleWishlistRequest struct {
	Kind string `json:"kind" binding:"required,oneof=pet service"`
	ID   string `json:"id" binding:"required"`
}

type WishlistItemResponse struct {
	Kind    string           `json:"kind"`
	Pet     *PetResponse     `json:"pet,omitempty"`
	Service *ServiceResponse `json:"service,omitempty"`
}

type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
}

// --- Bookings ---

type BookingResponse struct {
	ID        string `json:"id"`
	ServiceID string `json:"service_id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type SlotResponse struct {
	Slot   string `json:"slot"`
	Booked bool   `json:"booked"`
}

type SlotAvailabilityResponse struct {
	ServiceID string         `json:"service_id"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// --- Wizard ---

type StartWizardRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=adoption service"`
	ItemID string `json:"item_id" binding:"required"`
}

// WizardFieldsRequest stages form values for the wizard's current step; only
// the fields belonging to that step are persisted on navigation.
type WizardFieldsRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AdoptionReason  string `json:"adoption_reason"`
	HomeEnvironment string `json:"home_environment"`
	PetName         string `json:"pet_name"`
	PetBreed        string `json:"pet_breed"`
	SpecialNotes    string `json:"special_notes"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectSlotRequest struct {
	Slot string `json:"slot" binding:"required,oneof=morning afternoon"`
}

type DraftResponse struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AdoptionReason  string `json:"adoption_reason,omitempty"`
	HomeEnvironment string `json:"home_environment,omitempty"`
	AppointmentDate string `json:"appointment_date,omitempty"`
	AppointmentTime string `json:"appointment_time,omitempty"`
	PetName         string `json:"pet_name,omitempty"`
	PetBreed        string `json:"pet_breed,omitempty"`
	SpecialNotes    string `json:"special_notes,omitempty"`
}

type DayResponse struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}

type WizardResponse struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	ItemID      string        `json:"item_id"`
	ItemName    string        `json:"item_name"`
	Steps       []string      `json:"steps"`
	StepIndex   int           `json:"step_index"`
	CurrentStep string        `json:"current_step"`
	Completed   bool          `json:"completed"`
	Draft       DraftResponse `json:"draft"`
	Month       string        `json:"month,omitempty"`
	Days        []DayResponse `json:"days,omitempty"`
}

// --- Toasts ---

type ToastResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type ToastListResponse struct {
	Toasts []ToastResponse `json:"toasts"`
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Username: u.Username, ProfilePicture: u.ProfilePicture}
}

func ToPetResponse(p model.Pet) PetResponse {
	return PetResponse{
		ID: p.ID, Name: p.Name, Species: string(p.Species), Breed: p.Breed, Age: p.Age,
		Description: p.Description, QuickFacts: p.QuickFacts, ImageURLs: p.ImageURLs,
	}
}

func ToServiceResponse(s model.Service) ServiceResponse {
	return ServiceResponse{
		ID: s.ID, Name: s.Name, Description: s.Description, Price: s.Price,
		ImageURL: s.ImageURL, Duration: s.Duration, Activities: s.Activities, Notes: s.Notes,
	}
}

func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}
}

func ToBookingResponse(b model.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID, ServiceID: b.ServiceID, Date: b.Date,
		TimeSlot: string(b.TimeSlot), UserID: b.UserID, Status: string(b.Status),
	}
}

func ToToastResponse(t model.Toast) ToastResponse {
	return ToastResponse{ID: t.ID, Message: t.Message, Type: string(t.Type), CreatedAt: t.CreatedAt}
}
