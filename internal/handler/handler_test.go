package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlypets/go-petstore-api/internal/dto"
	"github.com/onlypets/go-petstore-api/internal/middleware"
	"github.com/onlypets/go-petstore-api/internal/model"
	"github.com/onlypets/go-petstore-api/internal/repository"
	"github.com/onlypets/go-petstore-api/internal/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(repo, EventBus.New(), log)

	authH := NewAuthHandler(st, testSecret, time.Hour)
	catalogH := NewCatalogHandler(st)
	cartH := NewCartHandler(st)
	wishlistH := NewWishlistHandler(st)
	bookingH := NewBookingHandler(st)
	wizardH := NewWizardHandler(st)
	toastH := NewToastHandler(st)

	router := gin.New()
	session := middleware.SessionMiddleware(testSecret, st)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/signup", authH.Signup)
	v1.POST("/auth/login", authH.Login)
	v1.POST("/auth/social", authH.SocialLogin)
	v1.GET("/auth/me", authH.Me)
	v1.POST("/auth/logout", session, authH.Logout)
	v1.PUT("/auth/profile", session, authH.UpdateProfile)

	v1.GET("/pets", catalogH.ListPets)
	v1.GET("/pets/:id", catalogH.GetPet)
	v1.GET("/services", catalogH.ListServices)
	v1.GET("/services/:id", catalogH.GetService)
	v1.GET("/services/:id/slots", bookingH.SlotAvailability)
	v1.GET("/products", catalogH.ListProducts)

	v1.GET("/cart", cartH.GetCart)
	v1.POST("/cart/items", cartH.AddItem)
	v1.PUT("/cart/items/:id", cartH.UpdateItem)
	v1.DELETE("/cart/items/:id", cartH.DeleteItem)
	v1.DELETE("/cart", cartH.ClearCart)

	v1.GET("/wishlist", wishlistH.GetWishlist)
	v1.POST("/wishlist/toggle", wishlistH.Toggle)

	v1.GET("/bookings", session, bookingH.ListMine)
	v1.POST("/bookings/:id/cancel", bookingH.Cancel)

	v1.POST("/wizards", wizardH.Start)
	v1.GET("/wizards/:id", wizardH.Get)
	v1.PUT("/wizards/:id/fields", wizardH.ApplyFields)
	v1.POST("/wizards/:id/next", wizardH.Next)
	v1.POST("/wizards/:id/back", wizardH.Back)
	v1.POST("/wizards/:id/date", wizardH.SelectDate)
	v1.POST("/wizards/:id/slot", wizardH.SelectSlot)

	v1.GET("/toasts", toastH.List)
	v1.DELETE("/toasts/:id", toastH.Dismiss)

	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSignupLoginFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup",
		gin.H{"email": "a@b.com", "password": "Passw0rd1"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	auth := decode[dto.AuthResponse](t, rec)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "a@b.com", auth.User.Email)
	assert.Equal(t, "a", auth.User.Username)

	// Duplicate signup conflicts.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/signup",
		gin.H{"email": "a@b.com", "password": "Other1234"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Wrong password is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		gin.H{"email": "a@b.com", "password": "wrong1234"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		gin.H{"email": "a@b.com", "password": "Passw0rd1"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignup_ValidationErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup",
		gin.H{"email": "not-an-email", "password": "Passw0rd1"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/signup",
		gin.H{"email": "a@b.com", "password": "short"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSocialLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/social", gin.H{"provider": "google"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	auth := decode[dto.AuthResponse](t, rec)
	assert.Contains(t, auth.User.Email, "@google.com")
	assert.NotEmpty(t, auth.Token)
}

func TestProfileUpdate_RequiresSession(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/auth/profile", gin.H{"username": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/signup",
		gin.H{"email": "a@b.com", "password": "Passw0rd1"}, "")
	token := decode[dto.AuthResponse](t, rec).Token

	rec = doJSON(t, router, http.MethodPut, "/api/v1/auth/profile", gin.H{"username": "renamed"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode[dto.UserResponse](t, rec)
	assert.Equal(t, "renamed", user.Username)
}

func TestSession_InvalidAfterLogout(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup",
		gin.H{"email": "a@b.com", "password": "Passw0rd1"}, "")
	token := decode[dto.AuthResponse](t, rec).Token

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// The token still parses but no longer names the current user.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/bookings", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListPets_SpeciesFilter(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/pets", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[map[string][]dto.PetResponse](t, rec)
	assert.Len(t, all["pets"], 12)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/pets?species=Bird", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	birds := decode[map[string][]dto.PetResponse](t, rec)
	assert.Len(t, birds["pets"], 2)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/pets?species=Fish", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPet(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/pets/pet_01", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	pet := decode[dto.PetResponse](t, rec)
	assert.Equal(t, "Buddy", pet.Name)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/pets/pet_99", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "prod_01"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "prod_01"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil, "")
	cart := decode[dto.CartResponse](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "3000", cart.Total.String())

	// Quantity zero removes the line.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/prod_01", gin.H{"quantity": 0}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[dto.CartResponse](t, rec)
	assert.Empty(t, cart.Items)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "prod_99"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistToggle(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/wishlist/toggle", gin.H{"kind": "pet", "id": "pet_01"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[map[string]bool](t, rec)["in_wishlist"])

	rec = doJSON(t, router, http.MethodPost, "/api/v1/wishlist/toggle", gin.H{"kind": "service", "id": "service_01"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/wishlist", nil, "")
	list := decode[dto.WishlistResponse](t, rec)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "pet", list.Items[0].Kind)
	assert.NotNil(t, list.Items[0].Pet)
	assert.Equal(t, "service", list.Items[1].Kind)
	assert.NotNil(t, list.Items[1].Service)

	// Toggling back removes.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wishlist/toggle", gin.H{"kind": "pet", "id": "pet_01"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[map[string]bool](t, rec)["in_wishlist"])
}

func TestServiceWizardOverHTTP(t *testing.T) {
	router, st := newTestRouter(t)
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/wizards",
		gin.H{"kind": "service", "item_id": "service_01"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	wiz := decode[dto.WizardResponse](t, rec)
	id := wiz.ID
	assert.Equal(t, "personal_info", wiz.CurrentStep)
	assert.Equal(t, "Full Grooming Package", wiz.ItemName)
	assert.NotEmpty(t, wiz.Days)

	// Advancing with an empty phone is rejected and the step stays put.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/wizards/"+id+"/fields",
		gin.H{"name": "Jane Doe", "email": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/wizards/"+id+"/fields",
		gin.H{"name": "Jane Doe", "email": "jane@example.com", "phone": "555 123 4567"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "schedule", decode[dto.WizardResponse](t, rec).CurrentStep)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/date", gin.H{"date": date}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/slot", gin.H{"slot": "morning"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/wizards/"+id+"/fields",
		gin.H{"pet_name": "Rex", "pet_breed": "Labrador"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "review_and_confirm", decode[dto.WizardResponse](t, rec).CurrentStep)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	final := decode[dto.WizardResponse](t, rec)
	assert.True(t, final.Completed)

	bookings := st.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, "service_01", bookings[0].ServiceID)
	assert.Equal(t, date, bookings[0].Date)

	// The taken slot now shows booked.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/services/service_01/slots?date="+date, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	slots := decode[dto.SlotAvailabilityResponse](t, rec)
	require.Len(t, slots.Slots, 2)
	assert.True(t, slots.Slots[0].Booked)
	assert.False(t, slots.Slots[1].Booked)
}

func TestWizard_SlotConflictOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	startAndSchedule := func() string {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/wizards",
			gin.H{"kind": "service", "item_id": "service_01"}, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		id := decode[dto.WizardResponse](t, rec).ID

		rec = doJSON(t, router, http.MethodPut, "/api/v1/wizards/"+id+"/fields",
			gin.H{"name": "Jane Doe", "email": "jane@example.com", "phone": "5551234567"}, "")
		require.Equal(t, http.StatusOK, rec.Code)
		rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/date", gin.H{"date": date}, "")
		require.Equal(t, http.StatusOK, rec.Code)
		return id
	}

	// First wizard books the morning slot end to end.
	id := startAndSchedule()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/slot", gin.H{"slot": "morning"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPut, "/api/v1/wizards/"+id+"/fields",
		gin.H{"pet_name": "Rex", "pet_breed": "Labrador"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id+"/next", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// A second wizard cannot take the same slot; the other slot works.
	id2 := startAndSchedule()
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id2+"/slot", gin.H{"slot": "morning"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/wizards/"+id2+"/slot", gin.H{"slot": "afternoon"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWizard_UnknownSession(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/wizards/nope/next", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWizard_UnknownItem(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/wizards",
		gin.H{"kind": "adoption", "item_id": "pet_99"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookings_CancelAndList(t *testing.T) {
	router, st := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup",
		gin.H{"email": "a@b.com", "password": "Passw0rd1"}, "")
	token := decode[dto.AuthResponse](t, rec).Token
	userID := st.CurrentUser().ID

	st.AddBooking(model.Booking{
		ID:        "b1",
		ServiceID: "service_01",
		Date:      time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		TimeSlot:  model.SlotMorning,
		UserID:    userID,
		Status:    model.BookingConfirmed,
	})

	rec = doJSON(t, router, http.MethodGet, "/api/v1/bookings", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dto.BookingListResponse](t, rec)
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, "confirmed", list.Bookings[0].Status)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/bookings/b1/cancel", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/bookings", nil, token)
	list = decode[dto.BookingListResponse](t, rec)
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, "cancelled", list.Bookings[0].Status)
}

func TestToastEndpoints(t *testing.T) {
	router, st := newTestRouter(t)
	st.AddToast("hello", "info")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/toasts", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dto.ToastListResponse](t, rec)
	require.Len(t, list.Toasts, 1)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/toasts/"+strconv.FormatInt(list.Toasts[0].ID, 10), nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, st.Toasts())
}
