package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlypets/go-petstore-api/internal/dto"
	"github.com/onlypets/go-petstore-api/internal/model"
	"github.com/onlypets/go-petstore-api/internal/store"
)

type WishlistHandler struct {
	st *store.Store
}

func NewWishlistHandler(st *store.Store) *WishlistHandler {
	return &WishlistHandler{st: st}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	list := h.st.Wishlist()
	items := make([]dto.WishlistItemResponse, 0, len(list))
	for _, w := range list {
		item := dto.WishlistItemResponse{Kind: string(w.Kind)}
		switch w.Kind {
		case model.WishlistPet:
			p := dto.ToPetResponse(*w.Pet)
			item.Pet = &p
		case model.WishlistService:
			s := dto.ToServiceResponse(*w.Service)
			item.Service = &s
		}
		items = append(items, item)
	}
	c.JSON(http.StatusOK, dto.WishlistResponse{Items: items})
}

// Toggle adds the item when absent and removes it when present.
func (h *WishlistHandler) Toggle(c *gin.Context) {
	var req dto.ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item model.WishlistItem
	switch model.WishlistKind(req.Kind) {
	case model.WishlistPet:
		pet, ok := h.st.PetByID(req.ID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		item = model.PetItem(&pet)
	case model.WishlistService:
		svc, ok := h.st.ServiceByID(req.ID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		item = model.ServiceItem(&svc)
	}

	h.st.ToggleWishlist(item)
	c.JSON(http.StatusOK, gin.H{"in_wishlist": h.st.IsInWishlist(req.ID)})
}
