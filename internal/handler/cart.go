package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlypets/go-petstore-api/internal/dto"
	"github.com/onlypets/go-petstore-api/internal/store"
)

type CartHandler struct {
	st *store.Store
}

func NewCartHandler(st *store.Store) *CartHandler {
	return &CartHandler{st: st}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := h.st.ProductByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	h.st.AddToCart(product)
	c.JSON(http.StatusCreated, h.cartResponse())
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.st.UpdateCartQuantity(c.Param("id"), *req.Quantity)
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	h.st.RemoveFromCart(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.st.ClearCart()
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) cartResponse() dto.CartResponse {
	cart := h.st.Cart()
	items := make([]dto.CartItemResponse, 0, len(cart))
	for _, item := range cart {
		items = append(items, dto.CartItemResponse{
			ID: item.ID, Name: item.Name, Price: item.Price,
			Image: item.Image, Quantity: item.Quantity,
		})
	}
	return dto.CartResponse{Items: items, Total: h.st.CartTotal()}
}
