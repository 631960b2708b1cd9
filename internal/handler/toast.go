package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onlypets/go-petstore-api/internal/dto"
	"github.com/onlypets/go-petstore-api/internal/store"
)

type ToastHandler struct {
	st *store.Store
}

func NewToastHandler(st *store.Store) *ToastHandler {
	return &ToastHandler{st: st}
}

func (h *ToastHandler) List(c *gin.Context) {
	toasts := h.st.Toasts()
	out := make([]dto.ToastResponse, 0, len(toasts))
	for _, t := range toasts {
		out = append(out, dto.ToToastResponse(t))
	}
	c.JSON(http.StatusOK, dto.ToastListResponse{Toasts: out})
}

// Dismiss removes the toast; dismissing an already-expired id is a no-op.
func (h *ToastHandler) Dismiss(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid toast id"})
		return
	}
	h.st.RemoveToast(id)
	c.Status(http.StatusNoContent)
}
