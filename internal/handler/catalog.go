package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlypets/go-petstore-api/internal/dto"
	"github.com/onlypets/go-petstore-api/internal/model"
	"github.com/onlypets/go-petstore-api/internal/store"
)

type CatalogHandler struct {
	st *store.Store
}

func NewCatalogHandler(st *store.Store) *CatalogHandler {
	return &CatalogHandler{st: st}
}

func (h *CatalogHandler) ListPets(c *gin.Context) {
	var req dto.ListPetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pets := h.st.Pets()
	out := make([]dto.PetResponse, 0, len(pets))
	for _, p := range pets {
		if req.Species != "" && p.Species != model.Species(req.Species) {
			continue
		}
		out = append(out, dto.ToPetResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"pets": out})
}

func (h *CatalogHandler) GetPet(c *gin.Context) {
	pet, ok := h.st.PetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPetResponse(pet))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services := h.st.Services()
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, dto.ToServiceResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, ok := h.st.ServiceByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(svc))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.st.Products()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}
