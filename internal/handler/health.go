package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	dataDir string
}

func NewHealthHandler(dataDir string) *HealthHandler {
	return &HealthHandler{dataDir: dataDir}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz checks the one external dependency: the data directory the user file
// lives in must be writable.
func (h *HealthHandler) Readyz(c *gin.Context) {
	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "data_dir": "unavailable"})
		return
	}

	probe, err := os.CreateTemp(h.dataDir, ".readyz-*")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "data_dir": "not writable"})
		return
	}
	probe.Close()
	os.Remove(probe.Name())

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data_dir": "writable"})
}
