package selection

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-hub/portfolio-backend/internal/notify"
)

type openReq struct {
	ProjectID string `json:"projectId"`
}

// Handler exposes the details-panel selection over REST. Opening a selection
// also drops an info toast, mirroring the card-click behaviour of the UI.
type Handler struct {
	store  *Store
	toasts *notify.Store
}

func NewHandler(store *Store, toasts *notify.Store) *Handler {
	return &Handler{store: store, toasts: toasts}
}

// Register attaches selection routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.get)
	rg.PUT("", h.open)
	rg.DELETE("", h.close)
	rg.POST("/toggle", h.toggle)
}

func (h *Handler) get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "selection": h.store.Selected()})
}

func (h *Handler) open(c *gin.Context) {
	var req openReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProjectID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	h.store.Open(strings.TrimSpace(req.ProjectID))
	h.toasts.AddWithTTL(notify.KindInfo, "Project details loaded", 2*time.Second)
	c.JSON(http.StatusOK, gin.H{"ok": true, "selection": h.store.Selected()})
}

func (h *Handler) close(c *gin.Context) {
	h.store.Close()
	c.JSON(http.StatusOK, gin.H{"ok": true, "selection": h.store.Selected()})
}

func (h *Handler) toggle(c *gin.Context) {
	h.store.Toggle()
	c.JSON(http.StatusOK, gin.H{"ok": true, "selection": h.store.Selected()})
}
