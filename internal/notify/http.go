package notify

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type addReq struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	// Duration in milliseconds; 0 keeps the notification until deleted,
	// omitted applies the default.
	Duration *int64 `json:"duration"`
}

// Handler exposes the store over REST so the SPA can poll and dismiss
// notifications.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Register attaches notification routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.add)
	rg.GET("", h.list)
	rg.DELETE("/:id", h.remove)
}

func (h *Handler) add(c *gin.Context) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if !ValidKind(req.Kind) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid kind"})
		return
	}
	if req.Duration != nil && *req.Duration < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid duration"})
		return
	}

	var n Notification
	if req.Duration == nil {
		n = h.store.Add(req.Kind, req.Message)
	} else {
		n = h.store.AddWithTTL(req.Kind, req.Message, time.Duration(*req.Duration)*time.Millisecond)
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "notification": n})
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "notifications": h.store.List()})
}

func (h *Handler) remove(c *gin.Context) {
	// Removal is idempotent; unknown ids are fine.
	h.store.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
