package prefs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type themeReq struct {
	Theme string `json:"theme"`
}

// Handler exposes the theme preference over REST.
type Handler struct {
	themes *ThemeStore
}

func NewHandler(themes *ThemeStore) *Handler {
	return &Handler{themes: themes}
}

// Register attaches preference routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/theme", h.getTheme)
	rg.PUT("/theme", h.setTheme)
}

func (h *Handler) getTheme(c *gin.Context) {
	theme, err := h.themes.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "theme": theme})
}

func (h *Handler) setTheme(c *gin.Context) {
	var req themeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.themes.Set(c.Request.Context(), req.Theme); err != nil {
		if errors.Is(err, ErrInvalidTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "theme must be \"light\" or \"dark\""})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "theme": req.Theme})
}
