package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-hub/portfolio-backend/internal/notify"
	"github.com/portfolio-hub/portfolio-backend/internal/projects/domain"
	"github.com/portfolio-hub/portfolio-backend/internal/projects/query"
)

func (h *Handler) list(c *gin.Context) {
	criteria := query.Criteria{
		Query:    c.Query("query"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Sort:     c.DefaultQuery("sort", query.SortRecent),
	}

	if criteria.Status != "" && !domain.ValidStatus(criteria.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
		return
	}
	if criteria.Priority != "" && !domain.ValidPriority(criteria.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid priority"})
		return
	}
	if !query.ValidSort(criteria.Sort) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid sort"})
		return
	}

	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotSet) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing GITHUB_USERNAME"})
			return
		}
		h.toasts.Add(notify.KindError, "Failed to load GitHub projects")
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "failed to fetch projects"})
		return
	}

	view := query.DeriveView(items, criteria)
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"projects": view,
		"total":    len(items),
		"filtered": len(view),
	})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		h.toasts.Add(notify.KindError, "Failed to load GitHub projects")
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}
