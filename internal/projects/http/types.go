package http

import (
	"github.com/portfolio-hub/portfolio-backend/internal/notify"
	"github.com/portfolio-hub/portfolio-backend/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	catalog *service.Catalog
	toasts  *notify.Store
}

func New(catalog *service.Catalog, toasts *notify.Store) *Handler {
	return &Handler{catalog: catalog, toasts: toasts}
}
