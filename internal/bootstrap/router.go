package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/portfolio-hub/portfolio-backend/internal/api/http"
	"github.com/portfolio-hub/portfolio-backend/internal/api/http/middleware"
	"github.com/portfolio-hub/portfolio-backend/internal/notify"
	"github.com/portfolio-hub/portfolio-backend/internal/prefs"
	projecthttp "github.com/portfolio-hub/portfolio-backend/internal/projects/http"
	"github.com/portfolio-hub/portfolio-backend/internal/projects/service"
	"github.com/portfolio-hub/portfolio-backend/internal/selection"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigin  string
	Catalog     *service.Catalog
	Toasts      *notify.Store
	Selection   *selection.Store
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if dep.CORSOrigin == "" || dep.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{dep.CORSOrigin}
	}
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	projecthttp.New(dep.Catalog, dep.Toasts).Register(api.Group("/projects"))
	notify.NewHandler(dep.Toasts).Register(api.Group("/notifications"))
	selection.NewHandler(dep.Selection, dep.Toasts).Register(api.Group("/selection"))

	if dep.Redis != nil {
		prefs.NewHandler(prefs.NewThemeStore(dep.Redis)).Register(api.Group("/prefs"))
	}

	return r
}
