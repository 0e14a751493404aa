package bootstrap

import (
	httpapi "github.com/Angelo270204/prototipado-backend/internal/api/http"
	"github.com/Angelo270204/prototipado-backend/internal/api/http/middleware"
	"github.com/Angelo270204/prototipado-backend/internal/auth"
	chathttp "github.com/Angelo270204/prototipado-backend/internal/chat/http"
	notifhttp "github.com/Angelo270204/prototipado-backend/internal/notifications/http"
	projhttp "github.com/Angelo270204/prototipado-backend/internal/projects/http"
	rosterhttp "github.com/Angelo270204/prototipado-backend/internal/roster/http"
	"github.com/Angelo270204/prototipado-backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Store       storage.Store
	Engine      *Engine
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-User-Id", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(auth.WithUser(dep.Engine.Roster))

	projhttp.Register(api.Group("/projects"), dep.Engine.Projects)
	chathttp.Register(api.Group("/chat"), dep.Engine.Chat)
	notifhttp.Register(api.Group("/notifications"), dep.Engine.Notifications)
	rosterhttp.Register(api.Group("/users"), dep.Engine.Roster)

	return r
}
