package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alliance-hq/roster/internal/config"
	"github.com/alliance-hq/roster/internal/model"
	"github.com/alliance-hq/roster/internal/service"
)

// NewRouter wires the fixed middleware pipeline and all routes. Mutating
// member endpoints compose RequireAuth -> RequireRole(admin) -> handler;
// read-only endpoints stop at RequireAuth.
func NewRouter(
	logger zerolog.Logger,
	auth *service.AuthService,
	sessions *service.SessionService,
	members *service.MemberService,
	cfg config.ServerConfig,
	appName string,
) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(logger), gin.Recovery())
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(CORSMiddleware(cfg.AllowedOrigins))
	}

	if cfg.TemplateGlob != "" {
		router.LoadHTMLGlob(cfg.TemplateGlob)
	}

	router.GET("/health", Ping)

	authHandler := NewAuthHandler(auth)
	memberHandler := NewMemberHandler(members)
	webHandler := NewWebHandler(auth, sessions, members, appName)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", RequireAuth(auth), authHandler.Logout)
		api.GET("/auth/me", RequireAuth(auth), authHandler.Me)

		api.GET("/members", RequireAuth(auth), RequireRole(model.RoleUser), memberHandler.List)
		api.GET("/members/:id", RequireAuth(auth), RequireRole(model.RoleUser), memberHandler.Get)
		api.POST("/members", RequireAuth(auth), RequireRole(model.RoleAdmin), memberHandler.Create)
		api.PUT("/members/:id", RequireAuth(auth), RequireRole(model.RoleAdmin), memberHandler.Update)
		api.DELETE("/members/:id", RequireAuth(auth), RequireRole(model.RoleAdmin), memberHandler.Delete)
	}

	router.GET("/", webHandler.Home)
	router.GET("/about", webHandler.About)
	router.GET("/login", webHandler.LoginForm)
	router.POST("/login", webHandler.LoginSubmit)
	router.GET("/logout", webHandler.Logout)
	router.GET("/members", RequireSession(sessions), webHandler.Members)

	return router
}
