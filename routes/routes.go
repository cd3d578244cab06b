package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/config"
	"ridercritic/internal/handlers"
	"ridercritic/internal/middleware"
	"ridercritic/internal/utils"
	"ridercritic/pkg/logger"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Brand      *handlers.BrandHandler
	Type       *handlers.TypeHandler
	Motorcycle *handlers.MotorcycleHandler
	Critic     *handlers.CriticHandler
	Comment    *handlers.CommentHandler
	Comparison *handlers.ComparisonHandler
	Search     *handlers.SearchHandler
	Upload     *handlers.UploadHandler
	User       *handlers.UserHandler
	Admin      *handlers.AdminHandler
}

// SetupRouter wires middleware and all route groups.
func SetupRouter(cfg *config.Config, h *Handlers, log *logger.Logger) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	if cfg.App.EnableLogging {
		router.Use(middleware.RequestLoggingMiddleware(log))
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerMinute, time.Minute)
	router.Use(rateLimiter.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": utils.AppName,
			"version": utils.AppVersion,
		})
	})

	v1 := router.Group("/api/v1")
	authRequired := middleware.AuthRequired(cfg.Security.JWTSecret)
	adminRequired := middleware.AdminRequired()

	setupAuthRoutes(v1, h.Auth, authRequired)
	setupCatalogRoutes(v1, h, authRequired, adminRequired)
	setupCriticRoutes(v1, h, authRequired, adminRequired)
	setupComparisonRoutes(v1, h.Comparison, authRequired)
	setupSearchRoutes(v1, h.Search)
	setupUploadRoutes(v1, h.Upload, authRequired, adminRequired)
	setupUserRoutes(v1, h.User, authRequired, adminRequired)
	setupAdminProxyRoutes(v1, h.Admin)

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, h *handlers.AuthHandler, authRequired gin.HandlerFunc) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.POST("/google", h.GoogleLogin)
		auth.GET("/me", authRequired, h.Me)
	}
}

// Catalog reads are public; writes require an admin role.
func setupCatalogRoutes(v1 *gin.RouterGroup, h *Handlers, authRequired, adminRequired gin.HandlerFunc) {
	brands := v1.Group("/brands")
	{
		brands.GET("", h.Brand.List)
		brands.GET("/:id", h.Brand.Get)
		brands.POST("", authRequired, adminRequired, h.Brand.Create)
		brands.PUT("/:id", authRequired, adminRequired, h.Brand.Update)
		brands.DELETE("/:id", authRequired, adminRequired, h.Brand.Delete)
	}

	types := v1.Group("/types")
	{
		types.GET("", h.Type.List)
		types.GET("/:id", h.Type.Get)
		types.POST("", authRequired, adminRequired, h.Type.Create)
		types.PUT("/:id", authRequired, adminRequired, h.Type.Update)
		types.DELETE("/:id", authRequired, adminRequired, h.Type.Delete)
	}

	motorcycles := v1.Group("/motorcycles")
	{
		motorcycles.GET("", h.Motorcycle.List)
		motorcycles.GET("/:id", h.Motorcycle.Get)
		motorcycles.POST("", authRequired, adminRequired, h.Motorcycle.Create)
		motorcycles.PUT("/:id", authRequired, adminRequired, h.Motorcycle.Update)
		motorcycles.DELETE("/:id", authRequired, adminRequired, h.Motorcycle.Delete)
		motorcycles.POST("/bulk-delete", authRequired, adminRequired, h.Motorcycle.BulkDelete)
	}
}

func setupCriticRoutes(v1 *gin.RouterGroup, h *Handlers, authRequired, adminRequired gin.HandlerFunc) {
	critics := v1.Group("/critics")
	{
		critics.GET("", h.Critic.List)
		critics.GET("/:id", h.Critic.Get)
		critics.POST("", h.Critic.Create)
		critics.PUT("/:id", authRequired, adminRequired, h.Critic.Update)
		critics.PUT("/:id/status", authRequired, adminRequired, h.Critic.SetStatus)
		critics.DELETE("/:id", authRequired, adminRequired, h.Critic.Delete)

		critics.GET("/:id/comments", h.Comment.ListByCritic)
		critics.POST("/:id/comments", h.Comment.Create)
		critics.DELETE("/:id/comments/:commentId", authRequired, adminRequired, h.Comment.Delete)
	}
}

func setupComparisonRoutes(v1 *gin.RouterGroup, h *handlers.ComparisonHandler, authRequired gin.HandlerFunc) {
	comparisons := v1.Group("/comparisons")
	{
		comparisons.GET("", h.List)
		comparisons.GET("/:id", h.Get)
		comparisons.POST("", authRequired, h.Create)
	}

	// Lives outside /comparisons so the static segment cannot collide
	// with the :id wildcard.
	v1.GET("/me/comparisons", authRequired, h.ListMine)
}

func setupSearchRoutes(v1 *gin.RouterGroup, h *handlers.SearchHandler) {
	v1.GET("/search/suggest", h.Suggest)
}

func setupUploadRoutes(v1 *gin.RouterGroup, h *handlers.UploadHandler, authRequired, adminRequired gin.HandlerFunc) {
	uploads := v1.Group("/uploads", authRequired, adminRequired)
	{
		uploads.POST("/images", h.UploadImage)
		uploads.DELETE("/images", h.DeleteImage)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, h *handlers.UserHandler, authRequired, adminRequired gin.HandlerFunc) {
	users := v1.Group("/users", authRequired, adminRequired)
	{
		users.GET("", h.List)
		users.GET("/:uid", h.Get)
		users.PUT("/:uid/role", h.UpdateRole)
	}
}

// The admin proxy does not use local JWT auth: the upstream backend
// validates its own bearer tokens.
func setupAdminProxyRoutes(v1 *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := v1.Group("/admin")
	{
		admin.POST("/auth/token", h.GetToken)
		admin.GET("/auth/me", h.Me)

		resources := admin.Group("/resources")
		{
			resources.GET("/:resource", h.ListResource)
			resources.POST("/:resource", h.CreateResource)
			resources.PUT("/:resource/:id", h.UpdateResource)
			resources.DELETE("/:resource/:id", h.DeleteResource)
		}
	}
}
