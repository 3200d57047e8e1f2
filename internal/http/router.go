package http

import (
	"embed"
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/TanpaKamil/admin/internal/config"
	"github.com/TanpaKamil/admin/internal/http/handlers"
	"github.com/TanpaKamil/admin/internal/http/middleware"
	"github.com/TanpaKamil/admin/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

type Dependencies struct {
	Config      *config.Config
	Auth        *services.AuthService
	Modules     *services.ModuleService
	Users       *services.UserService
	Dashboard   *services.DashboardService
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))
	router.Use(middleware.RouteGuard(middleware.GuardConfig{Secret: deps.Config.JWTSecret}))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Config.IsProd())
	moduleHandler := handlers.NewModuleHandler(deps.Modules)
	userHandler := handlers.NewUserHandler(deps.Users)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)

	router.GET("/healthz", handlers.Health)
	router.GET("/", handlers.DashboardPage)
	router.GET("/login", handlers.LoginPage)
	router.Static("/static", "./web/static")

	api := router.Group("/api")
	{
		login := api.Group("")
		if deps.RateLimiter != nil {
			login.Use(deps.RateLimiter.Middleware())
		}
		login.POST("/login", authHandler.Login)

		api.GET("/logout", authHandler.Logout)

		api.GET("/modules", moduleHandler.List)
		api.GET("/modules/:id", moduleHandler.GetByID)
		api.PATCH("/modules/:id", moduleHandler.SetActive)
		api.PATCH("/modules/:id/recommend", moduleHandler.ToggleRecommended)

		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.GetByID)
		api.PATCH("/users/:id", userHandler.SetStatus)

		api.GET("/dashboard", dashboardHandler.Stats)
	}

	return router
}
