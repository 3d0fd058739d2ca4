package api

import (
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/recipebox/recipe-service/docs"
	"github.com/recipebox/recipe-service/internal/api/handler"
	"github.com/recipebox/recipe-service/internal/api/middleware"
	"github.com/recipebox/recipe-service/internal/api/session"
	"github.com/recipebox/recipe-service/internal/core/ports"
)

// Deps carries everything the router needs. Services are constructed by the
// caller so tests can pass stubs.
type Deps struct {
	Log zerolog.Logger

	AuthService   ports.AuthService
	UserService   ports.UserService
	RecipeService ports.RecipeService

	SessionStore sessions.Store
	Sessions     *session.Manager
	Renderer     echo.Renderer

	// Checks backs the readiness probe, keyed by dependency name.
	Checks map[string]handler.DependencyCheck

	// MetricsRegisterer defaults to prometheus.DefaultRegisterer.
	MetricsRegisterer prometheus.Registerer
	MetricsGatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.Renderer = d.Renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	reg := d.MetricsRegisterer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := d.MetricsGatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// HTML forms can only POST; _method carries PUT/DELETE.
	e.Pre(echomiddleware.MethodOverrideWithConfig(echomiddleware.MethodOverrideConfig{
		Getter: echomiddleware.MethodFromForm("_method"),
	}))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "recipes",
		Subsystem:  "http",
		Registerer: reg,
		Skipper:    skipOperational,
	}))
	e.Use(session.Middleware(d.SessionStore))
	e.Use(middleware.InjectUser(d.Sessions, d.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService, d.Sessions)
	userHandler := handler.NewUserHandler(d.UserService)
	recipeHandler := handler.NewRecipeHandler(d.RecipeService)
	signedIn := middleware.RequireSignIn()
	owner := middleware.RequireOwner("id")

	e.GET("/", handler.Home)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.GET("/sign-up", authHandler.SignUpForm)
	auth.GET("/sign-in", authHandler.SignInForm)
	auth.POST("/register", authHandler.Register)
	auth.POST("/sign-in", authHandler.SignIn)
	auth.Any("/sign-out", authHandler.SignOut)
	auth.GET("/users/:id/update-password", authHandler.UpdatePasswordForm, signedIn, owner)
	auth.PUT("/users/:id/password", authHandler.UpdatePassword, signedIn, owner)

	// --- Users ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Profile, signedIn)

	// --- Recipes ---
	recipes := e.Group("/recipes")
	recipes.GET("", recipeHandler.List)
	recipes.POST("", recipeHandler.Create, signedIn)
	recipes.GET("/new", recipeHandler.New, signedIn)
	recipes.GET("/:id", recipeHandler.Show, signedIn)
	recipes.GET("/:id/edit", recipeHandler.Edit, signedIn)
	recipes.PUT("/:id", recipeHandler.Update, signedIn)
	recipes.DELETE("/:id", recipeHandler.Delete, signedIn)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func skipOperational(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}
