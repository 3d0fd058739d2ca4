// @title        Recipe Box API
// @version      1.0
// @description  Session-authenticated recipe sharing service.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipebox/recipe-service/internal/api"
	"github.com/recipebox/recipe-service/internal/api/handler"
	"github.com/recipebox/recipe-service/internal/api/session"
	"github.com/recipebox/recipe-service/internal/core/service"
	mongodb "github.com/recipebox/recipe-service/internal/infrastructure/db/mongo"
	redisdb "github.com/recipebox/recipe-service/internal/infrastructure/db/redis"
	"github.com/recipebox/recipe-service/internal/pkg/config"
	"github.com/recipebox/recipe-service/internal/web"
	"github.com/recipebox/recipe-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "recipe-service",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	recipeRepo := mongodb.NewRecipeRepository(db)
	if err := mongodb.EnsureIndexes(ctx, userRepo, recipeRepo); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	store := redisdb.NewSessionStore(rdb, []byte(cfg.Session.Secret))
	store.MaxAge(cfg.Session.MaxAge)
	store.Options.Secure = cfg.IsProduction()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("load templates")
	}

	e := api.NewRouter(api.Deps{
		Log:           log,
		AuthService:   service.NewAuthService(userRepo, cfg.BcryptCost, log),
		UserService:   service.NewUserService(userRepo, recipeRepo, log),
		RecipeService: service.NewRecipeService(recipeRepo, log),
		SessionStore:  store,
		Sessions:      session.NewManager(cfg.Session.Name),
		Renderer:      renderer,
		Checks: map[string]handler.DependencyCheck{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}
