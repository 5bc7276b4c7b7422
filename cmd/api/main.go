package main

import (
	"context"

	"github.com/NeerajSh-16/ai-mock-interviews/internal/auth"
	"github.com/NeerajSh-16/ai-mock-interviews/internal/cache"
	"github.com/NeerajSh-16/ai-mock-interviews/internal/config"
	"github.com/NeerajSh-16/ai-mock-interviews/internal/database"
	"github.com/NeerajSh-16/ai-mock-interviews/internal/gemini"
	"github.com/NeerajSh-16/ai-mock-interviews/internal/handler"
	"github.com/NeerajSh-16/ai-mock-interviews/internal/logger"
	"github.com/NeerajSh-16/ai-mock-interviews/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB      *pgxpool.Pool
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Application
}

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		sugar.Fatal(err)
	}

	repo := repository.NewRepository(pool)

	handlerApp := &handler.Application{
		Logger:     log,
		Tokens:     auth.NewJWTMaker(cfg.JWT.Secret),
		Generator:  geminiClient,
		Interviews: repo.Interview,
	}

	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, rdb); err != nil {
			sugar.Warnw("redis unreachable, cache disabled", "err", err)
		} else {
			handlerApp.Cache = cache.NewLatestCache(rdb, cfg.Redis.TTL)
		}
	}

	app := &application{
		DB:      pool,
		Logger:  log,
		Config:  cfg,
		Handler: handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
