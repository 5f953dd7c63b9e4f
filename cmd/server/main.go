package main

import (
	"MatchFun/internal/chant"
	"MatchFun/internal/config"
	"MatchFun/internal/handlers"
	"MatchFun/internal/livequery"
	"MatchFun/internal/middleware"
	"MatchFun/internal/repo"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	store := repo.NewStore(gormDB, livequery.NewBus())

	// базовый чеклист вставляется один раз, на пустую базу
	if err := store.Checklist.SeedEssentialItems(context.Background()); err != nil {
		sugar.Fatalw("failed to seed checklist", "error", err)
	}

	generator := chant.NewService(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	if cfg.GeminiAPIKey == "" {
		sugar.Warnw("GEMINI_API_KEY is empty, chant generation will fail")
	}

	h := handlers.NewHandler(store, generator, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"GeminiModel", cfg.GeminiModel,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
