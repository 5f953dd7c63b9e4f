package handlers

import (
	"MatchFun/internal/chant"
	"MatchFun/internal/config"
	"MatchFun/internal/middleware"
	"MatchFun/internal/repo"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	store *repo.Store,
	generator chant.Generator,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)

	// Handlers
	matchHandler := NewMatchHandler(store, logger, config)
	checklistHandler := NewChecklistHandler(store, logger)
	memoryHandler := NewMemoryHandler(store, logger, config)
	chantHandler := NewChantHandler(store, generator, logger)
	settingsHandler := NewSettingsHandler(store, logger)
	eventsHandler := NewEventsHandler(store.Bus(), logger)

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithGzip)

		// Matches
		r.Get("/api/matches", matchHandler.List)
		r.Post("/api/matches", matchHandler.Create)
		r.Delete("/api/matches/{id}", matchHandler.Delete)

		// Checklist
		r.Get("/api/checklist", checklistHandler.List)
		r.Post("/api/checklist", checklistHandler.Add)
		r.Post("/api/checklist/{id}/toggle", checklistHandler.Toggle)
		r.Delete("/api/checklist/{id}", checklistHandler.Delete)

		// Memories
		r.Get("/api/memories", memoryHandler.List)
		r.Post("/api/memories", memoryHandler.Create)
		r.Delete("/api/memories/{id}", memoryHandler.Delete)

		// Chants
		r.Get("/api/chants", chantHandler.List)
		r.Post("/api/chants/generate", chantHandler.Generate)
		r.Delete("/api/chants/{id}", chantHandler.Delete)

		// Settings / danger zone
		r.Get("/api/settings/onboarding", settingsHandler.GetOnboarding)
		r.Put("/api/settings/onboarding", settingsHandler.PutOnboarding)
		r.Delete("/api/data", settingsHandler.DeleteAllData)
	})

	// SSE не сжимаем: потоку нужна пофлашевая доставка
	r.Get("/api/events", eventsHandler.Stream)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ; ошибка кодирования здесь уже не исправима.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
