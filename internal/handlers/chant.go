package handlers

import (
	"MatchFun/internal/chant"
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ChantHandler обрабатывает кричалки: листинг сохранённых, генерацию
// через внешний API и удаление.
type ChantHandler struct {
	Store     *repo.Store
	Generator chant.Generator
	Logger    *zap.SugaredLogger
}

func NewChantHandler(store *repo.Store, generator chant.Generator, logger *zap.SugaredLogger) *ChantHandler {
	return &ChantHandler{Store: store, Generator: generator, Logger: logger}
}

type GenerateChantRequest struct {
	Topic string `json:"topic"`
}

type ChantDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func chantToDTO(c model.Chant) ChantDTO {
	return ChantDTO{ID: c.ID, Title: c.Title, Text: c.ChantText}
}

func (h *ChantHandler) List(w http.ResponseWriter, r *http.Request) {
	chants, err := h.Store.Chants.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List chants: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]ChantDTO, 0, len(chants))
	for _, c := range chants {
		out = append(out, chantToDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Generate запрашивает кричалку у генератора и сохраняет результат.
// Ошибка генерации отдаётся читаемым сообщением (единственный путь,
// где ошибки показываются пользователю).
func (h *ChantHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateChantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Generate chant: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	generated, err := h.Generator.GenerateChant(r.Context(), topic)
	if err != nil {
		h.Logger.Warnw("Generate chant: generator error", "topic", topic, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": chant.UserMessage(err)})
		return
	}

	if err := h.Store.Chants.Save(r.Context(), generated.Title, generated.Text); err != nil {
		h.Logger.Errorw("Generate chant: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"title": generated.Title,
		"text":  generated.Text,
	})
}

func (h *ChantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.Chants.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete chant: storage error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
