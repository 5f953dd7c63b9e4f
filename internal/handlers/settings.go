package handlers

import (
	"MatchFun/internal/repo"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// SettingsHandler обрабатывает флаг онбординга и полную очистку данных.
type SettingsHandler struct {
	Store  *repo.Store
	Logger *zap.SugaredLogger
}

func NewSettingsHandler(store *repo.Store, logger *zap.SugaredLogger) *SettingsHandler {
	return &SettingsHandler{Store: store, Logger: logger}
}

type OnboardingDTO struct {
	HasCompletedOnboarding bool `json:"has_completed_onboarding"`
}

func (h *SettingsHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	done, err := h.Store.Settings.HasCompletedOnboarding(r.Context())
	if err != nil {
		h.Logger.Errorw("Get onboarding: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, OnboardingDTO{HasCompletedOnboarding: done})
}

func (h *SettingsHandler) PutOnboarding(w http.ResponseWriter, r *http.Request) {
	var req OnboardingDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Put onboarding: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Store.Settings.SetOnboardingComplete(r.Context(), req.HasCompletedOnboarding); err != nil {
		h.Logger.Errorw("Put onboarding: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAllData — "danger zone": необратимая очистка всех коллекций.
func (h *SettingsHandler) DeleteAllData(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteAllData(r.Context()); err != nil {
		h.Logger.Errorw("Delete all data: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.Logger.Infow("all user data deleted")
	w.WriteHeader(http.StatusNoContent)
}
