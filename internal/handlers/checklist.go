package handlers

import (
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ChecklistHandler обрабатывает чеклист подготовки к матчу.
type ChecklistHandler struct {
	Store  *repo.Store
	Logger *zap.SugaredLogger
}

func NewChecklistHandler(store *repo.Store, logger *zap.SugaredLogger) *ChecklistHandler {
	return &ChecklistHandler{Store: store, Logger: logger}
}

type AddChecklistItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type ChecklistItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsCompleted bool    `json:"is_completed"`
	IsEssential bool    `json:"is_essential"`
}

func checklistItemToDTO(it model.ChecklistItem) ChecklistItemDTO {
	return ChecklistItemDTO{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.ItemDescription,
		IsCompleted: it.IsCompleted,
		IsEssential: it.IsEssential,
	}
}

// ChecklistResponse — обе секции чеклиста одним ответом.
type ChecklistResponse struct {
	Essential []ChecklistItemDTO `json:"essential"`
	Personal  []ChecklistItemDTO `json:"personal"`
}

// List отдаёт essential- и personal-секции.
func (h *ChecklistHandler) List(w http.ResponseWriter, r *http.Request) {
	essential, err := h.Store.Checklist.List(r.Context(), true)
	if err != nil {
		h.Logger.Errorw("List checklist: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	personal, err := h.Store.Checklist.List(r.Context(), false)
	if err != nil {
		h.Logger.Errorw("List checklist: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	resp := ChecklistResponse{
		Essential: make([]ChecklistItemDTO, 0, len(essential)),
		Personal:  make([]ChecklistItemDTO, 0, len(personal)),
	}
	for _, it := range essential {
		resp.Essential = append(resp.Essential, checklistItemToDTO(it))
	}
	for _, it := range personal {
		resp.Personal = append(resp.Personal, checklistItemToDTO(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add вставляет личный пункт. Essential через API создать нельзя.
func (h *ChecklistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Add checklist item: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := h.Store.Checklist.Add(r.Context(), req.Name, req.Description); err != nil {
		h.Logger.Errorw("Add checklist item: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Toggle переключает IsCompleted у любого пункта, включая essential.
func (h *ChecklistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.Checklist.ToggleCompletion(r.Context(), id); err != nil {
		h.Logger.Errorw("Toggle checklist item: storage error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChecklistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.Checklist.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete checklist item: storage error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
