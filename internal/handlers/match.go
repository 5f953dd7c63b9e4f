package handlers

import (
	"MatchFun/internal/config"
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"MatchFun/internal/viewmodel"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MatchHandler обрабатывает CRUD матчей.
type MatchHandler struct {
	Store  *repo.Store
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewMatchHandler создаёт хендлер матчей
func NewMatchHandler(store *repo.Store, logger *zap.SugaredLogger, cfg *config.Config) *MatchHandler {
	return &MatchHandler{Store: store, Logger: logger, Config: cfg}
}

// CreateMatchRequest — контракт создания матча. Байтовые поля в JSON
// ходят как base64 (стандартная сериализация []byte).
type CreateMatchRequest struct {
	League        *string   `json:"league,omitempty"`
	HomeTeam      string    `json:"home_team"`
	AwayTeam      string    `json:"away_team"`
	Date          time.Time `json:"date"`
	Stadium       *string   `json:"stadium,omitempty"`
	IsAttending   *bool     `json:"is_attending,omitempty"`
	TicketSection *string   `json:"ticket_section,omitempty"`
	TicketRow     *string   `json:"ticket_row,omitempty"`
	TicketSeat    *string   `json:"ticket_seat,omitempty"`
	TicketPhoto   []byte    `json:"ticket_photo,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

type MatchDTO struct {
	ID            string    `json:"id"`
	League        *string   `json:"league,omitempty"`
	HomeTeam      string    `json:"home_team"`
	AwayTeam      string    `json:"away_team"`
	HomeTeamShort string    `json:"home_team_short"`
	AwayTeamShort string    `json:"away_team_short"`
	Date          time.Time `json:"date"`
	Stadium       *string   `json:"stadium,omitempty"`
	IsAttending   bool      `json:"is_attending"`
	TicketSection *string   `json:"ticket_section,omitempty"`
	TicketRow     *string   `json:"ticket_row,omitempty"`
	TicketSeat    *string   `json:"ticket_seat,omitempty"`
	TicketPhoto   []byte    `json:"ticket_photo,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func matchToDTO(m model.Match) MatchDTO {
	return MatchDTO{
		ID:            m.ID,
		League:        m.League,
		HomeTeam:      m.HomeTeam,
		AwayTeam:      m.AwayTeam,
		HomeTeamShort: m.HomeTeamShort,
		AwayTeamShort: m.AwayTeamShort,
		Date:          m.Date,
		Stadium:       m.Stadium,
		IsAttending:   m.IsAttending,
		TicketSection: m.TicketSection,
		TicketRow:     m.TicketRow,
		TicketSeat:    m.TicketSeat,
		TicketPhoto:   m.TicketPhoto,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// List отдаёт все матчи по возрастанию даты.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.Store.Matches.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List matches: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]MatchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchToDTO(m))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create добавляет матч. Короткие имена команд вычисляются один раз здесь.
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create match: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.HomeTeam == "" || req.AwayTeam == "" {
		http.Error(w, "home_team and away_team are required", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	// Фото билета нормализуем в JPEG до записи.
	ticketPhoto := req.TicketPhoto
	if len(ticketPhoto) > 0 {
		if err := checkPhotoSize(ticketPhoto, h.Config.PhotoMaxSizeMB); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		encoded, err := reencodeJPEG(ticketPhoto)
		if err != nil {
			h.Logger.Warnw("Create match: bad ticket photo", "error", err)
			http.Error(w, "unsupported ticket photo format", http.StatusBadRequest)
			return
		}
		ticketPhoto = encoded
	}

	isAttending := true
	if req.IsAttending != nil {
		isAttending = *req.IsAttending
	}

	m := &model.Match{
		League:        req.League,
		HomeTeam:      req.HomeTeam,
		AwayTeam:      req.AwayTeam,
		HomeTeamShort: viewmodel.ShortTeamName(req.HomeTeam),
		AwayTeamShort: viewmodel.ShortTeamName(req.AwayTeam),
		Date:          req.Date,
		Stadium:       req.Stadium,
		IsAttending:   isAttending,
		TicketSection: req.TicketSection,
		TicketRow:     req.TicketRow,
		TicketSeat:    req.TicketSeat,
		TicketPhoto:   ticketPhoto,
		Notes:         req.Notes,
	}
	if err := h.Store.Matches.Add(r.Context(), m); err != nil {
		h.Logger.Errorw("Create match: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, matchToDTO(*m))
}

// Delete удаляет матч; отсутствие записи неотличимо от успеха.
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.Matches.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete match: storage error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
