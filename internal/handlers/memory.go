package handlers

import (
	"MatchFun/internal/config"
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MemoryHandler обрабатывает воспоминания. Создание идёт через
// multipart/form-data: фото приходят файлами, порядок частей сохраняется.
type MemoryHandler struct {
	Store  *repo.Store
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewMemoryHandler(store *repo.Store, logger *zap.SugaredLogger, cfg *config.Config) *MemoryHandler {
	return &MemoryHandler{Store: store, Logger: logger, Config: cfg}
}

type MemoryDTO struct {
	ID          string    `json:"id"`
	MatchID     *string   `json:"match_id,omitempty"`
	Match       *MatchDTO `json:"match,omitempty"`
	Description string    `json:"description"`
	Location    *string   `json:"location,omitempty"`
	Tags        []string  `json:"tags"`
	Photos      [][]byte  `json:"photos"`
	CreatedAt   time.Time `json:"created_at"`
}

func memoryToDTO(m model.Memory) MemoryDTO {
	dto := MemoryDTO{
		ID:          m.ID,
		MatchID:     m.MatchID,
		Description: m.MemoryDescription,
		Location:    m.Location,
		Tags:        make([]string, 0, len(m.Tags)),
		Photos:      make([][]byte, 0, len(m.Photos)),
		CreatedAt:   m.CreatedAt,
	}
	if m.Match != nil {
		matchDTO := matchToDTO(*m.Match)
		dto.Match = &matchDTO
	}
	for _, tag := range m.Tags {
		dto.Tags = append(dto.Tags, tag.Value)
	}
	for _, p := range m.Photos {
		dto.Photos = append(dto.Photos, p.PhotoData)
	}
	return dto
}

// List отдаёт ленту воспоминаний, свежие сверху.
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	memories, err := h.Store.Memories.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List memories: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]MemoryDTO, 0, len(memories))
	for _, m := range memories {
		out = append(out, memoryToDTO(m))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create принимает multipart-форму: поля match_id, description, location,
// tags (повторяемое) и файлы photo (повторяемое, минимум один).
// Каждое фото пережимается в JPEG до записи.
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Лимит общего тела запроса
	maxBody := int64(h.Config.PhotoMaxSizeMB)*1024*1024*4 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Create memory: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	description := r.FormValue("description")
	if description == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	var matchID *string
	if v := r.FormValue("match_id"); v != "" {
		matchID = &v
	}
	var location *string
	if v := r.FormValue("location"); v != "" {
		location = &v
	}
	tags := r.MultipartForm.Value["tags"]

	files := r.MultipartForm.File["photo"]
	if len(files) == 0 {
		http.Error(w, "at least one photo is required", http.StatusBadRequest)
		return
	}

	photos := make([][]byte, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			h.Logger.Warnw("Create memory: failed to open photo part", "error", err)
			http.Error(w, "failed to read photo", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			h.Logger.Warnw("Create memory: failed to read photo part", "error", err)
			http.Error(w, "failed to read photo", http.StatusBadRequest)
			return
		}
		if err := checkPhotoSize(data, h.Config.PhotoMaxSizeMB); err != nil {
			h.Logger.Warnw("Create memory: photo too large", "size", len(data))
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		encoded, err := reencodeJPEG(data)
		if err != nil {
			h.Logger.Warnw("Create memory: bad photo", "error", err)
			http.Error(w, "unsupported photo format", http.StatusBadRequest)
			return
		}
		photos = append(photos, encoded)
	}

	mem, err := h.Store.Memories.Add(r.Context(), matchID, description, tags, location, photos)
	if err != nil {
		h.Logger.Errorw("Create memory: storage error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, memoryToDTO(*mem))
}

func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.Memories.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete memory: storage error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
