package repo

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemoryRepository — доступ к воспоминаниям. Фото и теги принадлежат
// воспоминанию целиком и удаляются вместе с ним.
type MemoryRepository interface {
	// Add собирает и вставляет воспоминание: ссылку на матч, описание,
	// теги и фото в порядке передачи.
	Add(ctx context.Context, matchID *string, description string, tags []string, location *string, photos [][]byte) (*model.Memory, error)

	// List возвращает воспоминания по убыванию времени создания,
	// с загруженными тегами, фото и матчем.
	List(ctx context.Context) ([]model.Memory, error)

	// Delete удаляет воспоминание целиком; отсутствие записи — no-op.
	Delete(ctx context.Context, id string) error
}

type memoryRepo struct {
	store *Store
}

func (r *memoryRepo) Add(ctx context.Context, matchID *string, description string, tags []string, location *string, photos [][]byte) (*model.Memory, error) {
	mem := &model.Memory{
		ID:                uuid.NewString(),
		MatchID:           matchID,
		MemoryDescription: description,
		Location:          location,
	}
	for i, tag := range tags {
		mem.Tags = append(mem.Tags, model.MemoryTag{
			ID:       uuid.NewString(),
			Value:    tag,
			Position: i,
		})
	}
	for i, data := range photos {
		mem.Photos = append(mem.Photos, model.Photo{
			ID:        uuid.NewString(),
			PhotoData: data,
			Position:  i,
		})
	}

	err := r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		if err := tx.Create(mem).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionMemories, Kind: livequery.KindInsert})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mem, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]model.Memory, error) {
	var out []model.Memory
	err := r.store.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Match").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		var mem model.Memory
		if err := tx.First(&mem, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		// Владение: фото и теги уходят каскадом (ON DELETE CASCADE).
		if err := tx.Delete(&mem).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionMemories, Kind: livequery.KindDelete})
		return nil
	})
}
