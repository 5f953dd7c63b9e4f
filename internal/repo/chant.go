package repo

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChantRepository — доступ к сохранённым кричалкам.
type ChantRepository interface {
	// Save вставляет кричалку. Title — тема, заданная пользователем.
	Save(ctx context.Context, title, chantText string) error

	// List возвращает кричалки в порядке движка (без сортировки).
	List(ctx context.Context) ([]model.Chant, error)

	// Delete удаляет кричалку по id; отсутствие записи — no-op.
	Delete(ctx context.Context, id string) error
}

type chantRepo struct {
	store *Store
}

func (r *chantRepo) Save(ctx context.Context, title, chantText string) error {
	chant := &model.Chant{ID: uuid.NewString(), Title: title, ChantText: chantText}
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		if err := tx.Create(chant).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionChants, Kind: livequery.KindInsert})
		return nil
	})
}

func (r *chantRepo) List(ctx context.Context) ([]model.Chant, error) {
	var out []model.Chant
	err := r.store.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *chantRepo) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		var chant model.Chant
		if err := tx.First(&chant, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&chant).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionChants, Kind: livequery.KindDelete})
		return nil
	})
}
