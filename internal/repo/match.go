package repo

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository — доступ к матчам. Валидация полей — забота вызывающей
// стороны: хранилище записывает то, что дали.
type MatchRepository interface {
	// Add вставляет полностью заполненный матч. Если ID пуст — генерирует.
	Add(ctx context.Context, m *model.Match) error

	// List возвращает все матчи по возрастанию даты.
	List(ctx context.Context) ([]model.Match, error)

	// Delete удаляет матч по id; отсутствие записи — тихий no-op.
	Delete(ctx context.Context, id string) error
}

type matchRepo struct {
	store *Store
}

func (r *matchRepo) Add(ctx context.Context, m *model.Match) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionMatches, Kind: livequery.KindInsert})
		return nil
	})
}

func (r *matchRepo) List(ctx context.Context) ([]model.Match, error) {
	var out []model.Match
	err := r.store.db.WithContext(ctx).Order("date ASC").Find(&out).Error
	return out, err
}

func (r *matchRepo) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		var m model.Match
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		// Ссылки из memories обнуляются на уровне БД (ON DELETE SET NULL).
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionMatches, Kind: livequery.KindDelete})
		emit(livequery.Event{Collection: livequery.CollectionMemories, Kind: livequery.KindUpdate})
		return nil
	})
}
