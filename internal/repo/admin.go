package repo

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"context"

	"gorm.io/gorm"
)

// DeleteAllData необратимо очищает все четыре коллекции одной транзакцией.
// Используется только явным действием пользователя в "danger zone".
// Флаги приложения (app_state) переживают очистку.
func (s *Store) DeleteAllData(ctx context.Context) error {
	return s.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		// Владения первыми, чтобы не упереться в FK.
		for _, m := range []any{
			&model.Photo{},
			&model.MemoryTag{},
			&model.Memory{},
			&model.Match{},
			&model.ChecklistItem{},
			&model.Chant{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		for _, c := range []livequery.Collection{
			livequery.CollectionMatches,
			livequery.CollectionChecklist,
			livequery.CollectionMemories,
			livequery.CollectionChants,
		} {
			emit(livequery.Event{Collection: c, Kind: livequery.KindDelete})
		}
		return nil
	})
}
