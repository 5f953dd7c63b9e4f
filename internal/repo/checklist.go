package repo

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistRepository — доступ к чеклисту подготовки.
type ChecklistRepository interface {
	// List возвращает пункты с данным значением флага IsEssential.
	List(ctx context.Context, isEssential bool) ([]model.ChecklistItem, error)

	// Add вставляет личный пункт: IsEssential всегда false.
	Add(ctx context.Context, name string, description *string) error

	// ToggleCompletion переключает IsCompleted; отсутствие записи — no-op.
	ToggleCompletion(ctx context.Context, id string) error

	// Delete удаляет пункт по id; отсутствие записи — no-op.
	Delete(ctx context.Context, id string) error

	// SeedEssentialItems вставляет базовый essential-набор, но только если
	// в чеклисте нет вообще ни одного пункта (любого типа). Повторно
	// никогда не выполняется.
	SeedEssentialItems(ctx context.Context) error
}

// Базовый набор из пяти essential-пунктов.
var essentialSeed = []model.ChecklistItem{
	{Name: "Ticket", ItemDescription: strPtr("Digital ticket in your wallet app")},
	{Name: "Scarf", ItemDescription: strPtr("Your lucky red and white scarf")},
	{Name: "Snacks", ItemDescription: strPtr("Avoid high stadium prices")},
	{Name: "Power Bank", ItemDescription: strPtr("For all those match photos")},
	{Name: "Jersey", ItemDescription: strPtr("Show your team colors")},
}

func strPtr(s string) *string { return &s }

type checklistRepo struct {
	store *Store
}

func (r *checklistRepo) List(ctx context.Context, isEssential bool) ([]model.ChecklistItem, error) {
	var out []model.ChecklistItem
	err := r.store.db.WithContext(ctx).Where("is_essential = ?", isEssential).Find(&out).Error
	return out, err
}

func (r *checklistRepo) Add(ctx context.Context, name string, description *string) error {
	item := &model.ChecklistItem{
		ID:              uuid.NewString(),
		Name:            name,
		ItemDescription: description,
		IsEssential:     false,
	}
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionChecklist, Kind: livequery.KindInsert})
		return nil
	})
}

func (r *checklistRepo) ToggleCompletion(ctx context.Context, id string) error {
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		var item model.ChecklistItem
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Model(&item).Update("is_completed", !item.IsCompleted).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionChecklist, Kind: livequery.KindUpdate})
		return nil
	})
}

func (r *checklistRepo) Delete(ctx context.Context, id string) error {
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		var item model.ChecklistItem
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		emit(livequery.Event{Collection: livequery.CollectionChecklist, Kind: livequery.KindDelete})
		return nil
	})
}

func (r *checklistRepo) SeedEssentialItems(ctx context.Context) error {
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		var count int64
		if err := tx.Model(&model.ChecklistItem{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, seed := range essentialSeed {
			item := seed
			item.ID = uuid.NewString()
			item.IsEssential = true
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		emit(livequery.Event{Collection: livequery.CollectionChecklist, Kind: livequery.KindInsert})
		return nil
	})
}
