package repo

import (
	"MatchFun/internal/livequery"
	"MatchFun/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository — процесс-широкие флаги приложения.
type SettingsRepository interface {
	// HasCompletedOnboarding сообщает, пройден ли онбординг.
	// Отсутствие флага означает false.
	HasCompletedOnboarding(ctx context.Context) (bool, error)

	// SetOnboardingComplete выставляет флаг онбординга.
	SetOnboardingComplete(ctx context.Context, done bool) error
}

type settingsRepo struct {
	store *Store
}

func (r *settingsRepo) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	var st model.AppState
	err := r.store.db.WithContext(ctx).
		Where("key = ?", model.StateKeyOnboarding).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return st.Value == "true", nil
}

func (r *settingsRepo) SetOnboardingComplete(ctx context.Context, done bool) error {
	value := "false"
	if done {
		value = "true"
	}
	return r.store.write(ctx, func(tx *gorm.DB, emit func(livequery.Event)) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{"value": value}),
		}).Create(&model.AppState{Key: model.StateKeyOnboarding, Value: value}).Error
	})
}
