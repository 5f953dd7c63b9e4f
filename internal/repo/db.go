package repo

import (
	"MatchFun/internal/model"
	"errors"
	"fmt"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Текущая версия схемы локального файла БД. Записывается в app_state
// при первой инициализации; расхождение — фатальная ошибка.
const schemaVersion = "1"

// InitDB открывает локальный файл SQLite (чистый Go-драйвер modernc),
// применяет прагмы и миграции. Ошибка здесь фатальна для процесса:
// без хранилища приложение работать не может.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("empty database DSN")
	}
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Одно соединение: прагмы действуют на соединение, а однописательная
	// модель и так сериализует запись.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&model.Match{},
		&model.ChecklistItem{},
		&model.Memory{},
		&model.Photo{},
		&model.MemoryTag{},
		&model.Chant{},
		&model.AppState{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	if err := ensureSchemaVersion(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ensureSchemaVersion ставит версию схемы при первом запуске
// и отклоняет файл с чужой версией.
func ensureSchemaVersion(db *gorm.DB) error {
	var st model.AppState
	err := db.Where("key = ?", model.StateKeySchemaVersion).First(&st).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(&model.AppState{Key: model.StateKeySchemaVersion, Value: schemaVersion}).Error
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case st.Value != schemaVersion:
		return fmt.Errorf("unsupported schema version %q (want %q)", st.Value, schemaVersion)
	}
	return nil
}
