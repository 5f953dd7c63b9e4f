package model

// AppState — служебные флаги приложения (key/value).
// Здесь живут флаг онбординга и версия схемы БД.
type AppState struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// Ключи AppState.
const (
	StateKeySchemaVersion = "schema_version"
	StateKeyOnboarding    = "has_completed_onboarding"
)
