package model

// ChecklistItem — пункт подготовки к матчу.
// Essential-набор создаётся сидированием один раз; личные пункты
// добавляет пользователь (IsEssential=false), их можно удалять.
type ChecklistItem struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Name            string `gorm:"not null"`
	ItemDescription *string

	IsCompleted bool `gorm:"not null;default:false"`
	IsEssential bool `gorm:"not null"`
}
