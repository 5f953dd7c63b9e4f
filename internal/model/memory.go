package model

import "time"

// Memory — воспоминание, привязанное к матчу.
// Match — разделяемая ссылка: при удалении матча ссылка обнуляется,
// воспоминание остаётся. Photos и Tags принадлежат Memory целиком
// и удаляются каскадно вместе с ним.
type Memory struct {
	ID string `gorm:"primaryKey;type:uuid"`

	MatchID *string `gorm:"type:uuid;index"`
	Match   *Match  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	MemoryDescription string `gorm:"not null"`
	Location          *string

	Tags   []MemoryTag `gorm:"constraint:OnDelete:CASCADE"`
	Photos []Photo     `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// Photo — вложенное фото воспоминания. Вне своего Memory не существует.
type Photo struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	MemoryID string `gorm:"type:uuid;not null;index"`

	PhotoData []byte `gorm:"not null"`

	// Порядок добавления.
	Position int `gorm:"not null"`
}

// MemoryTag — тег воспоминания, порядок вставки сохраняется.
type MemoryTag struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	MemoryID string `gorm:"type:uuid;not null;index"`

	Value    string `gorm:"not null"`
	Position int    `gorm:"not null"`
}
