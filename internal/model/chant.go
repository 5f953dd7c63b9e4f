package model

// Chant — сохранённая кричалка. Title хранит тему, заданную пользователем.
type Chant struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Title     string `gorm:"not null"`
	ChantText string `gorm:"not null"`
}
