package model

import "time"

// Match — модель отслеживаемого матча.
// HomeTeamShort/AwayTeamShort вычисляются один раз при создании
// (первые три символа названия, верхний регистр) и больше не пересчитываются.
type Match struct {
	ID string `gorm:"primaryKey;type:uuid"`

	League   *string
	HomeTeam string `gorm:"not null"`
	AwayTeam string `gorm:"not null"`

	HomeTeamShort string `gorm:"not null"`
	AwayTeamShort string `gorm:"not null"`

	// Дата и время начала одним значением.
	Date time.Time `gorm:"not null;index"`

	Stadium *string

	// Default true; то значение устанавливает вызывающая сторона,
	// хранилище записывает что дали.
	IsAttending bool `gorm:"not null"`

	TicketSection *string
	TicketRow     *string
	TicketSeat    *string

	// JPEG (~80% quality), закодированный до записи.
	TicketPhoto []byte

	Notes *string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
