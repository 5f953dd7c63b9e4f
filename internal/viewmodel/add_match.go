package viewmodel

import (
	"MatchFun/internal/model"
	"MatchFun/internal/repo"
	"context"
	"strings"
	"time"
)

// AddMatchViewModel — состояние формы добавления матча.
// Поля формы — простые изменяемые значения; собранная запись уходит
// в хранилище одним вызовом Save.
type AddMatchViewModel struct {
	League   string
	HomeTeam string
	AwayTeam string

	// Дата и время вводятся раздельно и объединяются при сохранении.
	Date time.Time
	Time time.Time

	Stadium     string
	IsAttending bool

	TicketSection string
	TicketRow     string
	TicketSeat    string

	// Уже закодированный JPEG (~80% quality).
	TicketPhoto []byte

	Notes string

	repo repo.MatchRepository
}

func NewAddMatchViewModel(matchRepo repo.MatchRepository) *AddMatchViewModel {
	now := time.Now()
	return &AddMatchViewModel{
		Date:        now,
		Time:        now,
		IsAttending: true,
		repo:        matchRepo,
	}
}

// IsSaveEnabled — чистый предикат по полям формы: обе команды заполнены.
func (vm *AddMatchViewModel) IsSaveEnabled() bool {
	return vm.HomeTeam != "" && vm.AwayTeam != ""
}

// SwitchTeams меняет хозяев и гостей местами.
func (vm *AddMatchViewModel) SwitchTeams() {
	vm.HomeTeam, vm.AwayTeam = vm.AwayTeam, vm.HomeTeam
}

// Save собирает запись из полей формы и делает ровно одну мутацию
// хранилища. Короткие имена команд вычисляются здесь, один раз.
func (vm *AddMatchViewModel) Save(ctx context.Context) error {
	match := &model.Match{
		League:        nilIfEmpty(vm.League),
		HomeTeam:      vm.HomeTeam,
		AwayTeam:      vm.AwayTeam,
		HomeTeamShort: ShortTeamName(vm.HomeTeam),
		AwayTeamShort: ShortTeamName(vm.AwayTeam),
		Date:          combineDateTime(vm.Date, vm.Time),
		Stadium:       nilIfEmpty(vm.Stadium),
		IsAttending:   vm.IsAttending,
		TicketSection: nilIfEmpty(vm.TicketSection),
		TicketRow:     nilIfEmpty(vm.TicketRow),
		TicketSeat:    nilIfEmpty(vm.TicketSeat),
		TicketPhoto:   vm.TicketPhoto,
		Notes:         nilIfEmpty(vm.Notes),
	}
	return vm.repo.Add(ctx, match)
}

// ShortTeamName — первые три символа названия в верхнем регистре.
// Короткие названия не дополняются: "FC" остаётся "FC".
func ShortTeamName(team string) string {
	r := []rune(team)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// combineDateTime берёт календарную часть из date и часы/минуты из tm.
func combineDateTime(date, tm time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		tm.Hour(), tm.Minute(), 0, 0,
		date.Location(),
	)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
