package repo

import (
	"MatchFun/internal/livequery"
	"context"
	"sync"

	"gorm.io/gorm"
)

// Store — владелец дескриптора БД. Все чтения и записи системы проходят
// через его репозитории. Записи сериализуются одним мьютексом
// (однописательная модель); чтения идут без блокировки, по последнему
// закоммиченному состоянию.
type Store struct {
	db      *gorm.DB
	writeMu sync.Mutex
	bus     *livequery.Bus

	Matches   MatchRepository
	Checklist ChecklistRepository
	Memories  MemoryRepository
	Chants    ChantRepository
	Settings  SettingsRepository
}

// NewStore собирает хранилище поверх открытой БД.
func NewStore(db *gorm.DB, bus *livequery.Bus) *Store {
	s := &Store{db: db, bus: bus}
	s.Matches = &matchRepo{s}
	s.Checklist = &checklistRepo{s}
	s.Memories = &memoryRepo{s}
	s.Chants = &chantRepo{s}
	s.Settings = &settingsRepo{s}
	return s
}

// Bus — шина изменений для подписки живых запросов.
func (s *Store) Bus() *livequery.Bus { return s.bus }

// write выполняет мутацию в транзакции под мьютексом записи и после
// коммита публикует события. События, собранные внутри fn, доходят
// до подписчиков только при успешном коммите.
func (s *Store) write(ctx context.Context, fn func(tx *gorm.DB, emit func(livequery.Event)) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var pending []livequery.Event
	emit := func(e livequery.Event) { pending = append(pending, e) }

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx, emit)
	}); err != nil {
		return err
	}
	for _, e := range pending {
		s.bus.Publish(e)
	}
	return nil
}
