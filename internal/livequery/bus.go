package livequery

import "sync"

// Collection идентифицирует коллекцию записей, на которую можно подписаться.
type Collection string

const (
	CollectionMatches   Collection = "matches"
	CollectionChecklist Collection = "checklist_items"
	CollectionMemories  Collection = "memories"
	CollectionChants    Collection = "chants"
)

// Kind — тип изменения. Подписчики получают событие на любое изменение
// коллекции, без програнулярности по записям или полям.
type Kind string

const (
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// Event — уведомление об изменении коллекции.
type Event struct {
	Collection Collection
	Kind       Kind
}

// Bus — внутрипроцессная шина уведомлений об изменениях.
// Publish вызывается хранилищем синхронно после коммита транзакции.
type Bus struct {
	mu   sync.RWMutex
	subs map[Collection]map[*Subscription]struct{}
	all  map[*Subscription]struct{}
}

// Subscription — подписка на изменения. Владелец обязан вызвать
// Unsubscribe, когда подписка больше не нужна.
type Subscription struct {
	bus        *Bus
	collection Collection
	allEvents  bool
	fn         func(Event)
	once       sync.Once
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[Collection]map[*Subscription]struct{}),
		all:  make(map[*Subscription]struct{}),
	}
}

// Subscribe регистрирует колбэк на изменения одной коллекции.
func (b *Bus) Subscribe(c Collection, fn func(Event)) *Subscription {
	s := &Subscription{bus: b, collection: c, fn: fn}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[c] == nil {
		b.subs[c] = make(map[*Subscription]struct{})
	}
	b.subs[c][s] = struct{}{}
	return s
}

// SubscribeAll регистрирует колбэк на изменения любой коллекции.
func (b *Bus) SubscribeAll(fn func(Event)) *Subscription {
	s := &Subscription{bus: b, allEvents: true, fn: fn}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all[s] = struct{}{}
	return s
}

// Publish синхронно доставляет событие всем подписчикам коллекции.
// Колбэки вызываются без удержания блокировки шины.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	targets := make([]*Subscription, 0, len(b.subs[e.Collection])+len(b.all))
	for s := range b.subs[e.Collection] {
		targets = append(targets, s)
	}
	for s := range b.all {
		targets = append(targets, s)
	}
	b.mu.RUnlock()

	for _, s := range targets {
		s.fn(e)
	}
}

// Unsubscribe снимает подписку. Повторные вызовы безопасны.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		if s.allEvents {
			delete(s.bus.all, s)
			return
		}
		if set := s.bus.subs[s.collection]; set != nil {
			delete(set, s)
		}
	})
}
