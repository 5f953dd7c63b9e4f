package livequery

import "sync"

// Results — "живой" результат запроса: держит последний выбранный срез
// и перевыполняет выборку на каждом событии коллекции. Это первый стиль
// наблюдения (переприсваивание результата); второй стиль — голая подписка
// через Bus.Subscribe.
type Results[T any] struct {
	mu       sync.RWMutex
	fetch    func() ([]T, error)
	items    []T
	sub      *Subscription
	onChange func([]T)
}

// Observe выполняет начальную выборку и подписывает результат на коллекцию.
// onChange (опционально) вызывается со свежим набором после каждого
// изменения. Если перевыборка падает, остаётся прошлый набор.
func Observe[T any](bus *Bus, c Collection, fetch func() ([]T, error), onChange func([]T)) (*Results[T], error) {
	initial, err := fetch()
	if err != nil {
		return nil, err
	}
	r := &Results[T]{fetch: fetch, items: initial, onChange: onChange}
	r.sub = bus.Subscribe(c, func(Event) { r.refresh() })
	return r, nil
}

func (r *Results[T]) refresh() {
	items, err := r.fetch()
	if err != nil {
		return
	}
	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
	if r.onChange != nil {
		r.onChange(items)
	}
}

// Items возвращает последний успешно выбранный набор.
func (r *Results[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items
}

// Close снимает подписку. Обязателен при утилизации владельца.
func (r *Results[T]) Close() {
	if r.sub != nil {
		r.sub.Unsubscribe()
	}
}
