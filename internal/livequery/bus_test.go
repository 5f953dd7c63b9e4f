package livequery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_SubscribePublish(t *testing.T) {
	bus := NewBus()

	var got []Event
	sub := bus.Subscribe(CollectionMatches, func(e Event) { got = append(got, e) })
	defer sub.Unsubscribe()

	bus.Publish(Event{Collection: CollectionMatches, Kind: KindInsert})
	bus.Publish(Event{Collection: CollectionChants, Kind: KindInsert}) // чужая коллекция

	assert.Len(t, got, 1)
	assert.Equal(t, CollectionMatches, got[0].Collection)
	assert.Equal(t, KindInsert, got[0].Kind)
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus()

	var count int
	sub := bus.SubscribeAll(func(Event) { count++ })
	defer sub.Unsubscribe()

	bus.Publish(Event{Collection: CollectionMatches, Kind: KindInsert})
	bus.Publish(Event{Collection: CollectionChecklist, Kind: KindUpdate})
	bus.Publish(Event{Collection: CollectionMemories, Kind: KindDelete})

	assert.Equal(t, 3, count)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	var count int
	sub := bus.Subscribe(CollectionChecklist, func(Event) { count++ })

	bus.Publish(Event{Collection: CollectionChecklist, Kind: KindInsert})
	sub.Unsubscribe()
	// повторный Unsubscribe не должен паниковать
	sub.Unsubscribe()
	bus.Publish(Event{Collection: CollectionChecklist, Kind: KindInsert})

	assert.Equal(t, 1, count)
}

func TestObserve_RefreshOnEvent(t *testing.T) {
	bus := NewBus()

	data := []string{"a"}
	fetch := func() ([]string, error) { return append([]string(nil), data...), nil }

	var published [][]string
	res, err := Observe(bus, CollectionChants, fetch, func(items []string) {
		published = append(published, items)
	})
	assert.NoError(t, err)
	defer res.Close()

	assert.Equal(t, []string{"a"}, res.Items())

	data = []string{"a", "b"}
	bus.Publish(Event{Collection: CollectionChants, Kind: KindInsert})

	assert.Equal(t, []string{"a", "b"}, res.Items())
	assert.Len(t, published, 1)
	assert.Equal(t, []string{"a", "b"}, published[0])
}

func TestObserve_CloseStopsRefresh(t *testing.T) {
	bus := NewBus()

	calls := 0
	fetch := func() ([]int, error) { calls++; return nil, nil }

	res, err := Observe(bus, CollectionMemories, fetch, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	res.Close()
	bus.Publish(Event{Collection: CollectionMemories, Kind: KindDelete})
	assert.Equal(t, 1, calls)
}
