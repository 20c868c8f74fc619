package ecs

import (
	"github.com/phanxgames/uno"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for uno interaction events.
// Subscribe to this in your ECS systems to receive hover, click, and draw
// events.
var InteractionEventType = events.NewEventType[uno.InteractionEvent]()

// CardComponent holds the identity of a card entity.
var CardComponent = donburi.NewComponentType[uno.Card]()

// InDeck tags card entities that are still in the deck.
var InDeck = donburi.NewTag()

var inDeckQuery = donburi.NewQuery(filter.Contains(CardComponent, InDeck))

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe. The table dispatches them at the end of
// every frame through EndFrame. EventCardDrawn also removes one matching
// InDeck entity.
func NewDonburiStore(world donburi.World) uno.FrameStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event uno.InteractionEvent) {
	if event.Type == uno.EventCardDrawn {
		DrawFromDeck(s.world, event.Card)
	}
	InteractionEventType.Publish(s.world, event)
}

// EndFrame dispatches every queued Donburi event to its subscribers.
func (s *donburiStore) EndFrame() {
	events.ProcessAllEvents(s.world)
}

// FillDeck creates one InDeck entity per card.
func FillDeck(world donburi.World, cards []uno.Card) {
	for _, c := range cards {
		e := world.Create(CardComponent, InDeck)
		CardComponent.SetValue(world.Entry(e), c)
	}
}

// CountInDeck returns the number of InDeck card entities.
func CountInDeck(world donburi.World) int {
	return inDeckQuery.Count(world)
}

// DrawFromDeck removes one InDeck entity holding card. It reports whether
// one was found.
func DrawFromDeck(world donburi.World, card uno.Card) bool {
	var found donburi.Entity
	ok := false
	inDeckQuery.Each(world, func(entry *donburi.Entry) {
		if ok || CardComponent.GetValue(entry) != card {
			return
		}
		found = entry.Entity()
		ok = true
	})
	if ok {
		world.Remove(found)
	}
	return ok
}

// CountByCard returns the InDeck multiset keyed by card.
func CountByCard(world donburi.World) map[uno.Card]int {
	counts := make(map[uno.Card]int)
	inDeckQuery.Each(world, func(entry *donburi.Entry) {
		counts[CardComponent.GetValue(entry)]++
	})
	return counts
}
