package main

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/phanxgames/uno"
	"github.com/phanxgames/uno/ecs"
)

// newDeckWorld mirrors the table deck into a Donburi world.
func newDeckWorld(table *uno.Table) (donburi.World, uno.EntityStore) {
	world := donburi.NewWorld()
	ecs.FillDeck(world, table.Deck().Cards())
	return world, ecs.NewDonburiStore(world)
}

// watchDraws logs every drawn card when the table dispatches the frame's
// events.
func watchDraws(world donburi.World, logger *zap.Logger) {
	ecs.InteractionEventType.Subscribe(world, func(w donburi.World, e uno.InteractionEvent) {
		if e.Type != uno.EventCardDrawn {
			return
		}
		logger.Info("card drawn",
			zap.Stringer("card", e.Card),
			zap.Uint32("entity", e.EntityID),
			zap.Int("remaining", ecs.CountInDeck(w)),
		)
	})
}
