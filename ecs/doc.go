// Package ecs provides ECS adapters for uno's interaction events and deck.
//
// The primary adapter is [NewDonburiStore], which bridges uno interaction
// events (hover, click, card drawn) into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// The deck can be mirrored as entities with [FillDeck]; the store removes
// the matching entity whenever the table reports a drawn card.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.FillDeck(world, table.Deck().Cards())
//	table.SetEntityStore(ecs.NewDonburiStore(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
