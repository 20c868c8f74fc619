// Package uno is an Uno-style card table for [Ebitengine].
//
// A [Table] owns the textured entities on screen, a [Camera], the pointer
// state, and a shuffled [Deck]. Each frame [Table.Update] runs the systems in
// a fixed order: input collection, scripted input, asset polling, pointer
// positions, hover, click, the deck display, tweens and the camera.
//
// # Quick start
//
//	cfg := uno.DefaultRunConfig()
//	table, err := uno.NewTableFromConfig(cfg, os.DirFS(cfg.AssetDir))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := uno.Run(table, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Cards and decks
//
// A [Card] pairs a [CardColor] with a [Variant]. [GenerateDeck] builds the
// standard 108-card deck and shuffles it; [Composition] describes other
// count tables. [Card.TexturePath] names the texture for a card:
//
//	cards/blue/9_blue.png
//	cards/4_plus.png
//	cards/color_change.png
//
// # Interaction
//
// Entities opt into interaction with the [Hoverable] and [Clickable]
// capabilities. [UpdateHover] marks an entity Hovered while the world pointer
// lies inside its image bounds; [UpdateClick] marks hovered entities Clicked
// on a left press and clears them on release. A clicked entity keeps its
// hover state until released. Transitions are reported as
// [InteractionEvent] values and forwarded to an optional [EntityStore], such
// as the Donburi adapter in uno/ecs.
//
// Pressing the deck draws its top card into the hand. Hovering it shows how
// many cards remain. F toggles the dev overlay.
//
// [Ebitengine]: https://ebitengine.org
package uno
