package uno

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Deck display layout, in world coordinates.
var (
	// DeckPosition is where the face-down deck sits.
	DeckPosition = Vec2{X: 0, Y: -300}
	// TooltipOffset is added to the UI pointer to place the deck tooltip.
	TooltipOffset = Vec2{X: 15, Y: 0}
	// HandOrigin is the position of the first drawn card.
	HandOrigin = Vec2{X: -420, Y: 280}
)

const (
	handSpacing    = 60.0
	handRowSpacing = 40.0
	handPerRow     = 15
	drawDuration   = 0.35
)

// ShowcaseCards are laid out face up across the middle of the table by
// SpawnShowcase.
var ShowcaseCards = []Card{
	NewColoredCard(Number(9), ColorBlue),
	NewWildCard(VariantWild),
	NewWildCard(VariantPlusFour),
	NewColoredCard(VariantInvert, ColorYellow),
}

var showcaseX = []float64{-300, -100, 100, 300}

// deckView owns the deck entity, its tooltip, and the drawn hand.
type deckView struct {
	entity         *Entity
	tooltipVisible bool
	tooltipPos     Vec2
	hand           []*Entity
}

func (t *Table) spawnDeck() {
	t.view.entity = t.Spawn(EntitySpec{
		Name:    "deck",
		X:       DeckPosition.X,
		Y:       DeckPosition.Y,
		Texture: CardBackPath,
		Caps:    Hoverable | Clickable,
	})
}

// SpawnShowcase places the showcase cards at y = 0.
func (t *Table) SpawnShowcase() []*Entity {
	out := make([]*Entity, 0, len(ShowcaseCards))
	for i, c := range ShowcaseCards {
		out = append(out, t.Spawn(CardSpec(c, showcaseX[i], 0)))
	}
	return out
}

// updateDeckView shows the tooltip while the deck is hovered and draws a
// card for every press that landed on the deck this frame.
func (t *Table) updateDeckView() {
	deck := t.view.entity
	t.view.tooltipVisible = deck.Hover == Hovered
	if t.view.tooltipVisible {
		t.view.tooltipPos = Vec2{X: t.pointer.UI.X + TooltipOffset.X, Y: t.pointer.UI.Y + TooltipOffset.Y}
	}

	// Draw events are appended after the scan, so the range is fixed.
	n := len(t.interactions)
	for i := 0; i < n; i++ {
		ev := t.interactions[i]
		if ev.Type == EventClickPress && ev.EntityID == deck.ID {
			t.drawCard()
		}
	}
}

// drawCard moves the top card of the deck into the hand. An empty deck draws
// nothing.
func (t *Table) drawCard() {
	c, ok := t.deck.Draw()
	if !ok {
		t.debugf("deck empty")
		return
	}
	deck := t.view.entity
	slot := handSlot(len(t.view.hand))

	spec := CardSpec(c, deck.X, deck.Y)
	spec.ZIndex = len(t.view.hand) + 1
	e := t.Spawn(spec)
	t.view.hand = append(t.view.hand, e)
	t.AddTween(TweenPosition(e, slot.X, slot.Y, drawDuration, ease.OutCubic))

	t.interactions = append(t.interactions, InteractionEvent{
		Type:      EventCardDrawn,
		EntityID:  e.ID,
		X:         t.pointer.World.X,
		Y:         t.pointer.World.Y,
		Card:      c,
		Remaining: t.deck.Len(),
	})
}

func handSlot(i int) Vec2 {
	return Vec2{
		X: HandOrigin.X + float64(i%handPerRow)*handSpacing,
		Y: HandOrigin.Y + float64(i/handPerRow)*handRowSpacing,
	}
}

// TooltipText returns the deck tooltip text.
func (t *Table) TooltipText() string {
	return fmt.Sprintf("cards remaining: %d", t.deck.Len())
}

// Tooltip reports whether the deck tooltip is visible and where, in window
// pixels.
func (t *Table) Tooltip() (pos Vec2, visible bool) {
	return t.view.tooltipPos, t.view.tooltipVisible
}

// DeckEntity returns the face-down deck entity.
func (t *Table) DeckEntity() *Entity {
	return t.view.entity
}

// Deck returns the remaining deck.
func (t *Table) Deck() *Deck {
	return &t.deck
}

// Hand returns the drawn card entities in draw order. The returned slice
// MUST NOT be mutated.
func (t *Table) Hand() []*Entity {
	return t.view.hand
}
