package uno

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidComposition is returned when a deck count table would produce an
// empty deck.
var ErrInvalidComposition = errors.New("invalid deck composition")

// Composition is the per-variant copy count table used to fill a deck.
// Colored counts apply once per suit color; PlusFour and Wild counts are
// absolute.
type Composition struct {
	Zero     int `yaml:"zero"`
	Numbers  int `yaml:"numbers"` // each of 1-9
	Invert   int `yaml:"invert"`
	Block    int `yaml:"block"`
	PlusTwo  int `yaml:"plus_two"`
	PlusFour int `yaml:"plus_four"`
	Wild     int `yaml:"wild"`
}

// DefaultComposition is the standard 108-card table.
var DefaultComposition = Composition{
	Zero:     1,
	Numbers:  2,
	Invert:   2,
	Block:    2,
	PlusTwo:  2,
	PlusFour: 4,
	Wild:     4,
}

// Size returns the number of cards Generate produces.
func (c Composition) Size() int {
	perColor := c.Zero + 9*c.Numbers + c.Invert + c.Block + c.PlusTwo
	return perColor*len(SuitColors) + c.PlusFour + c.Wild
}

// Validate reports an error when any count is negative or the table is empty.
func (c Composition) Validate() error {
	for _, n := range []int{c.Zero, c.Numbers, c.Invert, c.Block, c.PlusTwo, c.PlusFour, c.Wild} {
		if n < 0 {
			return fmt.Errorf("%w: negative count %d", ErrInvalidComposition, n)
		}
	}
	if c.Size() == 0 {
		return fmt.Errorf("%w: no cards", ErrInvalidComposition)
	}
	return nil
}

// Generate fills a deck from the table and shuffles it with rng. A nil rng
// uses a time-seeded source.
func (c Composition) Generate(rng *rand.Rand) Deck {
	cards := make([]Card, 0, c.Size())

	cards = appendColored(cards, Number(0), c.Zero)
	for n := uint8(1); n <= 9; n++ {
		cards = appendColored(cards, Number(n), c.Numbers)
	}
	cards = appendColored(cards, VariantBlock, c.Block)
	cards = appendColored(cards, VariantInvert, c.Invert)
	cards = appendColored(cards, VariantPlusTwo, c.PlusTwo)
	cards = appendCopies(cards, NewWildCard(VariantPlusFour), c.PlusFour)
	cards = appendCopies(cards, NewWildCard(VariantWild), c.Wild)

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shuffle(rng, cards)
	return Deck{cards: cards}
}

// GenerateDeck builds and shuffles a deck from DefaultComposition.
func GenerateDeck(rng *rand.Rand) Deck {
	return DefaultComposition.Generate(rng)
}

// appendColored appends n copies of v in every suit color.
func appendColored(cards []Card, v Variant, n int) []Card {
	for _, color := range SuitColors {
		cards = appendCopies(cards, NewColoredCard(v, color), n)
	}
	return cards
}

func appendCopies(cards []Card, card Card, n int) []Card {
	for i := 0; i < n; i++ {
		cards = append(cards, card)
	}
	return cards
}

// shuffle is an in-place Fisher-Yates permutation.
func shuffle(rng *rand.Rand, cards []Card) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Deck is an ordered pile of cards. The last element is the top.
type Deck struct {
	cards []Card
}

// NewDeck wraps cards as a deck without shuffling. The last card is the top.
func NewDeck(cards []Card) Deck {
	return Deck{cards: append([]Card(nil), cards...)}
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the remaining cards, bottom first. The returned slice MUST NOT
// be mutated.
func (d *Deck) Cards() []Card {
	return d.cards
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, false
	}
	card = d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, true
}

// Counts returns the multiset of remaining cards.
func (d *Deck) Counts() map[Card]int {
	counts := make(map[Card]int, 54)
	for _, c := range d.cards {
		counts[c]++
	}
	return counts
}
