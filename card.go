package uno

import (
	"fmt"
	"strconv"
)

// CardBackPath is the texture shown for face-down cards and the deck pile.
const CardBackPath = "cards/card_back.png"

// CardColor is the color of a card. Wild is reserved for wild-class variants.
type CardColor uint8

const (
	ColorYellow CardColor = iota // yellow suit
	ColorRed                     // red suit
	ColorBlue                    // blue suit
	ColorGreen                   // green suit
	ColorWild                    // color-agnostic wild cards
)

// SuitColors lists the four non-wild colors in deck fill order.
var SuitColors = [4]CardColor{ColorBlue, ColorYellow, ColorRed, ColorGreen}

// String returns the lowercase color name used in asset paths.
func (c CardColor) String() string {
	switch c {
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorWild:
		return "wild"
	default:
		return "CardColor(" + strconv.Itoa(int(c)) + ")"
	}
}

// VariantKind identifies the rank or action of a card independent of color.
type VariantKind uint8

const (
	KindNumber   VariantKind = iota // numbered card, see Variant.Number
	KindInvert                      // reverses turn order
	KindBlock                       // skips the next player
	KindPlusTwo                     // next player draws two
	KindPlusFour                    // wild, next player draws four
	KindWild                        // wild color change
)

// Variant is the rank/action identity of a card. Number is only meaningful
// when Kind is KindNumber.
type Variant struct {
	Kind   VariantKind
	Number uint8
}

// Predeclared variants.
var (
	VariantInvert   = Variant{Kind: KindInvert}
	VariantBlock    = Variant{Kind: KindBlock}
	VariantPlusTwo  = Variant{Kind: KindPlusTwo}
	VariantPlusFour = Variant{Kind: KindPlusFour}
	VariantWild     = Variant{Kind: KindWild}
)

// Number returns the numbered variant for digit n (0-9).
func Number(n uint8) Variant {
	return Variant{Kind: KindNumber, Number: n}
}

// IsWild reports whether the variant belongs to the wild class, which is
// always paired with ColorWild.
func (v Variant) IsWild() bool {
	return v.Kind == KindPlusFour || v.Kind == KindWild
}

// token returns the variant segment of a texture file name.
func (v Variant) token() string {
	switch v.Kind {
	case KindNumber:
		return strconv.Itoa(int(v.Number))
	case KindInvert:
		return "inverse"
	case KindBlock:
		return "block"
	case KindPlusTwo:
		return "2plus"
	case KindPlusFour:
		return "4_plus"
	case KindWild:
		return "color_change"
	default:
		return "unknown"
	}
}

func (v Variant) String() string {
	switch v.Kind {
	case KindNumber:
		return "Number(" + strconv.Itoa(int(v.Number)) + ")"
	case KindInvert:
		return "Invert"
	case KindBlock:
		return "Block"
	case KindPlusTwo:
		return "PlusTwo"
	case KindPlusFour:
		return "PlusFour"
	case KindWild:
		return "Wild"
	default:
		return "Variant(" + strconv.Itoa(int(v.Kind)) + ")"
	}
}

// Card is a (color, variant) pair. Use NewColoredCard and NewWildCard to build
// cards that respect the color pairing; Valid reports whether an arbitrary
// value does.
type Card struct {
	Color   CardColor
	Variant Variant
}

// NewColoredCard returns a non-wild card of the given suit color.
// It panics if v is a wild-class variant or c is ColorWild.
func NewColoredCard(v Variant, c CardColor) Card {
	if v.IsWild() || c == ColorWild {
		panic(fmt.Sprintf("uno: %v cannot be colored %v", v, c))
	}
	return Card{Color: c, Variant: v}
}

// NewWildCard returns a wild-class card. It panics if v is not wild-class.
func NewWildCard(v Variant) Card {
	if !v.IsWild() {
		panic(fmt.Sprintf("uno: %v is not a wild variant", v))
	}
	return Card{Color: ColorWild, Variant: v}
}

// Valid reports whether the card pairs wild-class variants with ColorWild and
// every other variant with one of the four suit colors.
func (c Card) Valid() bool {
	if c.Variant.Kind > KindWild || c.Color > ColorWild {
		return false
	}
	if c.Variant.Kind == KindNumber && c.Variant.Number > 9 {
		return false
	}
	return c.Variant.IsWild() == (c.Color == ColorWild)
}

// TexturePath returns the asset path of the card face.
//
// Colored cards live under their color directory with the color repeated as
// a suffix (cards/blue/9_blue.png). Wild-class textures are color-agnostic
// and sit directly under cards/ (cards/4_plus.png).
func (c Card) TexturePath() string {
	if c.Variant.IsWild() {
		return "cards/" + c.Variant.token() + ".png"
	}
	color := c.Color.String()
	return "cards/" + color + "/" + c.Variant.token() + "_" + color + ".png"
}

func (c Card) String() string {
	if c.Variant.IsWild() {
		return c.Variant.String()
	}
	return c.Color.String() + " " + c.Variant.String()
}

// AllCards returns every distinct card identity: each colored variant in each
// suit color, followed by the wild-class variants. Useful for preloading all
// card textures.
func AllCards() []Card {
	colored := make([]Variant, 0, 13)
	colored = append(colored, VariantInvert, VariantBlock, VariantPlusTwo)
	for n := uint8(0); n <= 9; n++ {
		colored = append(colored, Number(n))
	}

	cards := make([]Card, 0, len(colored)*len(SuitColors)+2)
	for _, v := range colored {
		for _, c := range []CardColor{ColorYellow, ColorRed, ColorBlue, ColorGreen} {
			cards = append(cards, NewColoredCard(v, c))
		}
	}
	cards = append(cards, NewWildCard(VariantPlusFour), NewWildCard(VariantWild))
	return cards
}
