package card

// Tag is a category label on a card, used for discounts, requirements and
// trigger matching.
type Tag string

const (
	TagBuilding Tag = "BUILDING"
	TagSpace    Tag = "SPACE"
	TagScience  Tag = "SCIENCE"
	TagPower    Tag = "POWER"
	TagEarth    Tag = "EARTH"
	TagJovian   Tag = "JOVIAN"
	TagPlant    Tag = "PLANT"
	TagMicrobe  Tag = "MICROBE"
	TagAnimal   Tag = "ANIMAL"
	TagCity     Tag = "CITY"
	TagEvent    Tag = "EVENT"

	// TagWild matches any requested tag when counting.
	TagWild Tag = "WILD"
)

// Matches reports whether the tag satisfies a request for want. A wild tag
// satisfies every request except the event pseudo-tag.
func (t Tag) Matches(want Tag) bool {
	if t == want {
		return true
	}
	return t == TagWild && want != TagEvent
}

// Type classifies a catalog entry.
type Type string

const (
	TypeAutomated   Type = "AUTOMATED"
	TypeActive      Type = "ACTIVE"
	TypeEvent       Type = "EVENT"
	TypeCorporation Type = "CORPORATION"
	TypePrelude     Type = "PRELUDE"
)

// Deck names the deck a card is drawn from.
type Deck string

const (
	DeckBasic     Deck = "BASIC"
	DeckCorporate Deck = "CORPORATE"
	DeckPrelude   Deck = "PRELUDE"
)
