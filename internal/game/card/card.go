package card

// ParamRequirement restricts play to a window of a global parameter.
type ParamRequirement struct {
	Parameter Parameter `json:"parameter"`
	Min       int       `json:"min"`
	Max       int       `json:"max"`
}

// Requirements are the preconditions a player must meet to play a card.
type Requirements struct {
	Parameters []ParamRequirement `json:"parameters,omitempty"`
	Tags       map[Tag]int        `json:"tags,omitempty"`
	Resources  []ResourceAmount   `json:"resources,omitempty"`
	Production []ResourceAmount   `json:"production,omitempty"`
}

// CardAction is an activated ability, usable once per generation. Cost is
// applied (and must be payable) before Effect.
type CardAction struct {
	Cost   Action `json:"cost,omitempty"`
	Effect Action `json:"effect"`
}

// Discounts a played card grants its owner on future card costs.
type Discounts struct {
	Card int         `json:"card,omitempty"`
	Tags map[Tag]int `json:"tags,omitempty"`
	// StandardProjects discounts standard project costs.
	StandardProjects int `json:"standardProjects,omitempty"`
}

// Card is an immutable catalog entry. Per-instance mutable state (stored
// resources, action usage) lives on the player's played-card records, never
// here; catalog entries are shared across games.
type Card struct {
	Name         string       `json:"name"`
	Type         Type         `json:"type"`
	Deck         Deck         `json:"deck"`
	Cost         int          `json:"cost"`
	Tags         []Tag        `json:"tags,omitempty"`
	Requirements Requirements `json:"requirements,omitempty"`

	// Play is the immediate effect applied when the card is played.
	Play Action `json:"play,omitempty"`
	// Effect is the passive triggered reaction, if any.
	Effect *Effect `json:"effect,omitempty"`
	// Action is the activated per-generation ability, if any.
	Action *CardAction `json:"action,omitempty"`
	// Discounts this card grants while in play.
	Discounts *Discounts `json:"discounts,omitempty"`
	// ExchangeRateBonus raises the value of steel or titanium payments.
	ExchangeRateBonus map[Resource]int `json:"exchangeRateBonus,omitempty"`
	// Stores names the resource kind this card can hold.
	Stores Resource `json:"stores,omitempty"`

	// Corporation-only fields.
	StartingMegacredits int `json:"startingMegacredits,omitempty"`

	VictoryPoints Amount `json:"victoryPoints,omitempty"`
}

// HasTag reports whether the card carries the tag (wild tags match).
func (c *Card) HasTag(tag Tag) bool {
	for _, t := range c.Tags {
		if t.Matches(tag) {
			return true
		}
	}
	return false
}

// CountTag counts how many of the card's tags satisfy a request for tag.
func (c *Card) CountTag(tag Tag) int {
	n := 0
	for _, t := range c.Tags {
		if t.Matches(tag) {
			n++
		}
	}
	return n
}

// Measure names a countable criterion used by milestones and awards.
type Measure string

const (
	MeasureTerraformRating       Measure = "TERRAFORM_RATING"
	MeasureCitiesOnMars          Measure = "CITIES_ON_MARS"
	MeasureGreeneries            Measure = "GREENERIES"
	MeasureBuildingTags          Measure = "BUILDING_TAGS"
	MeasureScienceTags           Measure = "SCIENCE_TAGS"
	MeasureCardsInHand           Measure = "CARDS_IN_HAND"
	MeasureTilesOwned            Measure = "TILES_OWNED"
	MeasureHeat                  Measure = "HEAT"
	MeasureSteelTitanium         Measure = "STEEL_TITANIUM"
	MeasureMegacreditProduction  Measure = "MEGACREDIT_PRODUCTION"
)

// Milestone can be claimed once its criterion reaches the threshold.
type Milestone struct {
	Name      string  `json:"name"`
	Criterion Measure `json:"criterion"`
	Threshold int     `json:"threshold"`
}

// Award is funded during play and scored at game end by its criterion.
type Award struct {
	Name      string  `json:"name"`
	Criterion Measure `json:"criterion"`
}

// StandardProject is an always-available priced action.
type StandardProject struct {
	Name   string `json:"name"`
	Cost   int    `json:"cost"`
	Action Action `json:"action"`
}
