package card

// AmountKind discriminates the Amount union.
type AmountKind string

const (
	// AmountNone is the zero value: the field carries no amount at all.
	AmountNone    AmountKind = ""
	AmountLiteral AmountKind = "LITERAL"
	AmountTag     AmountKind = "TAG"
	AmountVar     AmountKind = "VARIABLE"
)

// VariableAmount names a deferred game-state quantity. Resolution happens
// in the engine's amount resolver; a kind the resolver does not recognise
// is a content-definition bug and fails loudly there.
type VariableAmount string

const (
	VarCitiesOnMars          VariableAmount = "CITIES_ON_MARS"
	VarCitiesAnywhere        VariableAmount = "CITIES_ANYWHERE"
	VarOwnedCities           VariableAmount = "OWNED_CITIES"
	VarOwnedCitiesOnMars     VariableAmount = "OWNED_CITIES_ON_MARS"
	VarGreeneries            VariableAmount = "GREENERIES"
	VarOwnedGreeneries       VariableAmount = "OWNED_GREENERIES"
	VarOceansPlaced          VariableAmount = "OCEANS_PLACED"
	VarOwnedTiles            VariableAmount = "OWNED_TILES"
	VarResourcesOnCard       VariableAmount = "RESOURCES_ON_CARD"
	VarHalfResourcesOnCard   VariableAmount = "HALF_RESOURCES_ON_CARD"
	VarThirdResourcesOnCard  VariableAmount = "THIRD_RESOURCES_ON_CARD"
	VarEventsPlayed          VariableAmount = "EVENTS_PLAYED"
	VarAllEventsPlayed       VariableAmount = "ALL_EVENTS_PLAYED"
	VarTerraformRating       VariableAmount = "TERRAFORM_RATING"
	VarHalfTerraformRating   VariableAmount = "HALF_TERRAFORM_RATING"
	VarOpponentSpaceTags     VariableAmount = "OPPONENT_SPACE_TAGS"
	VarAllColonyTags         VariableAmount = "ALL_JOVIAN_TAGS"
	VarPlantConversionCost   VariableAmount = "PLANT_CONVERSION_COST"
	VarHeatAvailable         VariableAmount = "HEAT_AVAILABLE"
	VarEnergyAvailable       VariableAmount = "ENERGY_AVAILABLE"
	VarSteelProduction       VariableAmount = "STEEL_PRODUCTION"
	VarMegacreditProduction  VariableAmount = "MEGACREDIT_PRODUCTION"
	VarCardsInHand           VariableAmount = "CARDS_IN_HAND"

	// User-choice placeholders. These resolve to a provisional value so
	// the guard can evaluate the action; the chosen quantity substitutes
	// later through VarBasedOnUserChoice, which reads the player's
	// transient pending-variable-amount slot.
	VarUserChoice         VariableAmount = "USER_CHOICE"
	VarUserChoiceMinZero  VariableAmount = "USER_CHOICE_MIN_ZERO"
	VarBasedOnUserChoice  VariableAmount = "BASED_ON_USER_CHOICE"
)

// Amount is a value that is either a literal integer, a tag count across a
// player's non-event played cards, or a named variable quantity.
type Amount struct {
	Kind     AmountKind     `json:"kind,omitempty"`
	Value    int            `json:"value,omitempty"`
	Tag      Tag            `json:"tag,omitempty"`
	Divisor  int            `json:"divisor,omitempty"`
	Variable VariableAmount `json:"variable,omitempty"`
}

// Fixed builds a literal amount.
func Fixed(n int) Amount {
	return Amount{Kind: AmountLiteral, Value: n}
}

// PerTag builds a tag-count amount: count of tag across non-event played
// cards divided by divisor (floored). A divisor of 0 means 1.
func PerTag(tag Tag, divisor int) Amount {
	return Amount{Kind: AmountTag, Tag: tag, Divisor: divisor}
}

// Variable builds a named variable amount.
func Variable(v VariableAmount) Amount {
	return Amount{Kind: AmountVar, Variable: v}
}

// IsZeroValue reports whether the amount field was left unset.
func (a Amount) IsZeroValue() bool {
	return a.Kind == AmountNone
}
