package card

import "github.com/openmars/tfm-server-go/internal/game/board"

// Target says where a resource delta lands (or is taken from).
type Target string

const (
	// TargetSelf (the zero value) is the acting player's ledger.
	TargetSelf Target = ""
	// TargetThisCard stores on / removes from the source card itself.
	TargetThisCard Target = "THIS_CARD"
	// TargetAnyCard lets the player pick one of their cards storing this
	// resource kind; resolution pauses the queue for the choice.
	TargetAnyCard Target = "ANY_CARD"
	// TargetAnyPlayer lets the acting player pick any player (removals
	// and steals); resolution pauses the queue for the choice.
	TargetAnyPlayer Target = "ANY_PLAYER"
)

// ResourceAmount pairs a resource kind with a deferred amount and a target.
type ResourceAmount struct {
	Resource Resource `json:"resource"`
	Amount   Amount   `json:"amount"`
	Target   Target   `json:"target,omitempty"`
}

// ParameterDelta raises a global parameter by a number of steps.
type ParameterDelta struct {
	Parameter Parameter `json:"parameter"`
	Steps     Amount    `json:"steps"`
}

// TilePlacement requests a tile of the given type on a cell satisfying the
// placement requirement. OnMars is false only for the off-planet cells.
type TilePlacement struct {
	TileType  board.TileType      `json:"tileType"`
	Placement board.PlacementKind `json:"placement"`
	OnMars    bool                `json:"onMars"`
}

// OceanPlacement is the standard ocean tile request.
func OceanPlacement() TilePlacement {
	return TilePlacement{TileType: board.TileOcean, Placement: board.PlacementOcean, OnMars: true}
}

// CityPlacement is the standard city tile request.
func CityPlacement() TilePlacement {
	return TilePlacement{TileType: board.TileCity, Placement: board.PlacementCity, OnMars: true}
}

// GreeneryPlacement is the standard greenery tile request.
func GreeneryPlacement() TilePlacement {
	return TilePlacement{TileType: board.TileGreenery, Placement: board.PlacementGreenery, OnMars: true}
}

// LookAtCards asks the player to reveal Count cards from the deck and keep
// up to Keep of them, discarding the rest.
type LookAtCards struct {
	Count int `json:"count"`
	Keep  int `json:"keep"`
}

// Action is a declarative batch of primitive effects. It is the vocabulary
// both catalog entries and the effect applier speak; the applier expands it
// into ordered primitive queue entries.
type Action struct {
	DecreaseProduction []ResourceAmount `json:"decreaseProduction,omitempty"`
	IncreaseProduction []ResourceAmount `json:"increaseProduction,omitempty"`
	RemoveResources    []ResourceAmount `json:"removeResources,omitempty"`
	GainResources      []ResourceAmount `json:"gainResources,omitempty"`
	StealResources     []ResourceAmount `json:"stealResources,omitempty"`
	RaiseParameters    []ParameterDelta `json:"raiseParameters,omitempty"`
	TerraformRating    Amount           `json:"terraformRating,omitempty"`
	DrawCards          Amount           `json:"drawCards,omitempty"`
	PlaceTiles         []TilePlacement  `json:"placeTiles,omitempty"`
	LookAtCards        *LookAtCards     `json:"lookAtCards,omitempty"`
	// DiscardCards asks the player to discard that many cards from hand.
	DiscardCards Amount `json:"discardCards,omitempty"`
	// DuplicateProduction copies the production box of one of the
	// player's played cards carrying the tag; the pick pauses the queue.
	DuplicateProduction Tag `json:"duplicateProduction,omitempty"`
	// Choice offers the player exactly one of the nested actions.
	Choice []Action `json:"choice,omitempty"`
}

// IsEmpty reports whether the action carries no effects at all.
func (a Action) IsEmpty() bool {
	return len(a.DecreaseProduction) == 0 &&
		len(a.IncreaseProduction) == 0 &&
		len(a.RemoveResources) == 0 &&
		len(a.GainResources) == 0 &&
		len(a.StealResources) == 0 &&
		len(a.RaiseParameters) == 0 &&
		a.TerraformRating.IsZeroValue() &&
		a.DrawCards.IsZeroValue() &&
		len(a.PlaceTiles) == 0 &&
		a.LookAtCards == nil &&
		a.DiscardCards.IsZeroValue() &&
		a.DuplicateProduction == "" &&
		len(a.Choice) == 0
}
