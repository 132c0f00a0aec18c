package card

import "github.com/openmars/tfm-server-go/internal/game/board"

// ConditionKind discriminates the closed set of trigger condition shapes.
// Cards with unusual wording are modelled as one of these shapes, never as
// embedded code.
type ConditionKind string

const (
	// CondTilePlaced fires when a tile of one of the listed types lands.
	CondTilePlaced ConditionKind = "TILE_PLACED"
	// CondTagsPlayed fires when a card carrying one of the listed tags is
	// played.
	CondTagsPlayed ConditionKind = "TAGS_PLAYED"
	// CondStandardProjectPaid fires when a standard project is paid for.
	CondStandardProjectPaid ConditionKind = "STANDARD_PROJECT_PAID"
	// CondCardCostPaid fires when a card cost of at least MinCost is paid.
	CondCardCostPaid ConditionKind = "CARD_COST_PAID"
)

// Condition is a declarative trigger predicate over game events.
type Condition struct {
	Kind ConditionKind `json:"kind"`

	// Tile-placed filters.
	TileTypes  []board.TileType `json:"tileTypes,omitempty"`
	OnMarsOnly bool             `json:"onMarsOnly,omitempty"`

	// Tags-played filter. By default any listed tag matches; AllTags
	// requires the event to carry every listed tag.
	Tags    []Tag `json:"tags,omitempty"`
	AllTags bool  `json:"allTags,omitempty"`

	// Card-cost-paid filter.
	MinCost int `json:"minCost,omitempty"`

	// AnyPlayer widens the trigger to events caused by any player.
	// The default is same-player only.
	AnyPlayer bool `json:"anyPlayer,omitempty"`
}

// Effect is a played card's declared reaction: when Condition matches a
// fired event, Action is enqueued for the card's owner.
type Effect struct {
	Condition Condition `json:"condition"`
	Action    Action    `json:"action"`
}
