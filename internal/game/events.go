package game

import (
	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
)

// EventKind categorises a fired game event.
type EventKind string

const (
	EventTilePlaced          EventKind = "TILE_PLACED"
	EventTagsPlayed          EventKind = "TAGS_PLAYED"
	EventStandardProjectPaid EventKind = "STANDARD_PROJECT_PAID"
	EventCardCostPaid        EventKind = "CARD_COST_PAID"
)

// Event describes a committed state change that played-card effects may
// react to. PlayerIndex is the acting player.
type Event struct {
	Kind        EventKind
	PlayerIndex int

	// Tile-placed fields.
	TileType board.TileType
	OnMars   bool

	// Tags-played fields.
	Tags []card.Tag

	// Cost-paid fields. Standard project payments also report their cost
	// here so cost-threshold effects see them.
	Cost     int
	CardName string
}

// ConditionMatches evaluates a declared condition against an event for a
// card owned by ownerIndex. Same-player relativity is the default; the
// condition widens to any player only when it says so.
func ConditionMatches(cond card.Condition, ev Event, ownerIndex int) bool {
	if !cond.AnyPlayer && ev.PlayerIndex != ownerIndex {
		return false
	}
	switch cond.Kind {
	case card.CondTilePlaced:
		if ev.Kind != EventTilePlaced {
			return false
		}
		if cond.OnMarsOnly && !ev.OnMars {
			return false
		}
		if len(cond.TileTypes) == 0 {
			return true
		}
		for _, t := range cond.TileTypes {
			if t == ev.TileType || (t == board.TileCity && ev.TileType.IsCity()) {
				return true
			}
		}
		return false
	case card.CondTagsPlayed:
		if ev.Kind != EventTagsPlayed {
			return false
		}
		if len(cond.Tags) == 0 {
			return len(ev.Tags) > 0
		}
		if cond.AllTags {
			for _, want := range cond.Tags {
				if !tagsContain(ev.Tags, want) {
					return false
				}
			}
			return true
		}
		for _, want := range cond.Tags {
			if tagsContain(ev.Tags, want) {
				return true
			}
		}
		return false
	case card.CondStandardProjectPaid:
		return ev.Kind == EventStandardProjectPaid
	case card.CondCardCostPaid:
		return ev.Kind == EventCardCostPaid && ev.Cost >= cond.MinCost
	default:
		return false
	}
}

func tagsContain(tags []card.Tag, want card.Tag) bool {
	for _, t := range tags {
		if t.Matches(want) {
			return true
		}
	}
	return false
}
