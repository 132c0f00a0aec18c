package game

import "github.com/openmars/tfm-server-go/internal/game/card"

// TriggeredAction pairs an action produced by a matched effect with its
// owner and source card.
type TriggeredAction struct {
	PlayerIndex int
	Action      card.Action
	Source      *PlayedCard
}

// ActionsFromEvent scans every player's played cards (corporation included)
// for effects whose condition matches the event and returns the actions to
// enqueue. The acting player's own cards are scanned first, then the
// remaining players in index order; within one player, played order is
// preserved. Discovery order is the enqueue order — conflicting triggers
// are never reordered.
func ActionsFromEvent(s *GameState, ev Event) []TriggeredAction {
	var out []TriggeredAction

	order := playerScanOrder(s, ev.PlayerIndex)
	for _, idx := range order {
		p := s.Players[idx]
		if p.Corporation != nil {
			out = appendMatches(out, p, p.Corporation, ev)
		}
		for i := range p.Played {
			out = appendMatches(out, p, &p.Played[i], ev)
		}
	}
	return out
}

func appendMatches(out []TriggeredAction, p *PlayerState, pc *PlayedCard, ev Event) []TriggeredAction {
	def := pc.Card()
	if def.Effect == nil {
		return out
	}
	if !ConditionMatches(def.Effect.Condition, ev, p.Index) {
		return out
	}
	return append(out, TriggeredAction{PlayerIndex: p.Index, Action: def.Effect.Action, Source: pc})
}

func playerScanOrder(s *GameState, actingIndex int) []int {
	order := make([]int, 0, len(s.Players))
	if actingIndex >= 0 && actingIndex < len(s.Players) {
		order = append(order, actingIndex)
	}
	for i := range s.Players {
		if i != actingIndex {
			order = append(order, i)
		}
	}
	return order
}
