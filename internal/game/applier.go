package game

import (
	"fmt"

	"github.com/openmars/tfm-server-go/internal/game/card"
)

// ExpandAction converts an approved declarative action into the ordered
// list of primitive queue entries that realise it. The emission order is
// fixed so triggered-effect causality stays well-defined: production
// decreases before increases, resource removals before gains, parameter
// raises after resource effects, and tile placements last — tiles fire
// their own triggers only once they physically land.
func ExpandAction(a card.Action, s *GameState, playerIndex int, src *PlayedCard) ([]Entry, error) {
	p := s.Player(playerIndex)
	if p == nil {
		return nil, fmt.Errorf("no player at index %d", playerIndex)
	}
	var out []Entry

	srcName := ""
	if src != nil {
		srcName = src.Name
	}

	if len(a.Choice) > 0 {
		e := NewEntry(EntryAskMakeChoice, playerIndex)
		e.Options = a.Choice
		e.CardName = srcName
		out = append(out, e)
	}

	for _, ra := range a.DecreaseProduction {
		n, err := ResolveAmount(ra.Amount, s, p, src)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue
		}
		if ra.Target == card.TargetAnyPlayer {
			if !anyPlayerHasProduction(s, ra.Resource) {
				continue
			}
			e := NewEntry(EntryAskResourceTarget, playerIndex)
			e.Resource, e.Amount, e.Remove, e.Production = ra.Resource, n, true, true
			e.CardName = srcName
			out = append(out, e)
			continue
		}
		e := NewEntry(EntryDecreaseProduction, playerIndex)
		e.Resource, e.Amount = ra.Resource, n
		out = append(out, e)
	}

	for _, ra := range a.IncreaseProduction {
		n, err := ResolveAmount(ra.Amount, s, p, src)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue
		}
		e := NewEntry(EntryIncreaseProduction, playerIndex)
		e.Resource, e.Amount = ra.Resource, n
		out = append(out, e)
	}

	if a.DuplicateProduction != "" {
		e := NewEntry(EntryAskDuplicateProduction, playerIndex)
		e.Tag = a.DuplicateProduction
		e.CardName = srcName
		out = append(out, e)
	}

	for _, ra := range a.RemoveResources {
		entries, err := expandRemoval(ra, s, p, srcName, false)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}

	for _, ra := range a.StealResources {
		entries, err := expandRemoval(ra, s, p, srcName, true)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}

	for _, ra := range a.GainResources {
		n, err := ResolveAmount(ra.Amount, s, p, src)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue
		}
		switch ra.Target {
		case card.TargetThisCard:
			e := NewEntry(EntryGainResource, playerIndex)
			e.Resource, e.Amount, e.CardName = ra.Resource, n, srcName
			out = append(out, e)
		case card.TargetAnyCard:
			hosts := storageCandidates(p, ra.Resource)
			switch len(hosts) {
			case 0:
				// No card can hold the resource; the gain is wasted.
			case 1:
				e := NewEntry(EntryGainResource, playerIndex)
				e.Resource, e.Amount, e.CardName = ra.Resource, n, hosts[0]
				out = append(out, e)
			default:
				e := NewEntry(EntryAskResourceTarget, playerIndex)
				e.Resource, e.Amount, e.CardName = ra.Resource, n, srcName
				out = append(out, e)
			}
		default:
			e := NewEntry(EntryGainResource, playerIndex)
			e.Resource, e.Amount = ra.Resource, n
			out = append(out, e)
		}
	}

	for _, pd := range a.RaiseParameters {
		n, err := ResolveAmount(pd.Steps, s, p, src)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			e := NewEntry(EntryRaiseParameter, playerIndex)
			e.Parameter = pd.Parameter
			e.Amount = 1
			out = append(out, e)
		}
	}

	if !a.TerraformRating.IsZeroValue() {
		n, err := ResolveAmount(a.TerraformRating, s, p, src)
		if err != nil {
			return nil, err
		}
		if n != 0 {
			e := NewEntry(EntryChangeTerraform, playerIndex)
			e.Amount = n
			out = append(out, e)
		}
	}

	if !a.DrawCards.IsZeroValue() {
		n, err := ResolveAmount(a.DrawCards, s, p, src)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			e := NewEntry(EntryDrawCard, playerIndex)
			e.Amount = n
			out = append(out, e)
		}
	}

	if !a.DiscardCards.IsZeroValue() {
		n, err := ResolveAmount(a.DiscardCards, s, p, src)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			e := NewEntry(EntryAskDiscard, playerIndex)
			e.Amount = n
			out = append(out, e)
		}
	}

	if a.LookAtCards != nil {
		e := NewEntry(EntryAskLookAtCards, playerIndex)
		e.Amount = a.LookAtCards.Count
		e.Keep = a.LookAtCards.Keep
		out = append(out, e)
	}

	for _, tp := range a.PlaceTiles {
		e := NewEntry(EntryAskPlaceTile, playerIndex)
		e.TileType, e.Placement, e.OnMars = tp.TileType, tp.Placement, tp.OnMars
		out = append(out, e)
	}

	return out, nil
}

// expandRemoval handles remove-resource and steal-resource declarations,
// which share targeting logic.
func expandRemoval(ra card.ResourceAmount, s *GameState, p *PlayerState, srcName string, steal bool) ([]Entry, error) {
	n, err := ResolveAmount(ra.Amount, s, p, nil)
	if ra.Target == card.TargetThisCard {
		n, err = ResolveAmount(ra.Amount, s, p, p.FindPlayed(srcName))
	}
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	switch ra.Target {
	case card.TargetThisCard:
		e := NewEntry(EntryRemoveResource, p.Index)
		e.Resource, e.Amount, e.CardName = ra.Resource, n, srcName
		return []Entry{e}, nil
	case card.TargetAnyPlayer:
		if !anyPlayerHasResource(s, ra.Resource) {
			return nil, nil
		}
		e := NewEntry(EntryAskResourceTarget, p.Index)
		e.Resource, e.Amount, e.Remove, e.Steal = ra.Resource, n, true, steal
		e.CardName = srcName
		return []Entry{e}, nil
	default:
		kind := EntryRemoveResource
		if steal {
			kind = EntryStealResource
		}
		e := NewEntry(kind, p.Index)
		e.Resource, e.Amount = ra.Resource, n
		return []Entry{e}, nil
	}
}

// storageCandidates lists the player's played cards able to hold the
// resource kind.
func storageCandidates(p *PlayerState, r card.Resource) []string {
	var out []string
	for i := range p.Played {
		if p.Played[i].Card().Stores == r {
			out = append(out, p.Played[i].Name)
		}
	}
	return out
}

func anyPlayerHasResource(s *GameState, r card.Resource) bool {
	for _, other := range s.Players {
		if r.Storable() {
			for i := range other.Played {
				if other.Played[i].Card().Stores == r && other.Played[i].Stored > 0 {
					return true
				}
			}
			continue
		}
		if other.Resources[r] > 0 {
			return true
		}
	}
	return false
}

func anyPlayerHasProduction(s *GameState, r card.Resource) bool {
	for _, other := range s.Players {
		if other.Productions[r] > r.ProductionFloor() {
			return true
		}
	}
	return false
}
