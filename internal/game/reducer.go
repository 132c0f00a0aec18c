package game

import (
	"fmt"

	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
)

// Reduce applies one primitive entry to the state and returns the new
// state. The input state is never mutated; every transition works on a
// structural copy so earlier states remain valid for replay and diffing.
//
// Reduce is total over the entry union. An unrecognised kind is an error,
// not a silent no-op: a kind the reducer does not know means the queue and
// the engine disagree about the vocabulary, which is state-corruption
// territory.
func Reduce(s *GameState, e Entry) (*GameState, error) {
	ns := s.Clone()
	p := ns.Player(e.PlayerIndex)
	if p == nil {
		return nil, fmt.Errorf("entry %s: no player at index %d", e.Kind, e.PlayerIndex)
	}

	switch e.Kind {
	case EntryGainResource:
		if err := gainResource(p, e.Resource, e.Amount, e.CardName); err != nil {
			return nil, err
		}

	case EntryRemoveResource:
		if err := removeResource(p, e.Resource, e.Amount, e.CardName); err != nil {
			return nil, err
		}

	case EntryStealResource:
		victim := ns.Player(e.TargetIndex)
		if victim == nil {
			return nil, fmt.Errorf("steal: no player at index %d", e.TargetIndex)
		}
		if err := removeResource(victim, e.Resource, e.Amount, e.CardName); err != nil {
			return nil, err
		}
		if err := gainResource(p, e.Resource, e.Amount, ""); err != nil {
			return nil, err
		}

	case EntryIncreaseProduction:
		p.Productions[e.Resource] += e.Amount

	case EntryDecreaseProduction:
		target := p
		if e.TargetIndex != e.PlayerIndex && e.TargetIndex < len(ns.Players) {
			target = ns.Player(e.TargetIndex)
		}
		next := target.Productions[e.Resource] - e.Amount
		if next < e.Resource.ProductionFloor() {
			return nil, fmt.Errorf("production floor violated: %s would reach %d for player %d",
				e.Resource, next, target.Index)
		}
		target.Productions[e.Resource] = next

	case EntryRaiseParameter:
		raiseParameter(ns, p, e.Parameter)

	case EntryChangeTerraform:
		p.TerraformRating += e.Amount

	case EntryPlaceTile:
		if err := placeTile(ns, p, e); err != nil {
			return nil, err
		}

	case EntryDrawCard:
		drawCards(ns, p, e.Amount)

	case EntryDiscardCard:
		for _, name := range e.Cards {
			if !removeFromHand(p, name) {
				return nil, fmt.Errorf("discard: %q not in hand of player %d", name, p.Index)
			}
			ns.Common.Discard = append(ns.Common.Discard, name)
		}

	case EntryClaimMilestone:
		ns.Common.ClaimedMilestones = append(ns.Common.ClaimedMilestones,
			ClaimedMilestone{Name: e.CardName, PlayerIndex: p.Index})

	case EntryFundAward:
		ns.Common.FundedAwards = append(ns.Common.FundedAwards,
			FundedAward{Name: e.CardName, PlayerIndex: p.Index})

	case EntryMarkActionUsed:
		pc := p.FindPlayed(e.CardName)
		if pc == nil {
			return nil, fmt.Errorf("mark action used: %q not played by player %d", e.CardName, p.Index)
		}
		pc.LastGenerationUsed = ns.Common.Generation

	case EntryRunProduction:
		runProduction(p)

	case EntryNextGeneration:
		ns.Common.Generation++
		ns.Common.Turn = 0
		ns.Common.FirstPlayerIndex = (ns.Common.FirstPlayerIndex + 1) % len(ns.Players)
		ns.Common.CurrentPlayerIndex = ns.Common.FirstPlayerIndex
		for _, pl := range ns.Players {
			pl.Passed = false
			pl.ActionsRemaining = MaxActionsPerTurn
			pl.Discounts.NextCardThisGeneration = 0
		}

	case EntrySetVariable:
		v := e.Amount
		p.Pending.VariableAmount = &v

	case EntryClearVariable:
		p.Pending.VariableAmount = nil

	case EntryClearPending:
		v := p.Pending.VariableAmount
		p.Pending = Pending{VariableAmount: v}

	case EntryAskPlaceTile:
		if err := ensureNoPending(p, e.Kind); err != nil {
			return nil, err
		}
		p.Pending.TilePlacement = &PendingTilePlacement{
			TileType: e.TileType, Placement: e.Placement, OnMars: e.OnMars,
		}

	case EntryAskResourceTarget:
		if err := ensureNoPending(p, e.Kind); err != nil {
			return nil, err
		}
		p.Pending.ResourceTarget = &PendingResourceTarget{
			Resource:   e.Resource,
			Amount:     e.Amount,
			Remove:     e.Remove,
			Steal:      e.Steal,
			Production: e.Production,
			AnyPlayer:  e.Remove || e.Steal,
			SourceCard: e.CardName,
		}

	case EntryAskLookAtCards:
		if err := ensureNoPending(p, e.Kind); err != nil {
			return nil, err
		}
		revealed := takeFromDeck(ns, e.Amount)
		p.Pending.CardSelection = &PendingCardSelection{Cards: revealed, Keep: e.Keep}

	case EntryAskMakeChoice:
		if err := ensureNoPending(p, e.Kind); err != nil {
			return nil, err
		}
		p.Pending.Choice = &PendingChoice{Options: e.Options, SourceCard: e.CardName}

	case EntryAskDuplicateProduction:
		if err := ensureNoPending(p, e.Kind); err != nil {
			return nil, err
		}
		p.Pending.DuplicateProduction = e.Tag
		p.Pending.DuplicateProductionSource = e.CardName

	case EntryAskDiscard:
		if err := ensureNoPending(p, e.Kind); err != nil {
			return nil, err
		}
		p.Pending.Discard = &PendingDiscard{Count: e.Amount}

	default:
		return nil, fmt.Errorf("unrecognized queue entry kind %q", e.Kind)
	}

	return ns, nil
}

// ensureNoPending rejects a second suspended decision for a player whose
// first is still outstanding.
func ensureNoPending(p *PlayerState, kind EntryKind) error {
	if p.Pending.Any() {
		return fmt.Errorf("%s: player %d already has a pending decision", kind, p.Index)
	}
	return nil
}

func gainResource(p *PlayerState, r card.Resource, amount int, cardName string) error {
	if cardName != "" && r.Storable() {
		pc := p.FindPlayed(cardName)
		if pc == nil {
			return fmt.Errorf("gain %s: %q not played by player %d", r, cardName, p.Index)
		}
		pc.Stored += amount
		return nil
	}
	p.Resources[r] += amount
	return nil
}

func removeResource(p *PlayerState, r card.Resource, amount int, cardName string) error {
	if cardName != "" && r.Storable() {
		pc := p.FindPlayed(cardName)
		if pc == nil {
			return fmt.Errorf("remove %s: %q not played by player %d", r, cardName, p.Index)
		}
		if pc.Stored < amount {
			return fmt.Errorf("remove %s: %q holds %d, need %d", r, cardName, pc.Stored, amount)
		}
		pc.Stored -= amount
		return nil
	}
	if p.Resources[r] < amount {
		return fmt.Errorf("remove %s: player %d has %d, need %d", r, p.Index, p.Resources[r], amount)
	}
	p.Resources[r] -= amount
	return nil
}

// raiseParameter moves the parameter one step and credits the acting
// player a terraform rating point. Raising past the terraformed maximum is
// a no-op and earns nothing.
func raiseParameter(s *GameState, p *PlayerState, param card.Parameter) {
	_, max := param.Range()
	cur := s.Common.Parameters[param]
	if cur >= max {
		return
	}
	next := cur + param.Step()
	if next > max {
		next = max
	}
	s.Common.Parameters[param] = next
	p.TerraformRating++
}

func placeTile(s *GameState, p *PlayerState, e Entry) error {
	cell, ok := s.Common.Board.Cell(e.CellID)
	if !ok {
		return fmt.Errorf("place tile: no cell %q", e.CellID)
	}
	if cell.Tile != nil {
		return fmt.Errorf("place tile: cell %q already occupied", e.CellID)
	}

	owner := p.Index
	if e.TileType == board.TileOcean {
		owner = board.NeutralOwner
	}
	cell.Tile = &board.Tile{Type: e.TileType, OwnerIndex: owner}

	// Placement bonuses printed on the cell.
	for _, bonus := range cell.Bonus {
		switch bonus {
		case board.BonusSteel:
			p.Resources[card.Steel]++
		case board.BonusTitanium:
			p.Resources[card.Titanium]++
		case board.BonusPlant:
			p.Resources[card.Plant]++
		case board.BonusCard:
			drawCards(s, p, 1)
		}
	}
	// Two megacredits per adjacent ocean, paid to the placing player.
	p.Resources[card.Megacredit] += 2 * s.Common.Board.AdjacentOceans(cell)

	if e.TileType == board.TileOcean {
		raiseParameter(s, p, card.ParamOceans)
	}
	if e.TileType == board.TileGreenery && e.OnMars {
		raiseParameter(s, p, card.ParamOxygen)
	}

	// The placement resolves any suspended tile decision for the player.
	if p.Pending.TilePlacement != nil {
		p.Pending.TilePlacement = nil
	}
	return nil
}

func drawCards(s *GameState, p *PlayerState, n int) {
	drawn := takeFromDeck(s, n)
	p.Hand = append(p.Hand, drawn...)
}

// takeFromDeck removes up to n cards from the top of the deck, recycling
// the discard pile when the deck runs dry.
func takeFromDeck(s *GameState, n int) []string {
	var out []string
	for len(out) < n {
		if len(s.Common.Deck) == 0 {
			if len(s.Common.Discard) == 0 {
				break
			}
			s.Common.Deck = s.Common.Discard
			s.Common.Discard = nil
		}
		out = append(out, s.Common.Deck[0])
		s.Common.Deck = s.Common.Deck[1:]
	}
	return out
}

func removeFromHand(p *PlayerState, name string) bool {
	for i, n := range p.Hand {
		if n == name {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// runProduction applies one player's production phase: leftover energy
// converts to heat, then every production line pays out, megacredits
// including the terraform rating.
func runProduction(p *PlayerState) {
	p.Resources[card.Heat] += p.Resources[card.Energy]
	p.Resources[card.Energy] = 0
	for _, r := range card.PlayerResources {
		p.Resources[r] += p.Productions[r]
	}
	p.Resources[card.Megacredit] += p.TerraformRating
}
