package game

import (
	"fmt"

	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
)

// ResolveAmount computes the concrete integer an Amount stands for given
// the current state. The src card is required only for resources-on-card
// kinds. An unrecognised variable kind is a content-definition bug and
// returns an error rather than a default.
func ResolveAmount(a card.Amount, s *GameState, p *PlayerState, src *PlayedCard) (int, error) {
	switch a.Kind {
	case card.AmountLiteral:
		return a.Value, nil
	case card.AmountTag:
		div := a.Divisor
		if div <= 0 {
			div = 1
		}
		return p.CountTags(a.Tag) / div, nil
	case card.AmountVar:
		return resolveVariable(a.Variable, s, p, src)
	case card.AmountNone:
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported amount kind %q", a.Kind)
	}
}

func resolveVariable(v card.VariableAmount, s *GameState, p *PlayerState, src *PlayedCard) (int, error) {
	b := s.Common.Board
	switch v {
	case card.VarCitiesOnMars:
		return b.CountTiles(board.TileCity, true, 0) - offMarsCities(b, -1), nil
	case card.VarCitiesAnywhere:
		return b.CountTiles(board.TileCity, true, 0), nil
	case card.VarOwnedCities:
		return b.CountTiles(board.TileCity, false, p.Index), nil
	case card.VarOwnedCitiesOnMars:
		return b.CountTiles(board.TileCity, false, p.Index) - offMarsCities(b, p.Index), nil
	case card.VarGreeneries:
		return b.CountTiles(board.TileGreenery, true, 0), nil
	case card.VarOwnedGreeneries:
		return b.CountTiles(board.TileGreenery, false, p.Index), nil
	case card.VarOceansPlaced:
		return s.Common.Parameters[card.ParamOceans], nil
	case card.VarOwnedTiles:
		return len(b.TilesOwnedBy(p.Index)), nil
	case card.VarResourcesOnCard:
		return storedOn(src), nil
	case card.VarHalfResourcesOnCard:
		return storedOn(src) / 2, nil
	case card.VarThirdResourcesOnCard:
		return storedOn(src) / 3, nil
	case card.VarEventsPlayed:
		return countEvents(p), nil
	case card.VarAllEventsPlayed:
		n := 0
		for _, other := range s.Players {
			n += countEvents(other)
		}
		return n, nil
	case card.VarTerraformRating:
		return p.TerraformRating, nil
	case card.VarHalfTerraformRating:
		return p.TerraformRating / 2, nil
	case card.VarOpponentSpaceTags:
		n := 0
		for _, other := range s.Players {
			if other.Index == p.Index {
				continue
			}
			n += other.CountTags(card.TagSpace)
		}
		return n, nil
	case card.VarAllColonyTags:
		n := 0
		for _, other := range s.Players {
			n += other.CountTags(card.TagJovian)
		}
		return n, nil
	case card.VarPlantConversionCost:
		return PlantConversionCost, nil
	case card.VarHeatAvailable:
		return p.Resources[card.Heat], nil
	case card.VarEnergyAvailable:
		return p.Resources[card.Energy], nil
	case card.VarSteelProduction:
		return p.Productions[card.Steel], nil
	case card.VarMegacreditProduction:
		return p.Productions[card.Megacredit], nil
	case card.VarCardsInHand:
		return len(p.Hand), nil

	case card.VarUserChoice:
		// Placeholder until the UI supplies the concrete choice; 1 keeps
		// the legality guard honest about the minimum commitment.
		if p.Pending.VariableAmount != nil {
			return *p.Pending.VariableAmount, nil
		}
		return 1, nil
	case card.VarUserChoiceMinZero:
		if p.Pending.VariableAmount != nil {
			return *p.Pending.VariableAmount, nil
		}
		return 0, nil
	case card.VarBasedOnUserChoice:
		if p.Pending.VariableAmount == nil {
			return 0, nil
		}
		return *p.Pending.VariableAmount, nil

	default:
		return 0, fmt.Errorf("unsupported variable amount %q", v)
	}
}

func storedOn(src *PlayedCard) int {
	if src == nil {
		return 0
	}
	return src.Stored
}

func countEvents(p *PlayerState) int {
	n := 0
	for i := range p.Played {
		if p.Played[i].Card().Type == card.TypeEvent {
			n++
		}
	}
	return n
}

// offMarsCities counts city tiles on the off-planet cells, optionally for
// one owner (ownerIndex < 0 counts all owners).
func offMarsCities(b *board.Board, ownerIndex int) int {
	n := 0
	for i := range b.Cells {
		c := &b.Cells[i]
		if c.Type != board.CellSpace || c.Tile == nil || !c.Tile.Type.IsCity() {
			continue
		}
		if ownerIndex >= 0 && c.Tile.OwnerIndex != ownerIndex {
			continue
		}
		n++
	}
	return n
}
