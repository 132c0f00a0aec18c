package board

import "fmt"

// PlacementKind names a tile placement requirement. The set is closed:
// content referencing an unknown kind is a definition bug, not a runtime
// condition, and AvailableCells fails loudly on it.
type PlacementKind string

const (
	PlacementCity                   PlacementKind = "CITY"
	PlacementCityAdjacent           PlacementKind = "CITY_ADJACENT"
	PlacementDoubleCityAdjacent     PlacementKind = "DOUBLE_CITY_ADJACENT"
	PlacementGreenery               PlacementKind = "GREENERY"
	PlacementGreeneryAdjacent       PlacementKind = "GREENERY_ADJACENT"
	PlacementIsolated               PlacementKind = "ISOLATED"
	PlacementOcean                  PlacementKind = "RESERVED_FOR_OCEAN"
	PlacementSteelOrTitanium        PlacementKind = "STEEL_OR_TITANIUM"
	PlacementSteelOrTitaniumAdjacent PlacementKind = "STEEL_OR_TITANIUM_PLAYER_ADJACENT"
	PlacementVolcanic               PlacementKind = "VOLCANIC"
	PlacementNoctis                 PlacementKind = "NOCTIS"
	PlacementPhobos                 PlacementKind = "PHOBOS"
	PlacementGanymede               PlacementKind = "GANYMEDE"
)

// AvailableCells returns every cell on which the given player may place a
// tile under the named requirement. An empty result means the placement is
// currently impossible; an error means the requirement kind itself is
// unknown.
func (b *Board) AvailableCells(kind PlacementKind, playerIndex int) ([]*Cell, error) {
	switch kind {
	case PlacementCity:
		return b.filter(func(c *Cell) bool {
			return b.openLand(c) && b.AdjacentCities(c) == 0
		}), nil
	case PlacementCityAdjacent:
		return b.filter(func(c *Cell) bool {
			return b.openLand(c) && b.AdjacentCities(c) >= 1
		}), nil
	case PlacementDoubleCityAdjacent:
		return b.filter(func(c *Cell) bool {
			return b.openLand(c) && b.AdjacentCities(c) >= 2
		}), nil
	case PlacementGreenery:
		// Prefer cells adjacent to the player's own tiles; fall back to
		// any open land when the player has no adjacent option.
		adjacent := b.filter(func(c *Cell) bool {
			return b.openLand(c) && b.HasAdjacentOwnedTile(c, playerIndex)
		})
		if len(adjacent) > 0 {
			return adjacent, nil
		}
		return b.filter(b.openLand), nil
	case PlacementGreeneryAdjacent:
		return b.filter(func(c *Cell) bool {
			if !b.openLand(c) {
				return false
			}
			for _, nb := range b.Neighbors(c) {
				if nb.Tile != nil && nb.Tile.Type == TileGreenery {
					return true
				}
			}
			return false
		}), nil
	case PlacementIsolated:
		return b.filter(func(c *Cell) bool {
			return b.openLand(c) && !b.HasAdjacentTile(c)
		}), nil
	case PlacementOcean:
		return b.filter(func(c *Cell) bool {
			return c.Type == CellWater && c.Tile == nil
		}), nil
	case PlacementSteelOrTitanium:
		return b.filter(func(c *Cell) bool {
			return b.openLand(c) && hasMiningBonus(c)
		}), nil
	case PlacementSteelOrTitaniumAdjacent:
		return b.filter(func(c *Cell) bool {
			return b.openLand(c) && hasMiningBonus(c) && b.HasAdjacentOwnedTile(c, playerIndex)
		}), nil
	case PlacementVolcanic:
		return b.filter(func(c *Cell) bool {
			return b.openLand(c) && c.Volcanic
		}), nil
	case PlacementNoctis:
		return b.fixed(CellNameNoctis), nil
	case PlacementPhobos:
		return b.fixed(CellNamePhobos), nil
	case PlacementGanymede:
		return b.fixed(CellNameGanymede), nil
	default:
		return nil, fmt.Errorf("unknown placement requirement %q", kind)
	}
}

// openLand reports whether a cell is unoccupied buildable land. The Noctis
// site is reserved for its named city and excluded from generic placement.
func (b *Board) openLand(c *Cell) bool {
	return c.Type == CellLand && c.Tile == nil && c.Name != CellNameNoctis
}

func hasMiningBonus(c *Cell) bool {
	for _, bonus := range c.Bonus {
		if bonus == BonusSteel || bonus == BonusTitanium {
			return true
		}
	}
	return false
}

func (b *Board) filter(pred func(*Cell) bool) []*Cell {
	var out []*Cell
	for i := range b.Cells {
		if pred(&b.Cells[i]) {
			out = append(out, &b.Cells[i])
		}
	}
	return out
}

func (b *Board) fixed(name string) []*Cell {
	c, ok := b.CellByName(name)
	if !ok || c.Tile != nil {
		return nil
	}
	return []*Cell{c}
}
