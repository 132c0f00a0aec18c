// Package board models the hex tile grid: cell layout, adjacency,
// placement bonuses and the legal-placement predicates used by the
// legality guard.
package board

import "fmt"

// TileType identifies what kind of tile occupies a cell.
type TileType string

const (
	TileCity     TileType = "CITY"
	TileGreenery TileType = "GREENERY"
	TileOcean    TileType = "OCEAN"
	TileCapital  TileType = "CAPITAL"
	TileSpecial  TileType = "SPECIAL"
)

// IsCity reports whether the tile counts as a city for adjacency rules.
func (t TileType) IsCity() bool {
	return t == TileCity || t == TileCapital
}

// CellType distinguishes land from ocean-reserved cells and the
// off-planet cells that have no neighbours.
type CellType string

const (
	CellLand  CellType = "LAND"
	CellWater CellType = "WATER"
	CellSpace CellType = "SPACE"
)

// BonusKind is a placement bonus printed on a cell.
type BonusKind string

const (
	BonusSteel    BonusKind = "STEEL"
	BonusTitanium BonusKind = "TITANIUM"
	BonusPlant    BonusKind = "PLANT"
	BonusCard     BonusKind = "CARD"
)

// NeutralOwner marks tiles that belong to no player (oceans, neutral cities).
const NeutralOwner = -1

// Tile is a placed tile. The zero OwnerIndex is a valid player, so empty
// cells carry a nil *Tile instead.
type Tile struct {
	Type       TileType `json:"type"`
	OwnerIndex int      `json:"ownerIndex"`
}

// Cell is a single board position. Q and R are axial hex coordinates;
// off-planet cells use the zero coordinates and are never adjacent to
// anything.
type Cell struct {
	ID       string      `json:"id"`
	Q        int         `json:"q"`
	R        int         `json:"r"`
	Type     CellType    `json:"type"`
	Name     string      `json:"name,omitempty"`
	Bonus    []BonusKind `json:"bonus,omitempty"`
	Volcanic bool        `json:"volcanic,omitempty"`
	Tile     *Tile       `json:"tile,omitempty"`
}

// Board is the full grid, including the off-planet colony cells.
type Board struct {
	Cells []Cell `json:"cells"`
}

// Names of the fixed-location cells.
const (
	CellNamePhobos   = "Phobos Space Haven"
	CellNameGanymede = "Ganymede Colony"
	CellNameNoctis   = "Noctis City"
)

const radius = 4

// axialDirections are the six hex neighbour offsets.
var axialDirections = [6][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, -1}, {-1, 1},
}

type cellSpec struct {
	typ      CellType
	name     string
	bonus    []BonusKind
	volcanic bool
}

// specials overrides the default land cell at specific axial coordinates.
// The layout follows the standard equatorial map: a band of ocean-reserved
// cells, four volcanic sites on the western ridge, and the reserved city
// site at Noctis.
var specials = map[[2]int]cellSpec{
	{1, -4}: {typ: CellWater, bonus: []BonusKind{BonusSteel, BonusSteel}},
	{3, -4}: {typ: CellWater},
	{4, -4}: {typ: CellWater, bonus: []BonusKind{BonusCard}},
	{3, -3}: {typ: CellWater},
	{4, -3}: {typ: CellWater},
	{4, -2}: {typ: CellWater, bonus: []BonusKind{BonusCard}},
	{2, 1}:  {typ: CellWater},
	{3, 1}:  {typ: CellWater, bonus: []BonusKind{BonusPlant}},
	{-1, 3}: {typ: CellWater, bonus: []BonusKind{BonusPlant}},
	{0, 3}:  {typ: CellWater, bonus: []BonusKind{BonusPlant}},
	{1, 3}:  {typ: CellWater, bonus: []BonusKind{BonusPlant}},
	{2, 2}:  {typ: CellWater, bonus: []BonusKind{BonusPlant, BonusPlant}},

	{-4, 0}: {volcanic: true, name: "Arsia Mons", bonus: []BonusKind{BonusPlant, BonusPlant}},
	{-4, 1}: {volcanic: true, name: "Pavonis Mons", bonus: []BonusKind{BonusPlant, BonusTitanium}},
	{-4, 2}: {volcanic: true, name: "Ascraeus Mons", bonus: []BonusKind{BonusCard}},
	{-3, -1}: {volcanic: true, name: "Tharsis Tholus", bonus: []BonusKind{BonusSteel}},

	{-2, 3}: {name: CellNameNoctis, bonus: []BonusKind{BonusPlant, BonusPlant}},

	{0, -4}:  {bonus: []BonusKind{BonusSteel, BonusSteel}},
	{2, -4}:  {bonus: []BonusKind{BonusSteel}},
	{-1, -3}: {bonus: []BonusKind{BonusSteel}},
	{0, -3}:  {bonus: []BonusKind{BonusSteel}},
	{-2, -2}: {bonus: []BonusKind{BonusSteel}},
	{3, -1}:  {bonus: []BonusKind{BonusSteel}},
	{4, 0}:   {bonus: []BonusKind{BonusSteel, BonusSteel}},
	{-3, 4}:  {bonus: []BonusKind{BonusTitanium}},
	{2, -2}:  {bonus: []BonusKind{BonusTitanium}},
	{-2, -1}: {bonus: []BonusKind{BonusTitanium, BonusTitanium}},
	{-1, 1}:  {bonus: []BonusKind{BonusPlant}},
	{0, 1}:   {bonus: []BonusKind{BonusPlant}},
	{1, 1}:   {bonus: []BonusKind{BonusPlant}},
	{-2, 2}:  {bonus: []BonusKind{BonusPlant}},
	{-1, 2}:  {bonus: []BonusKind{BonusPlant, BonusPlant}},
	{0, 2}:   {bonus: []BonusKind{BonusPlant}},
	{1, 2}:   {bonus: []BonusKind{BonusPlant}},
	{-1, 4}:  {bonus: []BonusKind{BonusPlant}},
	{0, 4}:   {bonus: []BonusKind{BonusPlant}},
	{2, 0}:   {bonus: []BonusKind{BonusCard}},
	{4, -1}:  {bonus: []BonusKind{BonusCard}},
}

// New builds the standard board: a radius-4 hexagon plus the two
// off-planet colony cells.
func New() *Board {
	b := &Board{}
	for r := -radius; r <= radius; r++ {
		for q := max(-radius, -radius-r); q <= min(radius, radius-r); q++ {
			cell := Cell{
				ID:   fmt.Sprintf("%d,%d", q, r),
				Q:    q,
				R:    r,
				Type: CellLand,
			}
			if spec, ok := specials[[2]int{q, r}]; ok {
				if spec.typ != "" {
					cell.Type = spec.typ
				}
				cell.Name = spec.name
				cell.Bonus = spec.bonus
				cell.Volcanic = spec.volcanic
			}
			b.Cells = append(b.Cells, cell)
		}
	}
	b.Cells = append(b.Cells,
		Cell{ID: "phobos", Type: CellSpace, Name: CellNamePhobos},
		Cell{ID: "ganymede", Type: CellSpace, Name: CellNameGanymede},
	)
	return b
}

// Cell returns the cell with the given ID.
func (b *Board) Cell(id string) (*Cell, bool) {
	for i := range b.Cells {
		if b.Cells[i].ID == id {
			return &b.Cells[i], true
		}
	}
	return nil, false
}

// CellByName returns the first cell carrying the given name.
func (b *Board) CellByName(name string) (*Cell, bool) {
	for i := range b.Cells {
		if b.Cells[i].Name == name {
			return &b.Cells[i], true
		}
	}
	return nil, false
}

// Neighbors returns the cells adjacent to c. Off-planet cells have none.
func (b *Board) Neighbors(c *Cell) []*Cell {
	if c.Type == CellSpace {
		return nil
	}
	var out []*Cell
	for _, d := range axialDirections {
		q, r := c.Q+d[0], c.R+d[1]
		if maxAbs(q, r, q+r) > radius {
			continue
		}
		if n, ok := b.Cell(fmt.Sprintf("%d,%d", q, r)); ok {
			out = append(out, n)
		}
	}
	return out
}

// AdjacentCities counts tiles adjacent to c that count as cities.
func (b *Board) AdjacentCities(c *Cell) int {
	n := 0
	for _, nb := range b.Neighbors(c) {
		if nb.Tile != nil && nb.Tile.Type.IsCity() {
			n++
		}
	}
	return n
}

// AdjacentOceans counts ocean tiles adjacent to c.
func (b *Board) AdjacentOceans(c *Cell) int {
	n := 0
	for _, nb := range b.Neighbors(c) {
		if nb.Tile != nil && nb.Tile.Type == TileOcean {
			n++
		}
	}
	return n
}

// HasAdjacentTile reports whether any neighbour of c holds a tile.
func (b *Board) HasAdjacentTile(c *Cell) bool {
	for _, nb := range b.Neighbors(c) {
		if nb.Tile != nil {
			return true
		}
	}
	return false
}

// HasAdjacentOwnedTile reports whether a neighbour of c holds a tile owned
// by the given player.
func (b *Board) HasAdjacentOwnedTile(c *Cell, playerIndex int) bool {
	for _, nb := range b.Neighbors(c) {
		if nb.Tile != nil && nb.Tile.OwnerIndex == playerIndex {
			return true
		}
	}
	return false
}

// TilesOwnedBy returns all cells whose tile belongs to the given player.
func (b *Board) TilesOwnedBy(playerIndex int) []*Cell {
	var out []*Cell
	for i := range b.Cells {
		if b.Cells[i].Tile != nil && b.Cells[i].Tile.OwnerIndex == playerIndex {
			out = append(out, &b.Cells[i])
		}
	}
	return out
}

// CountTiles counts placed tiles matching the type, optionally restricted
// to one owner (pass NeutralOwner-1 ... use owner < NeutralOwner to mean
// any owner is awkward; anyOwner selects across all players).
func (b *Board) CountTiles(t TileType, anyOwner bool, ownerIndex int) int {
	n := 0
	for i := range b.Cells {
		tile := b.Cells[i].Tile
		if tile == nil {
			continue
		}
		match := tile.Type == t
		if t == TileCity {
			match = tile.Type.IsCity()
		}
		if !match {
			continue
		}
		if !anyOwner && tile.OwnerIndex != ownerIndex {
			continue
		}
		n++
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{Cells: make([]Cell, len(b.Cells))}
	copy(nb.Cells, b.Cells)
	for i := range nb.Cells {
		if nb.Cells[i].Tile != nil {
			t := *nb.Cells[i].Tile
			nb.Cells[i].Tile = &t
		}
	}
	return nb
}

func maxAbs(vals ...int) int {
	m := 0
	for _, v := range vals {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}
