package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableCellsUnknownKind(t *testing.T) {
	b := New()
	_, err := b.AvailableCells(PlacementKind("BOGUS"), 0)
	assert.Error(t, err)
}

func TestOceanPlacementOnlyReservedCells(t *testing.T) {
	b := New()
	cells, err := b.AvailableCells(PlacementOcean, 0)
	require.NoError(t, err)
	require.NotEmpty(t, cells)
	for _, c := range cells {
		assert.Equal(t, CellWater, c.Type)
	}
}

func TestCityPlacementAvoidsOtherCities(t *testing.T) {
	b := New()
	center, _ := b.Cell("0,0")
	center.Tile = &Tile{Type: TileCity, OwnerIndex: 0}

	cells, err := b.AvailableCells(PlacementCity, 0)
	require.NoError(t, err)
	for _, c := range cells {
		assert.Zero(t, b.AdjacentCities(c), "cell %s touches a city", c.ID)
		assert.Equal(t, CellLand, c.Type)
		assert.Nil(t, c.Tile)
	}

	adjacent, err := b.AvailableCells(PlacementCityAdjacent, 0)
	require.NoError(t, err)
	for _, c := range adjacent {
		assert.GreaterOrEqual(t, b.AdjacentCities(c), 1)
	}
}

func TestGreeneryPrefersOwnedAdjacency(t *testing.T) {
	b := New()
	center, _ := b.Cell("0,0")
	center.Tile = &Tile{Type: TileCity, OwnerIndex: 0}

	cells, err := b.AvailableCells(PlacementGreenery, 0)
	require.NoError(t, err)
	require.NotEmpty(t, cells)
	for _, c := range cells {
		assert.True(t, b.HasAdjacentOwnedTile(c, 0), "cell %s not adjacent to an owned tile", c.ID)
	}

	// A player with no tiles may build anywhere on open land.
	anywhere, err := b.AvailableCells(PlacementGreenery, 1)
	require.NoError(t, err)
	assert.Greater(t, len(anywhere), len(cells))
}

func TestNoctisReservedForItsCity(t *testing.T) {
	b := New()

	cells, err := b.AvailableCells(PlacementCity, 0)
	require.NoError(t, err)
	for _, c := range cells {
		assert.NotEqual(t, CellNameNoctis, c.Name)
	}

	noctis, err := b.AvailableCells(PlacementNoctis, 0)
	require.NoError(t, err)
	require.Len(t, noctis, 1)
	assert.Equal(t, CellNameNoctis, noctis[0].Name)
}

func TestVolcanicPlacement(t *testing.T) {
	b := New()
	cells, err := b.AvailableCells(PlacementVolcanic, 0)
	require.NoError(t, err)
	require.NotEmpty(t, cells)
	for _, c := range cells {
		assert.True(t, c.Volcanic)
	}
}

func TestMiningPlacementRequiresBonus(t *testing.T) {
	b := New()
	cells, err := b.AvailableCells(PlacementSteelOrTitanium, 0)
	require.NoError(t, err)
	require.NotEmpty(t, cells)
	for _, c := range cells {
		assert.True(t, hasMiningBonus(c), "cell %s has no mining bonus", c.ID)
	}
}

func TestOffPlanetPlacements(t *testing.T) {
	b := New()
	for kind, name := range map[PlacementKind]string{
		PlacementPhobos:   CellNamePhobos,
		PlacementGanymede: CellNameGanymede,
	} {
		cells, err := b.AvailableCells(kind, 0)
		require.NoError(t, err)
		require.Len(t, cells, 1)
		assert.Equal(t, name, cells[0].Name)
	}
}

func TestIsolatedPlacement(t *testing.T) {
	b := New()
	center, _ := b.Cell("0,0")
	center.Tile = &Tile{Type: TileGreenery, OwnerIndex: 0}

	cells, err := b.AvailableCells(PlacementIsolated, 0)
	require.NoError(t, err)
	for _, c := range cells {
		assert.False(t, b.HasAdjacentTile(c), "cell %s touches a tile", c.ID)
	}
}
