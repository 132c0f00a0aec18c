package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
)

func TestResolveLiteralAndNone(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)

	n, err := ResolveAmount(card.Fixed(7), s, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = ResolveAmount(card.Amount{}, s, p, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestResolvePerTag(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)
	p.Played = append(p.Played,
		PlayedCard{Name: "Asteroid Mining"},
		PlayedCard{Name: "Methane From Titan"},
		PlayedCard{Name: "Mine"},
	)

	n, err := ResolveAmount(card.PerTag(card.TagJovian, 1), s, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = ResolveAmount(card.PerTag(card.TagSpace, 1), s, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Divisor floors.
	n, err = ResolveAmount(card.PerTag(card.TagSpace, 3), s, p, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEventTagsHiddenFromCounting(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)
	// Deimos Down is an event carrying a space tag.
	p.Played = append(p.Played, PlayedCard{Name: "Deimos Down"}, PlayedCard{Name: "Mine"})

	assert.Zero(t, p.CountTags(card.TagSpace), "tags on played events do not count")
	assert.Equal(t, 1, p.CountTags(card.TagEvent))
	assert.Equal(t, 1, p.CountTags(card.TagBuilding))
}

func TestResolveCityCounts(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)

	onMars, _ := s.Common.Board.Cell("0,0")
	onMars.Tile = &board.Tile{Type: board.TileCity, OwnerIndex: 0}
	phobos, _ := s.Common.Board.CellByName(board.CellNamePhobos)
	phobos.Tile = &board.Tile{Type: board.TileCity, OwnerIndex: 1}

	n, err := ResolveAmount(card.Variable(card.VarCitiesOnMars), s, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "off-planet cities are excluded")

	n, err = ResolveAmount(card.Variable(card.VarCitiesAnywhere), s, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestResolveResourcesOnCard(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)
	src := &PlayedCard{Name: "Birds", Stored: 5}

	cases := []struct {
		v    card.VariableAmount
		want int
	}{
		{card.VarResourcesOnCard, 5},
		{card.VarHalfResourcesOnCard, 2},
		{card.VarThirdResourcesOnCard, 1},
	}
	for _, tc := range cases {
		n, err := ResolveAmount(card.Variable(tc.v), s, p, src)
		require.NoError(t, err)
		assert.Equal(t, tc.want, n, "%s", tc.v)
	}
}

func TestResolveUserChoice(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)

	// Without an answer the guard sees the minimum commitment.
	n, err := ResolveAmount(card.Variable(card.VarUserChoice), s, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = ResolveAmount(card.Variable(card.VarUserChoiceMinZero), s, p, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	choice := 4
	p.Pending.VariableAmount = &choice
	n, err = ResolveAmount(card.Variable(card.VarUserChoice), s, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = ResolveAmount(card.Variable(card.VarBasedOnUserChoice), s, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestResolveUnknownVariableFails(t *testing.T) {
	s := newTestState(t)
	_, err := ResolveAmount(card.Variable(card.VariableAmount("BOGUS")), s, s.Player(0), nil)
	assert.Error(t, err)
}

func TestResolvePlantConversionCost(t *testing.T) {
	s := newTestState(t)
	n, err := ResolveAmount(card.Variable(card.VarPlantConversionCost), s, s.Player(0), nil)
	require.NoError(t, err)
	assert.Equal(t, PlantConversionCost, n)
}
