package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
	"github.com/openmars/tfm-server-go/internal/game/catalog"
)

func newTestState(t *testing.T, usernames ...string) *GameState {
	t.Helper()
	if len(usernames) == 0 {
		usernames = []string{"alice", "bob"}
	}
	s := NewGameState(usernames, catalog.DeckNames())
	s.Common.Stage = StageActive
	for _, p := range s.Players {
		p.ActionsRemaining = MaxActionsPerTurn
	}
	return s
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := newTestState(t)
	e := NewEntry(EntryGainResource, 0)
	e.Resource = card.Plant
	e.Amount = 3

	next, err := Reduce(s, e)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Player(0).Resources[card.Plant])
	assert.Equal(t, 3, next.Player(0).Resources[card.Plant])
}

func TestReduceUnknownKindFails(t *testing.T) {
	s := newTestState(t)
	e := NewEntry(EntryKind("NOT_A_KIND"), 0)
	_, err := Reduce(s, e)
	assert.Error(t, err)
}

func TestRemoveResourceBelowZeroFails(t *testing.T) {
	s := newTestState(t)
	e := NewEntry(EntryRemoveResource, 0)
	e.Resource = card.Steel
	e.Amount = 1
	_, err := Reduce(s, e)
	assert.Error(t, err)
}

func TestStoredResourceRouting(t *testing.T) {
	s := newTestState(t)
	s.Player(0).Played = append(s.Player(0).Played, PlayedCard{Name: "Birds"})

	gain := NewEntry(EntryGainResource, 0)
	gain.Resource = card.Animal
	gain.Amount = 2
	gain.CardName = "Birds"
	next, err := Reduce(s, gain)
	require.NoError(t, err)
	assert.Equal(t, 2, next.Player(0).FindPlayed("Birds").Stored)
	// The ledger is untouched; animals live on the card.
	assert.Equal(t, 0, next.Player(0).Resources[card.Animal])

	rm := NewEntry(EntryRemoveResource, 0)
	rm.Resource = card.Animal
	rm.Amount = 3
	rm.CardName = "Birds"
	_, err = Reduce(next, rm)
	assert.Error(t, err, "removing more than stored must fail")
}

func TestProductionFloor(t *testing.T) {
	s := newTestState(t)

	dec := NewEntry(EntryDecreaseProduction, 0)
	dec.TargetIndex = 0
	dec.Resource = card.Steel
	dec.Amount = 1
	_, err := Reduce(s, dec)
	assert.Error(t, err, "steel production cannot go negative")

	// Megacredit production may fall to -5 and no further.
	dec = NewEntry(EntryDecreaseProduction, 0)
	dec.TargetIndex = 0
	dec.Resource = card.Megacredit
	dec.Amount = 5
	next, err := Reduce(s, dec)
	require.NoError(t, err)
	assert.Equal(t, -5, next.Player(0).Productions[card.Megacredit])

	dec.Amount = 1
	_, err = Reduce(next, dec)
	assert.Error(t, err)
}

func TestRaiseParameterGrantsTR(t *testing.T) {
	s := newTestState(t)
	e := NewEntry(EntryRaiseParameter, 0)
	e.Parameter = card.ParamTemperature

	next, err := Reduce(s, e)
	require.NoError(t, err)
	assert.Equal(t, -28, next.Common.Parameters[card.ParamTemperature])
	assert.Equal(t, 21, next.Player(0).TerraformRating)
}

func TestRaiseParameterAtMaxIsNoop(t *testing.T) {
	s := newTestState(t)
	_, max := card.ParamOxygen.Range()
	s.Common.Parameters[card.ParamOxygen] = max

	e := NewEntry(EntryRaiseParameter, 0)
	e.Parameter = card.ParamOxygen
	next, err := Reduce(s, e)
	require.NoError(t, err)
	assert.Equal(t, max, next.Common.Parameters[card.ParamOxygen])
	assert.Equal(t, 20, next.Player(0).TerraformRating, "no rating for a wasted step")
}

func TestPlaceTileBonusesAndOcean(t *testing.T) {
	s := newTestState(t)

	// 1,-4 is an ocean-reserved cell printed with two steel.
	e := NewEntry(EntryPlaceTile, 0)
	e.TileType = board.TileOcean
	e.OnMars = true
	e.CellID = "1,-4"

	next, err := Reduce(s, e)
	require.NoError(t, err)
	cell, _ := next.Common.Board.Cell("1,-4")
	require.NotNil(t, cell.Tile)
	assert.Equal(t, board.TileOcean, cell.Tile.Type)
	assert.Equal(t, board.NeutralOwner, cell.Tile.OwnerIndex)
	assert.Equal(t, 2, next.Player(0).Resources[card.Steel])
	assert.Equal(t, 1, next.Common.Parameters[card.ParamOceans])
	assert.Equal(t, 21, next.Player(0).TerraformRating)

	// Occupied cells are rejected.
	_, err = Reduce(next, e)
	assert.Error(t, err)
}

func TestPlaceTileOceanAdjacencyPaysOut(t *testing.T) {
	s := newTestState(t)
	ocean, _ := s.Common.Board.Cell("3,-4")
	ocean.Tile = &board.Tile{Type: board.TileOcean, OwnerIndex: board.NeutralOwner}

	e := NewEntry(EntryPlaceTile, 0)
	e.TileType = board.TileGreenery
	e.OnMars = true
	e.CellID = "2,-4"

	next, err := Reduce(s, e)
	require.NoError(t, err)
	assert.Equal(t, 2, next.Player(0).Resources[card.Megacredit])
}

func TestGreeneryRaisesOxygen(t *testing.T) {
	s := newTestState(t)
	e := NewEntry(EntryPlaceTile, 0)
	e.TileType = board.TileGreenery
	e.OnMars = true
	e.CellID = "0,0"

	next, err := Reduce(s, e)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Common.Parameters[card.ParamOxygen])
	assert.Equal(t, 21, next.Player(0).TerraformRating)
}

func TestDrawRecyclesDiscard(t *testing.T) {
	s := newTestState(t)
	s.Common.Deck = []string{"Mine"}
	s.Common.Discard = []string{"Trees", "Fish"}

	e := NewEntry(EntryDrawCard, 0)
	e.Amount = 3
	next, err := Reduce(s, e)
	require.NoError(t, err)
	assert.Len(t, next.Player(0).Hand, 3)
	assert.Empty(t, next.Common.Deck)
	assert.Empty(t, next.Common.Discard)
}

func TestRunProduction(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)
	p.Resources[card.Energy] = 3
	p.Productions[card.Energy] = 2
	p.Productions[card.Megacredit] = 4
	p.Productions[card.Plant] = 1

	next, err := Reduce(s, NewEntry(EntryRunProduction, 0))
	require.NoError(t, err)
	np := next.Player(0)
	assert.Equal(t, 3, np.Resources[card.Heat], "leftover energy becomes heat")
	assert.Equal(t, 2, np.Resources[card.Energy])
	assert.Equal(t, 1, np.Resources[card.Plant])
	// Megacredit income includes the terraform rating.
	assert.Equal(t, 24, np.Resources[card.Megacredit])
}

func TestNextGenerationResets(t *testing.T) {
	s := newTestState(t)
	s.Player(0).Passed = true
	s.Player(1).Passed = true
	s.Player(0).Discounts.NextCardThisGeneration = 3

	next, err := Reduce(s, NewEntry(EntryNextGeneration, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, next.Common.Generation)
	assert.Equal(t, 1, next.Common.FirstPlayerIndex, "first player rotates")
	for _, p := range next.Players {
		assert.False(t, p.Passed)
		assert.Equal(t, MaxActionsPerTurn, p.ActionsRemaining)
	}
	assert.Zero(t, next.Player(0).Discounts.NextCardThisGeneration)
}

func TestDoublePauseRejected(t *testing.T) {
	s := newTestState(t)
	ask := NewEntry(EntryAskDiscard, 0)
	ask.Amount = 1

	next, err := Reduce(s, ask)
	require.NoError(t, err)
	require.True(t, next.Player(0).Pending.Any())

	second := NewEntry(EntryAskMakeChoice, 0)
	second.Options = []card.Action{{DrawCards: card.Fixed(1)}}
	_, err = Reduce(next, second)
	assert.Error(t, err, "a second suspension for the same player must be rejected")
}

func TestAskLookAtCardsRevealsFromDeck(t *testing.T) {
	s := newTestState(t)
	top := append([]string(nil), s.Common.Deck[:3]...)

	ask := NewEntry(EntryAskLookAtCards, 0)
	ask.Amount = 3
	ask.Keep = 1
	next, err := Reduce(s, ask)
	require.NoError(t, err)

	cs := next.Player(0).Pending.CardSelection
	require.NotNil(t, cs)
	assert.Equal(t, top, cs.Cards)
	assert.Equal(t, 1, cs.Keep)
	assert.Len(t, next.Common.Deck, len(s.Common.Deck)-3)
}

func TestClearPendingPreservesVariableSlot(t *testing.T) {
	s := newTestState(t)
	v := 4
	s.Player(0).Pending.VariableAmount = &v
	s.Player(0).Pending.Discard = &PendingDiscard{Count: 2}

	next, err := Reduce(s, NewEntry(EntryClearPending, 0))
	require.NoError(t, err)
	assert.Nil(t, next.Player(0).Pending.Discard)
	require.NotNil(t, next.Player(0).Pending.VariableAmount)
	assert.Equal(t, 4, *next.Player(0).Pending.VariableAmount)
}

func TestMarkActionUsed(t *testing.T) {
	s := newTestState(t)
	s.Player(0).Played = append(s.Player(0).Played, PlayedCard{Name: "Water Import From Europa"})

	e := NewEntry(EntryMarkActionUsed, 0)
	e.CardName = "Water Import From Europa"
	next, err := Reduce(s, e)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Player(0).FindPlayed("Water Import From Europa").LastGenerationUsed)
}

func TestStealResource(t *testing.T) {
	s := newTestState(t)
	s.Player(1).Resources[card.Plant] = 5

	e := NewEntry(EntryStealResource, 0)
	e.TargetIndex = 1
	e.Resource = card.Plant
	e.Amount = 3
	next, err := Reduce(s, e)
	require.NoError(t, err)
	assert.Equal(t, 3, next.Player(0).Resources[card.Plant])
	assert.Equal(t, 2, next.Player(1).Resources[card.Plant])
}
