package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
	"github.com/openmars/tfm-server-go/internal/game/catalog"
)

// newActiveEngine skips corporation selection and puts a two-player game
// straight into its action phase.
func newActiveEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	e, err := NewEngine([]string{"alice", "bob"}, seed, nil)
	require.NoError(t, err)
	e.state.Common.Stage = StageActive
	e.state.Common.CurrentPlayerIndex = e.state.Common.FirstPlayerIndex
	for _, p := range e.state.Players {
		p.ActionsRemaining = MaxActionsPerTurn
		p.PossibleCards = nil
		p.PossibleCorporations = nil
	}
	return e
}

func TestNewEngineRejectsBadPlayerCounts(t *testing.T) {
	_, err := NewEngine(nil, 1, nil)
	assert.Error(t, err)
	_, err = NewEngine([]string{"a", "b", "c", "d", "e", "f"}, 1, nil)
	assert.Error(t, err)
}

func TestNewEngineDeterministicSetup(t *testing.T) {
	a, err := NewEngine([]string{"alice", "bob"}, 42, nil)
	require.NoError(t, err)
	b, err := NewEngine([]string{"alice", "bob"}, 42, nil)
	require.NoError(t, err)

	for i := range a.state.Players {
		assert.Equal(t, a.state.Players[i].PossibleCards, b.state.Players[i].PossibleCards)
		assert.Equal(t, a.state.Players[i].PossibleCorporations, b.state.Players[i].PossibleCorporations)
		assert.Len(t, a.state.Players[i].PossibleCards, startingOffer)
		assert.Len(t, a.state.Players[i].PossibleCorporations, corporationOffer)
	}
	assert.Equal(t, a.state.Common.Deck, b.state.Common.Deck)
	assert.Len(t, a.state.Common.Deck, len(catalog.DeckNames())-2*startingOffer)
	assert.Equal(t, StageCorporationSelection, a.Stage())
}

func TestSelectCorporationFlow(t *testing.T) {
	e, err := NewEngine([]string{"alice", "bob"}, 42, nil)
	require.NoError(t, err)

	p0 := e.state.Player(0)
	corpName := p0.PossibleCorporations[0]
	corp, _ := catalog.GetCorporation(corpName)
	buy := append([]string(nil), p0.PossibleCards[:3]...)

	require.NoError(t, e.SelectCorporation(0, corpName, buy))

	s := e.State()
	assert.Equal(t, corpName, s.Player(0).Corporation.Name)
	assert.Equal(t, corp.StartingMegacredits-3*CardBuyCost, s.Player(0).Resources[card.Megacredit])
	assert.Equal(t, buy, s.Player(0).Hand)
	assert.Nil(t, s.Player(0).PossibleCards)
	assert.Len(t, s.Common.Discard, startingOffer-3, "unbought offer cards are discarded")
	assert.Equal(t, StageCorporationSelection, s.Common.Stage, "waiting on the second player")

	// Second pick starts the game.
	p1 := e.state.Player(1)
	require.NoError(t, e.SelectCorporation(1, p1.PossibleCorporations[0], nil))
	s = e.State()
	assert.Equal(t, StageActive, s.Common.Stage)
	assert.Equal(t, s.Common.FirstPlayerIndex, s.Common.CurrentPlayerIndex)
	for _, p := range s.Players {
		assert.Equal(t, MaxActionsPerTurn, p.ActionsRemaining)
	}
}

func TestSelectCorporationValidation(t *testing.T) {
	e, err := NewEngine([]string{"alice", "bob"}, 42, nil)
	require.NoError(t, err)
	p0 := e.state.Player(0)

	assert.Error(t, e.SelectCorporation(0, "Not A Corp", nil))
	assert.Error(t, e.SelectCorporation(0, p0.PossibleCorporations[0], []string{"Not Offered"}))

	require.NoError(t, e.SelectCorporation(0, p0.PossibleCorporations[0], nil))
	assert.Error(t, e.SelectCorporation(0, p0.PossibleCorporations[0], nil), "no second pick")
}

func TestPlayCardChargesAndApplies(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Hand = []string{"Power Plant"}
	p0.Resources[card.Megacredit] = 4

	require.NoError(t, e.PlayCard(0, "Power Plant", Payment{Megacredits: 4}, nil))

	s := e.State()
	assert.Equal(t, 0, s.Player(0).Resources[card.Megacredit])
	assert.Equal(t, 1, s.Player(0).Productions[card.Energy])
	assert.Empty(t, s.Player(0).Hand)
	require.Len(t, s.Player(0).Played, 1)
	assert.Equal(t, "Power Plant", s.Player(0).Played[0].Name)
	assert.Equal(t, MaxActionsPerTurn-1, s.Player(0).ActionsRemaining)
	assert.Equal(t, 0, s.Common.CurrentPlayerIndex, "still their turn with an action left")
}

func TestPlayCardWithSteelThenPlaceTile(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Hand = []string{"Mohole Area"}
	p0.Resources[card.Megacredit] = 12
	p0.Resources[card.Steel] = 4

	require.NoError(t, e.PlayCard(0, "Mohole Area", Payment{Megacredits: 12, Steel: 4}, nil))

	s := e.State()
	assert.Equal(t, 0, s.Player(0).Resources[card.Megacredit])
	assert.Equal(t, 0, s.Player(0).Resources[card.Steel])
	assert.Equal(t, 4, s.Player(0).Productions[card.Heat])
	require.NotNil(t, s.Player(0).Pending.TilePlacement, "the tile question suspends the game")

	// Answer with an ocean-reserved cell; its printed bonus pays out.
	require.NoError(t, e.PlaceTile(0, "1,-4"))
	s = e.State()
	assert.Nil(t, s.Player(0).Pending.TilePlacement)
	cell, ok := s.Common.Board.Cell("1,-4")
	require.True(t, ok)
	require.NotNil(t, cell.Tile)
	assert.Equal(t, board.TileSpecial, cell.Tile.Type)
	assert.Equal(t, 0, cell.Tile.OwnerIndex)
	assert.Equal(t, 2, s.Player(0).Resources[card.Steel])
	assert.Equal(t, 0, s.Common.Parameters[card.ParamOceans], "a special tile on a water cell is not an ocean")
}

func TestCardCostTriggerRewardsCrediCor(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Corporation = &PlayedCard{Name: "CrediCor"}
	p0.Hand = []string{"Asteroid Mining"}
	p0.Resources[card.Megacredit] = 30

	require.NoError(t, e.PlayCard(0, "Asteroid Mining", Payment{Megacredits: 30}, nil))

	s := e.State()
	assert.Equal(t, 4, s.Player(0).Resources[card.Megacredit], "CrediCor pays back on 20+ purchases")
	assert.Equal(t, 2, s.Player(0).Productions[card.Titanium])
}

func TestHeatConversionCrossesThresholdBonus(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Resources[card.Heat] = 8
	e.state.Common.Parameters[card.ParamTemperature] = -26

	require.NoError(t, e.ConvertResources(0, card.Heat))

	s := e.State()
	assert.Equal(t, -24, s.Common.Parameters[card.ParamTemperature])
	assert.Equal(t, 0, s.Player(0).Resources[card.Heat])
	assert.Equal(t, 21, s.Player(0).TerraformRating)
	assert.Equal(t, 1, s.Player(0).Productions[card.Heat], "crossing -24 grants heat production")
}

func TestPlantConversionPlacesGreenery(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Resources[card.Plant] = 8

	require.NoError(t, e.ConvertResources(0, card.Plant))

	s := e.State()
	assert.Equal(t, 0, s.Player(0).Resources[card.Plant])
	require.NotNil(t, s.Player(0).Pending.TilePlacement)

	cells, err := s.Common.Board.AvailableCells(board.PlacementGreenery, 0)
	require.NoError(t, err)
	require.NotEmpty(t, cells)

	require.NoError(t, e.PlaceTile(0, cells[0].ID))
	s = e.State()
	assert.Equal(t, 1, s.Common.Parameters[card.ParamOxygen], "greeneries oxygenate")
	assert.Equal(t, 21, s.Player(0).TerraformRating)
	cell, _ := s.Common.Board.Cell(cells[0].ID)
	require.NotNil(t, cell.Tile)
	assert.Equal(t, board.TileGreenery, cell.Tile.Type)
}

func TestSellPatentsFlow(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Hand = []string{"Mine", "Birds", "Comet"}

	two := 2
	require.NoError(t, e.PlayStandardProject(0, catalog.ProjectSellPatents, &two))

	s := e.State()
	assert.Equal(t, 2, s.Player(0).Resources[card.Megacredit], "one M€ per card sold")
	require.NotNil(t, s.Player(0).Pending.Discard)
	assert.Equal(t, 2, s.Player(0).Pending.Discard.Count)

	assert.Error(t, e.Discard(0, []string{"Mine"}), "must give up exactly two")
	require.NoError(t, e.Discard(0, []string{"Mine", "Birds"}))

	s = e.State()
	assert.Equal(t, []string{"Comet"}, s.Player(0).Hand)
	assert.Nil(t, s.Player(0).Pending.Discard)
	assert.Contains(t, s.Common.Discard, "Mine")
	assert.Contains(t, s.Common.Discard, "Birds")
}

func TestPassAndGenerationRollover(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Productions[card.Megacredit] = 1
	p0.Resources[card.Energy] = 3

	require.NoError(t, e.Pass(0))
	s := e.State()
	assert.True(t, s.Player(0).Passed)
	assert.Equal(t, 1, s.Common.CurrentPlayerIndex)

	assert.Error(t, e.Pass(0), "not their turn anymore")
	require.NoError(t, e.Pass(1))

	s = e.State()
	assert.Equal(t, 2, s.Common.Generation)
	assert.Equal(t, 21, s.Player(0).Resources[card.Megacredit], "production plus rating")
	assert.Equal(t, 3, s.Player(0).Resources[card.Heat], "leftover energy becomes heat")
	assert.Equal(t, 0, s.Player(0).Resources[card.Energy])
	assert.Equal(t, 1, s.Common.FirstPlayerIndex, "first player rotates")
	assert.Equal(t, 1, s.Common.CurrentPlayerIndex)
	for _, p := range s.Players {
		assert.False(t, p.Passed)
		assert.Equal(t, MaxActionsPerTurn, p.ActionsRemaining)
	}
}

func TestIllegalIntentLeavesStateUntouched(t *testing.T) {
	e := newActiveEngine(t, 7)
	before := e.State()

	assert.Error(t, e.PlayCard(0, "Mine", Payment{Megacredits: 4}, nil))
	assert.Error(t, e.ClaimMilestone(0, "Terraformer"))
	assert.Error(t, e.ConvertResources(0, card.Plant))

	assert.Equal(t, before, e.State())
}

func TestClaimMilestoneAndFundAward(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.TerraformRating = 35
	p0.Resources[card.Megacredit] = 16

	require.NoError(t, e.ClaimMilestone(0, "Terraformer"))
	s := e.State()
	require.Len(t, s.Common.ClaimedMilestones, 1)
	assert.Equal(t, "Terraformer", s.Common.ClaimedMilestones[0].Name)
	assert.Equal(t, 0, s.Common.ClaimedMilestones[0].PlayerIndex)
	assert.Equal(t, 8, s.Player(0).Resources[card.Megacredit])

	require.NoError(t, e.FundAward(0, "Thermalist"))
	s = e.State()
	require.Len(t, s.Common.FundedAwards, 1)
	assert.Equal(t, "Thermalist", s.Common.FundedAwards[0].Name)
	assert.Equal(t, 0, s.Player(0).Resources[card.Megacredit])
	assert.Equal(t, 0, s.Player(0).ActionsRemaining, "two actions spent ends the turn")
	assert.Equal(t, 1, e.State().Common.CurrentPlayerIndex)
}

func TestSnapshotRestoreResumesPausedGame(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Resources[card.Plant] = 8
	require.NoError(t, e.ConvertResources(0, card.Plant))
	require.NotNil(t, e.State().Player(0).Pending.TilePlacement)

	snap, err := e.Snapshot()
	require.NoError(t, err)

	restored, err := Restore(snap, nil)
	require.NoError(t, err)
	assert.Equal(t, e.ID, restored.ID)
	require.NotNil(t, restored.State().Player(0).Pending.TilePlacement)

	cells, err := restored.State().Common.Board.AvailableCells(board.PlacementGreenery, 0)
	require.NoError(t, err)
	require.NoError(t, restored.PlaceTile(0, cells[0].ID))
	assert.Equal(t, 1, restored.State().Common.Parameters[card.ParamOxygen])
}

func TestChooseResourceTargetClampsToHoldings(t *testing.T) {
	e := newActiveEngine(t, 7)
	p0 := e.state.Player(0)
	p0.Hand = []string{"Asteroid"}
	p0.Resources[card.Megacredit] = 14
	e.state.Player(1).Resources[card.Plant] = 2

	require.NoError(t, e.PlayCard(0, "Asteroid", Payment{Megacredits: 14}, nil))
	s := e.State()
	rt := s.Player(0).Pending.ResourceTarget
	require.NotNil(t, rt)
	assert.Equal(t, card.Plant, rt.Resource)
	assert.Equal(t, 3, rt.Amount)

	require.NoError(t, e.ChooseResourceTarget(0, 1, ""))
	s = e.State()
	assert.Nil(t, s.Player(0).Pending.ResourceTarget)
	assert.Equal(t, 0, s.Player(1).Resources[card.Plant], "removal clamps to what the victim holds")
	// The rest of the card resolved once the pause lifted.
	assert.Equal(t, 2, s.Player(0).Resources[card.Titanium])
	assert.Equal(t, -28, s.Common.Parameters[card.ParamTemperature])
	assert.Equal(t, 21, s.Player(0).TerraformRating)
}

func TestPlayerIndexLookup(t *testing.T) {
	e := newActiveEngine(t, 7)
	idx, ok := e.PlayerIndex("bob")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = e.PlayerIndex("mallory")
	assert.False(t, ok)

	assert.Equal(t, []string{"alice", "bob"}, e.Players())
}

func TestPlayCardRejectedAtProductionFloor(t *testing.T) {
	e := newActiveEngine(t, 7)
	p := e.state.Players[0]
	p.Hand = []string{"Nuclear Power"}
	p.Resources[card.Megacredit] = 20
	p.Productions[card.Megacredit] = -4
	before := e.State()

	err := e.PlayCard(0, "Nuclear Power", Payment{Megacredits: 10}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "production")
	assert.Zero(t, e.scheduler.QueueLen(), "the rejected play queues nothing")
	assert.Equal(t, before, e.State())
}

func TestFailedDrainKeepsQueueAndReplayClean(t *testing.T) {
	e := newActiveEngine(t, 5)
	before := e.State()
	recorded := e.replay.Len()

	stash := e.scheduler.PendingEntries()
	good := NewEntry(EntryGainResource, 0)
	good.Resource = card.Plant
	good.Amount = 2
	bad := NewEntry(EntryDecreaseProduction, 0)
	bad.Resource = card.Steel
	bad.Amount = 3
	e.scheduler.Enqueue(good, bad)

	_, err := e.drain(e.state.Clone(), stash)
	require.Error(t, err)
	assert.Zero(t, e.scheduler.QueueLen(), "the failed batch does not survive")
	assert.Equal(t, recorded, e.replay.Len(), "nothing on the way to the failure is recorded")
	assert.Equal(t, before, e.State())

	// The next intent sees none of the failed batch's effects.
	p := e.state.Players[0]
	p.Hand = []string{"Power Plant"}
	p.Resources[card.Megacredit] = 10
	require.NoError(t, e.PlayCard(0, "Power Plant", Payment{Megacredits: 4}, nil))
	s := e.State()
	assert.Equal(t, 1, s.Player(0).Productions[card.Energy])
	assert.Zero(t, s.Player(0).Resources[card.Plant])
}

func TestSellPatentsRequiresExplicitCount(t *testing.T) {
	e := newActiveEngine(t, 3)
	p := e.state.Players[0]
	p.Hand = []string{"Mine", "Comet", "Birds"}
	p.Resources[card.Megacredit] = 5

	err := e.PlayStandardProject(0, catalog.ProjectSellPatents, nil)
	require.ErrorContains(t, err, "how many")

	five := 5
	err = e.PlayStandardProject(0, catalog.ProjectSellPatents, &five)
	require.ErrorContains(t, err, "between 1 and 3")

	zero := 0
	err = e.PlayStandardProject(0, catalog.ProjectSellPatents, &zero)
	require.Error(t, err)
	assert.False(t, e.State().Player(0).Pending.Any())
}

func TestDuplicateProductionRecordsResult(t *testing.T) {
	e := newActiveEngine(t, 9)
	p := e.state.Players[0]
	p.Hand = []string{"Robotic Workforce"}
	p.Resources[card.Megacredit] = 9
	p.Played = append(p.Played, PlayedCard{Name: "Power Plant"})

	require.NoError(t, e.PlayCard(0, "Robotic Workforce", Payment{Megacredits: 9}, nil))
	paused := e.State()
	require.Equal(t, card.TagBuilding, paused.Player(0).Pending.DuplicateProduction)
	assert.Equal(t, "Robotic Workforce", paused.Player(0).Pending.DuplicateProductionSource)

	require.NoError(t, e.ChooseProductionDuplicate(0, "Power Plant"))
	s := e.State()
	assert.Equal(t, 1, s.Player(0).Productions[card.Energy])
	rw := s.Player(0).FindPlayed("Robotic Workforce")
	require.NotNil(t, rw)
	assert.Equal(t, 1, rw.IncreaseProductionResult)

	// The result is instance state and survives the wire.
	snap, err := e.Snapshot()
	require.NoError(t, err)
	restored, err := Deserialize(snap)
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Player(0).FindPlayed("Robotic Workforce").IncreaseProductionResult)
}
