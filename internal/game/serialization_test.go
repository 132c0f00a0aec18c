package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
	"github.com/openmars/tfm-server-go/internal/game/catalog"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)
	p.Resources[card.Megacredit] = 42
	p.Hand = []string{"Mine", "Birds"}
	p.Played = append(p.Played, PlayedCard{Name: "Birds", Stored: 3})
	s.Common.Parameters[card.ParamOxygen] = 5
	s.Common.Generation = 4

	snap, err := Serialize("game-1", s)
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, "game-1", snap.GameID)
	assert.NotEmpty(t, snap.Checksum)

	restored, err := Deserialize(snap)
	require.NoError(t, err)
	assert.Equal(t, 42, restored.Player(0).Resources[card.Megacredit])
	assert.Equal(t, []string{"Mine", "Birds"}, restored.Player(0).Hand)
	assert.Equal(t, 3, restored.Player(0).Played[0].Stored)
	assert.Equal(t, 5, restored.Common.Parameters[card.ParamOxygen])
	assert.Equal(t, 4, restored.Common.Generation)
}

func TestSnapshotPreservesBoardTiles(t *testing.T) {
	s := newTestState(t)
	e := NewEntry(EntryPlaceTile, 0)
	e.TileType = board.TileOcean
	e.CellID = "1,-4"
	next, err := Reduce(s, e)
	require.NoError(t, err)

	snap, err := Serialize("game-2", next)
	require.NoError(t, err)
	restored, err := Deserialize(snap)
	require.NoError(t, err)

	cell, ok := restored.Common.Board.Cell("1,-4")
	require.True(t, ok)
	require.NotNil(t, cell.Tile)
	assert.Equal(t, 1, restored.Common.Parameters[card.ParamOceans])
}

func TestSnapshotChecksumMismatchRejected(t *testing.T) {
	s := newTestState(t)
	snap, err := Serialize("game-3", s)
	require.NoError(t, err)

	snap.State[0] ^= 0xff
	_, err = Deserialize(snap)
	assert.ErrorContains(t, err, "checksum")
}

func TestSnapshotVersionMismatchRejected(t *testing.T) {
	s := newTestState(t)
	snap, err := Serialize("game-4", s)
	require.NoError(t, err)

	snap.Version = SnapshotVersion + 1
	_, err = Deserialize(snap)
	assert.Error(t, err)
}

func TestDeserializeReplacesUnknownCards(t *testing.T) {
	s := newTestState(t)
	p := s.Player(0)
	p.Hand = []string{"Mine", "Dyson Swarm"}
	p.Played = append(p.Played, PlayedCard{Name: "Dyson Swarm", Stored: 2})
	s.Common.Discard = []string{"Dyson Swarm"}

	snap, err := Serialize("game-5", s)
	require.NoError(t, err)
	restored, err := Deserialize(snap)
	require.NoError(t, err)

	rp := restored.Player(0)
	assert.Equal(t, []string{"Mine", catalog.PlaceholderCardName}, rp.Hand)
	assert.Equal(t, catalog.PlaceholderCardName, rp.Played[0].Name)
	assert.Equal(t, 2, rp.Played[0].Stored, "stored resources survive the substitution")
	assert.Equal(t, []string{catalog.PlaceholderCardName}, restored.Common.Discard)
}

func TestSnapshotCarriesPendingDecision(t *testing.T) {
	s := newTestState(t)
	ask := NewEntry(EntryAskDiscard, 0)
	ask.Amount = 2
	paused, err := Reduce(s, ask)
	require.NoError(t, err)

	snap, err := Serialize("game-6", paused)
	require.NoError(t, err)
	restored, err := Deserialize(snap)
	require.NoError(t, err)

	require.NotNil(t, restored.Player(0).Pending.Discard)
	assert.Equal(t, 2, restored.Player(0).Pending.Discard.Count)
}
