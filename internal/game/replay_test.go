package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmars/tfm-server-go/internal/game/card"
)

func TestReplayReproducesState(t *testing.T) {
	s := newTestState(t)

	var entries []Entry
	entries = append(entries, gainEntry(0, card.Plant, 8))
	entries = append(entries, gainEntry(1, card.Heat, 3))
	e := NewEntry(EntryIncreaseProduction, 0)
	e.Resource, e.Amount = card.Steel, 2
	entries = append(entries, e)
	e = NewEntry(EntryRaiseParameter, 1)
	e.Parameter, e.Amount = card.ParamTemperature, 1
	entries = append(entries, e)

	first, err := Replay(s, entries)
	require.NoError(t, err)
	second, err := Replay(s, entries)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 8, first.Player(0).Resources[card.Plant])
	assert.Equal(t, 2, first.Player(0).Productions[card.Steel])
	assert.Equal(t, -28, first.Common.Parameters[card.ParamTemperature])
	assert.Equal(t, 21, first.Player(1).TerraformRating)
}

func TestReplayFailsLoudOnBadEntry(t *testing.T) {
	s := newTestState(t)
	bad := NewEntry(EntryRemoveResource, 0)
	bad.Resource, bad.Amount = card.Titanium, 5

	_, err := Replay(s, []Entry{gainEntry(0, card.Plant, 1), bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestReplayLogRecordsInOrder(t *testing.T) {
	l := NewReplayLog("game-1")
	a := gainEntry(0, card.Plant, 1)
	b := gainEntry(0, card.Heat, 2)
	l.Record(a)
	l.Record(b)

	got := l.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.Equal(t, 2, l.Len())

	// The returned slice is a copy.
	got[0] = b
	assert.Equal(t, a.ID, l.Entries()[0].ID)
}

func TestReplayLogCheckpointInterval(t *testing.T) {
	s := newTestState(t)
	l := NewReplayLog("game-2")

	require.NoError(t, l.Checkpoint(s))
	require.Len(t, l.Checkpoints(), 1, "first call always snapshots")

	// Too soon: nothing recorded since the last snapshot.
	require.NoError(t, l.Checkpoint(s))
	assert.Len(t, l.Checkpoints(), 1)

	for i := 0; i < checkpointInterval; i++ {
		l.Record(gainEntry(0, card.Plant, 1))
	}
	require.NoError(t, l.Checkpoint(s))
	cps := l.Checkpoints()
	require.Len(t, cps, 2)
	assert.Equal(t, 0, cps[0].AfterEntry)
	assert.Equal(t, checkpointInterval, cps[1].AfterEntry)
}

func TestReplayFromCheckpoint(t *testing.T) {
	s := newTestState(t)
	l := NewReplayLog("game-3")
	require.NoError(t, l.Checkpoint(s))

	cur := s
	var err error
	for i := 0; i < 5; i++ {
		e := gainEntry(0, card.Megacredit, 3)
		cur, err = Reduce(cur, e)
		require.NoError(t, err)
		l.Record(e)
	}

	cp := l.Checkpoints()[0]
	base, err := Deserialize(cp.Snapshot)
	require.NoError(t, err)
	rebuilt, err := Replay(base, l.Entries()[cp.AfterEntry:])
	require.NoError(t, err)
	assert.Equal(t, 15, rebuilt.Player(0).Resources[card.Megacredit])
}
