package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmars/tfm-server-go/internal/game/card"
)

func gainEntry(playerIndex int, r card.Resource, amount int) Entry {
	e := NewEntry(EntryGainResource, playerIndex)
	e.Resource = r
	e.Amount = amount
	return e
}

func TestDrainAppliesInOrder(t *testing.T) {
	s := newTestState(t)
	sc := NewScheduler(nil)
	sc.Enqueue(
		gainEntry(0, card.Steel, 2),
		gainEntry(0, card.Titanium, 1),
		gainEntry(1, card.Plant, 4),
	)

	out, err := sc.Drain(s, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Player(0).Resources[card.Steel])
	assert.Equal(t, 1, out.Player(0).Resources[card.Titanium])
	assert.Equal(t, 4, out.Player(1).Resources[card.Plant])
	assert.Zero(t, sc.QueueLen())
}

func TestDrainIsDeterministic(t *testing.T) {
	entries := []Entry{
		gainEntry(0, card.Megacredit, 5),
		gainEntry(0, card.Heat, 3),
		gainEntry(1, card.Steel, 2),
	}

	run := func() *GameState {
		s := newTestState(t)
		sc := NewScheduler(nil)
		sc.Enqueue(entries...)
		out, err := sc.Drain(s, nil)
		require.NoError(t, err)
		return out
	}

	a, b := run(), run()
	assert.Equal(t, a.Player(0).Resources, b.Player(0).Resources)
	assert.Equal(t, a.Player(1).Resources, b.Player(1).Resources)
}

func TestDrainHaltsOnPause(t *testing.T) {
	s := newTestState(t)
	sc := NewScheduler(nil)

	ask := NewEntry(EntryAskDiscard, 0)
	ask.Amount = 1
	after := gainEntry(0, card.Steel, 1)
	sc.Enqueue(gainEntry(0, card.Plant, 1), ask, after)

	out, err := sc.Drain(s, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Player(0).Resources[card.Plant])
	assert.True(t, out.Player(0).Pending.Any())
	// The entry behind the pause is still queued.
	assert.Equal(t, 1, sc.QueueLen())
	assert.Zero(t, out.Player(0).Resources[card.Steel])
}

func TestDrainResumesAfterResolution(t *testing.T) {
	s := newTestState(t)
	s.Player(0).Hand = []string{"Mine"}
	sc := NewScheduler(nil)

	ask := NewEntry(EntryAskDiscard, 0)
	ask.Amount = 1
	sc.Enqueue(ask, gainEntry(0, card.Steel, 1))

	paused, err := sc.Drain(s, nil)
	require.NoError(t, err)
	require.True(t, paused.Player(0).Pending.Any())

	// Resolve: clear the suspension and discard, inserted ahead of the
	// waiting gain.
	disc := NewEntry(EntryDiscardCard, 0)
	disc.Cards = []string{"Mine"}
	sc.EnqueueFront(NewEntry(EntryClearPending, 0), disc)

	out, err := sc.Drain(paused, nil)
	require.NoError(t, err)
	assert.False(t, out.Player(0).Pending.Any())
	assert.Empty(t, out.Player(0).Hand)
	assert.Equal(t, 1, out.Player(0).Resources[card.Steel])
	assert.Zero(t, sc.QueueLen())
}

func TestDrainFollowupsAppendBehindQueueRemainder(t *testing.T) {
	s := newTestState(t)
	sc := NewScheduler(nil)
	sc.Enqueue(gainEntry(0, card.Plant, 1), gainEntry(0, card.Steel, 1))

	var order []card.Resource
	out, err := sc.Drain(s, func(before, after *GameState, e Entry) ([]Entry, error) {
		order = append(order, e.Resource)
		if e.Resource == card.Plant && e.Kind == EntryGainResource && before.Player(0).Resources[card.Plant] == 0 {
			return []Entry{gainEntry(0, card.Heat, 1)}, nil
		}
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []card.Resource{card.Plant, card.Steel, card.Heat}, order)
	assert.Equal(t, 1, out.Player(0).Resources[card.Heat])
}

func TestReplaceResetsQueue(t *testing.T) {
	sc := NewScheduler(nil)
	sc.Enqueue(gainEntry(0, card.Plant, 1), gainEntry(0, card.Steel, 1))

	saved := []Entry{gainEntry(1, card.Heat, 2)}
	sc.Replace(saved)
	require.Equal(t, 1, sc.QueueLen())
	assert.Equal(t, saved, sc.PendingEntries())

	sc.Replace(nil)
	assert.Zero(t, sc.QueueLen())
}

func TestDrainErrorLeavesLastGoodState(t *testing.T) {
	s := newTestState(t)
	sc := NewScheduler(nil)

	bad := NewEntry(EntryRemoveResource, 0)
	bad.Resource = card.Titanium
	bad.Amount = 99
	sc.Enqueue(gainEntry(0, card.Steel, 1), bad)

	out, err := sc.Drain(s, nil)
	require.Error(t, err)
	// The state returned reflects everything applied before the failure.
	assert.Equal(t, 1, out.Player(0).Resources[card.Steel])
}
