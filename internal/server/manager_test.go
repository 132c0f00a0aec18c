package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openmars/tfm-server-go/internal/game"
)

func TestGameManagerCreateAndGet(t *testing.T) {
	m := NewGameManager(nil, 10, zap.NewNop())

	e, err := m.Create(context.Background(), []string{"alice", "bob"}, 1)
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)

	got, ok := m.Get(e.ID)
	require.True(t, ok)
	assert.Same(t, e, got)

	_, ok = m.Get("no-such-game")
	assert.False(t, ok)

	assert.Equal(t, []string{e.ID}, m.List())
}

func TestGameManagerEnforcesLimit(t *testing.T) {
	m := NewGameManager(nil, 1, zap.NewNop())

	_, err := m.Create(context.Background(), []string{"alice"}, 1)
	require.NoError(t, err)
	_, err = m.Create(context.Background(), []string{"bob"}, 2)
	assert.Error(t, err)
}

func TestGameManagerRejectsBadPlayerLists(t *testing.T) {
	m := NewGameManager(nil, 10, zap.NewNop())
	_, err := m.Create(context.Background(), nil, 1)
	assert.Error(t, err)
	assert.Empty(t, m.List(), "a failed create leaves nothing behind")
}

func TestGameManagerPersistWithoutRepo(t *testing.T) {
	m := NewGameManager(nil, 10, zap.NewNop())
	e, err := m.Create(context.Background(), []string{"alice"}, 1)
	require.NoError(t, err)
	assert.NoError(t, m.Persist(context.Background(), e), "memory-only mode is fine")
	assert.NoError(t, m.LoadAll(context.Background()))
}

func TestStateMessageEnvelope(t *testing.T) {
	e, err := game.NewEngine([]string{"alice", "bob"}, 1, nil)
	require.NoError(t, err)

	data, err := stateMessage(e.ID, e.StateFor(0))
	require.NoError(t, err)

	var msg ServerMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, MsgState, msg.Type)
	assert.Equal(t, e.ID, msg.GameID)
	assert.NotEmpty(t, msg.Payload)
	assert.Empty(t, msg.Error)

	var state game.GameState
	require.NoError(t, json.Unmarshal(msg.Payload, &state))
	assert.Len(t, state.Players, 2)
}

func TestErrorMessageEnvelope(t *testing.T) {
	var msg ServerMessage
	require.NoError(t, json.Unmarshal(errorMessage("g1", "not your turn"), &msg))
	assert.Equal(t, MsgError, msg.Type)
	assert.Equal(t, "g1", msg.GameID)
	assert.Equal(t, "not your turn", msg.Error)
}

func TestClientMessageDecoding(t *testing.T) {
	raw := `{"type":"play_card","card":"Mine","payment":{"megaCredits":2,"steel":1},"choice":3}`
	var msg ClientMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	assert.Equal(t, MsgPlayCard, msg.Type)
	assert.Equal(t, "Mine", msg.Card)
	assert.Equal(t, game.Payment{Megacredits: 2, Steel: 1}, msg.Payment)
	require.NotNil(t, msg.Choice)
	assert.Equal(t, 3, *msg.Choice)
}
