package server

import (
	"encoding/json"

	"github.com/openmars/tfm-server-go/internal/game"
)

// Client-to-server intent types.
const (
	MsgSelectCorporation   = "select_corporation"
	MsgPlayCard            = "play_card"
	MsgPlayCardAction      = "play_card_action"
	MsgStandardProject     = "standard_project"
	MsgConvertResources    = "convert_resources"
	MsgClaimMilestone      = "claim_milestone"
	MsgFundAward           = "fund_award"
	MsgPlaceTile           = "place_tile"
	MsgChooseTarget        = "choose_target"
	MsgChooseOption        = "choose_option"
	MsgSelectCards         = "select_cards"
	MsgDiscard             = "discard"
	MsgDuplicateProduction = "duplicate_production"
	MsgPass                = "pass"
)

// Server-to-client types.
const (
	MsgState = "state"
	MsgError = "error"
)

// ClientMessage is the JSON envelope for a player intent over the socket.
// Which fields are read depends on Type.
type ClientMessage struct {
	Type string `json:"type"`

	Card     string       `json:"card,omitempty"`
	Payment  game.Payment `json:"payment,omitempty"`
	Choice   *int         `json:"choice,omitempty"`
	Name     string       `json:"name,omitempty"`
	Resource string       `json:"resource,omitempty"`
	CellID   string       `json:"cellId,omitempty"`

	TargetIndex int      `json:"targetIndex,omitempty"`
	TargetCard  string   `json:"targetCard,omitempty"`
	OptionIndex int      `json:"optionIndex,omitempty"`
	Cards       []string `json:"cards,omitempty"`
	Buy         []string `json:"buy,omitempty"`
}

// ServerMessage is the JSON envelope pushed to clients.
type ServerMessage struct {
	Type    string          `json:"type"`
	GameID  string          `json:"gameId,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func stateMessage(gameID string, state *game.GameState) ([]byte, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ServerMessage{Type: MsgState, GameID: gameID, Payload: payload})
}

func errorMessage(gameID, reason string) []byte {
	data, _ := json.Marshal(ServerMessage{Type: MsgError, GameID: gameID, Error: reason})
	return data
}
