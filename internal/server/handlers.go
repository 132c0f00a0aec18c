package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/openmars/tfm-server-go/internal/auth"
	"github.com/openmars/tfm-server-go/internal/game"
	"github.com/openmars/tfm-server-go/internal/game/card"
	"github.com/openmars/tfm-server-go/internal/repository"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/games", s.requireAuth(s.handleCreateGame))
	mux.HandleFunc("GET /api/games", s.requireAuth(s.handleListGames))
	mux.HandleFunc("GET /api/games/{id}", s.requireAuth(s.handleGetGame))
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if creds.Username == "" || creds.Password == "" {
		httpError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	hash, err := auth.HashPassword(creds.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		s.log.Error("hash password", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	if _, err := s.users.Create(r.Context(), creds.Username, hash); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			httpError(w, http.StatusConflict, "username already taken")
			return
		}
		s.log.Error("create user", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"username": creds.Username})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := s.users.GetByUsername(r.Context(), creds.Username)
	if err != nil {
		httpError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}
	if err := auth.CheckPassword(u.Password, creds.Password); err != nil {
		httpError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}
	session := s.tokens.Issue(u.Username)
	writeJSON(w, http.StatusOK, map[string]any{
		"token":     session.Token,
		"expiresAt": session.ExpiresAt.Format(time.RFC3339),
	})
}

type createGameRequest struct {
	Players []string `json:"players"`
	Seed    int64    `json:"seed"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request, username string) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !containsName(req.Players, username) {
		httpError(w, http.StatusForbidden, "you must be one of the players")
		return
	}
	if max := s.cfg.Game.MaxPlayers; max > 0 && len(req.Players) > max {
		httpError(w, http.StatusBadRequest,
			fmt.Sprintf("at most %d players allowed", max))
		return
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	e, err := s.games.Create(r.Context(), req.Players, req.Seed)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"gameId":  e.ID,
		"players": e.Players(),
	})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request, _ string) {
	writeJSON(w, http.StatusOK, map[string]any{"games": s.games.List()})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request, username string) {
	e, ok := s.games.Get(r.PathValue("id"))
	if !ok {
		httpError(w, http.StatusNotFound, "game not found")
		return
	}
	idx, ok := e.PlayerIndex(username)
	if !ok {
		httpError(w, http.StatusForbidden, "you are not in this game")
		return
	}
	writeJSON(w, http.StatusOK, e.StateFor(idx))
}

// handleWebSocket upgrades the connection and runs the read loop. Auth
// rides on query parameters because browsers cannot set headers on socket
// upgrades.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	gameID := r.URL.Query().Get("game")
	username, ok := s.tokens.Validate(token)
	if !ok {
		httpError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	e, ok := s.games.Get(gameID)
	if !ok {
		httpError(w, http.StatusNotFound, "game not found")
		return
	}
	idx, ok := e.PlayerIndex(username)
	if !ok {
		httpError(w, http.StatusForbidden, "you are not in this game")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &Client{
		hub:         s.hub,
		conn:        conn,
		send:        make(chan []byte, 64),
		username:    username,
		gameID:      gameID,
		playerIndex: idx,
	}
	s.hub.register <- client
	go client.writePump()
	go s.readPump(client, e)

	// Initial view on connect.
	s.pushState(e)
}

func (s *Server) readPump(c *Client, e *game.Engine) {
	defer func() {
		s.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("websocket read failed",
					zap.String("username", c.username), zap.Error(err))
			}
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.send <- errorMessage(c.gameID, "malformed message")
			continue
		}
		if err := s.dispatch(e, c.playerIndex, msg); err != nil {
			c.send <- errorMessage(c.gameID, err.Error())
			continue
		}
		if err := s.games.Persist(context.Background(), e); err != nil {
			s.log.Warn("persist after intent failed",
				zap.String("gameId", e.ID), zap.Error(err))
		}
		s.pushState(e)
	}
}

// dispatch routes one intent message to the engine.
func (s *Server) dispatch(e *game.Engine, playerIndex int, msg ClientMessage) error {
	switch msg.Type {
	case MsgSelectCorporation:
		return e.SelectCorporation(playerIndex, msg.Name, msg.Buy)
	case MsgPlayCard:
		return e.PlayCard(playerIndex, msg.Card, msg.Payment, msg.Choice)
	case MsgPlayCardAction:
		return e.PlayCardAction(playerIndex, msg.Card, msg.Choice)
	case MsgStandardProject:
		return e.PlayStandardProject(playerIndex, msg.Name, msg.Choice)
	case MsgConvertResources:
		return e.ConvertResources(playerIndex, card.Resource(msg.Resource))
	case MsgClaimMilestone:
		return e.ClaimMilestone(playerIndex, msg.Name)
	case MsgFundAward:
		return e.FundAward(playerIndex, msg.Name)
	case MsgPlaceTile:
		return e.PlaceTile(playerIndex, msg.CellID)
	case MsgChooseTarget:
		return e.ChooseResourceTarget(playerIndex, msg.TargetIndex, msg.TargetCard)
	case MsgChooseOption:
		return e.ChooseOption(playerIndex, msg.OptionIndex)
	case MsgSelectCards:
		return e.SelectCards(playerIndex, msg.Cards)
	case MsgDiscard:
		return e.Discard(playerIndex, msg.Cards)
	case MsgDuplicateProduction:
		return e.ChooseProductionDuplicate(playerIndex, msg.Card)
	case MsgPass:
		return e.Pass(playerIndex)
	default:
		return errors.New("unknown message type " + msg.Type)
	}
}

// pushState fans the censored state out to every connected player.
func (s *Server) pushState(e *game.Engine) {
	s.hub.PushGame(e.ID, func(playerIndex int) ([]byte, error) {
		return stateMessage(e.ID, e.StateFor(playerIndex))
	})
}

func httpError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
