package server

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/openmars/tfm-server-go/internal/game"
	"github.com/openmars/tfm-server-go/internal/repository"
)

// GameManager tracks all live games and keeps their snapshots persisted.
// The repository may be nil, in which case games live only in memory.
type GameManager struct {
	mu       sync.RWMutex
	games    map[string]*game.Engine
	repo     *repository.GameRepository
	maxGames int
	log      *zap.Logger
}

func NewGameManager(repo *repository.GameRepository, maxGames int, log *zap.Logger) *GameManager {
	return &GameManager{
		games:    make(map[string]*game.Engine),
		repo:     repo,
		maxGames: maxGames,
		log:      log,
	}
}

// Create starts a new game for the given players.
func (m *GameManager) Create(ctx context.Context, usernames []string, seed int64) (*game.Engine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.games) >= m.maxGames {
		return nil, fmt.Errorf("server is at its limit of %d games", m.maxGames)
	}
	e, err := game.NewEngine(usernames, seed, m.log)
	if err != nil {
		return nil, err
	}
	m.games[e.ID] = e
	m.log.Info("game created",
		zap.String("gameId", e.ID),
		zap.Strings("players", usernames))

	if err := m.persistLocked(ctx, e); err != nil {
		m.log.Warn("initial persist failed", zap.String("gameId", e.ID), zap.Error(err))
	}
	return e, nil
}

// Get returns a live game by ID.
func (m *GameManager) Get(id string) (*game.Engine, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.games[id]
	return e, ok
}

// List returns the IDs of all live games.
func (m *GameManager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	return ids
}

// Persist snapshots one game to storage.
func (m *GameManager) Persist(ctx context.Context, e *game.Engine) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.persistLocked(ctx, e)
}

func (m *GameManager) persistLocked(ctx context.Context, e *game.Engine) error {
	if m.repo == nil {
		return nil
	}
	snap, err := e.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot game %s: %w", e.ID, err)
	}
	return m.repo.Save(ctx, snap, string(e.Stage()))
}

// LoadAll restores every stored game into memory. Called once at startup.
func (m *GameManager) LoadAll(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	ids, err := m.repo.ListIDs(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		snap, err := m.repo.Load(ctx, id)
		if err != nil {
			m.log.Warn("skipping unloadable game", zap.String("gameId", id), zap.Error(err))
			continue
		}
		e, err := game.Restore(snap, m.log)
		if err != nil {
			m.log.Warn("skipping corrupt snapshot", zap.String("gameId", id), zap.Error(err))
			continue
		}
		m.games[id] = e
	}
	m.log.Info("games restored", zap.Int("count", len(m.games)))
	return nil
}
