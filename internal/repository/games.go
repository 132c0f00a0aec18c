package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openmars/tfm-server-go/internal/game"
)

// ErrGameNotFound is returned when no stored game matches the ID.
var ErrGameNotFound = errors.New("game not found")

// GameRepository persists serialized game snapshots.
type GameRepository struct {
	db *DB
}

func NewGameRepository(db *DB) *GameRepository {
	return &GameRepository{db: db}
}

// Save upserts the snapshot for a game.
func (r *GameRepository) Save(ctx context.Context, snap *game.Snapshot, stage string) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = r.db.pool.Exec(ctx,
		`INSERT INTO games (id, snapshot, stage, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (id) DO UPDATE
		 SET snapshot = EXCLUDED.snapshot, stage = EXCLUDED.stage, updated_at = now()`,
		snap.GameID, data, stage)
	if err != nil {
		return fmt.Errorf("save game %s: %w", snap.GameID, err)
	}
	return nil
}

// Load fetches one game's snapshot.
func (r *GameRepository) Load(ctx context.Context, gameID string) (*game.Snapshot, error) {
	var data []byte
	err := r.db.pool.QueryRow(ctx,
		`SELECT snapshot FROM games WHERE id = $1`, gameID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", gameID, err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot for %s: %w", gameID, err)
	}
	return &snap, nil
}

// ListIDs returns the stored game IDs, most recently updated first.
func (r *GameRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT id FROM games ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes a stored game.
func (r *GameRepository) Delete(ctx context.Context, gameID string) error {
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM games WHERE id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("delete game %s: %w", gameID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}
