package game

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openmars/tfm-server-go/internal/game/catalog"
)

// SnapshotVersion is bumped whenever the wire shape of GameState changes
// incompatibly. Snapshots from other versions are refused.
const SnapshotVersion = 1

// Snapshot is a serialized game state with enough metadata to detect
// corruption before the state is trusted.
type Snapshot struct {
	Version   int       `json:"version"`
	GameID    string    `json:"gameId"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"createdAt"`
	State     []byte    `json:"state"`
	// Queue carries entries still waiting behind a suspended decision, so
	// a restored game resumes exactly where it paused.
	Queue []Entry `json:"queue,omitempty"`
}

// Serialize encodes the state and wraps it with a checksum. The encoded
// form is round-tripped once before it is returned, so a state that cannot
// be restored is rejected at save time rather than discovered at load.
func Serialize(gameID string, s *GameState) (*Snapshot, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}

	var probe GameState
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("state does not round-trip: %w", err)
	}

	sum := sha256.Sum256(data)
	return &Snapshot{
		Version:   SnapshotVersion,
		GameID:    gameID,
		Checksum:  hex.EncodeToString(sum[:]),
		CreatedAt: time.Now().UTC(),
		State:     data,
	}, nil
}

// Deserialize validates and decodes a snapshot. Card names in the restored
// state are resolved against the catalog; names the catalog no longer
// knows are replaced with the placeholder entry instead of failing, so a
// content update cannot strand a saved game.
func Deserialize(snap *Snapshot) (*GameState, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snap.Version, SnapshotVersion)
	}
	sum := sha256.Sum256(snap.State)
	if hex.EncodeToString(sum[:]) != snap.Checksum {
		return nil, fmt.Errorf("snapshot checksum mismatch for game %s", snap.GameID)
	}

	var s GameState
	if err := json.Unmarshal(snap.State, &s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	rehydrate(&s)
	return &s, nil
}

// rehydrate maps unknown card names onto the catalog placeholder. The
// substitution is applied everywhere a name can appear so the rest of the
// engine never sees a name it cannot resolve.
func rehydrate(s *GameState) {
	s.Common.Deck = replaceUnknown(s.Common.Deck)
	s.Common.Discard = replaceUnknown(s.Common.Discard)
	for _, p := range s.Players {
		p.Hand = replaceUnknown(p.Hand)
		p.PossibleCards = replaceUnknown(p.PossibleCards)
		for i, n := range p.PossibleCorporations {
			if _, ok := catalog.GetCorporation(n); !ok {
				p.PossibleCorporations[i] = catalog.PlaceholderCardName
			}
		}
		for i := range p.Played {
			if _, ok := catalog.GetCard(p.Played[i].Name); !ok {
				p.Played[i].Name = catalog.PlaceholderCardName
			}
		}
		if p.Corporation != nil {
			if _, ok := catalog.GetCorporation(p.Corporation.Name); !ok {
				p.Corporation.Name = catalog.PlaceholderCardName
			}
		}
	}
}

func replaceUnknown(names []string) []string {
	for i, n := range names {
		if _, ok := catalog.GetCard(n); !ok {
			names[i] = catalog.PlaceholderCardName
		}
	}
	return names
}
