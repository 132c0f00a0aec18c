package game

import (
	"fmt"
	"sync"
)

// checkpointInterval is how many applied entries pass between full state
// snapshots in the replay log.
const checkpointInterval = 25

// ReplayCheckpoint pins a full snapshot to a position in the entry log.
type ReplayCheckpoint struct {
	AfterEntry int       `json:"afterEntry"`
	Snapshot   *Snapshot `json:"snapshot"`
}

// ReplayLog records every primitive entry a game applies, in order, plus
// periodic full snapshots. The entry stream is the audit trail; the
// snapshots bound how far a reconstruction has to replay.
type ReplayLog struct {
	mu          sync.RWMutex
	GameID      string
	entries     []Entry
	checkpoints []ReplayCheckpoint
}

func NewReplayLog(gameID string) *ReplayLog {
	return &ReplayLog{GameID: gameID}
}

// Record appends one applied entry.
func (l *ReplayLog) Record(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Checkpoint snapshots the state if enough entries have passed since the
// last snapshot. The first call always snapshots.
func (l *ReplayLog) Checkpoint(s *GameState) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n := len(l.checkpoints); n > 0 &&
		len(l.entries)-l.checkpoints[n-1].AfterEntry < checkpointInterval {
		return nil
	}
	snap, err := Serialize(l.GameID, s)
	if err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	l.checkpoints = append(l.checkpoints, ReplayCheckpoint{
		AfterEntry: len(l.entries),
		Snapshot:   snap,
	})
	return nil
}

// Entries returns the recorded entry stream, oldest first.
func (l *ReplayLog) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Entry(nil), l.entries...)
}

// Len reports how many entries have been recorded.
func (l *ReplayLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Checkpoints returns the snapshot positions, oldest first.
func (l *ReplayLog) Checkpoints() []ReplayCheckpoint {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]ReplayCheckpoint(nil), l.checkpoints...)
}

// Replay reduces an entry stream against a starting state and returns the
// resulting state. Replaying the same stream against the same state is
// deterministic, which is what makes the log usable as an audit trail.
func Replay(initial *GameState, entries []Entry) (*GameState, error) {
	cur := initial
	for i, e := range entries {
		next, err := Reduce(cur, e)
		if err != nil {
			return nil, fmt.Errorf("replay entry %d (%s): %w", i, e.Kind, err)
		}
		cur = next
	}
	return cur, nil
}
