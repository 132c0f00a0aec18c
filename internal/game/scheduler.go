package game

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// AppliedFunc observes every applied entry with the state before and after
// it. It may return follow-up entries, which the scheduler appends behind
// everything already waiting, preserving discovery order.
type AppliedFunc func(before, after *GameState, e Entry) ([]Entry, error)

// Scheduler owns a game's pending-entry queue and drives entries through
// the reducer in order. Draining is deterministic: the same queue contents
// against the same state always produce the same final state.
type Scheduler struct {
	mu    sync.Mutex
	queue *Queue
	log   *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		queue: NewQueue(),
		log:   log,
	}
}

// Enqueue appends entries behind everything already waiting.
func (sc *Scheduler) Enqueue(entries ...Entry) {
	for _, e := range entries {
		sc.queue.Push(e)
	}
}

// EnqueueFront inserts entries ahead of everything already waiting,
// preserving their relative order. Used when resolving a suspended
// decision, whose consequences must land before the rest of the queue.
func (sc *Scheduler) EnqueueFront(entries ...Entry) {
	sc.queue.UnshiftFront(entries...)
}

func (sc *Scheduler) QueueLen() int {
	return sc.queue.Len()
}

// PendingEntries returns a snapshot of the queue, front first.
func (sc *Scheduler) PendingEntries() []Entry {
	return sc.queue.Entries()
}

// Replace discards the queue and installs the given entries in order.
func (sc *Scheduler) Replace(entries []Entry) {
	sc.queue.Replace(entries)
}

// Drain applies queued entries in order until the queue empties or a
// pause-class entry suspends the game on a player decision. The pause
// entry itself is applied (it records what is being asked in the player's
// pending slot) and then draining stops; the remainder of the queue stays
// put until the decision comes back and Drain is called again.
//
// A reducer error aborts the drain and surfaces to the caller. The failing
// entry is not re-queued.
func (sc *Scheduler) Drain(s *GameState, onApplied AppliedFunc) (*GameState, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	cur := s
	for {
		e, ok := sc.queue.PopFront()
		if !ok {
			return cur, nil
		}

		next, err := Reduce(cur, e)
		if err != nil {
			sc.log.Error("entry failed to apply",
				zap.String("entryId", e.ID),
				zap.String("kind", string(e.Kind)),
				zap.Int("playerIndex", e.PlayerIndex),
				zap.Error(err))
			return cur, fmt.Errorf("apply %s: %w", e.Kind, err)
		}

		if onApplied != nil {
			followups, err := onApplied(cur, next, e)
			if err != nil {
				return cur, fmt.Errorf("after %s: %w", e.Kind, err)
			}
			if len(followups) > 0 {
				sc.queue.Push(followups...)
			}
		}

		sc.log.Debug("entry applied",
			zap.String("kind", string(e.Kind)),
			zap.Int("playerIndex", e.PlayerIndex),
			zap.Int("queued", sc.queue.Len()))

		cur = next
		if e.Kind.IsPause() {
			return cur, nil
		}
	}
}
