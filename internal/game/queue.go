package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
)

// EntryKind discriminates the primitive queue entry union — the smallest
// units of state mutation the reducer understands.
type EntryKind string

const (
	// Resource and production primitives.
	EntryGainResource       EntryKind = "GAIN_RESOURCE"
	EntryRemoveResource     EntryKind = "REMOVE_RESOURCE"
	EntryStealResource      EntryKind = "STEAL_RESOURCE"
	EntryIncreaseProduction EntryKind = "INCREASE_PRODUCTION"
	EntryDecreaseProduction EntryKind = "DECREASE_PRODUCTION"

	// Global state primitives.
	EntryRaiseParameter   EntryKind = "INCREASE_PARAMETER"
	EntryChangeTerraform  EntryKind = "CHANGE_TERRAFORM_RATING"
	EntryPlaceTile        EntryKind = "PLACE_TILE"
	EntryDrawCard         EntryKind = "DRAW_CARD"
	EntryDiscardCard      EntryKind = "DISCARD_CARD"
	EntryClaimMilestone   EntryKind = "CLAIM_MILESTONE"
	EntryFundAward        EntryKind = "FUND_AWARD"
	EntryMarkActionUsed   EntryKind = "MARK_CARD_ACTION_USED"
	EntryRunProduction    EntryKind = "RUN_PRODUCTION"
	EntryNextGeneration   EntryKind = "NEXT_GENERATION"
	EntrySetVariable      EntryKind = "SET_VARIABLE_AMOUNT"
	EntryClearVariable    EntryKind = "CLEAR_VARIABLE_AMOUNT"
	EntryClearPending     EntryKind = "CLEAR_PENDING"

	// Pause-class entries: applying one records the suspended decision on
	// the player and halts the drain until the player answers.
	EntryAskPlaceTile           EntryKind = "ASK_USER_TO_PLACE_TILE"
	EntryAskResourceTarget      EntryKind = "ASK_USER_FOR_RESOURCE_TARGET"
	EntryAskLookAtCards         EntryKind = "ASK_USER_TO_LOOK_AT_CARDS"
	EntryAskMakeChoice          EntryKind = "ASK_USER_TO_MAKE_CHOICE"
	EntryAskDuplicateProduction EntryKind = "ASK_USER_TO_DUPLICATE_PRODUCTION"
	EntryAskDiscard             EntryKind = "ASK_USER_TO_DISCARD"
)

// pauseKinds is the fixed set of entries whose application suspends the
// drain loop until new player input arrives.
var pauseKinds = map[EntryKind]bool{
	EntryAskPlaceTile:           true,
	EntryAskResourceTarget:      true,
	EntryAskLookAtCards:         true,
	EntryAskMakeChoice:          true,
	EntryAskDuplicateProduction: true,
	EntryAskDiscard:             true,
}

// IsPause reports whether applying this kind suspends the drain.
func (k EntryKind) IsPause() bool {
	return pauseKinds[k]
}

// Entry is one serializable primitive command. Which fields are meaningful
// depends on Kind.
type Entry struct {
	ID          string    `json:"id"`
	Kind        EntryKind `json:"kind"`
	PlayerIndex int       `json:"playerIndex"`

	Resource    card.Resource `json:"resource,omitempty"`
	Amount      int           `json:"amount,omitempty"`
	TargetIndex int           `json:"targetIndex,omitempty"`

	// CardName routes storable-resource deltas and action-used marks to a
	// specific played card.
	CardName string `json:"cardName,omitempty"`

	Parameter card.Parameter `json:"parameter,omitempty"`

	TileType  board.TileType      `json:"tileType,omitempty"`
	Placement board.PlacementKind `json:"placement,omitempty"`
	OnMars    bool                `json:"onMars,omitempty"`
	CellID    string              `json:"cellID,omitempty"`

	Cards   []string      `json:"cards,omitempty"`
	Keep    int           `json:"keep,omitempty"`
	Options []card.Action `json:"options,omitempty"`
	Tag     card.Tag      `json:"tag,omitempty"`
	Remove  bool          `json:"remove,omitempty"`
	Steal   bool          `json:"steal,omitempty"`
	// Production retargets a resource-target question (or its resolution)
	// at a production line instead of a stock.
	Production bool `json:"production,omitempty"`
}

// NewEntry builds an entry of the given kind for a player with a fresh ID.
func NewEntry(kind EntryKind, playerIndex int) Entry {
	return Entry{ID: uuid.NewString(), Kind: kind, PlayerIndex: playerIndex}
}

// Queue is the ordered, single-consumer list of pending primitive actions.
// Strict FIFO, except UnshiftFront which priority-inserts an entry whose
// resolution must causally precede already-queued items.
type Queue struct {
	mu      sync.Mutex
	entries []Entry
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{entries: make([]Entry, 0, 16)}
}

// Push appends entries to the back of the queue.
func (q *Queue) Push(entries ...Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, entries...)
}

// UnshiftFront prepends entries, preserving their relative order.
func (q *Queue) UnshiftFront(entries ...Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(append([]Entry{}, entries...), q.entries...)
}

// Replace swaps the queued entries wholesale.
func (q *Queue) Replace(entries []Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append([]Entry(nil), entries...)
}

// PopFront removes and returns the front entry.
func (q *Queue) PopFront() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e, true
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries) == 0
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Entries returns a copy of the queued entries, front first.
func (q *Queue) Entries() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()
	cpy := make([]Entry, len(q.entries))
	copy(cpy, q.entries)
	return cpy
}
