// Package game implements the action-resolution engine: game state, the
// legality guard, the effect applier, the trigger system, the pending
// action queue and the reducer that applies primitive actions to state.
package game

import (
	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
	"github.com/openmars/tfm-server-go/internal/game/catalog"
)

// Stage is the coarse phase of a game.
type Stage string

const (
	StageCorporationSelection Stage = "CORPORATION_SELECTION"
	StageActive               Stage = "ACTIVE"
	StageEnded                Stage = "ENDED"
)

// MaxActionsPerTurn is how many actions a player takes per turn.
const MaxActionsPerTurn = 2

// PlayedCard is the per-instance state of a card in a player's play area.
// The immutable definition stays in the catalog; only the thin mutable
// record lives here, so catalog entries are never aliased across games.
type PlayedCard struct {
	Name string `json:"name"`
	// Stored is the number of resources held on this card.
	Stored int `json:"storedResourceAmount,omitempty"`
	// LastGenerationUsed is the generation in which the card's action was
	// last activated (0 = never).
	LastGenerationUsed int `json:"lastRoundUsedAction,omitempty"`
	// IncreaseProductionResult records how much production a
	// duplicate-production play ended up copying (0 = none yet).
	IncreaseProductionResult int `json:"increaseProductionResult,omitempty"`
}

// Card resolves the catalog definition backing this instance. Unresolvable
// names fall back to the placeholder entry rather than failing; the
// deserializer guarantees the substitution has already been logged.
func (pc *PlayedCard) Card() *card.Card {
	if c, ok := catalog.GetCard(pc.Name); ok {
		return c
	}
	if c, ok := catalog.GetCorporation(pc.Name); ok {
		return c
	}
	return catalog.Placeholder()
}

// PendingTilePlacement suspends the game until the player picks a cell.
type PendingTilePlacement struct {
	TileType  board.TileType      `json:"tileType"`
	Placement board.PlacementKind `json:"placement"`
	OnMars    bool                `json:"onMars"`
}

// PendingResourceTarget suspends until the player picks which card (or
// which player) a storable-resource delta applies to.
type PendingResourceTarget struct {
	Resource card.Resource `json:"resource"`
	Amount   int           `json:"amount"`
	Remove   bool          `json:"remove,omitempty"`
	// AnyPlayer means the pick is a player (removal/steal target) rather
	// than one of the chooser's own cards.
	AnyPlayer bool `json:"anyPlayer,omitempty"`
	// Steal routes the removed amount to the chooser.
	Steal bool `json:"steal,omitempty"`
	// Production targets a production line instead of a stock.
	Production bool `json:"production,omitempty"`
	// SourceCard names the card whose effect raised the question.
	SourceCard string `json:"sourceCard,omitempty"`
}

// PendingCardSelection suspends until the player keeps up to Keep of the
// revealed cards.
type PendingCardSelection struct {
	Cards []string `json:"cards"`
	Keep  int      `json:"keep"`
}

// PendingChoice suspends until the player picks one of the offered actions.
type PendingChoice struct {
	Options    []card.Action `json:"options"`
	SourceCard string        `json:"sourceCard,omitempty"`
}

// PendingDiscard suspends until the player discards Count cards.
type PendingDiscard struct {
	Count int `json:"count"`
}

// Pending bundles the per-player suspended decisions. At most one field is
// non-nil at a time; the reducer enforces this when applying pause entries.
type Pending struct {
	TilePlacement       *PendingTilePlacement `json:"tilePlacement,omitempty"`
	ResourceTarget      *PendingResourceTarget `json:"resourceTarget,omitempty"`
	CardSelection       *PendingCardSelection `json:"cardSelection,omitempty"`
	Choice              *PendingChoice        `json:"choice,omitempty"`
	Discard             *PendingDiscard       `json:"discard,omitempty"`
	DuplicateProduction card.Tag              `json:"duplicateProduction,omitempty"`
	// DuplicateProductionSource names the card whose play raised the
	// duplicate-production question.
	DuplicateProductionSource string `json:"duplicateProductionSource,omitempty"`
	// VariableAmount is the transient slot BASED_ON_USER_CHOICE amounts
	// read from.
	VariableAmount *int `json:"variableAmount,omitempty"`
}

// Any reports whether any decision is outstanding. The variable-amount
// slot is a value channel, not a suspension, and does not count.
func (p *Pending) Any() bool {
	if p == nil {
		return false
	}
	return p.TilePlacement != nil || p.ResourceTarget != nil || p.CardSelection != nil ||
		p.Choice != nil || p.Discard != nil || p.DuplicateProduction != ""
}

// DiscountState tracks the discounts a player has accumulated.
type DiscountState struct {
	Card int         `json:"card,omitempty"`
	Tags map[card.Tag]int `json:"tags,omitempty"`
	StandardProjects int `json:"standardProjects,omitempty"`
	// NextCardThisGeneration is consumed by the next card played and
	// cleared at generation end.
	NextCardThisGeneration int `json:"nextCardThisGeneration,omitempty"`
}

// PlayerState is one player's mutable record. Index is assigned at game
// start and never changes.
type PlayerState struct {
	Index    int    `json:"index"`
	Username string `json:"username"`

	Resources   map[card.Resource]int `json:"resources"`
	Productions map[card.Resource]int `json:"productions"`

	TerraformRating int `json:"terraformRating"`

	Hand                 []string     `json:"cards"`
	Played               []PlayedCard `json:"playedCards"`
	Corporation          *PlayedCard  `json:"corporation,omitempty"`
	PossibleCorporations []string     `json:"possibleCorporations,omitempty"`
	PossibleCards        []string     `json:"possibleCards,omitempty"`

	// ActionsRemaining is the player's remaining actions this turn, 0..2.
	ActionsRemaining int  `json:"action"`
	Passed           bool `json:"passed,omitempty"`

	ExchangeRates map[card.Resource]int `json:"exchangeRates"`
	Discounts     DiscountState         `json:"discounts"`

	Pending Pending `json:"pending,omitzero"`
}

// NewPlayerState builds a fresh player record with default exchange rates
// and zeroed ledgers.
func NewPlayerState(index int, username string) *PlayerState {
	p := &PlayerState{
		Index:       index,
		Username:    username,
		Resources:   make(map[card.Resource]int),
		Productions: make(map[card.Resource]int),
		ExchangeRates: map[card.Resource]int{
			card.Steel:    card.DefaultSteelValue,
			card.Titanium: card.DefaultTitaniumValue,
		},
		TerraformRating: 20,
	}
	for _, r := range card.PlayerResources {
		p.Resources[r] = 0
		p.Productions[r] = 0
	}
	return p
}

// FindPlayed returns the index-th played card named name. Cards are keyed
// by name plus position so two copies never alias.
func (p *PlayerState) FindPlayed(name string) *PlayedCard {
	for i := range p.Played {
		if p.Played[i].Name == name {
			return &p.Played[i]
		}
	}
	if p.Corporation != nil && p.Corporation.Name == name {
		return p.Corporation
	}
	return nil
}

// CountTags counts tags matching want across non-event played cards, the
// corporation included. Wild tags match any request.
func (p *PlayerState) CountTags(want card.Tag) int {
	n := 0
	for i := range p.Played {
		def := p.Played[i].Card()
		if def.Type == card.TypeEvent && want != card.TagEvent {
			continue
		}
		n += def.CountTag(want)
	}
	if p.Corporation != nil {
		n += p.Corporation.Card().CountTag(want)
	}
	return n
}

// ClaimedMilestone records who claimed a milestone.
type ClaimedMilestone struct {
	Name        string `json:"name"`
	PlayerIndex int    `json:"playerIndex"`
}

// FundedAward records who funded an award.
type FundedAward struct {
	Name        string `json:"name"`
	PlayerIndex int    `json:"playerIndex"`
}

// CommonState is the shared board and market state.
type CommonState struct {
	Generation         int          `json:"generation"`
	Turn               int          `json:"turn"`
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	FirstPlayerIndex   int          `json:"firstPlayerIndex"`
	Stage              Stage        `json:"stage"`
	Parameters         map[card.Parameter]int `json:"parameters"`
	Board              *board.Board `json:"board"`
	Deck               []string     `json:"deck"`
	Discard            []string     `json:"discardPile"`
	ClaimedMilestones  []ClaimedMilestone `json:"claimedMilestones"`
	FundedAwards       []FundedAward      `json:"fundedAwards"`
}

// GameState is the root aggregate and sole source of truth for one game.
type GameState struct {
	Common  CommonState    `json:"common"`
	Players []*PlayerState `json:"players"`
}

// NewGameState builds the initial state for the given usernames, with the
// supplied deck order (already shuffled by the caller).
func NewGameState(usernames []string, deck []string) *GameState {
	min, _ := card.ParamTemperature.Range()
	s := &GameState{
		Common: CommonState{
			Generation: 1,
			Stage:      StageCorporationSelection,
			Parameters: map[card.Parameter]int{
				card.ParamTemperature: min,
				card.ParamOxygen:      0,
				card.ParamOceans:      0,
				card.ParamVenus:       0,
			},
			Board: board.New(),
			Deck:  deck,
		},
	}
	for i, name := range usernames {
		s.Players = append(s.Players, NewPlayerState(i, name))
	}
	return s
}

// Player returns the player at index, or nil if out of range.
func (s *GameState) Player(index int) *PlayerState {
	if index < 0 || index >= len(s.Players) {
		return nil
	}
	return s.Players[index]
}

// PlayerByUsername finds a player by username.
func (s *GameState) PlayerByUsername(username string) *PlayerState {
	for _, p := range s.Players {
		if p.Username == username {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is.
func (s *GameState) CurrentPlayer() *PlayerState {
	return s.Player(s.Common.CurrentPlayerIndex)
}

// Clone returns a structurally independent deep copy. The reducer clones
// before every mutation so old states stay valid for replay and diffing.
func (s *GameState) Clone() *GameState {
	ns := &GameState{Common: s.Common}
	ns.Common.Parameters = make(map[card.Parameter]int, len(s.Common.Parameters))
	for k, v := range s.Common.Parameters {
		ns.Common.Parameters[k] = v
	}
	ns.Common.Board = s.Common.Board.Clone()
	ns.Common.Deck = append([]string(nil), s.Common.Deck...)
	ns.Common.Discard = append([]string(nil), s.Common.Discard...)
	ns.Common.ClaimedMilestones = append([]ClaimedMilestone(nil), s.Common.ClaimedMilestones...)
	ns.Common.FundedAwards = append([]FundedAward(nil), s.Common.FundedAwards...)

	for _, p := range s.Players {
		ns.Players = append(ns.Players, p.clone())
	}
	return ns
}

func (p *PlayerState) clone() *PlayerState {
	np := *p
	np.Resources = make(map[card.Resource]int, len(p.Resources))
	for k, v := range p.Resources {
		np.Resources[k] = v
	}
	np.Productions = make(map[card.Resource]int, len(p.Productions))
	for k, v := range p.Productions {
		np.Productions[k] = v
	}
	np.ExchangeRates = make(map[card.Resource]int, len(p.ExchangeRates))
	for k, v := range p.ExchangeRates {
		np.ExchangeRates[k] = v
	}
	np.Hand = append([]string(nil), p.Hand...)
	np.Played = append([]PlayedCard(nil), p.Played...)
	np.PossibleCorporations = append([]string(nil), p.PossibleCorporations...)
	np.PossibleCards = append([]string(nil), p.PossibleCards...)
	if p.Corporation != nil {
		c := *p.Corporation
		np.Corporation = &c
	}
	if p.Discounts.Tags != nil {
		np.Discounts.Tags = make(map[card.Tag]int, len(p.Discounts.Tags))
		for k, v := range p.Discounts.Tags {
			np.Discounts.Tags[k] = v
		}
	}
	np.Pending = p.Pending.clone()
	return &np
}

func (p Pending) clone() Pending {
	np := p
	if p.TilePlacement != nil {
		v := *p.TilePlacement
		np.TilePlacement = &v
	}
	if p.ResourceTarget != nil {
		v := *p.ResourceTarget
		np.ResourceTarget = &v
	}
	if p.CardSelection != nil {
		v := *p.CardSelection
		v.Cards = append([]string(nil), p.CardSelection.Cards...)
		np.CardSelection = &v
	}
	if p.Choice != nil {
		v := *p.Choice
		v.Options = append([]card.Action(nil), p.Choice.Options...)
		np.Choice = &v
	}
	if p.Discard != nil {
		v := *p.Discard
		np.Discard = &v
	}
	if p.VariableAmount != nil {
		v := *p.VariableAmount
		np.VariableAmount = &v
	}
	return np
}
