package game

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
	"github.com/openmars/tfm-server-go/internal/game/catalog"
)

const (
	// MinPlayers and MaxPlayers bound a game.
	MinPlayers = 1
	MaxPlayers = 5

	corporationOffer = 2
	startingOffer    = 10
	// CardBuyCost is what a player pays per card kept from an offer.
	CardBuyCost = 3
)

var allParameters = []card.Parameter{
	card.ParamTemperature,
	card.ParamOxygen,
	card.ParamOceans,
	card.ParamVenus,
}

// Engine owns a single game: its state, its pending-entry queue and the
// replay log. All player intents enter here and follow the same path:
// legality guard, effect expansion, queue drain, trigger fan-out.
//
// The engine never mutates a committed state in place. Each intent works
// on a clone and the clone is committed only when the whole intent
// succeeds, so a failed intent leaves the game exactly as it was.
type Engine struct {
	mu sync.Mutex

	ID        string
	state     *GameState
	scheduler *Scheduler
	replay    *ReplayLog
	log       *zap.Logger
}

// NewEngine creates a game for the given players. The seed fixes the deck
// and corporation shuffle, so the same seed and usernames always produce
// the same setup.
func NewEngine(usernames []string, seed int64, log *zap.Logger) (*Engine, error) {
	if len(usernames) < MinPlayers || len(usernames) > MaxPlayers {
		return nil, fmt.Errorf("game needs %d to %d players, got %d", MinPlayers, MaxPlayers, len(usernames))
	}
	if log == nil {
		log = zap.NewNop()
	}

	rng := rand.New(rand.NewSource(seed))

	deck := catalog.DeckNames()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	s := NewGameState(usernames, nil)
	corps := catalog.CorporationNames()
	rng.Shuffle(len(corps), func(i, j int) { corps[i], corps[j] = corps[j], corps[i] })

	for _, p := range s.Players {
		if len(corps) >= corporationOffer {
			p.PossibleCorporations = append([]string(nil), corps[:corporationOffer]...)
			corps = corps[corporationOffer:]
		} else {
			p.PossibleCorporations = append([]string(nil), corps...)
			corps = nil
		}
		n := startingOffer
		if n > len(deck) {
			n = len(deck)
		}
		p.PossibleCards = append([]string(nil), deck[:n]...)
		deck = deck[n:]
	}
	s.Common.Deck = deck

	id := uuid.NewString()
	return &Engine{
		ID:        id,
		state:     s,
		scheduler: NewScheduler(log),
		replay:    NewReplayLog(id),
		log:       log.With(zap.String("gameId", id)),
	}, nil
}

// Restore rebuilds an engine from a snapshot, reloading both the state
// and any entries that were still queued behind a suspended decision.
func Restore(snap *Snapshot, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s, err := Deserialize(snap)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		ID:        snap.GameID,
		state:     s,
		scheduler: NewScheduler(log),
		replay:    NewReplayLog(snap.GameID),
		log:       log.With(zap.String("gameId", snap.GameID)),
	}
	e.scheduler.Enqueue(snap.Queue...)
	return e, nil
}

// Snapshot serializes the committed state together with any queued
// entries.
func (e *Engine) Snapshot() (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap, err := Serialize(e.ID, e.state)
	if err != nil {
		return nil, err
	}
	snap.Queue = e.scheduler.PendingEntries()
	return snap, nil
}

// State returns a deep copy of the committed state. Callers may not see
// into other players' hidden zones through it; use StateFor for anything
// sent to a client.
func (e *Engine) State() *GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// PlayerIndex resolves a username to a seat index.
func (e *Engine) PlayerIndex(username string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p := e.state.PlayerByUsername(username); p != nil {
		return p.Index, true
	}
	return 0, false
}

// Players returns the usernames in seat order.
func (e *Engine) Players() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	names := make([]string, len(e.state.Players))
	for i, p := range e.state.Players {
		names[i] = p.Username
	}
	return names
}

// Stage reports the game's current stage.
func (e *Engine) Stage() Stage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Common.Stage
}

// StateFor returns the committed state censored for one player's eyes.
func (e *Engine) StateFor(playerIndex int) *GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CensorFor(e.state, playerIndex)
}

// Replay exposes the game's entry log.
func (e *Engine) Replay() *ReplayLog {
	return e.replay
}

// SelectCorporation commits a player's corporation pick and starting hand
// purchase. The game moves to its action phase once every player has
// picked.
func (e *Engine) SelectCorporation(playerIndex int, corpName string, buy []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if e.state.Common.Stage != StageCorporationSelection {
		return fmt.Errorf("corporations are already locked in")
	}
	if p.Corporation != nil {
		return fmt.Errorf("%s already picked a corporation", p.Username)
	}
	if !contains(p.PossibleCorporations, corpName) {
		return fmt.Errorf("%s was not offered to you", corpName)
	}
	corp, ok := catalog.GetCorporation(corpName)
	if !ok {
		return fmt.Errorf("unknown corporation %q", corpName)
	}
	if err := subsetOf(buy, p.PossibleCards); err != nil {
		return err
	}
	cost := CardBuyCost * len(buy)
	if cost > corp.StartingMegacredits {
		return fmt.Errorf("keeping %d cards costs %d M€, %s starts with %d",
			len(buy), cost, corpName, corp.StartingMegacredits)
	}

	ns := e.state.Clone()
	np := ns.Player(playerIndex)
	np.Corporation = &PlayedCard{Name: corpName}
	np.Resources[card.Megacredit] = corp.StartingMegacredits - cost
	np.Hand = append([]string(nil), buy...)
	for _, name := range np.PossibleCards {
		if !contains(buy, name) {
			ns.Common.Discard = append(ns.Common.Discard, name)
		}
	}
	np.PossibleCards = nil
	np.PossibleCorporations = nil
	applyCardLedger(np, corp)

	entries, err := ExpandAction(corp.Play, ns, playerIndex, np.Corporation)
	if err != nil {
		return fmt.Errorf("expand %s: %w", corpName, err)
	}
	stash := e.scheduler.PendingEntries()
	e.scheduler.Enqueue(entries...)

	ns, err = e.drain(ns, stash)
	if err != nil {
		return err
	}

	allPicked := true
	for _, pl := range ns.Players {
		if pl.Corporation == nil {
			allPicked = false
			break
		}
	}
	if allPicked {
		ns.Common.Stage = StageActive
		ns.Common.CurrentPlayerIndex = ns.Common.FirstPlayerIndex
		for _, pl := range ns.Players {
			pl.ActionsRemaining = MaxActionsPerTurn
		}
		e.log.Info("all corporations selected, game active",
			zap.Int("players", len(ns.Players)))
	}

	e.commit(ns)
	return nil
}

// PlayCard plays a card from hand. choice carries the player's number for
// cards whose effect size they decide up front.
func (e *Engine) PlayCard(playerIndex int, cardName string, pay Payment, choice *int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if r := CanPlayCard(e.state, p, cardName, pay); !r.Legal {
		return fmt.Errorf("%s", r.Reason)
	}
	c := catalog.MustCard(cardName)

	ns := e.state.Clone()
	np := ns.Player(playerIndex)
	cost := DiscountedCost(np, c)

	np.Resources[card.Megacredit] -= pay.Megacredits
	np.Resources[card.Steel] -= pay.Steel
	np.Resources[card.Titanium] -= pay.Titanium
	np.Discounts.NextCardThisGeneration = 0

	removeFromHand(np, cardName)
	np.Played = append(np.Played, PlayedCard{Name: cardName})
	src := &np.Played[len(np.Played)-1]
	applyCardLedger(np, c)

	entries, err := e.expandWithChoice(c.Play, ns, playerIndex, src, choice)
	if err != nil {
		return fmt.Errorf("expand %s: %w", cardName, err)
	}
	stash := e.scheduler.PendingEntries()
	e.scheduler.Enqueue(entries...)

	e.enqueueTriggers(ns, Event{
		Kind: EventCardCostPaid, PlayerIndex: playerIndex, Cost: cost, CardName: cardName,
	})
	e.enqueueTriggers(ns, Event{
		Kind: EventTagsPlayed, PlayerIndex: playerIndex, Tags: c.Tags, CardName: cardName,
	})

	ns, err = e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.consumeAction(ns, playerIndex)
	e.commit(ns)
	e.log.Info("card played",
		zap.String("card", cardName),
		zap.Int("playerIndex", playerIndex),
		zap.Int("cost", cost))
	return nil
}

// PlayCardAction activates a played card's once-per-generation ability.
func (e *Engine) PlayCardAction(playerIndex int, cardName string, choice *int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if r := CanPlayCardAction(e.state, p, cardName); !r.Legal {
		return fmt.Errorf("%s", r.Reason)
	}

	ns := e.state.Clone()
	np := ns.Player(playerIndex)
	pc := np.FindPlayed(cardName)
	c := pc.Card()

	costEntries, err := e.expandWithChoice(c.Action.Cost, ns, playerIndex, pc, choice)
	if err != nil {
		return fmt.Errorf("expand %s cost: %w", cardName, err)
	}
	effEntries, err := e.expandWithChoice(c.Action.Effect, ns, playerIndex, pc, choice)
	if err != nil {
		return fmt.Errorf("expand %s: %w", cardName, err)
	}
	mark := NewEntry(EntryMarkActionUsed, playerIndex)
	mark.CardName = cardName

	stash := e.scheduler.PendingEntries()
	e.scheduler.Enqueue(costEntries...)
	e.scheduler.Enqueue(effEntries...)
	e.scheduler.Enqueue(mark)

	ns, err = e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.consumeAction(ns, playerIndex)
	e.commit(ns)
	return nil
}

// PlayStandardProject performs one of the always-available priced actions.
// For Sell Patents, choice is the number of cards the player will give up.
func (e *Engine) PlayStandardProject(playerIndex int, name string, choice *int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if r := CanPlayStandardProject(e.state, p, name); !r.Legal {
		return fmt.Errorf("%s", r.Reason)
	}
	if name == catalog.ProjectSellPatents {
		if choice == nil {
			return fmt.Errorf("say how many cards you are selling")
		}
		if *choice < 1 || *choice > len(p.Hand) {
			return fmt.Errorf("you can sell between 1 and %d cards", len(p.Hand))
		}
	}
	sp, _ := catalog.GetStandardProject(name)

	ns := e.state.Clone()
	np := ns.Player(playerIndex)
	cost := sp.Cost - np.Discounts.StandardProjects
	if cost < 0 {
		cost = 0
	}
	np.Resources[card.Megacredit] -= cost

	entries, err := e.expandWithChoice(sp.Action, ns, playerIndex, nil, choice)
	if err != nil {
		return fmt.Errorf("expand %s: %w", name, err)
	}
	stash := e.scheduler.PendingEntries()
	e.scheduler.Enqueue(entries...)

	e.enqueueTriggers(ns, Event{
		Kind: EventStandardProjectPaid, PlayerIndex: playerIndex, Cost: cost, CardName: name,
	})

	ns, err = e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.consumeAction(ns, playerIndex)
	e.commit(ns)
	return nil
}

// ConvertResources spends eight plants for a greenery or eight heat for a
// temperature step.
func (e *Engine) ConvertResources(playerIndex int, resource card.Resource) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if r := CanConvertResources(e.state, p, resource); !r.Legal {
		return fmt.Errorf("%s", r.Reason)
	}

	ns := e.state.Clone()
	stash := e.scheduler.PendingEntries()
	switch resource {
	case card.Plant:
		spend := NewEntry(EntryRemoveResource, playerIndex)
		spend.Resource = card.Plant
		spend.Amount = PlantConversionCost
		ask := NewEntry(EntryAskPlaceTile, playerIndex)
		ask.TileType = board.TileGreenery
		ask.Placement = board.PlacementGreenery
		ask.OnMars = true
		e.scheduler.Enqueue(spend, ask)
	case card.Heat:
		spend := NewEntry(EntryRemoveResource, playerIndex)
		spend.Resource = card.Heat
		spend.Amount = HeatConversionCost
		raise := NewEntry(EntryRaiseParameter, playerIndex)
		raise.Parameter = card.ParamTemperature
		raise.Amount = 1
		e.scheduler.Enqueue(spend, raise)
	}

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.consumeAction(ns, playerIndex)
	e.commit(ns)
	return nil
}

// ClaimMilestone pays the flat milestone fee and records the claim.
func (e *Engine) ClaimMilestone(playerIndex int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if r := CanClaimMilestone(e.state, p, name); !r.Legal {
		return fmt.Errorf("%s", r.Reason)
	}

	ns := e.state.Clone()
	spend := NewEntry(EntryRemoveResource, playerIndex)
	spend.Resource = card.Megacredit
	spend.Amount = catalog.MilestoneCost
	claim := NewEntry(EntryClaimMilestone, playerIndex)
	claim.CardName = name
	stash := e.scheduler.PendingEntries()
	e.scheduler.Enqueue(spend, claim)

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.consumeAction(ns, playerIndex)
	e.commit(ns)
	return nil
}

// FundAward pays the escalating award fee and records the funding.
func (e *Engine) FundAward(playerIndex int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if r := CanFundAward(e.state, p, name); !r.Legal {
		return fmt.Errorf("%s", r.Reason)
	}

	ns := e.state.Clone()
	spend := NewEntry(EntryRemoveResource, playerIndex)
	spend.Resource = card.Megacredit
	spend.Amount = catalog.AwardCosts[len(ns.Common.FundedAwards)]
	fund := NewEntry(EntryFundAward, playerIndex)
	fund.CardName = name
	stash := e.scheduler.PendingEntries()
	e.scheduler.Enqueue(spend, fund)

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.consumeAction(ns, playerIndex)
	e.commit(ns)
	return nil
}

// PlaceTile answers a suspended tile-placement question with a cell.
func (e *Engine) PlaceTile(playerIndex int, cellID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if r := CanPlaceTile(e.state, p, cellID); !r.Legal {
		return fmt.Errorf("%s", r.Reason)
	}

	ns := e.state.Clone()
	tp := ns.Player(playerIndex).Pending.TilePlacement
	place := NewEntry(EntryPlaceTile, playerIndex)
	place.TileType = tp.TileType
	place.OnMars = tp.OnMars
	place.CellID = cellID
	stash := e.scheduler.PendingEntries()
	e.scheduler.EnqueueFront(place)

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.settle(ns)
	e.commit(ns)
	return nil
}

// ChooseResourceTarget answers a suspended resource-target question.
// targetIndex names a player for removals and steals; targetCard names one
// of the chooser's storage cards for gains, or the victim's card when a
// stored resource is being removed.
func (e *Engine) ChooseResourceTarget(playerIndex, targetIndex int, targetCard string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	rt := p.Pending.ResourceTarget
	if rt == nil {
		return fmt.Errorf("no resource target is pending for you")
	}

	ns := e.state.Clone()
	stash := e.scheduler.PendingEntries()
	clear := NewEntry(EntryClearPending, playerIndex)

	if !rt.AnyPlayer {
		// Picking one of the chooser's own storage cards for a gain.
		if ns.Player(playerIndex).FindPlayed(targetCard) == nil {
			return fmt.Errorf("you have not played %s", targetCard)
		}
		gain := NewEntry(EntryGainResource, playerIndex)
		gain.Resource = rt.Resource
		gain.Amount = rt.Amount
		gain.CardName = targetCard
		e.scheduler.EnqueueFront(clear, gain)
	} else {
		target := ns.Player(targetIndex)
		if target == nil {
			return fmt.Errorf("no player at index %d", targetIndex)
		}
		entry, ok, err := concreteTargetEntry(ns, playerIndex, target, targetCard, rt)
		if err != nil {
			return err
		}
		if !ok {
			// Nothing left to take. The effect fizzles.
			e.scheduler.EnqueueFront(clear)
		} else {
			e.scheduler.EnqueueFront(clear, entry)
		}
	}

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.settle(ns)
	e.commit(ns)
	return nil
}

// concreteTargetEntry turns a resource-target answer into one primitive
// entry, clamped to what the target actually has. ok is false when the
// clamp leaves nothing to apply.
func concreteTargetEntry(s *GameState, chooserIndex int, target *PlayerState, targetCard string, rt *PendingResourceTarget) (Entry, bool, error) {
	if rt.Production {
		room := target.Productions[rt.Resource] - rt.Resource.ProductionFloor()
		amount := minInt(rt.Amount, room)
		if amount <= 0 {
			return Entry{}, false, nil
		}
		dec := NewEntry(EntryDecreaseProduction, chooserIndex)
		dec.TargetIndex = target.Index
		dec.Resource = rt.Resource
		dec.Amount = amount
		return dec, true, nil
	}

	available := target.Resources[rt.Resource]
	if rt.Resource.Storable() {
		pc := target.FindPlayed(targetCard)
		if pc == nil {
			return Entry{}, false, fmt.Errorf("player %d has not played %s", target.Index, targetCard)
		}
		available = pc.Stored
	}
	amount := minInt(rt.Amount, available)
	if amount <= 0 {
		return Entry{}, false, nil
	}

	if rt.Steal {
		steal := NewEntry(EntryStealResource, chooserIndex)
		steal.TargetIndex = target.Index
		steal.Resource = rt.Resource
		steal.Amount = amount
		if rt.Resource.Storable() {
			steal.CardName = targetCard
		}
		return steal, true, nil
	}
	rm := NewEntry(EntryRemoveResource, target.Index)
	rm.Resource = rt.Resource
	rm.Amount = amount
	if rt.Resource.Storable() {
		rm.CardName = targetCard
	}
	return rm, true, nil
}

// ChooseOption answers a suspended either/or choice by index.
func (e *Engine) ChooseOption(playerIndex, optionIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	ch := p.Pending.Choice
	if ch == nil {
		return fmt.Errorf("no choice is pending for you")
	}
	if optionIndex < 0 || optionIndex >= len(ch.Options) {
		return fmt.Errorf("option %d out of range, %d offered", optionIndex, len(ch.Options))
	}

	ns := e.state.Clone()
	np := ns.Player(playerIndex)
	src := np.FindPlayed(ch.SourceCard)
	entries, err := ExpandAction(ch.Options[optionIndex], ns, playerIndex, src)
	if err != nil {
		return fmt.Errorf("expand choice: %w", err)
	}
	clear := NewEntry(EntryClearPending, playerIndex)
	stash := e.scheduler.PendingEntries()
	e.scheduler.EnqueueFront(append([]Entry{clear}, entries...)...)

	ns, err = e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.settle(ns)
	e.commit(ns)
	return nil
}

// SelectCards answers a suspended look-at-cards question. keep must name
// exactly as many of the revealed cards as the effect allows; the rest go
// to the discard pile.
func (e *Engine) SelectCards(playerIndex int, keep []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	cs := p.Pending.CardSelection
	if cs == nil {
		return fmt.Errorf("no card selection is pending for you")
	}
	want := minInt(cs.Keep, len(cs.Cards))
	if len(keep) != want {
		return fmt.Errorf("pick exactly %d of the %d revealed cards", want, len(cs.Cards))
	}
	if err := subsetOf(keep, cs.Cards); err != nil {
		return err
	}

	ns := e.state.Clone()
	np := ns.Player(playerIndex)
	np.Hand = append(np.Hand, keep...)
	for _, name := range np.Pending.CardSelection.Cards {
		if !contains(keep, name) {
			ns.Common.Discard = append(ns.Common.Discard, name)
		}
	}
	stash := e.scheduler.PendingEntries()
	e.scheduler.EnqueueFront(NewEntry(EntryClearPending, playerIndex))

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.settle(ns)
	e.commit(ns)
	return nil
}

// Discard answers a suspended discard question with the cards to give up.
func (e *Engine) Discard(playerIndex int, names []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	pd := p.Pending.Discard
	if pd == nil {
		return fmt.Errorf("no discard is pending for you")
	}
	if len(names) != pd.Count {
		return fmt.Errorf("discard exactly %d cards", pd.Count)
	}
	if err := subsetOf(names, p.Hand); err != nil {
		return err
	}

	ns := e.state.Clone()
	clear := NewEntry(EntryClearPending, playerIndex)
	disc := NewEntry(EntryDiscardCard, playerIndex)
	disc.Cards = append([]string(nil), names...)
	stash := e.scheduler.PendingEntries()
	e.scheduler.EnqueueFront(clear, disc)

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.settle(ns)
	e.commit(ns)
	return nil
}

// ChooseProductionDuplicate answers a duplicate-production question by
// naming a card in play whose production box the chooser copies.
func (e *Engine) ChooseProductionDuplicate(playerIndex int, cardName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	tag := p.Pending.DuplicateProduction
	if tag == "" {
		return fmt.Errorf("no production duplication is pending for you")
	}
	c, ok := catalog.GetCard(cardName)
	if !ok {
		return fmt.Errorf("unknown card %q", cardName)
	}
	if !c.HasTag(tag) {
		return fmt.Errorf("%s is not a %s card", cardName, tag)
	}
	if !cardInPlay(e.state, cardName) {
		return fmt.Errorf("%s is not in play", cardName)
	}
	if len(c.Play.IncreaseProduction) == 0 && len(c.Play.DecreaseProduction) == 0 {
		return fmt.Errorf("%s has no production box", cardName)
	}

	ns := e.state.Clone()
	np := ns.Player(playerIndex)
	entries := []Entry{NewEntry(EntryClearPending, playerIndex)}
	copied := 0
	for _, dec := range c.Play.DecreaseProduction {
		amount, err := ResolveAmount(dec.Amount, ns, np, nil)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", cardName, err)
		}
		if np.Productions[dec.Resource]-amount < dec.Resource.ProductionFloor() {
			return fmt.Errorf("copying %s would drop your %s production below its floor", cardName, dec.Resource)
		}
		entry := NewEntry(EntryDecreaseProduction, playerIndex)
		entry.Resource = dec.Resource
		entry.Amount = amount
		entries = append(entries, entry)
	}
	for _, inc := range c.Play.IncreaseProduction {
		amount, err := ResolveAmount(inc.Amount, ns, np, nil)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", cardName, err)
		}
		entry := NewEntry(EntryIncreaseProduction, playerIndex)
		entry.Resource = inc.Resource
		entry.Amount = amount
		entries = append(entries, entry)
		copied += amount
	}
	if src := np.FindPlayed(np.Pending.DuplicateProductionSource); src != nil {
		src.IncreaseProductionResult = copied
	}
	stash := e.scheduler.PendingEntries()
	e.scheduler.EnqueueFront(entries...)

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.settle(ns)
	e.commit(ns)
	return nil
}

// SetChoiceAmount records a player's numeric answer for a pending effect
// that asked for one.
func (e *Engine) SetChoiceAmount(playerIndex, amount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Player(playerIndex) == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if amount < 0 {
		return fmt.Errorf("choice amount cannot be negative")
	}
	ns := e.state.Clone()
	set := NewEntry(EntrySetVariable, playerIndex)
	set.Amount = amount
	stash := e.scheduler.PendingEntries()
	e.scheduler.EnqueueFront(set)

	ns, err := e.drain(ns, stash)
	if err != nil {
		return err
	}
	e.commit(ns)
	return nil
}

// Pass ends the player's participation in the current generation.
func (e *Engine) Pass(playerIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Player(playerIndex)
	if p == nil {
		return fmt.Errorf("no player at index %d", playerIndex)
	}
	if e.state.Common.Stage != StageActive {
		return fmt.Errorf("the game is not in its action phase")
	}
	if e.state.Common.CurrentPlayerIndex != playerIndex {
		return fmt.Errorf("it is not your turn")
	}
	if p.Pending.Any() {
		return fmt.Errorf("resolve your pending decision first")
	}

	ns := e.state.Clone()
	np := ns.Player(playerIndex)
	np.Passed = true
	np.ActionsRemaining = 0
	e.settle(ns)
	e.commit(ns)
	return nil
}

// expandWithChoice expands an action with the player's numeric choice
// loaded into the variable slot for the duration of the expansion.
func (e *Engine) expandWithChoice(a card.Action, s *GameState, playerIndex int, src *PlayedCard, choice *int) ([]Entry, error) {
	p := s.Player(playerIndex)
	if choice != nil {
		p.Pending.VariableAmount = choice
		defer func() { p.Pending.VariableAmount = nil }()
	}
	return ExpandAction(a, s, playerIndex, src)
}

// enqueueTriggers expands every played-card reaction to the event and
// queues the results behind whatever is already waiting.
func (e *Engine) enqueueTriggers(s *GameState, ev Event) {
	for _, ta := range ActionsFromEvent(s, ev) {
		entries, err := ExpandAction(ta.Action, s, ta.PlayerIndex, ta.Source)
		if err != nil {
			e.log.Error("trigger expansion failed",
				zap.String("source", ta.Source.Name),
				zap.Error(err))
			continue
		}
		e.scheduler.Enqueue(entries...)
	}
}

// drain runs the queue against the state, reacting to what each applied
// entry did: parameter bonuses fire when a threshold is crossed and tile
// placements fan out to placement triggers.
//
// stash is the queue as the last commit left it. A failing drain restores
// it, so entries enqueued for the failed intent never leak into the next
// one, and nothing applied on the way to the failure reaches the replay
// log.
func (e *Engine) drain(s *GameState, stash []Entry) (*GameState, error) {
	var applied []Entry
	ns, err := e.scheduler.Drain(s, func(before, after *GameState, entry Entry) ([]Entry, error) {
		applied = append(applied, entry)

		var followups []Entry
		for _, param := range allParameters {
			prev := before.Common.Parameters[param]
			cur := after.Common.Parameters[param]
			if cur <= prev {
				continue
			}
			for _, bonus := range card.BonusesFor(param) {
				if prev < bonus.Threshold && bonus.Threshold <= cur {
					more, err := ExpandAction(bonus.Action, after, entry.PlayerIndex, nil)
					if err != nil {
						return nil, fmt.Errorf("parameter bonus at %s %d: %w", param, bonus.Threshold, err)
					}
					followups = append(followups, more...)
				}
			}
		}

		if entry.Kind == EntryPlaceTile {
			for _, ta := range ActionsFromEvent(after, Event{
				Kind:        EventTilePlaced,
				PlayerIndex: entry.PlayerIndex,
				TileType:    entry.TileType,
				OnMars:      entry.OnMars,
			}) {
				more, err := ExpandAction(ta.Action, after, ta.PlayerIndex, ta.Source)
				if err != nil {
					return nil, fmt.Errorf("tile trigger on %s: %w", ta.Source.Name, err)
				}
				followups = append(followups, more...)
			}
		}
		return followups, nil
	})
	if err != nil {
		e.scheduler.Replace(stash)
		return nil, err
	}
	for _, en := range applied {
		e.replay.Record(en)
	}
	return ns, nil
}

// consumeAction charges one of the player's turn actions, then settles
// turn order.
func (e *Engine) consumeAction(s *GameState, playerIndex int) {
	p := s.Player(playerIndex)
	if p.ActionsRemaining > 0 {
		p.ActionsRemaining--
	}
	e.settle(s)
}

// settle advances the turn when the current player is spent and nothing is
// outstanding, and runs the generation turnover once every player has
// passed.
func (e *Engine) settle(s *GameState) {
	if s.Common.Stage != StageActive {
		return
	}
	cur := s.CurrentPlayer()
	if cur == nil {
		return
	}
	if !cur.Passed && (cur.ActionsRemaining > 0 || cur.Pending.Any()) {
		return
	}
	if e.scheduler.QueueLen() > 0 {
		return
	}

	allPassed := true
	for _, p := range s.Players {
		if !p.Passed {
			allPassed = false
			break
		}
	}
	if allPassed {
		e.endGeneration(s)
		return
	}

	// Next unpassed player in seat order.
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		next := s.Players[(s.Common.CurrentPlayerIndex+i)%n]
		if next.Passed {
			continue
		}
		s.Common.CurrentPlayerIndex = next.Index
		next.ActionsRemaining = MaxActionsPerTurn
		s.Common.Turn++
		return
	}
}

// endGeneration runs production for every player and rolls the generation
// counter. If Mars is fully terraformed afterwards the game ends.
func (e *Engine) endGeneration(s *GameState) {
	stash := e.scheduler.PendingEntries()
	for _, p := range s.Players {
		prod := NewEntry(EntryRunProduction, p.Index)
		e.scheduler.Enqueue(prod)
	}
	e.scheduler.Enqueue(NewEntry(EntryNextGeneration, s.Common.FirstPlayerIndex))

	drained, err := e.drain(s, stash)
	if err != nil {
		e.log.Error("generation turnover failed", zap.Error(err))
		return
	}
	*s = *drained

	if terraformed(s) {
		s.Common.Stage = StageEnded
		e.log.Info("game over, Mars terraformed",
			zap.Int("generation", s.Common.Generation))
		return
	}
	e.log.Info("generation complete",
		zap.Int("generation", s.Common.Generation))
}

// terraformed reports whether all three terraforming parameters sit at
// their maxima.
func terraformed(s *GameState) bool {
	for _, param := range []card.Parameter{card.ParamTemperature, card.ParamOxygen, card.ParamOceans} {
		_, max := param.Range()
		if s.Common.Parameters[param] < max {
			return false
		}
	}
	return true
}

// commit makes ns the game's committed state.
func (e *Engine) commit(ns *GameState) {
	e.state = ns
	if err := e.replay.Checkpoint(ns); err != nil {
		e.log.Warn("replay checkpoint failed", zap.Error(err))
	}
}

// applyCardLedger folds a card's passive cost modifiers into the player's
// ledger when the card enters play.
func applyCardLedger(p *PlayerState, c *card.Card) {
	if c.Discounts != nil {
		p.Discounts.Card += c.Discounts.Card
		p.Discounts.StandardProjects += c.Discounts.StandardProjects
		for tag, n := range c.Discounts.Tags {
			if p.Discounts.Tags == nil {
				p.Discounts.Tags = make(map[card.Tag]int)
			}
			p.Discounts.Tags[tag] += n
		}
	}
	for r, n := range c.ExchangeRateBonus {
		p.ExchangeRates[r] += n
	}
}

func cardInPlay(s *GameState, name string) bool {
	for _, p := range s.Players {
		if p.FindPlayed(name) != nil {
			return true
		}
	}
	return false
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

// subsetOf checks that every pick appears in the offer, respecting
// multiplicity.
func subsetOf(picks, offer []string) error {
	remaining := make(map[string]int, len(offer))
	for _, n := range offer {
		remaining[n]++
	}
	for _, n := range picks {
		if remaining[n] == 0 {
			return fmt.Errorf("%s is not among the offered cards", n)
		}
		remaining[n]--
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
