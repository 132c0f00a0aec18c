package game

import (
	"fmt"

	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
	"github.com/openmars/tfm-server-go/internal/game/catalog"
)

// Resource conversion costs.
const (
	PlantConversionCost = 8
	HeatConversionCost  = 8
)

// GuardResult is the outcome of a legality check. Reason is set only when
// the action is illegal and is phrased for the player, not the log.
type GuardResult struct {
	Legal  bool   `json:"legal"`
	Reason string `json:"reason,omitempty"`
}

func legal() GuardResult {
	return GuardResult{Legal: true}
}

func illegal(format string, args ...any) GuardResult {
	return GuardResult{Legal: false, Reason: fmt.Sprintf(format, args...)}
}

// Payment is how a player covers a card or project cost. Steel and
// titanium are counted at the player's exchange rates and are only
// accepted where the rules allow them.
type Payment struct {
	Megacredits int `json:"megaCredits"`
	Steel       int `json:"steel"`
	Titanium    int `json:"titanium"`
}

// turnGuard holds the checks shared by every deliberate player action.
func turnGuard(s *GameState, p *PlayerState) GuardResult {
	if s.Common.Stage != StageActive {
		return illegal("the game is not in its action phase")
	}
	if s.Common.CurrentPlayerIndex != p.Index {
		return illegal("it is not your turn")
	}
	if p.Passed {
		return illegal("you have passed for this generation")
	}
	if p.ActionsRemaining <= 0 {
		return illegal("no actions remaining this turn")
	}
	if p.Pending.Any() {
		return illegal("resolve your pending decision first")
	}
	return legal()
}

// DiscountedCost is the card's printed cost after the player's accumulated
// discounts, floored at zero.
func DiscountedCost(p *PlayerState, c *card.Card) int {
	cost := c.Cost
	cost -= p.Discounts.Card
	cost -= p.Discounts.NextCardThisGeneration
	for tag, amount := range p.Discounts.Tags {
		if c.HasTag(tag) {
			cost -= amount * c.CountTag(tag)
		}
	}
	if cost < 0 {
		cost = 0
	}
	return cost
}

// paymentValue totals the payment in megacredit terms and validates that
// each component is both owned and allowed for this card. Steel pays only
// on building-tag cards, titanium only on space-tag cards.
func paymentValue(p *PlayerState, c *card.Card, pay Payment) (int, GuardResult) {
	if pay.Megacredits < 0 || pay.Steel < 0 || pay.Titanium < 0 {
		return 0, illegal("payment amounts cannot be negative")
	}
	if pay.Megacredits > p.Resources[card.Megacredit] {
		return 0, illegal("you only have %d M€", p.Resources[card.Megacredit])
	}
	if pay.Steel > 0 {
		if !c.HasTag(card.TagBuilding) {
			return 0, illegal("steel only pays for building cards")
		}
		if pay.Steel > p.Resources[card.Steel] {
			return 0, illegal("you only have %d steel", p.Resources[card.Steel])
		}
	}
	if pay.Titanium > 0 {
		if !c.HasTag(card.TagSpace) {
			return 0, illegal("titanium only pays for space cards")
		}
		if pay.Titanium > p.Resources[card.Titanium] {
			return 0, illegal("you only have %d titanium", p.Resources[card.Titanium])
		}
	}
	total := pay.Megacredits +
		pay.Steel*p.ExchangeRates[card.Steel] +
		pay.Titanium*p.ExchangeRates[card.Titanium]
	return total, legal()
}

// CheckRequirements verifies the card's printed preconditions against the
// current state: global parameter windows, tag counts, and resource and
// production holdings.
func CheckRequirements(s *GameState, p *PlayerState, c *card.Card) GuardResult {
	for _, pr := range c.Requirements.Parameters {
		cur := s.Common.Parameters[pr.Parameter]
		if cur < pr.Min {
			return illegal("%s must be at least %d (currently %d)", pr.Parameter, pr.Min, cur)
		}
		if cur > pr.Max {
			return illegal("%s must be at most %d (currently %d)", pr.Parameter, pr.Max, cur)
		}
	}
	for tag, want := range c.Requirements.Tags {
		if have := p.CountTags(tag); have < want {
			return illegal("requires %d %s tags, you have %d", want, tag, have)
		}
	}
	for _, req := range c.Requirements.Resources {
		want, err := ResolveAmount(req.Amount, s, p, nil)
		if err != nil {
			return illegal("unresolvable requirement on %s", c.Name)
		}
		if p.Resources[req.Resource] < want {
			return illegal("requires %d %s", want, req.Resource)
		}
	}
	for _, req := range c.Requirements.Production {
		want, err := ResolveAmount(req.Amount, s, p, nil)
		if err != nil {
			return illegal("unresolvable requirement on %s", c.Name)
		}
		if p.Productions[req.Resource] < want {
			return illegal("requires %d %s production", want, req.Resource)
		}
	}
	return legal()
}

// CanPlayCard checks a card play end to end: turn, hand membership,
// requirements, payment coverage, and placement feasibility for any tiles
// the card itself places.
func CanPlayCard(s *GameState, p *PlayerState, cardName string, pay Payment) GuardResult {
	if r := turnGuard(s, p); !r.Legal {
		return r
	}
	c, ok := catalog.GetCard(cardName)
	if !ok {
		return illegal("unknown card %q", cardName)
	}
	if !inHand(p, cardName) {
		return illegal("%s is not in your hand", cardName)
	}
	if r := CheckRequirements(s, p, c); !r.Legal {
		return r
	}
	value, r := paymentValue(p, c, pay)
	if !r.Legal {
		return r
	}
	cost := DiscountedCost(p, c)
	if value < cost {
		return illegal("%s costs %d M€, payment covers %d", c.Name, cost, value)
	}
	if r := playEffectsLand(s, p, c, cost); !r.Legal {
		return r
	}
	for _, tp := range c.Play.PlaceTiles {
		if r := placementFeasible(s, p, tp); !r.Legal {
			return r
		}
	}
	return legal()
}

// playEffectsLand checks the card's own production box and resource costs
// against the player's holdings before the play is approved. A production
// deficit is forgiven when the play itself would fire triggered effects
// that restore enough production; only card plays get that lookahead, so a
// marginal play can be self-rescued but a standard project never is.
func playEffectsLand(s *GameState, p *PlayerState, c *card.Card, cost int) GuardResult {
	for _, dec := range c.Play.DecreaseProduction {
		if dec.Target != card.TargetSelf {
			continue
		}
		want, err := ResolveAmount(dec.Amount, s, p, nil)
		if err != nil {
			continue
		}
		floor := dec.Resource.ProductionFloor()
		if p.Productions[dec.Resource]-want >= floor {
			continue
		}
		delta := triggeredProductionDelta(s, p, c, cost, dec.Resource)
		if p.Productions[dec.Resource]-want+delta < floor {
			return illegal("%s would drop your %s production below %d", c.Name, dec.Resource, floor)
		}
	}
	for _, rm := range c.Play.RemoveResources {
		if rm.Target != card.TargetSelf {
			continue
		}
		want, err := ResolveAmount(rm.Amount, s, p, nil)
		if err != nil {
			continue
		}
		if p.Resources[rm.Resource] < want {
			return illegal("%s removes %d %s, you have %d", c.Name, want, rm.Resource, p.Resources[rm.Resource])
		}
	}
	return legal()
}

// triggeredProductionDelta totals the production of one resource that the
// play's own triggers would add for the player: the cost-paid and
// tags-played events this play fires, scanned against the cards already in
// play.
func triggeredProductionDelta(s *GameState, p *PlayerState, c *card.Card, cost int, resource card.Resource) int {
	events := []Event{
		{Kind: EventCardCostPaid, PlayerIndex: p.Index, Cost: cost, CardName: c.Name},
		{Kind: EventTagsPlayed, PlayerIndex: p.Index, Tags: c.Tags, CardName: c.Name},
	}
	delta := 0
	for _, ev := range events {
		for _, ta := range ActionsFromEvent(s, ev) {
			if ta.PlayerIndex != p.Index {
				continue
			}
			for _, inc := range ta.Action.IncreaseProduction {
				if inc.Resource != resource {
					continue
				}
				if n, err := ResolveAmount(inc.Amount, s, p, ta.Source); err == nil {
					delta += n
				}
			}
		}
	}
	return delta
}

// CanPlayCardAction checks an activated ability on a card the player has
// in play. Abilities fire once per generation and their cost side must be
// payable up front.
func CanPlayCardAction(s *GameState, p *PlayerState, cardName string) GuardResult {
	if r := turnGuard(s, p); !r.Legal {
		return r
	}
	pc := p.FindPlayed(cardName)
	if pc == nil {
		return illegal("you have not played %s", cardName)
	}
	c := pc.Card()
	if c.Action == nil {
		return illegal("%s has no action", cardName)
	}
	if pc.LastGenerationUsed >= s.Common.Generation {
		return illegal("%s was already used this generation", cardName)
	}
	if r := actionCostPayable(s, p, pc, c.Action.Cost); !r.Legal {
		return r
	}
	for _, tp := range c.Action.Effect.PlaceTiles {
		if r := placementFeasible(s, p, tp); !r.Legal {
			return r
		}
	}
	return legal()
}

// actionCostPayable verifies the spend side of an activated ability. Costs
// only ever remove the owner's own resources or this card's stored ones.
func actionCostPayable(s *GameState, p *PlayerState, src *PlayedCard, cost card.Action) GuardResult {
	for _, rm := range cost.RemoveResources {
		want, err := ResolveAmount(rm.Amount, s, p, src)
		if err != nil {
			return illegal("unresolvable cost on %s", src.Name)
		}
		if rm.Target == card.TargetThisCard {
			if src.Stored < want {
				return illegal("%s holds %d %s, the action needs %d", src.Name, src.Stored, rm.Resource, want)
			}
			continue
		}
		if p.Resources[rm.Resource] < want {
			return illegal("the action costs %d %s, you have %d", want, rm.Resource, p.Resources[rm.Resource])
		}
	}
	for _, dp := range cost.DecreaseProduction {
		want, err := ResolveAmount(dp.Amount, s, p, src)
		if err != nil {
			return illegal("unresolvable cost on %s", src.Name)
		}
		if p.Productions[dp.Resource]-want < dp.Resource.ProductionFloor() {
			return illegal("you cannot lower %s production by %d", dp.Resource, want)
		}
	}
	return legal()
}

// CanPlayStandardProject checks a standard project. Projects are paid in
// megacredits only, after any standard-project discount.
func CanPlayStandardProject(s *GameState, p *PlayerState, name string) GuardResult {
	if r := turnGuard(s, p); !r.Legal {
		return r
	}
	sp, ok := catalog.GetStandardProject(name)
	if !ok {
		return illegal("unknown standard project %q", name)
	}
	cost := sp.Cost - p.Discounts.StandardProjects
	if cost < 0 {
		cost = 0
	}
	if p.Resources[card.Megacredit] < cost {
		return illegal("%s costs %d M€, you have %d", sp.Name, cost, p.Resources[card.Megacredit])
	}
	switch name {
	case catalog.ProjectSellPatents:
		if len(p.Hand) == 0 {
			return illegal("you have no cards to sell")
		}
	case catalog.ProjectAquifer:
		if r := parameterRaisable(s, card.ParamOceans); !r.Legal {
			return r
		}
	case catalog.ProjectAsteroid:
		if r := parameterRaisable(s, card.ParamTemperature); !r.Legal {
			return r
		}
	}
	for _, tp := range sp.Action.PlaceTiles {
		if r := placementFeasible(s, p, tp); !r.Legal {
			return r
		}
	}
	return legal()
}

// CanConvertResources checks the built-in conversions: eight plants to a
// greenery, or eight heat to a temperature step.
func CanConvertResources(s *GameState, p *PlayerState, resource card.Resource) GuardResult {
	if r := turnGuard(s, p); !r.Legal {
		return r
	}
	switch resource {
	case card.Plant:
		if p.Resources[card.Plant] < PlantConversionCost {
			return illegal("converting plants takes %d, you have %d", PlantConversionCost, p.Resources[card.Plant])
		}
		return placementFeasible(s, p, card.GreeneryPlacement())
	case card.Heat:
		if p.Resources[card.Heat] < HeatConversionCost {
			return illegal("converting heat takes %d, you have %d", HeatConversionCost, p.Resources[card.Heat])
		}
		return parameterRaisable(s, card.ParamTemperature)
	default:
		return illegal("%s cannot be converted", resource)
	}
}

// CanClaimMilestone checks eligibility and the shared three-claim cap.
func CanClaimMilestone(s *GameState, p *PlayerState, name string) GuardResult {
	if r := turnGuard(s, p); !r.Legal {
		return r
	}
	m, ok := catalog.GetMilestone(name)
	if !ok {
		return illegal("unknown milestone %q", name)
	}
	if len(s.Common.ClaimedMilestones) >= catalog.MaxClaimedMilestones {
		return illegal("all %d milestones have been claimed", catalog.MaxClaimedMilestones)
	}
	for _, cm := range s.Common.ClaimedMilestones {
		if cm.Name == name {
			return illegal("%s is already claimed", name)
		}
	}
	if p.Resources[card.Megacredit] < catalog.MilestoneCost {
		return illegal("claiming a milestone costs %d M€", catalog.MilestoneCost)
	}
	if have := measureValue(s, p, m.Criterion); have < m.Threshold {
		return illegal("%s needs %d, you have %d", m.Name, m.Threshold, have)
	}
	return legal()
}

// CanFundAward checks the escalating award cost and the shared cap.
func CanFundAward(s *GameState, p *PlayerState, name string) GuardResult {
	if r := turnGuard(s, p); !r.Legal {
		return r
	}
	if _, ok := catalog.GetAward(name); !ok {
		return illegal("unknown award %q", name)
	}
	funded := len(s.Common.FundedAwards)
	if funded >= catalog.MaxFundedAwards {
		return illegal("all %d awards have been funded", catalog.MaxFundedAwards)
	}
	for _, fa := range s.Common.FundedAwards {
		if fa.Name == name {
			return illegal("%s is already funded", name)
		}
	}
	cost := catalog.AwardCosts[funded]
	if p.Resources[card.Megacredit] < cost {
		return illegal("funding the next award costs %d M€", cost)
	}
	return legal()
}

// CanPlaceTile checks a placement answer against the player's suspended
// tile decision. Off-Mars placements resolve to their single named cell.
func CanPlaceTile(s *GameState, p *PlayerState, cellID string) GuardResult {
	tp := p.Pending.TilePlacement
	if tp == nil {
		return illegal("no tile placement is pending for you")
	}
	cells, err := s.Common.Board.AvailableCells(tp.Placement, p.Index)
	if err != nil {
		return illegal("placement %s is not recognized", tp.Placement)
	}
	for _, c := range cells {
		if c.ID == cellID {
			return legal()
		}
	}
	return illegal("cell %s is not a legal spot for this tile", cellID)
}

func placementFeasible(s *GameState, p *PlayerState, tp card.TilePlacement) GuardResult {
	if tp.TileType == board.TileOcean {
		if r := parameterRaisable(s, card.ParamOceans); !r.Legal {
			return r
		}
	}
	cells, err := s.Common.Board.AvailableCells(tp.Placement, p.Index)
	if err != nil {
		return illegal("placement %s is not recognized", tp.Placement)
	}
	if len(cells) == 0 {
		return illegal("no legal cell for a %s tile", tp.TileType)
	}
	return legal()
}

func parameterRaisable(s *GameState, param card.Parameter) GuardResult {
	_, max := param.Range()
	if s.Common.Parameters[param] >= max {
		return illegal("%s is already at its maximum", param)
	}
	return legal()
}

func inHand(p *PlayerState, name string) bool {
	for _, n := range p.Hand {
		if n == name {
			return true
		}
	}
	return false
}

// measureValue evaluates a milestone or award criterion for one player.
func measureValue(s *GameState, p *PlayerState, m card.Measure) int {
	switch m {
	case card.MeasureTerraformRating:
		return p.TerraformRating
	case card.MeasureCitiesOnMars:
		return s.Common.Board.CountTiles(board.TileCity, false, p.Index)
	case card.MeasureGreeneries:
		return s.Common.Board.CountTiles(board.TileGreenery, false, p.Index)
	case card.MeasureBuildingTags:
		return p.CountTags(card.TagBuilding)
	case card.MeasureScienceTags:
		return p.CountTags(card.TagScience)
	case card.MeasureCardsInHand:
		return len(p.Hand)
	case card.MeasureTilesOwned:
		return len(s.Common.Board.TilesOwnedBy(p.Index))
	case card.MeasureHeat:
		return p.Resources[card.Heat]
	case card.MeasureSteelTitanium:
		return p.Resources[card.Steel] + p.Resources[card.Titanium]
	case card.MeasureMegacreditProduction:
		return p.Productions[card.Megacredit]
	}
	return 0
}
