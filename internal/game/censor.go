package game

import (
	"github.com/openmars/tfm-server-go/internal/game/card"
	"github.com/openmars/tfm-server-go/internal/game/catalog"
)

// hiddenCardName is what a viewer sees in place of a card they are not
// allowed to identify. List lengths are preserved so counts stay honest.
const hiddenCardName = "Hidden"

// CensorFor returns a copy of the state safe to send to the given player.
// Opponents' hands, draft options and unselected corporations are replaced
// with same-length placeholder lists, and opponents' played events are
// anonymized, since events are flipped face down after resolving. The deck
// is hidden from everyone.
func CensorFor(s *GameState, viewerIndex int) *GameState {
	cs := s.Clone()

	cs.Common.Deck = hideAll(cs.Common.Deck)

	for _, p := range cs.Players {
		if p.Index == viewerIndex {
			continue
		}
		p.Hand = hideAll(p.Hand)
		p.PossibleCards = hideAll(p.PossibleCards)
		p.PossibleCorporations = hideAll(p.PossibleCorporations)
		if cs.Common.Stage == StageCorporationSelection && p.Corporation != nil {
			p.Corporation = &PlayedCard{Name: hiddenCardName}
		}
		for i := range p.Played {
			if c, ok := catalog.GetCard(p.Played[i].Name); ok && c.Type == card.TypeEvent {
				p.Played[i].Name = hiddenCardName
			}
		}
		// What an opponent is being asked about stays private until they
		// answer; only the fact that they are deciding is public.
		if p.Pending.CardSelection != nil {
			p.Pending.CardSelection = &PendingCardSelection{
				Cards: hideAll(p.Pending.CardSelection.Cards),
				Keep:  p.Pending.CardSelection.Keep,
			}
		}
	}
	return cs
}

func hideAll(names []string) []string {
	out := make([]string, len(names))
	for i := range names {
		out[i] = hiddenCardName
	}
	return out
}
