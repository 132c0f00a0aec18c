package catalog

import (
	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
)

// corporationCards are the selectable corporations. Starting resources and
// productions are applied when the corporation is chosen; passive effects
// run through the same trigger system as project cards.
var corporationCards = []card.Card{
	{
		Name: "CrediCor", Type: card.TypeCorporation, Deck: card.DeckCorporate,
		StartingMegacredits: 57,
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondCardCostPaid, MinCost: 20},
			Action:    card.Action{GainResources: []card.ResourceAmount{res(card.Megacredit, 4)}},
		},
	},
	{
		Name: "Thorgate", Type: card.TypeCorporation, Deck: card.DeckCorporate,
		Tags:                []card.Tag{card.TagPower},
		StartingMegacredits: 48,
		Play:                card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Energy, 1)}},
		Discounts:           &card.Discounts{Tags: map[card.Tag]int{card.TagPower: 3}},
	},
	{
		Name: "Saturn Systems", Type: card.TypeCorporation, Deck: card.DeckCorporate,
		Tags:                []card.Tag{card.TagJovian},
		StartingMegacredits: 42,
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Titanium, 1)},
		},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTagsPlayed, Tags: []card.Tag{card.TagJovian}, AnyPlayer: true},
			Action:    card.Action{IncreaseProduction: []card.ResourceAmount{mc(1)}},
		},
	},
	{
		Name: "PhoboLog", Type: card.TypeCorporation, Deck: card.DeckCorporate,
		Tags:                []card.Tag{card.TagSpace},
		StartingMegacredits: 23,
		Play:                card.Action{GainResources: []card.ResourceAmount{res(card.Titanium, 10)}},
		ExchangeRateBonus:   map[card.Resource]int{card.Titanium: 1},
	},
	{
		Name: "Interplanetary Cinematics", Type: card.TypeCorporation, Deck: card.DeckCorporate,
		Tags:                []card.Tag{card.TagBuilding},
		StartingMegacredits: 30,
		Play:                card.Action{GainResources: []card.ResourceAmount{res(card.Steel, 20)}},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTagsPlayed, Tags: []card.Tag{card.TagEvent}},
			Action:    card.Action{GainResources: []card.ResourceAmount{res(card.Megacredit, 2)}},
		},
	},
	{
		Name: "Tharsis Republic", Type: card.TypeCorporation, Deck: card.DeckCorporate,
		Tags:                []card.Tag{card.TagBuilding},
		StartingMegacredits: 40,
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTilePlaced, TileTypes: []board.TileType{board.TileCity}, OnMarsOnly: true, AnyPlayer: true},
			Action:    card.Action{IncreaseProduction: []card.ResourceAmount{mc(1)}},
		},
	},
}
