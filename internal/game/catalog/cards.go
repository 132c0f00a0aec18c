package catalog

import (
	"github.com/openmars/tfm-server-go/internal/game/board"
	"github.com/openmars/tfm-server-go/internal/game/card"
)

func mc(n int) card.ResourceAmount {
	return card.ResourceAmount{Resource: card.Megacredit, Amount: card.Fixed(n)}
}

func res(r card.Resource, n int) card.ResourceAmount {
	return card.ResourceAmount{Resource: r, Amount: card.Fixed(n)}
}

func onThisCard(r card.Resource, n int) card.ResourceAmount {
	return card.ResourceAmount{Resource: r, Amount: card.Fixed(n), Target: card.TargetThisCard}
}

func raise(p card.Parameter, steps int) card.ParameterDelta {
	return card.ParameterDelta{Parameter: p, Steps: card.Fixed(steps)}
}

func minParam(p card.Parameter, v int) card.ParamRequirement {
	_, max := p.Range()
	return card.ParamRequirement{Parameter: p, Min: v, Max: max}
}

func maxParam(p card.Parameter, v int) card.ParamRequirement {
	min, _ := p.Range()
	return card.ParamRequirement{Parameter: p, Min: min, Max: v}
}

// projectCards is the project deck. Effects are declarative only; anything a
// card does is expressed through the shared action vocabulary.
var projectCards = []card.Card{
	{
		Name: "Asteroid", Type: card.TypeEvent, Deck: card.DeckBasic, Cost: 14,
		Tags: []card.Tag{card.TagSpace, card.TagEvent},
		Play: card.Action{
			RaiseParameters: []card.ParameterDelta{raise(card.ParamTemperature, 1)},
			GainResources:   []card.ResourceAmount{res(card.Titanium, 2)},
			RemoveResources: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Fixed(3), Target: card.TargetAnyPlayer}},
		},
	},
	{
		Name: "Big Asteroid", Type: card.TypeEvent, Deck: card.DeckBasic, Cost: 27,
		Tags: []card.Tag{card.TagSpace, card.TagEvent},
		Play: card.Action{
			RaiseParameters: []card.ParameterDelta{raise(card.ParamTemperature, 2)},
			GainResources:   []card.ResourceAmount{res(card.Titanium, 4)},
			RemoveResources: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Fixed(4), Target: card.TargetAnyPlayer}},
		},
	},
	{
		Name: "Comet", Type: card.TypeEvent, Deck: card.DeckBasic, Cost: 21,
		Tags: []card.Tag{card.TagSpace, card.TagEvent},
		Play: card.Action{
			RaiseParameters: []card.ParameterDelta{raise(card.ParamTemperature, 1)},
			PlaceTiles:      []card.TilePlacement{card.OceanPlacement()},
			RemoveResources: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Fixed(3), Target: card.TargetAnyPlayer}},
		},
	},
	{
		Name: "Ice Asteroid", Type: card.TypeEvent, Deck: card.DeckBasic, Cost: 23,
		Tags: []card.Tag{card.TagSpace, card.TagEvent},
		Play: card.Action{PlaceTiles: []card.TilePlacement{card.OceanPlacement(), card.OceanPlacement()}},
	},
	{
		Name: "Giant Ice Asteroid", Type: card.TypeEvent, Deck: card.DeckBasic, Cost: 36,
		Tags: []card.Tag{card.TagSpace, card.TagEvent},
		Play: card.Action{
			RaiseParameters: []card.ParameterDelta{raise(card.ParamTemperature, 2)},
			PlaceTiles:      []card.TilePlacement{card.OceanPlacement(), card.OceanPlacement()},
			RemoveResources: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Fixed(6), Target: card.TargetAnyPlayer}},
		},
	},
	{
		Name: "Deimos Down", Type: card.TypeEvent, Deck: card.DeckCorporate, Cost: 31,
		Tags: []card.Tag{card.TagSpace, card.TagEvent},
		Play: card.Action{
			RaiseParameters: []card.ParameterDelta{raise(card.ParamTemperature, 3)},
			GainResources:   []card.ResourceAmount{res(card.Steel, 4)},
			RemoveResources: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Fixed(8), Target: card.TargetAnyPlayer}},
		},
	},
	{
		Name: "Lava Flows", Type: card.TypeEvent, Deck: card.DeckBasic, Cost: 18,
		Tags: []card.Tag{card.TagEvent},
		Play: card.Action{
			RaiseParameters: []card.ParameterDelta{raise(card.ParamTemperature, 2)},
			PlaceTiles:      []card.TilePlacement{{TileType: board.TileSpecial, Placement: board.PlacementVolcanic, OnMars: true}},
		},
	},
	{
		Name: "Release of Inert Gases", Type: card.TypeEvent, Deck: card.DeckBasic, Cost: 14,
		Tags: []card.Tag{card.TagEvent},
		Play: card.Action{TerraformRating: card.Fixed(2)},
	},
	{
		Name: "Convoy From Europa", Type: card.TypeEvent, Deck: card.DeckBasic, Cost: 15,
		Tags: []card.Tag{card.TagSpace, card.TagEvent},
		Play: card.Action{
			PlaceTiles: []card.TilePlacement{card.OceanPlacement()},
			DrawCards:  card.Fixed(1),
		},
	},
	{
		Name: "Imported GHG", Type: card.TypeEvent, Deck: card.DeckCorporate, Cost: 7,
		Tags: []card.Tag{card.TagSpace, card.TagEarth, card.TagEvent},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Heat, 1)},
			GainResources:      []card.ResourceAmount{res(card.Heat, 3)},
		},
	},
	{
		Name: "Imported Nitrogen", Type: card.TypeEvent, Deck: card.DeckCorporate, Cost: 23,
		Tags: []card.Tag{card.TagSpace, card.TagEarth, card.TagEvent},
		Play: card.Action{
			TerraformRating: card.Fixed(1),
			GainResources: []card.ResourceAmount{
				res(card.Plant, 4),
				{Resource: card.Microbe, Amount: card.Fixed(3), Target: card.TargetAnyCard},
				{Resource: card.Animal, Amount: card.Fixed(2), Target: card.TargetAnyCard},
			},
		},
	},
	{
		Name: "Imported Hydrogen", Type: card.TypeEvent, Deck: card.DeckCorporate, Cost: 16,
		Tags: []card.Tag{card.TagSpace, card.TagEarth, card.TagEvent},
		Play: card.Action{
			Choice: []card.Action{
				{GainResources: []card.ResourceAmount{res(card.Plant, 3)}},
				{GainResources: []card.ResourceAmount{{Resource: card.Microbe, Amount: card.Fixed(3), Target: card.TargetAnyCard}}},
				{GainResources: []card.ResourceAmount{{Resource: card.Animal, Amount: card.Fixed(2), Target: card.TargetAnyCard}}},
			},
			PlaceTiles: []card.TilePlacement{card.OceanPlacement()},
		},
	},
	{
		Name: "Investment Loan", Type: card.TypeEvent, Deck: card.DeckCorporate, Cost: 3,
		Tags: []card.Tag{card.TagEarth, card.TagEvent},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{mc(1)},
			GainResources:      []card.ResourceAmount{res(card.Megacredit, 10)},
		},
	},
	{
		Name: "Lake Marineris", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 18,
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamTemperature, 0)}},
		Play:         card.Action{PlaceTiles: []card.TilePlacement{card.OceanPlacement(), card.OceanPlacement()}},
		VictoryPoints: card.Fixed(2),
	},

	// Production infrastructure.
	{
		Name: "Mine", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 4,
		Tags: []card.Tag{card.TagBuilding},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Steel, 1)}},
	},
	{
		Name: "Strip Mine", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 25,
		Tags: []card.Tag{card.TagBuilding},
		Requirements: card.Requirements{Production: []card.ResourceAmount{res(card.Energy, 2)}},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{res(card.Energy, 2)},
			IncreaseProduction: []card.ResourceAmount{res(card.Steel, 2), res(card.Titanium, 1)},
			RaiseParameters:    []card.ParameterDelta{raise(card.ParamOxygen, 2)},
		},
	},
	{
		Name: "Power Plant", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 4,
		Tags: []card.Tag{card.TagPower, card.TagBuilding},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Energy, 1)}},
	},
	{
		Name: "Nuclear Power", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 10,
		Tags: []card.Tag{card.TagPower, card.TagBuilding},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{mc(2)},
			IncreaseProduction: []card.ResourceAmount{res(card.Energy, 3)},
		},
	},
	{
		Name: "Solar Power", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 11,
		Tags: []card.Tag{card.TagPower, card.TagBuilding},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Energy, 1)}},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Giant Space Mirror", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 17,
		Tags: []card.Tag{card.TagPower, card.TagSpace},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Energy, 3)}},
	},
	{
		Name: "Deep Well Heating", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 13,
		Tags: []card.Tag{card.TagPower, card.TagBuilding},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Energy, 1)},
			RaiseParameters:    []card.ParameterDelta{raise(card.ParamTemperature, 1)},
		},
	},
	{
		Name: "Mohole Area", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 20,
		Tags: []card.Tag{card.TagBuilding},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Heat, 4)},
			PlaceTiles:         []card.TilePlacement{{TileType: board.TileSpecial, Placement: board.PlacementOcean, OnMars: true}},
		},
	},
	{
		Name: "Natural Preserve", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 9,
		Tags: []card.Tag{card.TagScience, card.TagBuilding},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{maxParam(card.ParamOxygen, 4)}},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{mc(1)},
			PlaceTiles:         []card.TilePlacement{{TileType: board.TileSpecial, Placement: board.PlacementIsolated, OnMars: true}},
		},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Energy Saving", Type: card.TypeAutomated, Deck: card.DeckCorporate, Cost: 15,
		Tags: []card.Tag{card.TagPower},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{{Resource: card.Energy, Amount: card.Variable(card.VarCitiesOnMars)}}},
	},
	{
		Name: "Medical Lab", Type: card.TypeAutomated, Deck: card.DeckCorporate, Cost: 13,
		Tags: []card.Tag{card.TagScience, card.TagBuilding},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{{Resource: card.Megacredit, Amount: card.PerTag(card.TagBuilding, 2)}}},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Gene Repair", Type: card.TypeAutomated, Deck: card.DeckCorporate, Cost: 12,
		Tags: []card.Tag{card.TagScience},
		Requirements: card.Requirements{Tags: map[card.Tag]int{card.TagScience: 3}},
		Play:         card.Action{IncreaseProduction: []card.ResourceAmount{mc(2)}},
		VictoryPoints: card.Fixed(2),
	},
	{
		Name: "Insulation", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 2,
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{{Resource: card.Heat, Amount: card.Variable(card.VarUserChoice)}},
			IncreaseProduction: []card.ResourceAmount{{Resource: card.Megacredit, Amount: card.Variable(card.VarBasedOnUserChoice)}},
		},
		Requirements: card.Requirements{Production: []card.ResourceAmount{res(card.Heat, 1)}},
	},
	{
		Name: "Asteroid Mining", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 30,
		Tags: []card.Tag{card.TagJovian, card.TagSpace},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Titanium, 2)}},
		VictoryPoints: card.Fixed(2),
	},
	{
		Name: "Methane From Titan", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 28,
		Tags: []card.Tag{card.TagJovian, card.TagSpace},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamOxygen, 2)}},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Heat, 2), res(card.Plant, 2)}},
		VictoryPoints: card.Fixed(2),
	},
	{
		Name: "Io Mining Industries", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 41,
		Tags: []card.Tag{card.TagJovian, card.TagSpace},
		Play: card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Titanium, 2), mc(2)}},
		VictoryPoints: card.PerTag(card.TagJovian, 1),
	},
	{
		Name: "Mass Converter", Type: card.TypeActive, Deck: card.DeckCorporate, Cost: 8,
		Tags: []card.Tag{card.TagScience, card.TagPower},
		Requirements: card.Requirements{Tags: map[card.Tag]int{card.TagScience: 5}},
		Play:         card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Energy, 6)}},
		Discounts:    &card.Discounts{Tags: map[card.Tag]int{card.TagSpace: 2}},
	},

	// Cities.
	{
		Name: "Domed Crater", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 24,
		Tags: []card.Tag{card.TagCity, card.TagBuilding},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{maxParam(card.ParamOxygen, 7)}},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{res(card.Energy, 1)},
			IncreaseProduction: []card.ResourceAmount{mc(3)},
			GainResources:      []card.ResourceAmount{res(card.Plant, 3)},
			PlaceTiles:         []card.TilePlacement{card.CityPlacement()},
		},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Urbanized Area", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 10,
		Tags: []card.Tag{card.TagCity, card.TagBuilding},
		Requirements: card.Requirements{Production: []card.ResourceAmount{res(card.Energy, 1)}},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{res(card.Energy, 1)},
			IncreaseProduction: []card.ResourceAmount{mc(2)},
			PlaceTiles:         []card.TilePlacement{{TileType: board.TileCity, Placement: board.PlacementDoubleCityAdjacent, OnMars: true}},
		},
	},
	{
		Name: "Noctis City", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 18,
		Tags: []card.Tag{card.TagCity, card.TagBuilding},
		Requirements: card.Requirements{Production: []card.ResourceAmount{res(card.Energy, 1)}},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{res(card.Energy, 1)},
			IncreaseProduction: []card.ResourceAmount{mc(3)},
			PlaceTiles:         []card.TilePlacement{{TileType: board.TileCity, Placement: board.PlacementNoctis, OnMars: true}},
		},
	},
	{
		Name: "Phobos Space Haven", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 25,
		Tags: []card.Tag{card.TagCity, card.TagSpace},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Titanium, 1)},
			PlaceTiles:         []card.TilePlacement{{TileType: board.TileCity, Placement: board.PlacementPhobos, OnMars: false}},
		},
		VictoryPoints: card.Fixed(3),
	},
	{
		Name: "Ganymede Colony", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 20,
		Tags: []card.Tag{card.TagCity, card.TagSpace, card.TagJovian},
		Play: card.Action{
			PlaceTiles: []card.TilePlacement{{TileType: board.TileCity, Placement: board.PlacementGanymede, OnMars: false}},
		},
		VictoryPoints: card.PerTag(card.TagJovian, 1),
	},
	{
		Name: "Capital", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 26,
		Tags: []card.Tag{card.TagCity, card.TagBuilding},
		Requirements: card.Requirements{
			Parameters: []card.ParamRequirement{minParam(card.ParamOceans, 4)},
			Production: []card.ResourceAmount{res(card.Energy, 2)},
		},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{res(card.Energy, 2)},
			IncreaseProduction: []card.ResourceAmount{mc(5)},
			PlaceTiles:         []card.TilePlacement{{TileType: board.TileCapital, Placement: board.PlacementCity, OnMars: true}},
		},
	},
	{
		Name: "Immigrant City", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 13,
		Tags: []card.Tag{card.TagCity, card.TagBuilding},
		Requirements: card.Requirements{Production: []card.ResourceAmount{res(card.Energy, 1)}},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{res(card.Energy, 1), mc(2)},
			PlaceTiles:         []card.TilePlacement{card.CityPlacement()},
		},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTilePlaced, TileTypes: []board.TileType{board.TileCity}, AnyPlayer: true},
			Action:    card.Action{IncreaseProduction: []card.ResourceAmount{mc(1)}},
		},
	},
	{
		Name: "Research Outpost", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 18,
		Tags: []card.Tag{card.TagScience, card.TagCity, card.TagBuilding},
		Play: card.Action{
			PlaceTiles: []card.TilePlacement{{TileType: board.TileCity, Placement: board.PlacementIsolated, OnMars: true}},
		},
		Discounts: &card.Discounts{Card: 1},
	},

	// Flora and fauna.
	{
		Name: "Trees", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 13,
		Tags: []card.Tag{card.TagPlant},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamTemperature, -4)}},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Plant, 3)},
			GainResources:      []card.ResourceAmount{res(card.Plant, 1)},
		},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Grass", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 11,
		Tags: []card.Tag{card.TagPlant},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamTemperature, -16)}},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Plant, 1)},
			GainResources:      []card.ResourceAmount{res(card.Plant, 3)},
		},
	},
	{
		Name: "Bushes", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 10,
		Tags: []card.Tag{card.TagPlant},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamTemperature, -10)}},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Plant, 2)},
			GainResources:      []card.ResourceAmount{res(card.Plant, 2)},
		},
	},
	{
		Name: "Farming", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 16,
		Tags: []card.Tag{card.TagPlant},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamTemperature, 4)}},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{mc(2), res(card.Plant, 2)},
			GainResources:      []card.ResourceAmount{res(card.Plant, 2)},
		},
		VictoryPoints: card.Fixed(2),
	},
	{
		Name: "Kelp Farming", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 17,
		Tags: []card.Tag{card.TagPlant},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamOceans, 6)}},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{mc(2), res(card.Plant, 3)},
			GainResources:      []card.ResourceAmount{res(card.Plant, 2)},
		},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Algae", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 10,
		Tags: []card.Tag{card.TagPlant},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamOceans, 5)}},
		Play: card.Action{
			IncreaseProduction: []card.ResourceAmount{res(card.Plant, 2)},
			GainResources:      []card.ResourceAmount{res(card.Plant, 1)},
		},
	},
	{
		Name: "Greenhouses", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 6,
		Tags: []card.Tag{card.TagPlant, card.TagBuilding},
		Play: card.Action{GainResources: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Variable(card.VarCitiesOnMars)}}},
	},
	{
		Name: "Arctic Algae", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 12,
		Tags: []card.Tag{card.TagPlant},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{maxParam(card.ParamTemperature, -12)}},
		Play: card.Action{GainResources: []card.ResourceAmount{res(card.Plant, 1)}},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTilePlaced, TileTypes: []board.TileType{board.TileOcean}, AnyPlayer: true},
			Action:    card.Action{GainResources: []card.ResourceAmount{res(card.Plant, 2)}},
		},
	},
	{
		Name: "Livestock", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 13,
		Tags: []card.Tag{card.TagAnimal},
		Stores: card.Animal,
		Requirements: card.Requirements{
			Parameters: []card.ParamRequirement{minParam(card.ParamOxygen, 9)},
			Production: []card.ResourceAmount{res(card.Plant, 1)},
		},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{res(card.Plant, 1)},
			IncreaseProduction: []card.ResourceAmount{mc(2)},
		},
		Action:        &card.CardAction{Effect: card.Action{GainResources: []card.ResourceAmount{onThisCard(card.Animal, 1)}}},
		VictoryPoints: card.Variable(card.VarResourcesOnCard),
	},
	{
		Name: "Birds", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 10,
		Tags: []card.Tag{card.TagAnimal},
		Stores: card.Animal,
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamOxygen, 13)}},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Fixed(2), Target: card.TargetAnyPlayer}},
		},
		Action:        &card.CardAction{Effect: card.Action{GainResources: []card.ResourceAmount{onThisCard(card.Animal, 1)}}},
		VictoryPoints: card.Variable(card.VarResourcesOnCard),
	},
	{
		Name: "Fish", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 9,
		Tags: []card.Tag{card.TagAnimal},
		Stores: card.Animal,
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamTemperature, 2)}},
		Play: card.Action{
			DecreaseProduction: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Fixed(1), Target: card.TargetAnyPlayer}},
		},
		Action:        &card.CardAction{Effect: card.Action{GainResources: []card.ResourceAmount{onThisCard(card.Animal, 1)}}},
		VictoryPoints: card.Variable(card.VarResourcesOnCard),
	},
	{
		Name: "Pets", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 10,
		Tags: []card.Tag{card.TagEarth, card.TagAnimal},
		Stores: card.Animal,
		Play:   card.Action{GainResources: []card.ResourceAmount{onThisCard(card.Animal, 1)}},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTilePlaced, TileTypes: []board.TileType{board.TileCity}, AnyPlayer: true},
			Action:    card.Action{GainResources: []card.ResourceAmount{onThisCard(card.Animal, 1)}},
		},
		VictoryPoints: card.Variable(card.VarHalfResourcesOnCard),
	},
	{
		Name: "Herbivores", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 12,
		Tags: []card.Tag{card.TagAnimal},
		Stores: card.Animal,
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamOxygen, 8)}},
		Play: card.Action{
			GainResources:      []card.ResourceAmount{onThisCard(card.Animal, 1)},
			DecreaseProduction: []card.ResourceAmount{{Resource: card.Plant, Amount: card.Fixed(1), Target: card.TargetAnyPlayer}},
		},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTilePlaced, TileTypes: []board.TileType{board.TileGreenery}},
			Action:    card.Action{GainResources: []card.ResourceAmount{onThisCard(card.Animal, 1)}},
		},
		VictoryPoints: card.Variable(card.VarHalfResourcesOnCard),
	},
	{
		Name: "Tardigrades", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 4,
		Tags: []card.Tag{card.TagMicrobe},
		Stores: card.Microbe,
		Action: &card.CardAction{Effect: card.Action{GainResources: []card.ResourceAmount{onThisCard(card.Microbe, 1)}}},
		VictoryPoints: card.Variable(card.VarThirdResourcesOnCard),
	},
	{
		Name: "GHG Producing Bacteria", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 8,
		Tags: []card.Tag{card.TagScience, card.TagMicrobe},
		Stores: card.Microbe,
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamOxygen, 4)}},
		Action: &card.CardAction{Effect: card.Action{
			Choice: []card.Action{
				{GainResources: []card.ResourceAmount{onThisCard(card.Microbe, 1)}},
				{
					RemoveResources: []card.ResourceAmount{onThisCard(card.Microbe, 2)},
					RaiseParameters: []card.ParameterDelta{raise(card.ParamTemperature, 1)},
				},
			},
		}},
	},
	{
		Name: "Regolith Eaters", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 13,
		Tags: []card.Tag{card.TagScience, card.TagMicrobe},
		Stores: card.Microbe,
		Action: &card.CardAction{Effect: card.Action{
			Choice: []card.Action{
				{GainResources: []card.ResourceAmount{onThisCard(card.Microbe, 1)}},
				{
					RemoveResources: []card.ResourceAmount{onThisCard(card.Microbe, 2)},
					RaiseParameters: []card.ParameterDelta{raise(card.ParamOxygen, 1)},
				},
			},
		}},
	},
	{
		Name: "Symbiotic Fungus", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 4,
		Tags: []card.Tag{card.TagMicrobe},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamTemperature, -14)}},
		Action: &card.CardAction{Effect: card.Action{
			GainResources: []card.ResourceAmount{{Resource: card.Microbe, Amount: card.Fixed(1), Target: card.TargetAnyCard}},
		}},
	},
	{
		Name: "Extreme-Cold Fungus", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 13,
		Tags: []card.Tag{card.TagMicrobe},
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{maxParam(card.ParamTemperature, -10)}},
		Action: &card.CardAction{Effect: card.Action{
			Choice: []card.Action{
				{GainResources: []card.ResourceAmount{res(card.Plant, 1)}},
				{GainResources: []card.ResourceAmount{{Resource: card.Microbe, Amount: card.Fixed(2), Target: card.TargetAnyCard}}},
			},
		}},
	},

	// Active economy and science.
	{
		Name: "Martian Rails", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 13,
		Tags: []card.Tag{card.TagBuilding},
		Action: &card.CardAction{
			Cost:   card.Action{RemoveResources: []card.ResourceAmount{res(card.Energy, 1)}},
			Effect: card.Action{GainResources: []card.ResourceAmount{{Resource: card.Megacredit, Amount: card.Variable(card.VarCitiesOnMars)}}},
		},
	},
	{
		Name: "AI Central", Type: card.TypeActive, Deck: card.DeckCorporate, Cost: 21,
		Tags: []card.Tag{card.TagScience, card.TagBuilding},
		Requirements: card.Requirements{
			Tags:       map[card.Tag]int{card.TagScience: 3},
			Production: []card.ResourceAmount{res(card.Energy, 1)},
		},
		Play:   card.Action{DecreaseProduction: []card.ResourceAmount{res(card.Energy, 1)}},
		Action: &card.CardAction{Effect: card.Action{DrawCards: card.Fixed(2)}},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Development Center", Type: card.TypeActive, Deck: card.DeckCorporate, Cost: 11,
		Tags: []card.Tag{card.TagScience, card.TagBuilding},
		Action: &card.CardAction{
			Cost:   card.Action{RemoveResources: []card.ResourceAmount{res(card.Energy, 1)}},
			Effect: card.Action{DrawCards: card.Fixed(1)},
		},
	},
	{
		Name: "Restricted Area", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 11,
		Tags: []card.Tag{card.TagScience},
		Play: card.Action{PlaceTiles: []card.TilePlacement{{TileType: board.TileSpecial, Placement: board.PlacementIsolated, OnMars: true}}},
		Action: &card.CardAction{
			Cost:   card.Action{RemoveResources: []card.ResourceAmount{mc(2)}},
			Effect: card.Action{DrawCards: card.Fixed(1)},
		},
	},
	{
		Name: "Inventors' Guild", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 9,
		Tags: []card.Tag{card.TagScience},
		Action: &card.CardAction{Effect: card.Action{LookAtCards: &card.LookAtCards{Count: 1, Keep: 1}}},
	},
	{
		Name: "Business Network", Type: card.TypeActive, Deck: card.DeckCorporate, Cost: 4,
		Tags: []card.Tag{card.TagEarth},
		Play: card.Action{DecreaseProduction: []card.ResourceAmount{mc(1)}},
		Action: &card.CardAction{Effect: card.Action{LookAtCards: &card.LookAtCards{Count: 1, Keep: 1}}},
	},
	{
		Name: "Power Infrastructure", Type: card.TypeActive, Deck: card.DeckCorporate, Cost: 4,
		Tags: []card.Tag{card.TagPower, card.TagBuilding},
		Action: &card.CardAction{
			Cost:   card.Action{RemoveResources: []card.ResourceAmount{{Resource: card.Energy, Amount: card.Variable(card.VarUserChoice)}}},
			Effect: card.Action{GainResources: []card.ResourceAmount{{Resource: card.Megacredit, Amount: card.Variable(card.VarBasedOnUserChoice)}}},
		},
	},
	{
		Name: "Caretaker Contract", Type: card.TypeActive, Deck: card.DeckCorporate, Cost: 3,
		Requirements: card.Requirements{Parameters: []card.ParamRequirement{minParam(card.ParamTemperature, 0)}},
		Action: &card.CardAction{
			Cost:   card.Action{RemoveResources: []card.ResourceAmount{res(card.Heat, 8)}},
			Effect: card.Action{TerraformRating: card.Fixed(1)},
		},
	},
	{
		Name: "Water Import From Europa", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 25,
		Tags: []card.Tag{card.TagJovian, card.TagSpace},
		Action: &card.CardAction{
			Cost:   card.Action{RemoveResources: []card.ResourceAmount{mc(12)}},
			Effect: card.Action{PlaceTiles: []card.TilePlacement{card.OceanPlacement()}},
		},
		VictoryPoints: card.PerTag(card.TagJovian, 1),
	},
	{
		Name: "Robotic Workforce", Type: card.TypeAutomated, Deck: card.DeckBasic, Cost: 9,
		Tags: []card.Tag{card.TagScience},
		Play: card.Action{DuplicateProduction: card.TagBuilding},
	},

	// Passive economy.
	{
		Name: "Earth Catapult", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 23,
		Tags: []card.Tag{card.TagEarth},
		Discounts: &card.Discounts{Card: 2},
		VictoryPoints: card.Fixed(2),
	},
	{
		Name: "Space Station", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 10,
		Tags: []card.Tag{card.TagSpace},
		Discounts: &card.Discounts{Tags: map[card.Tag]int{card.TagSpace: 2}},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Advanced Alloys", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 9,
		Tags: []card.Tag{card.TagScience},
		ExchangeRateBonus: map[card.Resource]int{card.Steel: 1, card.Titanium: 1},
	},
	{
		Name: "Rover Construction", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 8,
		Tags: []card.Tag{card.TagBuilding},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTilePlaced, TileTypes: []board.TileType{board.TileCity}, AnyPlayer: true},
			Action:    card.Action{GainResources: []card.ResourceAmount{res(card.Megacredit, 2)}},
		},
		VictoryPoints: card.Fixed(1),
	},
	{
		Name: "Optimal Aerobraking", Type: card.TypeActive, Deck: card.DeckBasic, Cost: 7,
		Tags: []card.Tag{card.TagSpace},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondTagsPlayed, Tags: []card.Tag{card.TagSpace, card.TagEvent}, AllTags: true},
			Action: card.Action{GainResources: []card.ResourceAmount{
				res(card.Megacredit, 3),
				res(card.Heat, 3),
			}},
		},
	},
	{
		Name: "Standard Technology", Type: card.TypeActive, Deck: card.DeckCorporate, Cost: 6,
		Tags: []card.Tag{card.TagScience},
		Effect: &card.Effect{
			Condition: card.Condition{Kind: card.CondStandardProjectPaid},
			Action:    card.Action{GainResources: []card.ResourceAmount{res(card.Megacredit, 3)}},
		},
	},
}
