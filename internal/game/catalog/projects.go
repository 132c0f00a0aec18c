package catalog

import "github.com/openmars/tfm-server-go/internal/game/card"

// Standard project names.
const (
	ProjectSellPatents = "Sell Patents"
	ProjectPowerPlant  = "Power Plant: SP"
	ProjectAsteroid    = "Asteroid: SP"
	ProjectAquifer     = "Aquifer"
	ProjectGreenery    = "Greenery"
	ProjectCity        = "City"
)

var standardProjects = []card.StandardProject{
	{
		Name: ProjectSellPatents, Cost: 0,
		Action: card.Action{
			DiscardCards:  card.Variable(card.VarUserChoice),
			GainResources: []card.ResourceAmount{{Resource: card.Megacredit, Amount: card.Variable(card.VarBasedOnUserChoice)}},
		},
	},
	{
		Name: ProjectPowerPlant, Cost: 11,
		Action: card.Action{IncreaseProduction: []card.ResourceAmount{res(card.Energy, 1)}},
	},
	{
		Name: ProjectAsteroid, Cost: 14,
		Action: card.Action{RaiseParameters: []card.ParameterDelta{raise(card.ParamTemperature, 1)}},
	},
	{
		Name: ProjectAquifer, Cost: 18,
		Action: card.Action{PlaceTiles: []card.TilePlacement{card.OceanPlacement()}},
	},
	{
		Name: ProjectGreenery, Cost: 23,
		Action: card.Action{PlaceTiles: []card.TilePlacement{card.GreeneryPlacement()}},
	},
	{
		Name: ProjectCity, Cost: 25,
		Action: card.Action{
			IncreaseProduction: []card.ResourceAmount{mc(1)},
			PlaceTiles:         []card.TilePlacement{card.CityPlacement()},
		},
	},
}
