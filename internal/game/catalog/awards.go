package catalog

import "github.com/openmars/tfm-server-go/internal/game/card"

// AwardCosts gives the escalating funding cost by number of awards already
// funded.
var AwardCosts = []int{8, 14, 20}

// MaxFundedAwards caps how many awards a game may see funded.
const MaxFundedAwards = 3

var awardDefs = []card.Award{
	{Name: "Landlord", Criterion: card.MeasureTilesOwned},
	{Name: "Banker", Criterion: card.MeasureMegacreditProduction},
	{Name: "Scientist", Criterion: card.MeasureScienceTags},
	{Name: "Thermalist", Criterion: card.MeasureHeat},
	{Name: "Miner", Criterion: card.MeasureSteelTitanium},
}
