package catalog

import "github.com/openmars/tfm-server-go/internal/game/card"

// MilestoneCost is the megacredit cost of claiming any milestone.
const MilestoneCost = 8

// MaxClaimedMilestones caps how many milestones a game may see claimed.
const MaxClaimedMilestones = 3

var milestones = []card.Milestone{
	{Name: "Terraformer", Criterion: card.MeasureTerraformRating, Threshold: 35},
	{Name: "Mayor", Criterion: card.MeasureCitiesOnMars, Threshold: 3},
	{Name: "Gardener", Criterion: card.MeasureGreeneries, Threshold: 3},
	{Name: "Builder", Criterion: card.MeasureBuildingTags, Threshold: 8},
	{Name: "Planner", Criterion: card.MeasureCardsInHand, Threshold: 16},
}
