package card

// Parameter is one of the global terraforming parameters.
type Parameter string

const (
	ParamTemperature Parameter = "TEMPERATURE"
	ParamOxygen      Parameter = "OXYGEN"
	ParamOceans      Parameter = "OCEANS"
	ParamVenus       Parameter = "VENUS"
)

// Step returns the number of units one raise-step moves the parameter.
func (p Parameter) Step() int {
	switch p {
	case ParamTemperature, ParamVenus:
		return 2
	default:
		return 1
	}
}

// Range returns the parameter's start and terraformed-end values.
func (p Parameter) Range() (min, max int) {
	switch p {
	case ParamTemperature:
		return -30, 8
	case ParamOxygen:
		return 0, 14
	case ParamOceans:
		return 0, 9
	case ParamVenus:
		return 0, 30
	default:
		return 0, 0
	}
}

// ParameterBonus is a one-shot reward granted to the player whose raise
// crosses the threshold.
type ParameterBonus struct {
	Threshold int
	Action    Action
}

// BonusesFor returns the threshold bonuses attached to a parameter, in
// ascending threshold order.
func BonusesFor(p Parameter) []ParameterBonus {
	switch p {
	case ParamTemperature:
		return []ParameterBonus{
			{Threshold: -24, Action: Action{IncreaseProduction: []ResourceAmount{{Resource: Heat, Amount: Fixed(1)}}}},
			{Threshold: -20, Action: Action{IncreaseProduction: []ResourceAmount{{Resource: Heat, Amount: Fixed(1)}}}},
			{Threshold: 0, Action: Action{PlaceTiles: []TilePlacement{OceanPlacement()}}},
		}
	case ParamOxygen:
		return []ParameterBonus{
			{Threshold: 8, Action: Action{RaiseParameters: []ParameterDelta{{Parameter: ParamTemperature, Steps: Fixed(1)}}}},
		}
	case ParamVenus:
		return []ParameterBonus{
			{Threshold: 8, Action: Action{DrawCards: Fixed(1)}},
			{Threshold: 16, Action: Action{TerraformRating: Fixed(1)}},
		}
	default:
		return nil
	}
}
