package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWildTagMatching(t *testing.T) {
	tests := []struct {
		tag  Tag
		want Tag
		ok   bool
	}{
		{TagScience, TagScience, true},
		{TagScience, TagSpace, false},
		{TagWild, TagScience, true},
		{TagWild, TagJovian, true},
		{TagWild, TagEvent, false},
		{TagEvent, TagEvent, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.tag.Matches(tt.want), "%s vs %s", tt.tag, tt.want)
	}
}

func TestCardTagCounting(t *testing.T) {
	c := &Card{Tags: []Tag{TagSpace, TagSpace, TagWild}}
	assert.True(t, c.HasTag(TagSpace))
	assert.Equal(t, 3, c.CountTag(TagSpace))
	assert.Equal(t, 1, c.CountTag(TagScience))
	assert.False(t, c.HasTag(TagEvent))
}

func TestParameterSteps(t *testing.T) {
	assert.Equal(t, 2, ParamTemperature.Step())
	assert.Equal(t, 1, ParamOxygen.Step())
	assert.Equal(t, 1, ParamOceans.Step())
	assert.Equal(t, 2, ParamVenus.Step())
}

func TestParameterRanges(t *testing.T) {
	min, max := ParamTemperature.Range()
	assert.Equal(t, -30, min)
	assert.Equal(t, 8, max)

	min, max = ParamOxygen.Range()
	assert.Equal(t, 0, min)
	assert.Equal(t, 14, max)

	min, max = ParamOceans.Range()
	assert.Equal(t, 0, min)
	assert.Equal(t, 9, max)
}

func TestParameterBonuses(t *testing.T) {
	temp := BonusesFor(ParamTemperature)
	assert.Len(t, temp, 3)

	oxygen := BonusesFor(ParamOxygen)
	assert.Len(t, oxygen, 1)
	assert.Equal(t, 8, oxygen[0].Threshold)
	assert.Len(t, oxygen[0].Action.RaiseParameters, 1)
	assert.Equal(t, ParamTemperature, oxygen[0].Action.RaiseParameters[0].Parameter)

	assert.Empty(t, BonusesFor(ParamOceans))
}

func TestProductionFloor(t *testing.T) {
	assert.Equal(t, -5, Megacredit.ProductionFloor())
	assert.Equal(t, 0, Steel.ProductionFloor())
	assert.Equal(t, 0, Heat.ProductionFloor())
}

func TestStorableResources(t *testing.T) {
	assert.True(t, Microbe.Storable())
	assert.True(t, Animal.Storable())
	assert.False(t, Megacredit.Storable())
	assert.False(t, Plant.Storable())
}

func TestAmountConstructors(t *testing.T) {
	f := Fixed(3)
	assert.Equal(t, AmountLiteral, f.Kind)
	assert.Equal(t, 3, f.Value)
	assert.False(t, f.IsZeroValue())

	pt := PerTag(TagJovian, 1)
	assert.Equal(t, AmountTag, pt.Kind)
	assert.Equal(t, TagJovian, pt.Tag)

	v := Variable(VarCitiesOnMars)
	assert.Equal(t, AmountVar, v.Kind)
	assert.Equal(t, VarCitiesOnMars, v.Variable)

	var zero Amount
	assert.True(t, zero.IsZeroValue())
}

func TestActionIsEmpty(t *testing.T) {
	var a Action
	assert.True(t, a.IsEmpty())

	a.DrawCards = Fixed(1)
	assert.False(t, a.IsEmpty())
}
