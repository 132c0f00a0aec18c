// Package card defines the shared vocabulary spoken by the content catalog
// and the rules engine: resources, tags, global parameters, deferred
// amounts, action batches and trigger conditions. Everything here is
// declarative data; no card carries executable code.
package card

// Resource identifies a resource kind, either a player stock (megacredits,
// steel, ...) or a resource stored on a played card (microbes, animals, ...).
type Resource string

const (
	Megacredit Resource = "MEGACREDIT"
	Steel      Resource = "STEEL"
	Titanium   Resource = "TITANIUM"
	Plant      Resource = "PLANT"
	Energy     Resource = "ENERGY"
	Heat       Resource = "HEAT"

	// Card-stored resources.
	Microbe Resource = "MICROBE"
	Animal  Resource = "ANIMAL"
	Science Resource = "SCIENCE"
	Fighter Resource = "FIGHTER"
)

// PlayerResources are the resource kinds every player's ledger tracks.
var PlayerResources = []Resource{Megacredit, Steel, Titanium, Plant, Energy, Heat}

// Storable reports whether the resource lives on a played card rather than
// in the player's ledger.
func (r Resource) Storable() bool {
	switch r {
	case Microbe, Animal, Science, Fighter:
		return true
	}
	return false
}

// ProductionFloor returns the lowest value the resource's production line
// may reach. Megacredit production alone may go negative.
func (r Resource) ProductionFloor() int {
	if r == Megacredit {
		return -5
	}
	return 0
}

// Default exchange rates for paying card costs with steel or titanium.
const (
	DefaultSteelValue    = 2
	DefaultTitaniumValue = 3
)
