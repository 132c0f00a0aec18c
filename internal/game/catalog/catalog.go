// Package catalog holds the process-wide, read-only content tables: card,
// corporation, standard project, milestone and award definitions. Entries
// are built once and shared by every game; per-game mutable state never
// lives here.
package catalog

import (
	"fmt"
	"sync"

	"github.com/openmars/tfm-server-go/internal/game/card"
)

// PlaceholderCardName is the sentinel a deserializer falls back to when a
// serialized card name cannot be resolved. It is a real catalog entry so
// rehydrated states stay internally consistent.
const PlaceholderCardName = "Unknown Card"

var (
	once      sync.Once
	cards     map[string]*card.Card
	corps     map[string]*card.Card
	projects  []card.StandardProject
	milestone []card.Milestone
	awards    []card.Award
	deckOrder []string
)

func build() {
	cards = make(map[string]*card.Card)
	corps = make(map[string]*card.Card)

	placeholder := &card.Card{Name: PlaceholderCardName, Type: card.TypeAutomated, Deck: card.DeckBasic}
	cards[PlaceholderCardName] = placeholder

	for i := range projectCards {
		c := &projectCards[i]
		if _, dup := cards[c.Name]; dup {
			panic(fmt.Sprintf("catalog: duplicate card %q", c.Name))
		}
		cards[c.Name] = c
		deckOrder = append(deckOrder, c.Name)
	}
	for i := range corporationCards {
		c := &corporationCards[i]
		if _, dup := corps[c.Name]; dup {
			panic(fmt.Sprintf("catalog: duplicate corporation %q", c.Name))
		}
		corps[c.Name] = c
	}
	projects = standardProjects
	milestone = milestones
	awards = awardDefs
}

// GetCard looks up a project card by name.
func GetCard(name string) (*card.Card, bool) {
	once.Do(build)
	c, ok := cards[name]
	return c, ok
}

// MustCard looks up a card that is known to exist; a miss is a
// content-definition bug.
func MustCard(name string) *card.Card {
	c, ok := GetCard(name)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown card %q", name))
	}
	return c
}

// GetCorporation looks up a corporation by name.
func GetCorporation(name string) (*card.Card, bool) {
	once.Do(build)
	c, ok := corps[name]
	return c, ok
}

// Placeholder returns the unknown-card sentinel entry.
func Placeholder() *card.Card {
	once.Do(build)
	return cards[PlaceholderCardName]
}

// DeckNames returns every project card name in definition order. The
// engine shuffles a copy of this list into each game's deck.
func DeckNames() []string {
	once.Do(build)
	out := make([]string, len(deckOrder))
	copy(out, deckOrder)
	return out
}

// CorporationNames returns every corporation name.
func CorporationNames() []string {
	once.Do(build)
	out := make([]string, 0, len(corps))
	for i := range corporationCards {
		out = append(out, corporationCards[i].Name)
	}
	return out
}

// StandardProjects returns the standard project table.
func StandardProjects() []card.StandardProject {
	once.Do(build)
	return projects
}

// GetStandardProject looks up a standard project by name.
func GetStandardProject(name string) (*card.StandardProject, bool) {
	once.Do(build)
	for i := range projects {
		if projects[i].Name == name {
			return &projects[i], true
		}
	}
	return nil, false
}

// Milestones returns the milestone table.
func Milestones() []card.Milestone {
	once.Do(build)
	return milestone
}

// GetMilestone looks up a milestone by name.
func GetMilestone(name string) (*card.Milestone, bool) {
	once.Do(build)
	for i := range milestone {
		if milestone[i].Name == name {
			return &milestone[i], true
		}
	}
	return nil, false
}

// Awards returns the award table.
func Awards() []card.Award {
	once.Do(build)
	return awards
}

// GetAward looks up an award by name.
func GetAward(name string) (*card.Award, bool) {
	once.Do(build)
	for i := range awards {
		if awards[i].Name == name {
			return &awards[i], true
		}
	}
	return nil, false
}
