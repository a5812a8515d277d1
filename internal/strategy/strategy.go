// Package strategy holds scripted management policies and compares them
// over many seeded games.
package strategy

import (
	"fmt"
	"strings"

	"github.com/napolitain/pitch-pine-trail/internal/game"
	"github.com/napolitain/pitch-pine-trail/internal/models"
)

// Strategy is a named management policy
type Strategy struct {
	Name        string
	Description string
	Choose      game.Policy
}

// String returns the strategy name
func (s Strategy) String() string { return s.Name }

// Fixed always takes the same action
func Fixed(name string, a models.Action) Strategy {
	return Strategy{
		Name:        name,
		Description: fmt.Sprintf("%s every decade", a.Label()),
		Choose:      func(models.Status) models.Action { return a },
	}
}

// Cycle repeats a sequence of actions, one per decade
func Cycle(name string, actions ...models.Action) Strategy {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label()
	}
	return Strategy{
		Name:        name,
		Description: strings.Join(labels, ", then "),
		Choose: func(st models.Status) models.Action {
			return actions[(st.Year/10)%len(actions)]
		},
	}
}

// BurnWhenHigh burns whenever fire risk is High and otherwise waits
func BurnWhenHigh() Strategy {
	return Strategy{
		Name:        "burn-cycle",
		Description: "Prescribed burn whenever fire risk is High",
		Choose: func(st models.Status) models.Action {
			if st.FireRisk == models.RiskHigh {
				return models.PrescribedBurn
			}
			return models.NoAction
		},
	}
}

// Adaptive reacts to both risk levels, fire first
func Adaptive() Strategy {
	return Strategy{
		Name:        "adaptive",
		Description: "Burn on High fire risk, thin lightly on High beetle risk",
		Choose: func(st models.Status) models.Action {
			switch {
			case st.FireRisk == models.RiskHigh:
				return models.PrescribedBurn
			case st.BeetleRisk == models.RiskHigh:
				return models.LightThin
			default:
				return models.NoAction
			}
		},
	}
}

// BuiltIn returns the built-in strategies in a deterministic order
func BuiltIn() []Strategy {
	return []Strategy{
		Fixed("hands-off", models.NoAction),
		Fixed("light-thin", models.LightThin),
		Fixed("heavy-thin", models.HeavyThin),
		BurnWhenHigh(),
		Adaptive(),
		Cycle("rotation", models.LightThin, models.NoAction, models.PrescribedBurn, models.NoAction),
	}
}

// ByName looks up a built-in strategy
func ByName(name string) (Strategy, error) {
	for _, s := range BuiltIn() {
		if s.Name == name {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("unknown strategy: %s", name)
}
