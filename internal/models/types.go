package models

import (
	"fmt"
	"strings"
)

// Action represents a management action the player can take for one decade
type Action string

const (
	NoAction       Action = "none"
	LightThin      Action = "thin_light"
	HeavyThin      Action = "thin_heavy"
	PrescribedBurn Action = "burn"
)

// AllActions returns all actions in menu order
func AllActions() []Action {
	return []Action{NoAction, LightThin, HeavyThin, PrescribedBurn}
}

// Code returns the menu key for the action ("1".."4")
func (a Action) Code() string {
	switch a {
	case LightThin:
		return "2"
	case HeavyThin:
		return "3"
	case PrescribedBurn:
		return "4"
	default:
		return "1"
	}
}

// Label returns the human-readable menu label
func (a Action) Label() string {
	switch a {
	case LightThin:
		return "Thin lightly"
	case HeavyThin:
		return "Thin heavily"
	case PrescribedBurn:
		return "Prescribed burn"
	default:
		return "Do nothing"
	}
}

// IsDisturbance reports whether the action opens up the canopy
func (a Action) IsDisturbance() bool {
	return a == LightThin || a == HeavyThin || a == PrescribedBurn
}

// ParseAction maps a menu code or action name to an Action.
// Anything unrecognised is treated as NoAction.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", string(LightThin), "light":
		return LightThin
	case "3", string(HeavyThin), "heavy":
		return HeavyThin
	case "4", string(PrescribedBurn), "fire":
		return PrescribedBurn
	default:
		return NoAction
	}
}

// ParseActionList parses a comma separated list of action codes.
// Unlike ParseAction it is strict, since it is fed from the command line.
func ParseActionList(s string) ([]Action, error) {
	var actions []Action
	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		a := ParseAction(field)
		if a == NoAction && field != "1" && !strings.EqualFold(field, string(NoAction)) {
			return nil, fmt.Errorf("action %d: unknown action %q", i+1, field)
		}
		actions = append(actions, a)
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("no actions given")
	}
	return actions, nil
}

// RiskLevel is a categorical risk derived from stand metrics
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// EventKind identifies a random disturbance
type EventKind string

const (
	EventWildfire       EventKind = "wildfire"
	EventBeetleOutbreak EventKind = "spb_outbreak"
)

// Event is a log entry for a disturbance that hit the stand
type Event struct {
	Year        int
	Kind        EventKind
	Description string
}

// Status is a read-only snapshot of the stand metrics
type Status struct {
	Year       int
	QMD        float64 // inches
	TPA        int     // trees per acre
	BA         float64 // sq ft/acre
	Carbon     float64 // MT/acre
	CI         float64 // crowning index, mph
	FireRisk   RiskLevel
	BeetleRisk RiskLevel
}

// Outcome is the state of a game after a turn
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeCompleted
	OutcomeWildfire
	OutcomeBeetleOutbreak
	OutcomeLowBasalArea
)

// String returns a string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeCompleted:
		return "completed"
	case OutcomeWildfire:
		return "wildfire"
	case OutcomeBeetleOutbreak:
		return "spb_outbreak"
	case OutcomeLowBasalArea:
		return "low_basal_area"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the game ends with this outcome
func (o Outcome) IsTerminal() bool {
	return o != OutcomeContinue
}

// IsLoss reports whether the outcome is a game over rather than a finished rotation
func (o Outcome) IsLoss() bool {
	return o == OutcomeWildfire || o == OutcomeBeetleOutbreak || o == OutcomeLowBasalArea
}
