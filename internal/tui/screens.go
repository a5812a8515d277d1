package tui

import (
	"fmt"
	"strings"

	"github.com/napolitain/pitch-pine-trail/internal/models"
)

const (
	introText = "Welcome to Pitch Pine Trail by the New Jersey Forest Service!\n" +
		"Grow your Pitch Pines for 100 years!"

	closingText = "Thank you for playing Pitch Pine Trail!"

	lowBAText = "The forest's growing stock trees have been depleted!\n" +
		"We're supposed to be growing a forest!"

	wildfireText = "A catastrophic wildfire has occurred!\n" +
		"We might get a new stand of pitch pine, but we're trying to grow a mature stand!"

	beetleText = "A Southern Pine Beetle outbreak has devastated your stand!\n" +
		"We're trying to grow a healthy forest!"

	snakeText = "Congratulations! This forest is excellent northern pine snake habitat.\n" +
		"Pine snakes are utilizing the stand!"

	promptText = "What will you do next?"
)

// Definitions is the glossary shown in game and by the CLI
var Definitions = []struct {
	Term    string
	Meaning string
}{
	{"BA (Basal Area)", "The cross-sectional area of all trees per acre, in square feet."},
	{"QMD (Quadratic Mean Diameter)", "A measure of average tree diameter."},
	{"TPA (Trees Per Acre)", "The number of trees per acre."},
	{"Carbon", "Estimated metric tons of carbon stored per acre."},
	{"CI (Crowning Index)", "Wind speed needed to carry a crown fire; the lower it is, the more crowded and flammable the stand."},
	{"Fire Risk", "The likelihood of a wildfire event."},
	{"SPB Risk", "The likelihood of a Southern Pine Beetle outbreak."},
}

// endText returns the message of an end screen
func endText(o models.Outcome) string {
	switch o {
	case models.OutcomeWildfire:
		return wildfireText
	case models.OutcomeBeetleOutbreak:
		return beetleText
	case models.OutcomeLowBasalArea:
		return lowBAText
	default:
		return closingText
	}
}

// statusPanel renders the current metrics with coloured risk levels
func statusPanel(st models.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Year: %d | TPA: %d | Carbon: %.1f MT/ac | CI: %.1f\n", st.Year, st.TPA, st.Carbon, st.CI)
	fmt.Fprintf(&b, "Basal Area (BA): %.1f sqft/acre\n", st.BA)
	fmt.Fprintf(&b, "Quadratic Mean Diameter (QMD): %.1f inches\n", st.QMD)
	fmt.Fprintf(&b, "Fire Risk: %s\n", riskStyle(st.FireRisk).Render(string(st.FireRisk)))
	fmt.Fprintf(&b, "SPB Risk: %s", riskStyle(st.BeetleRisk).Render(string(st.BeetleRisk)))
	return b.String()
}

// actionMenu renders the four management choices
func actionMenu() string {
	var b strings.Builder
	for _, a := range models.AllActions() {
		fmt.Fprintf(&b, "%s %s\n", keyStyle.Render(a.Code()+"."), a.Label())
	}
	return strings.TrimRight(b.String(), "\n")
}

func definitionsText() string {
	var b strings.Builder
	for _, d := range Definitions {
		fmt.Fprintf(&b, "%s: %s\n\n", keyStyle.Render(d.Term), d.Meaning)
	}
	return strings.TrimRight(b.String(), "\n")
}
