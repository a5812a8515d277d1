package stand

import (
	"fmt"
	"strings"
)

// StatusLine renders the current metrics on a single line
func (s *Stand) StatusLine() string {
	return fmt.Sprintf(
		"Year: %d | QMD: %.1f | TPA: %d | BA: %.1f | Carbon: %.1f MT/ac | CI: %.1f | Fire Risk: %s | SPB Risk: %s",
		s.year, s.qmd, s.tpa, s.ba, s.carbon, s.ci, s.fireRisk, s.beetleRisk,
	)
}

// Summary renders the final stand conditions and the event history
func (s *Stand) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Final Stand: QMD: %.1f, TPA: %d, BA: %.1f, Carbon: %.1f MT/ac, CI: %.1f, Fire Risk: %s, SPB Risk: %s\n\n",
		s.qmd, s.tpa, s.ba, s.carbon, s.ci, s.fireRisk, s.beetleRisk,
	)

	if len(s.events) > 0 {
		b.WriteString("Events during your management:\n")
		for _, ev := range s.events {
			fmt.Fprintf(&b, "  Year %d: %s\n", ev.Year, ev.Description)
		}
	} else {
		b.WriteString("No major events occurred during your management.\n")
	}

	if s.pineSnakesColonized {
		b.WriteString("\nPine snakes are utilizing this stand!\n")
	}

	return b.String()
}
