package stand

import (
	"math"

	"github.com/napolitain/pitch-pine-trail/internal/models"
)

const (
	wildfireDescription = "Wildfire occurred!"
	beetleDescription   = "SPB outbreak!"
)

// ResolveEvent rolls for random disturbances after a management turn.
//
// The wildfire draw is always taken; the beetle draw only happens when no
// wildfire fired, so at most one disturbance hits the stand per call. A
// separate roll may then bring pine snakes into a stand whose basal area sits
// inside the habitat band. The disturbance that fired, if any, is appended to
// the log and returned.
func (s *Stand) ResolveEvent() *models.Event {
	p := s.params
	s.catastrophicWildfire = false

	var ev *models.Event

	if s.rng.Float64() < p.WildfireProbability && s.fireRisk == models.RiskHigh {
		s.carbon = round(clamp(s.carbon*p.WildfireCarbon, p.CarbonMin, p.CarbonMax), 1)
		s.tpa = atLeastOne(math.Floor(float64(s.tpa) * p.WildfireTPA))
		s.ci = clamp(s.ci+p.WildfireCIDelta, p.CIMin, p.CIMax)
		s.catastrophicWildfire = true
		ev = s.record(models.EventWildfire, wildfireDescription)
	}

	if ev == nil && s.rng.Float64() < p.BeetleProbability && s.beetleRisk == models.RiskHigh {
		s.tpa = atLeastOne(math.Floor(float64(s.tpa) * p.BeetleTPA))
		ev = s.record(models.EventBeetleOutbreak, beetleDescription)
	}

	if ev != nil {
		s.recompute()
		s.logger.Debug("disturbance",
			"year", ev.Year, "kind", ev.Kind,
			"tpa", s.tpa, "ba", s.ba, "carbon", s.carbon, "ci", s.ci,
		)
	}

	s.checkColonization()

	return ev
}

// checkColonization latches pine snake use of the stand
func (s *Stand) checkColonization() {
	p := s.params
	if s.pineSnakesColonized || s.ba < p.SnakeMinBA || s.ba > p.SnakeMaxBA {
		return
	}
	if s.rng.Float64() < p.SnakeProbability {
		s.pineSnakesColonized = true
		s.logger.Debug("pine snakes colonized the stand", "year", s.year, "ba", s.ba)
	}
}

func (s *Stand) record(kind models.EventKind, description string) *models.Event {
	s.events = append(s.events, models.Event{Year: s.year, Kind: kind, Description: description})
	ev := s.events[len(s.events)-1]
	return &ev
}
