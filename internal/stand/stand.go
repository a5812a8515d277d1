// Package stand models a single pitch pine stand managed one decade at a time.
package stand

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/napolitain/pitch-pine-trail/internal/models"
)

// Stand is the mutable state of the simulated forest stand.
// It is owned by a single caller and changed only through ApplyAction,
// ResolveEvent, AdvanceYear and Reset.
type Stand struct {
	params models.Params
	rng    RandomSource
	logger *log.Logger

	year   int
	qmd    float64
	tpa    int
	ba     float64
	carbon float64
	ci     float64

	fireRisk   models.RiskLevel
	beetleRisk models.RiskLevel

	events               []models.Event
	catastrophicWildfire bool
	pineSnakesColonized  bool
	lowBACount           int
}

// Option configures a Stand
type Option func(*Stand)

// WithLogger routes debug output of the stand to logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Stand) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a stand at its initial conditions.
// rng drives every random draw made by ResolveEvent.
func New(params models.Params, rng RandomSource, opts ...Option) *Stand {
	s := &Stand{
		params: params,
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset restores the initial stand. The random source is left as is.
func (s *Stand) Reset() {
	s.year = 0
	s.qmd = s.params.InitialQMD
	s.tpa = s.params.InitialTPA
	s.carbon = clamp(s.params.InitialCarbon, s.params.CarbonMin, s.params.CarbonMax)
	s.ci = clamp(s.params.InitialCI, s.params.CIMin, s.params.CIMax)
	s.events = nil
	s.catastrophicWildfire = false
	s.pineSnakesColonized = false
	s.lowBACount = 0
	s.recompute()
}

// ApplyAction grows the stand for one turn under the given management action.
// Actions without coefficients behave like NoAction.
func (s *Stand) ApplyAction(a models.Action) {
	if _, ok := s.params.Effects[a]; !ok {
		s.logger.Debug("unknown action, treating as none", "action", a)
		a = models.NoAction
	}
	e := s.params.EffectsFor(a)

	// Management removes trees, survivors grow
	tpa := float64(s.tpa) * e.TPAMultiplier
	qmd := s.qmd * math.Pow(1+e.GrowthRate, float64(s.params.YearsPerTurn))

	// Self-thinning ceiling
	if ceiling := MaxTPA(s.params, qmd); tpa > ceiling {
		s.logger.Debug("density capped by self-thinning line", "tpa", tpa, "max_tpa", ceiling)
		tpa = ceiling
	}

	carbon := s.carbon*e.CarbonFactor + e.CarbonDelta

	ci := s.ci
	if a.IsDisturbance() {
		ci += s.params.CIDisturbanceDelta
	} else {
		ci += s.params.CIRecoveryDelta
	}

	s.qmd = round(qmd, 2)
	s.tpa = atLeastOne(math.Round(tpa))
	s.carbon = round(clamp(carbon, s.params.CarbonMin, s.params.CarbonMax), 1)
	s.ci = clamp(ci, s.params.CIMin, s.params.CIMax)
	s.recompute()

	if s.ba < s.params.LowBAThreshold {
		s.lowBACount++
	} else {
		s.lowBACount = 0
	}

	s.logger.Debug("stand updated",
		"year", s.year, "action", a,
		"qmd", s.qmd, "tpa", s.tpa, "ba", s.ba,
		"carbon", s.carbon, "ci", s.ci,
		"fire_risk", s.fireRisk, "spb_risk", s.beetleRisk,
	)
}

// AdvanceYear moves the clock forward by one turn
func (s *Stand) AdvanceYear() {
	s.year += s.params.YearsPerTurn
}

// recompute derives basal area and both risk levels from the stored fields
func (s *Stand) recompute() {
	s.ba = round(BasalArea(s.qmd, s.tpa), 1)
	s.fireRisk = ClassifyFireRisk(s.params, s.ci)
	s.beetleRisk = ClassifyBeetleRisk(s.params, s.ba)
}

// Status returns a snapshot of the current metrics
func (s *Stand) Status() models.Status {
	return models.Status{
		Year:       s.year,
		QMD:        s.qmd,
		TPA:        s.tpa,
		BA:         s.ba,
		Carbon:     s.carbon,
		CI:         s.ci,
		FireRisk:   s.fireRisk,
		BeetleRisk: s.beetleRisk,
	}
}

// Year returns the current simulation year
func (s *Stand) Year() int { return s.year }

// Params returns the coefficient table the stand runs on
func (s *Stand) Params() models.Params { return s.params }

// Events returns a copy of the event log
func (s *Stand) Events() []models.Event {
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// LowBACount returns the number of consecutive turns below the basal area threshold
func (s *Stand) LowBACount() int { return s.lowBACount }

// IsLowBAGameOver reports whether basal area stayed too low for too long
func (s *Stand) IsLowBAGameOver() bool {
	return s.lowBACount >= s.params.LowBATurns
}

// CatastrophicWildfire reports whether the last ResolveEvent burned the stand
func (s *Stand) CatastrophicWildfire() bool { return s.catastrophicWildfire }

// PineSnakesColonized reports whether northern pine snakes use the stand
func (s *Stand) PineSnakesColonized() bool { return s.pineSnakesColonized }

// BasalArea returns square feet of stem cross-section per acre
func BasalArea(qmd float64, tpa int) float64 {
	return models.BasalAreaFactor * float64(tpa) * qmd * qmd
}

// MaxTPA returns the Reineke self-thinning density for a diameter
func MaxTPA(p models.Params, qmd float64) float64 {
	return math.Pow(10, p.ReinekeA-p.ReinekeB*math.Log10(qmd))
}

// ClassifyFireRisk maps a crowning index to a fire risk level.
// A low crowning index means crown fire spreads at low wind speed.
func ClassifyFireRisk(p models.Params, ci float64) models.RiskLevel {
	switch {
	case ci <= p.FireHighCI:
		return models.RiskHigh
	case ci < p.FireModerateCI:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

// ClassifyBeetleRisk maps basal area to a Southern Pine Beetle risk level
func ClassifyBeetleRisk(p models.Params, ba float64) models.RiskLevel {
	switch {
	case ba > p.BeetleHighBA:
		return models.RiskHigh
	case ba > p.BeetleModerateBA:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
