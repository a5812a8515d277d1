package strategy

import (
	"github.com/charmbracelet/log"

	"github.com/napolitain/pitch-pine-trail/internal/game"
	"github.com/napolitain/pitch-pine-trail/internal/models"
)

// Result aggregates the games played by one strategy
type Result struct {
	Strategy Strategy

	Runs         int
	Completed    int
	Wildfires    int
	BeetleLosses int
	LowBALosses  int
	Colonized    int

	MeanCarbon float64 // final carbon, all runs
	MeanBA     float64 // final basal area, all runs
	MeanYears  float64 // years survived
}

// CompletionRate returns the share of games that reached the final year
func (r Result) CompletionRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Completed) / float64(r.Runs)
}

// SnakeRate returns the share of games where pine snakes colonized the stand
func (r Result) SnakeRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Colonized) / float64(r.Runs)
}

// better reports whether r beats other: more completions, then more carbon
func (r Result) better(other Result) bool {
	if r.Completed != other.Completed {
		return r.Completed > other.Completed
	}
	return r.MeanCarbon > other.MeanCarbon
}

// Evaluate plays runs games with strategy s, seeds firstSeed..firstSeed+runs-1
func Evaluate(params models.Params, s Strategy, firstSeed int64, runs int) Result {
	res := Result{Strategy: s}

	var carbon, ba, years float64
	for i := 0; i < runs; i++ {
		session := game.NewSession(params, firstSeed+int64(i), nil)
		session.Run(s.Choose)

		res.Runs++
		switch session.Outcome() {
		case models.OutcomeCompleted:
			res.Completed++
		case models.OutcomeWildfire:
			res.Wildfires++
		case models.OutcomeBeetleOutbreak:
			res.BeetleLosses++
		case models.OutcomeLowBasalArea:
			res.LowBALosses++
		}
		if session.PineSnakesColonized() {
			res.Colonized++
		}

		st := session.Status()
		carbon += st.Carbon
		ba += st.BA
		years += float64(st.Year)
	}

	if res.Runs > 0 {
		n := float64(res.Runs)
		res.MeanCarbon = carbon / n
		res.MeanBA = ba / n
		res.MeanYears = years / n
	}
	return res
}

// CompareAll evaluates every strategy on the same seeds and returns the best
// one together with all results, in input order
func CompareAll(
	params models.Params,
	strategies []Strategy,
	firstSeed int64,
	runs int,
	logger *log.Logger,
) (Result, []Result) {
	var best Result
	results := make([]Result, 0, len(strategies))

	for i, s := range strategies {
		res := Evaluate(params, s, firstSeed, runs)
		results = append(results, res)

		if logger != nil {
			logger.Debug("strategy evaluated",
				"strategy", s.Name, "runs", res.Runs,
				"completed", res.Completed, "mean_carbon", res.MeanCarbon,
			)
		}

		if i == 0 || res.better(best) {
			best = res
		}
	}

	return best, results
}
