// Package game drives a stand through a full rotation, one decade per turn,
// and decides when the game is over.
package game

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/napolitain/pitch-pine-trail/internal/models"
	"github.com/napolitain/pitch-pine-trail/internal/stand"
)

// ErrSessionOver is returned when a turn is played after a terminal outcome
var ErrSessionOver = errors.New("game: session is over")

// TurnResult describes what happened during one turn
type TurnResult struct {
	Action         models.Action
	Status         models.Status // after the year advanced
	Event          *models.Event
	Outcome        models.Outcome
	NewlyColonized bool // pine snakes arrived this turn
}

// Policy picks the next action from the current stand status
type Policy func(models.Status) models.Action

// Session owns one stand and the turn loop around it
type Session struct {
	params models.Params
	seed   int64
	logger *log.Logger

	stand   *stand.Stand
	turns   []TurnResult
	outcome models.Outcome
}

// NewSession starts a game with a stand seeded from seed
func NewSession(params models.Params, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		params: params,
		seed:   seed,
		logger: logger,
	}
	s.Reset()
	return s
}

// Reset starts over with a fresh stand and the original seed
func (s *Session) Reset() {
	s.stand = stand.New(s.params, stand.NewRNG(s.seed), stand.WithLogger(s.logger))
	s.turns = nil
	s.outcome = models.OutcomeContinue
	s.logger.Debug("session reset", "seed", s.seed)
}

// Play runs one turn: management, random events, then the clock advances
func (s *Session) Play(a models.Action) (TurnResult, error) {
	if s.outcome.IsTerminal() {
		return TurnResult{}, ErrSessionOver
	}

	snakesBefore := s.stand.PineSnakesColonized()

	s.stand.ApplyAction(a)
	ev := s.stand.ResolveEvent()
	s.stand.AdvanceYear()

	result := TurnResult{
		Action:         a,
		Status:         s.stand.Status(),
		Event:          ev,
		NewlyColonized: !snakesBefore && s.stand.PineSnakesColonized(),
	}
	result.Outcome = s.evaluate(ev)
	s.outcome = result.Outcome
	s.turns = append(s.turns, result)

	s.logger.Info("turn",
		"year", result.Status.Year, "action", a,
		"ba", result.Status.BA, "outcome", result.Outcome,
	)

	return result, nil
}

// evaluate decides the outcome of the turn that just finished.
// Disasters take precedence over the low basal area rule, which takes
// precedence over reaching the end of the rotation.
func (s *Session) evaluate(ev *models.Event) models.Outcome {
	st := s.stand.Status()

	switch {
	case s.stand.CatastrophicWildfire():
		return models.OutcomeWildfire
	case ev != nil && ev.Kind == models.EventBeetleOutbreak:
		// outbreaks only start in high risk stands
		return models.OutcomeBeetleOutbreak
	case s.stand.IsLowBAGameOver():
		return models.OutcomeLowBasalArea
	case st.Year >= s.params.FinalYear:
		return models.OutcomeCompleted
	default:
		return models.OutcomeContinue
	}
}

// Run plays turns chosen by policy until the game ends
func (s *Session) Run(policy Policy) []TurnResult {
	for !s.outcome.IsTerminal() {
		if _, err := s.Play(policy(s.stand.Status())); err != nil {
			break
		}
	}
	return s.Turns()
}

// Status returns the current stand metrics
func (s *Session) Status() models.Status { return s.stand.Status() }

// Outcome returns the outcome of the latest turn
func (s *Session) Outcome() models.Outcome { return s.outcome }

// Over reports whether the game has ended
func (s *Session) Over() bool { return s.outcome.IsTerminal() }

// Seed returns the seed the stand RNG was built from
func (s *Session) Seed() int64 { return s.seed }

// Turns returns a copy of the turn history
func (s *Session) Turns() []TurnResult {
	out := make([]TurnResult, len(s.turns))
	copy(out, s.turns)
	return out
}

// StatusLine returns the one-line status of the stand
func (s *Session) StatusLine() string { return s.stand.StatusLine() }

// Summary returns the end-of-game report
func (s *Session) Summary() string { return s.stand.Summary() }

// Events returns the disturbance log
func (s *Session) Events() []models.Event { return s.stand.Events() }

// PineSnakesColonized reports whether pine snakes use the stand
func (s *Session) PineSnakesColonized() bool { return s.stand.PineSnakesColonized() }

// LowBACount returns the consecutive low basal area turns so far
func (s *Session) LowBACount() int { return s.stand.LowBACount() }
