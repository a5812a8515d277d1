package models

import (
	"errors"
	"fmt"
)

// ActionEffects holds the per-action coefficients of the stand update
type ActionEffects struct {
	TPAMultiplier float64 `json:"tpa_multiplier" yaml:"tpa_multiplier"`
	GrowthRate    float64 `json:"growth_rate" yaml:"growth_rate"` // annual QMD growth
	CarbonDelta   float64 `json:"carbon_delta" yaml:"carbon_delta"`
	CarbonFactor  float64 `json:"carbon_factor" yaml:"carbon_factor"`
}

// Params is the full coefficient table of the simulation.
// Zero values are not meaningful; start from DefaultParams.
type Params struct {
	InitialQMD    float64 `json:"initial_qmd" yaml:"initial_qmd"`
	InitialTPA    int     `json:"initial_tpa" yaml:"initial_tpa"`
	InitialCarbon float64 `json:"initial_carbon" yaml:"initial_carbon"`
	InitialCI     float64 `json:"initial_ci" yaml:"initial_ci"`

	YearsPerTurn int `json:"years_per_turn" yaml:"years_per_turn"`
	FinalYear    int `json:"final_year" yaml:"final_year"`

	Effects map[Action]ActionEffects `json:"effects" yaml:"effects"`

	// Reineke self-thinning line: maxTPA = 10^(a - b*log10(qmd))
	ReinekeA float64 `json:"reineke_a" yaml:"reineke_a"`
	ReinekeB float64 `json:"reineke_b" yaml:"reineke_b"`

	CarbonMin float64 `json:"carbon_min" yaml:"carbon_min"`
	CarbonMax float64 `json:"carbon_max" yaml:"carbon_max"`

	CIDisturbanceDelta float64 `json:"ci_disturbance_delta" yaml:"ci_disturbance_delta"`
	CIRecoveryDelta    float64 `json:"ci_recovery_delta" yaml:"ci_recovery_delta"`
	CIMin              float64 `json:"ci_min" yaml:"ci_min"`
	CIMax              float64 `json:"ci_max" yaml:"ci_max"`

	// Fire risk: CI <= FireHighCI is High, CI < FireModerateCI is Moderate
	FireHighCI     float64 `json:"fire_high_ci" yaml:"fire_high_ci"`
	FireModerateCI float64 `json:"fire_moderate_ci" yaml:"fire_moderate_ci"`

	// Beetle risk: BA > BeetleHighBA is High, BA > BeetleModerateBA is Moderate
	BeetleHighBA     float64 `json:"beetle_high_ba" yaml:"beetle_high_ba"`
	BeetleModerateBA float64 `json:"beetle_moderate_ba" yaml:"beetle_moderate_ba"`

	LowBAThreshold float64 `json:"low_ba_threshold" yaml:"low_ba_threshold"`
	LowBATurns     int     `json:"low_ba_turns" yaml:"low_ba_turns"`

	WildfireProbability float64 `json:"wildfire_probability" yaml:"wildfire_probability"`
	WildfireCarbon      float64 `json:"wildfire_carbon_factor" yaml:"wildfire_carbon_factor"`
	WildfireTPA         float64 `json:"wildfire_tpa_factor" yaml:"wildfire_tpa_factor"`
	WildfireCIDelta     float64 `json:"wildfire_ci_delta" yaml:"wildfire_ci_delta"`

	BeetleProbability float64 `json:"beetle_probability" yaml:"beetle_probability"`
	BeetleTPA         float64 `json:"beetle_tpa_factor" yaml:"beetle_tpa_factor"`

	SnakeMinBA       float64 `json:"snake_min_ba" yaml:"snake_min_ba"`
	SnakeMaxBA       float64 `json:"snake_max_ba" yaml:"snake_max_ba"`
	SnakeProbability float64 `json:"snake_probability" yaml:"snake_probability"`
}

// BasalAreaFactor converts TPA * QMD^2 (inches) to square feet per acre
const BasalAreaFactor = 0.005454

// DefaultParams returns the canonical coefficient set
func DefaultParams() Params {
	return Params{
		InitialQMD:    5.5,
		InitialTPA:    650,
		InitialCarbon: 20.0,
		InitialCI:     18.0,

		YearsPerTurn: 10,
		FinalYear:    100,

		Effects: map[Action]ActionEffects{
			NoAction:       {TPAMultiplier: 0.97, GrowthRate: 0.009, CarbonDelta: 0.5, CarbonFactor: 1.0},
			LightThin:      {TPAMultiplier: 0.75, GrowthRate: 0.015, CarbonFactor: 0.96},
			HeavyThin:      {TPAMultiplier: 0.50, GrowthRate: 0.022, CarbonFactor: 0.88},
			PrescribedBurn: {TPAMultiplier: 0.65, GrowthRate: 0.013, CarbonFactor: 0.90},
		},

		ReinekeA: 4.253,
		ReinekeB: 1.6,

		CarbonMin: 0,
		CarbonMax: 40,

		CIDisturbanceDelta: 3,
		CIRecoveryDelta:    -2,
		CIMin:              15,
		CIMax:              60,

		FireHighCI:     20,
		FireModerateCI: 25,

		BeetleHighBA:     100,
		BeetleModerateBA: 60,

		LowBAThreshold: 35,
		LowBATurns:     2,

		WildfireProbability: 0.15,
		WildfireCarbon:      0.6,
		WildfireTPA:         0.4,
		WildfireCIDelta:     15,

		BeetleProbability: 0.10,
		BeetleTPA:         0.7,

		SnakeMinBA:       45,
		SnakeMaxBA:       70,
		SnakeProbability: 0.5,
	}
}

// EffectsFor returns the coefficients of an action, falling back to NoAction
func (p Params) EffectsFor(a Action) ActionEffects {
	if e, ok := p.Effects[a]; ok {
		return e
	}
	return p.Effects[NoAction]
}

// Validate checks that the parameter table is internally consistent
func (p Params) Validate() error {
	var errs []error

	if p.InitialQMD <= 0 {
		errs = append(errs, fmt.Errorf("initial_qmd must be positive, got %v", p.InitialQMD))
	}
	if p.InitialTPA <= 0 {
		errs = append(errs, fmt.Errorf("initial_tpa must be positive, got %d", p.InitialTPA))
	}
	if p.YearsPerTurn <= 0 {
		errs = append(errs, fmt.Errorf("years_per_turn must be positive, got %d", p.YearsPerTurn))
	}
	if p.FinalYear < p.YearsPerTurn {
		errs = append(errs, fmt.Errorf("final_year %d is shorter than one turn", p.FinalYear))
	}
	if p.CarbonMin > p.CarbonMax {
		errs = append(errs, fmt.Errorf("carbon bounds inverted: [%v, %v]", p.CarbonMin, p.CarbonMax))
	}
	if p.CIMin > p.CIMax {
		errs = append(errs, fmt.Errorf("ci bounds inverted: [%v, %v]", p.CIMin, p.CIMax))
	}
	if p.FireHighCI > p.FireModerateCI {
		errs = append(errs, fmt.Errorf("fire_high_ci %v above fire_moderate_ci %v", p.FireHighCI, p.FireModerateCI))
	}
	if p.BeetleModerateBA > p.BeetleHighBA {
		errs = append(errs, fmt.Errorf("beetle_moderate_ba %v above beetle_high_ba %v", p.BeetleModerateBA, p.BeetleHighBA))
	}
	if p.SnakeMinBA > p.SnakeMaxBA {
		errs = append(errs, fmt.Errorf("snake band inverted: [%v, %v]", p.SnakeMinBA, p.SnakeMaxBA))
	}
	if p.LowBATurns <= 0 {
		errs = append(errs, fmt.Errorf("low_ba_turns must be positive, got %d", p.LowBATurns))
	}

	probabilities := []struct {
		name  string
		value float64
	}{
		{"wildfire_probability", p.WildfireProbability},
		{"beetle_probability", p.BeetleProbability},
		{"snake_probability", p.SnakeProbability},
	}
	for _, prob := range probabilities {
		if prob.value < 0 || prob.value > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", prob.name, prob.value))
		}
	}

	for _, a := range AllActions() {
		e, ok := p.Effects[a]
		if !ok {
			errs = append(errs, fmt.Errorf("missing effects for action: %s", a))
			continue
		}
		if e.TPAMultiplier <= 0 {
			errs = append(errs, fmt.Errorf("%s: tpa_multiplier must be positive, got %v", a, e.TPAMultiplier))
		}
		if e.GrowthRate < 0 {
			errs = append(errs, fmt.Errorf("%s: growth_rate must not be negative, got %v", a, e.GrowthRate))
		}
	}

	return errors.Join(errs...)
}
