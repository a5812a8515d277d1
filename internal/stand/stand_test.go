package stand

import (
	"math"
	"testing"

	"github.com/napolitain/pitch-pine-trail/internal/models"
)

// scriptedSource replays fixed draws, then returns 0.99 (nothing fires)
type scriptedSource struct {
	values []float64
	calls  int
}

func (s *scriptedSource) Float64() float64 {
	s.calls++
	if len(s.values) == 0 {
		return 0.99
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

// recordingSource remembers every draw handed out
type recordingSource struct {
	src   RandomSource
	draws []float64
}

func (r *recordingSource) Float64() float64 {
	v := r.src.Float64()
	r.draws = append(r.draws, v)
	return v
}

func newTestStand(values ...float64) (*Stand, *scriptedSource) {
	src := &scriptedSource{values: values}
	return New(models.DefaultParams(), src), src
}

func TestNewStandInitialConditions(t *testing.T) {
	s, _ := newTestStand()
	st := s.Status()

	if st.Year != 0 {
		t.Errorf("Year: got %d, want 0", st.Year)
	}
	if st.QMD != 5.5 || st.TPA != 650 {
		t.Errorf("QMD/TPA: got %.2f/%d, want 5.50/650", st.QMD, st.TPA)
	}
	if st.BA != 107.2 {
		t.Errorf("BA: got %.1f, want 107.2", st.BA)
	}
	if st.Carbon != 20.0 || st.CI != 18.0 {
		t.Errorf("Carbon/CI: got %.1f/%.1f, want 20.0/18.0", st.Carbon, st.CI)
	}
	if st.FireRisk != models.RiskHigh {
		t.Errorf("FireRisk: got %s, want High", st.FireRisk)
	}
	if st.BeetleRisk != models.RiskHigh {
		t.Errorf("BeetleRisk: got %s, want High", st.BeetleRisk)
	}
	if len(s.Events()) != 0 || s.PineSnakesColonized() || s.CatastrophicWildfire() {
		t.Error("new stand should have no history")
	}
}

func TestApplyActionNoAction(t *testing.T) {
	s, _ := newTestStand()
	s.ApplyAction(models.NoAction)
	st := s.Status()

	wantQMD := round(5.5*math.Pow(1.009, 10), 2)
	if st.QMD != wantQMD {
		t.Errorf("QMD: got %.2f, want %.2f", st.QMD, wantQMD)
	}
	wantTPA := int(math.Round(650 * 0.97))
	if st.TPA != wantTPA {
		t.Errorf("TPA: got %d, want %d", st.TPA, wantTPA)
	}
	if st.Carbon != 20.5 {
		t.Errorf("Carbon: got %.1f, want 20.5", st.Carbon)
	}
	if st.CI != 16 {
		t.Errorf("CI: got %.1f, want 16", st.CI)
	}
	if st.FireRisk != models.RiskHigh {
		t.Errorf("FireRisk: got %s, want High", st.FireRisk)
	}
	if st.Year != 0 {
		t.Errorf("ApplyAction must not advance the clock, year=%d", st.Year)
	}
}

func TestApplyActionPerActionEffects(t *testing.T) {
	tests := []struct {
		action     models.Action
		tpaFactor  float64
		growth     float64
		wantCarbon float64
		wantCI     float64
		wantFire   models.RiskLevel
	}{
		{models.NoAction, 0.97, 0.009, 20.5, 16, models.RiskHigh},
		{models.LightThin, 0.75, 0.015, 19.2, 21, models.RiskModerate},
		{models.HeavyThin, 0.50, 0.022, 17.6, 21, models.RiskModerate},
		{models.PrescribedBurn, 0.65, 0.013, 18.0, 21, models.RiskModerate},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			s, _ := newTestStand()
			s.ApplyAction(tt.action)
			st := s.Status()

			if want := int(math.Round(650 * tt.tpaFactor)); st.TPA != want {
				t.Errorf("TPA: got %d, want %d", st.TPA, want)
			}
			if want := round(5.5*math.Pow(1+tt.growth, 10), 2); st.QMD != want {
				t.Errorf("QMD: got %.2f, want %.2f", st.QMD, want)
			}
			if st.Carbon != tt.wantCarbon {
				t.Errorf("Carbon: got %.1f, want %.1f", st.Carbon, tt.wantCarbon)
			}
			if st.CI != tt.wantCI {
				t.Errorf("CI: got %.1f, want %.1f", st.CI, tt.wantCI)
			}
			if st.FireRisk != tt.wantFire {
				t.Errorf("FireRisk: got %s, want %s", st.FireRisk, tt.wantFire)
			}
		})
	}
}

func TestApplyActionUnknownFallsBackToNoAction(t *testing.T) {
	a, _ := newTestStand()
	b, _ := newTestStand()

	a.ApplyAction(models.Action("clearcut"))
	b.ApplyAction(models.NoAction)

	if a.Status() != b.Status() {
		t.Errorf("unknown action: got %+v, want %+v", a.Status(), b.Status())
	}
}

func TestApplyActionSelfThinningCeiling(t *testing.T) {
	p := models.DefaultParams()
	p.InitialTPA = 5000
	s := New(p, &scriptedSource{})

	s.ApplyAction(models.NoAction)

	qmd := 5.5 * math.Pow(1.009, 10)
	want := int(math.Round(MaxTPA(p, qmd)))
	if got := s.Status().TPA; got != want {
		t.Errorf("TPA: got %d, want ceiling %d", got, want)
	}
	if float64(s.Status().TPA) >= 5000*0.97 {
		t.Error("ceiling should bind for an overstocked stand")
	}
}

func TestMaxTPADecreasesWithDiameter(t *testing.T) {
	p := models.DefaultParams()
	prev := math.Inf(1)
	for _, qmd := range []float64{2, 4, 6, 8, 12, 16, 24} {
		got := MaxTPA(p, qmd)
		if got >= prev {
			t.Errorf("MaxTPA(%.0f)=%.1f not below MaxTPA of smaller diameter %.1f", qmd, got, prev)
		}
		prev = got
	}
}

func TestCIClampedAtBounds(t *testing.T) {
	s, _ := newTestStand()
	for i := 0; i < 20; i++ {
		s.ApplyAction(models.PrescribedBurn)
	}
	if got := s.Status().CI; got != 60 {
		t.Errorf("CI after repeated burns: got %.1f, want 60", got)
	}
	if got := s.Status().FireRisk; got != models.RiskLow {
		t.Errorf("FireRisk: got %s, want Low", got)
	}

	s.Reset()
	for i := 0; i < 20; i++ {
		s.ApplyAction(models.NoAction)
	}
	if got := s.Status().CI; got != 15 {
		t.Errorf("CI after repeated rest: got %.1f, want 15", got)
	}
}

func TestCarbonClampedAtBounds(t *testing.T) {
	s, _ := newTestStand()
	for i := 0; i < 60; i++ {
		s.ApplyAction(models.NoAction)
	}
	if got := s.Status().Carbon; got != 40 {
		t.Errorf("Carbon: got %.1f, want 40", got)
	}
}

func TestLowBACounterDefaultThreshold(t *testing.T) {
	s, _ := newTestStand()

	for i := 0; i < 4; i++ {
		s.ApplyAction(models.HeavyThin)
	}
	if s.LowBACount() != 0 {
		t.Fatalf("after 4 heavy thins BA=%.1f, count=%d, want 0", s.Status().BA, s.LowBACount())
	}

	s.ApplyAction(models.HeavyThin)
	if s.LowBACount() != 1 || s.IsLowBAGameOver() {
		t.Fatalf("after 5 heavy thins BA=%.1f, count=%d, want 1 and not over", s.Status().BA, s.LowBACount())
	}

	s.ApplyAction(models.HeavyThin)
	if !s.IsLowBAGameOver() {
		t.Errorf("after 6 heavy thins BA=%.1f, count=%d, want game over", s.Status().BA, s.LowBACount())
	}
}

func TestLowBACounterResetsOnRecovery(t *testing.T) {
	p := models.DefaultParams()
	p.LowBAThreshold = 90
	s := New(p, &scriptedSource{})

	s.ApplyAction(models.HeavyThin) // BA ~82.9
	if s.LowBACount() != 1 {
		t.Fatalf("count: got %d, want 1 (BA=%.1f)", s.LowBACount(), s.Status().BA)
	}

	s.ApplyAction(models.NoAction) // BA ~96
	if s.LowBACount() != 0 {
		t.Fatalf("count: got %d, want reset to 0 (BA=%.1f)", s.LowBACount(), s.Status().BA)
	}

	s.ApplyAction(models.HeavyThin)
	s.ApplyAction(models.HeavyThin)
	if !s.IsLowBAGameOver() {
		t.Errorf("two consecutive low turns should end the game, count=%d", s.LowBACount())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s, _ := newTestStand(0.01)
	initial := s.Status()

	s.ApplyAction(models.NoAction)
	s.ResolveEvent()
	s.AdvanceYear()
	s.Reset()

	if s.Status() != initial {
		t.Errorf("after Reset: got %+v, want %+v", s.Status(), initial)
	}
	if len(s.Events()) != 0 || s.LowBACount() != 0 || s.CatastrophicWildfire() {
		t.Error("Reset should clear history")
	}
}

func TestAdvanceYear(t *testing.T) {
	s, _ := newTestStand()
	for i := 1; i <= 10; i++ {
		s.AdvanceYear()
		if s.Year() != i*10 {
			t.Fatalf("year: got %d, want %d", s.Year(), i*10)
		}
	}
}

func TestClassifyRisk(t *testing.T) {
	p := models.DefaultParams()

	fire := []struct {
		ci   float64
		want models.RiskLevel
	}{
		{15, models.RiskHigh},
		{20, models.RiskHigh},
		{20.5, models.RiskModerate},
		{24.9, models.RiskModerate},
		{25, models.RiskLow},
		{60, models.RiskLow},
	}
	for _, tt := range fire {
		if got := ClassifyFireRisk(p, tt.ci); got != tt.want {
			t.Errorf("ClassifyFireRisk(%.1f): got %s, want %s", tt.ci, got, tt.want)
		}
	}

	beetle := []struct {
		ba   float64
		want models.RiskLevel
	}{
		{10, models.RiskLow},
		{60, models.RiskLow},
		{60.1, models.RiskModerate},
		{100, models.RiskModerate},
		{100.1, models.RiskHigh},
	}
	for _, tt := range beetle {
		if got := ClassifyBeetleRisk(p, tt.ba); got != tt.want {
			t.Errorf("ClassifyBeetleRisk(%.1f): got %s, want %s", tt.ba, got, tt.want)
		}
	}
}
