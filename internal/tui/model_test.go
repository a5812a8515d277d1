package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/napolitain/pitch-pine-trail/internal/game"
	"github.com/napolitain/pitch-pine-trail/internal/models"
)

func calmParams() models.Params {
	p := models.DefaultParams()
	p.WildfireProbability = 0
	p.BeetleProbability = 0
	p.SnakeProbability = 0
	return p
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestIntroToPlaying(t *testing.T) {
	m := New(game.NewSession(calmParams(), 1, nil))
	if !strings.Contains(m.View(), "Grow your Pitch Pines for 100 years!") {
		t.Error("intro text missing")
	}

	m = press(t, m, "enter")
	if m.screen != screenPlaying {
		t.Fatalf("screen: got %d, want playing", m.screen)
	}
	view := m.View()
	for _, want := range []string{"Year: 0", "Basal Area (BA): 107.2", "Do nothing", "Prescribed burn", promptText} {
		if !strings.Contains(view, want) {
			t.Errorf("playing view missing %q", want)
		}
	}
}

func TestActionKeysPlayTurns(t *testing.T) {
	session := game.NewSession(calmParams(), 1, nil)
	m := press(t, New(session), "enter", "1", "2", "x")

	if got := session.Status().Year; got != 20 {
		t.Errorf("year: got %d, want 20 after two turns", got)
	}
	turns := session.Turns()
	if turns[0].Action != models.NoAction || turns[1].Action != models.LightThin {
		t.Errorf("actions: got %s, %s", turns[0].Action, turns[1].Action)
	}
	if m.screen != screenPlaying {
		t.Errorf("unbound key changed screen to %d", m.screen)
	}
}

func TestDefinitionsReturnsToCaller(t *testing.T) {
	m := New(game.NewSession(calmParams(), 1, nil))

	m = press(t, m, "d")
	if m.screen != screenDefinitions || !strings.Contains(m.View(), "Southern Pine Beetle") {
		t.Fatal("definitions not shown from intro")
	}
	m = press(t, m, "b")
	if m.screen != screenIntro {
		t.Errorf("back went to %d, want intro", m.screen)
	}

	m = press(t, m, "enter", "d", "esc")
	if m.screen != screenPlaying {
		t.Errorf("back went to %d, want playing", m.screen)
	}
}

func TestCompletedGameShowsClosingScreen(t *testing.T) {
	session := game.NewSession(calmParams(), 1, nil)
	m := press(t, New(session), "enter", "1", "1", "1", "1", "1", "1", "1", "1", "1", "1")

	if m.screen != screenEnd {
		t.Fatalf("screen: got %d, want end", m.screen)
	}
	view := m.View()
	if !strings.Contains(view, closingText) || !strings.Contains(view, "No major events occurred") {
		t.Errorf("closing view incomplete:\n%s", view)
	}

	m = press(t, m, "r")
	if m.screen != screenPlaying || session.Status().Year != 0 {
		t.Error("try again should restart the session")
	}
}

func TestWildfireShowsLossScreen(t *testing.T) {
	p := calmParams()
	p.WildfireProbability = 1
	m := press(t, New(game.NewSession(p, 1, nil)), "enter", "1")

	if m.screen != screenEnd {
		t.Fatalf("screen: got %d, want end", m.screen)
	}
	if !strings.Contains(m.View(), "A catastrophic wildfire has occurred!") {
		t.Error("wildfire text missing")
	}
}

func TestLowBasalAreaShowsLossScreen(t *testing.T) {
	m := press(t, New(game.NewSession(calmParams(), 1, nil)), "enter", "3", "3", "3", "3", "3", "3")

	if m.screen != screenEnd {
		t.Fatalf("screen: got %d, want end", m.screen)
	}
	if !strings.Contains(m.View(), "growing stock trees have been depleted") {
		t.Error("low basal area text missing")
	}
}

func TestPineSnakeNoticeThenContinue(t *testing.T) {
	p := calmParams()
	p.SnakeProbability = 1
	p.SnakeMinBA = 0
	p.SnakeMaxBA = 1000
	m := press(t, New(game.NewSession(p, 1, nil)), "enter", "1")

	if m.screen != screenSnakes || !strings.Contains(m.View(), "northern pine snake habitat") {
		t.Fatalf("expected pine snake notice, screen %d", m.screen)
	}
	m = press(t, m, "enter")
	if m.screen != screenPlaying {
		t.Errorf("continue went to %d, want playing", m.screen)
	}
}

func TestQuitKey(t *testing.T) {
	m := New(game.NewSession(calmParams(), 1, nil))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
