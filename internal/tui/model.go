// Package tui is the interactive terminal front end of the game.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/pitch-pine-trail/internal/game"
	"github.com/napolitain/pitch-pine-trail/internal/models"
)

type screen int

const (
	screenIntro screen = iota
	screenPlaying
	screenSnakes
	screenDefinitions
	screenEnd
)

// Model is the bubbletea model wrapping a game session
type Model struct {
	session   *game.Session
	screen    screen
	back      screen // where the definitions page returns to
	narration string
	width     int
}

// New returns a model showing the intro screen
func New(session *game.Session) Model {
	return Model{
		session:   session,
		screen:    screenIntro,
		narration: promptText,
	}
}

// Run starts the interactive program and blocks until the player quits
func Run(session *game.Session, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(session), opts...).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenIntro:
		switch key {
		case "enter", " ":
			m.screen = screenPlaying
		case "d":
			m.back, m.screen = screenIntro, screenDefinitions
		}

	case screenPlaying:
		switch key {
		case "1", "2", "3", "4":
			m = m.playTurn(models.ParseAction(key))
		case "d":
			m.back, m.screen = screenPlaying, screenDefinitions
		}

	case screenSnakes:
		if key == "enter" || key == " " || key == "c" {
			m.screen = screenPlaying
			if m.session.Over() {
				m.screen = screenEnd
			}
		}

	case screenDefinitions:
		if key == "d" || key == "b" || key == "esc" || key == "enter" {
			m.screen = m.back
		}

	case screenEnd:
		if key == "r" {
			m.session.Reset()
			m.narration = promptText
			m.screen = screenPlaying
		}
	}

	return m, nil
}

func (m Model) playTurn(a models.Action) Model {
	tr, err := m.session.Play(a)
	if err != nil {
		m.screen = screenEnd
		return m
	}

	m.narration = promptText
	if tr.Event != nil {
		m.narration = tr.Event.Description
	}

	switch {
	case tr.NewlyColonized:
		// the notice is shown before any end screen
		m.screen = screenSnakes
	case tr.Outcome.IsTerminal():
		m.screen = screenEnd
	}
	return m
}

// View implements tea.Model
func (m Model) View() string {
	var body string

	switch m.screen {
	case screenIntro:
		body = lipgloss.JoinVertical(lipgloss.Left,
			introText,
			"",
			helpStyle.Render("enter begin • d definitions • q exit"),
		)

	case screenPlaying:
		body = lipgloss.JoinVertical(lipgloss.Left,
			statusPanel(m.session.Status()),
			"",
			narrationStyle.Render(m.narration),
			"",
			actionMenu(),
			"",
			helpStyle.Render("1-4 choose • d definitions • q exit"),
		)

	case screenSnakes:
		body = lipgloss.JoinVertical(lipgloss.Left,
			winStyle.Render(snakeText),
			"",
			helpStyle.Render("enter continue • q exit"),
		)

	case screenDefinitions:
		body = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Definitions"),
			"",
			definitionsText(),
			"",
			helpStyle.Render("b back"),
		)

	case screenEnd:
		body = m.endView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Pitch Pine Trail"),
		panelStyle.Render(body),
	) + "\n"
}

func (m Model) endView() string {
	outcome := m.session.Outcome()
	headline := winStyle.Render(endText(outcome))
	if outcome.IsLoss() {
		headline = lossStyle.Render(endText(outcome))
	}

	parts := []string{headline, ""}
	if outcome == models.OutcomeCompleted {
		parts = append(parts, strings.TrimRight(m.session.Summary(), "\n"), "")
	}
	parts = append(parts,
		"Final Stand:",
		statusPanel(m.session.Status()),
		"",
		helpStyle.Render("r try again • q exit"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
