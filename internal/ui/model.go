package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"idseek/internal/domain"
	"idseek/internal/session"
)

// Model is the Bubble Tea front end for a refinement session. The session
// itself stays a pure state machine; this model feeds it one command line
// per Enter press and renders the state that comes back.
type Model struct {
	session  *session.Session
	input    textinput.Model
	styles   *Styles
	viewFile func(domain.Match) error
	program  *tea.Program

	message   string
	selection domain.Selection
	selected  bool
	quitting  bool
}

// NewModel creates the match browser over an already-initialized session.
// viewFile is called for "v N" commands; pass PageFile outside of tests.
func NewModel(sess *session.Session, viewFile func(domain.Match) error) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "match number, /filter or q"
	ti.CharLimit = 120
	ti.Focus()

	return &Model{
		session:  sess,
		input:    ti,
		styles:   NewStyles(),
		viewFile: viewFile,
	}
}

// SetProgram sets the program reference for terminal handoff to the pager.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Outcome returns the terminal selection once the program has finished.
func (m *Model) Outcome() (domain.Selection, bool) {
	return m.selection, m.selected
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.selection = domain.Selection{Patterns: m.session.State().Active}
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			return m.step(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) step(line string) (tea.Model, tea.Cmd) {
	res := m.session.Step(line)
	m.message = res.Message

	switch res.Status {
	case session.Selected:
		m.selection = res.Selection
		m.selected = true
		m.quitting = true
		return m, tea.Quit
	case session.Empty:
		m.selection = res.Selection
		m.quitting = true
		return m, tea.Quit
	}

	if res.View != nil {
		m.pageMatch(*res.View)
	}
	return m, nil
}

// pageMatch hands the terminal to the pager and takes it back afterwards.
func (m *Model) pageMatch(match domain.Match) {
	if m.program == nil || m.viewFile == nil {
		return
	}
	if err := m.program.ReleaseTerminal(); err != nil {
		log.Printf("could not release terminal: %v", err)
		return
	}
	defer func() {
		// Give the pager a moment to fully exit before redrawing
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	if err := m.viewFile(match); err != nil {
		m.message = err.Error()
	}
}

func (m *Model) View() string {
	if m.quitting {
		if m.message != "" {
			return m.message + "\n"
		}
		return ""
	}

	out := RenderMatches(m.styles, m.session.State()) + "\n"
	if m.message != "" {
		out += m.styles.Error.Render(m.message) + "\n"
	}
	out += m.input.View() + "\n"
	out += RenderHelp(m.styles) + "\n"
	return out
}
