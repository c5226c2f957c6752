// Package session implements the interactive match-refinement loop as a
// pure state machine. Front ends (the TUI, the plain teletype loop) feed
// it one command line per step and render what comes back; the machine
// itself never touches a terminal.
package session

import (
	"strings"

	"idseek/internal/domain"
)

// Status is the session's position in its lifecycle.
type Status int

const (
	// Browsing means the match list is on display and the session
	// wants another command.
	Browsing Status = iota
	// Selected is terminal: the user picked matches for the editor.
	Selected
	// Empty is terminal: the user quit, or narrowing removed every
	// match.
	Empty
)

// Result is the outcome of one Step.
type Result struct {
	Status    Status
	Selection domain.Selection // populated when Status == Selected
	Message   string           // user-facing report, may accompany any status
	View      *domain.Match    // non-nil: front end should page this match's file
}

// Session owns one SessionState for the duration of an interactive run.
type Session struct {
	state domain.SessionState
}

// New starts a session over the initial query result.
func New(matches domain.MatchSet, patterns domain.Patterns) *Session {
	return &Session{state: domain.SessionState{
		Matches:  matches,
		Active:   patterns,
		Original: patterns,
	}}
}

// State exposes the current state for rendering.
func (s *Session) State() domain.SessionState {
	return s.state
}

// Step consumes one user command line and returns the next outcome. The
// session stays in Browsing on invalid input; it only terminates through
// a selection, a quit, or an unsatisfiable narrowing.
func (s *Session) Step(line string) Result {
	cmd := parseCommand(line, len(s.state.Matches))

	switch cmd.kind {
	case kindQuit:
		return Result{Status: Empty, Selection: s.emptySelection()}

	case kindSelect:
		picked := make(domain.MatchSet, 0, len(cmd.indices))
		for _, n := range cmd.indices {
			picked = append(picked, s.state.Matches[n-1])
		}
		return Result{Status: Selected, Selection: domain.Selection{
			Matches:  picked,
			Patterns: s.state.Active,
		}}

	case kindGroup:
		file := s.state.Matches[cmd.entry-1].File
		var picked domain.MatchSet
		for _, m := range s.state.Matches {
			if m.File == file {
				picked = append(picked, m)
			}
		}
		return Result{Status: Selected, Selection: domain.Selection{
			Matches:  picked,
			Patterns: s.state.Active,
		}}

	case kindView:
		m := s.state.Matches[cmd.entry-1]
		return Result{Status: Browsing, View: &m}

	case kindFilter:
		return s.narrow(cmd.token)

	default:
		return Result{Status: Browsing, Message: cmd.err}
	}
}

// narrow keeps only matches whose line also contains tok. This is a
// same-line AND regardless of the correlator's window mode.
func (s *Session) narrow(tok string) Result {
	var kept domain.MatchSet
	for _, m := range s.state.Matches {
		if strings.Contains(m.Text, tok) {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return Result{
			Status:    Empty,
			Selection: s.emptySelection(),
			Message:   "no matches contain " + tok,
		}
	}
	s.state = domain.SessionState{
		Matches:  kept,
		Active:   s.state.Active.Append(tok),
		Original: s.state.Original,
	}
	return Result{Status: Browsing}
}

func (s *Session) emptySelection() domain.Selection {
	return domain.Selection{Patterns: s.state.Active}
}
