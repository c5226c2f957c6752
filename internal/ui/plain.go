package ui

import (
	"bufio"
	"fmt"
	"io"

	"idseek/internal/domain"
	"idseek/internal/session"
)

// RunPlain drives a session over plain line-oriented input: print the
// matches, read a command, repeat until the session terminates. It is
// used with -plain and when stdout is not a terminal.
func RunPlain(sess *session.Session, in io.Reader, out io.Writer, viewFile func(domain.Match) error) (domain.Selection, bool) {
	styles := NewStyles()
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, RenderMatches(styles, sess.State()))
		fmt.Fprintln(out, RenderHelp(styles))
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			// EOF counts as quitting with nothing selected
			fmt.Fprintln(out)
			return domain.Selection{Patterns: sess.State().Active}, false
		}

		res := sess.Step(scanner.Text())
		if res.Message != "" {
			fmt.Fprintln(out, res.Message)
		}

		switch res.Status {
		case session.Selected:
			return res.Selection, true
		case session.Empty:
			return res.Selection, false
		}

		if res.View != nil && viewFile != nil {
			if err := viewFile(*res.View); err != nil {
				fmt.Fprintln(out, err)
			}
		}
	}
}
