package refine

import (
	"log"
	"strings"

	"idseek/internal/content"
	"idseek/internal/domain"
)

// Correlator resolves multi-pattern searches. With a zero window every
// pattern must sit on the match line itself; with window N the non-anchor
// patterns may appear anywhere within N lines above or below the anchor.
type Correlator struct {
	reader  content.Reader
	window  int
	verbose bool
}

// NewCorrelator creates a correlator with a symmetric window of n lines.
func NewCorrelator(reader content.Reader, n int, verbose bool) *Correlator {
	if n < 0 {
		n = 0
	}
	return &Correlator{reader: reader, window: n, verbose: verbose}
}

// Window returns the configured window size.
func (c *Correlator) Window() int {
	return c.window
}

// Correlate filters matches down to those satisfying every pattern.
// Survivors keep their original relative order.
func (c *Correlator) Correlate(matches domain.MatchSet, patterns domain.Patterns) domain.MatchSet {
	if len(patterns) < 2 {
		return matches
	}
	var kept domain.MatchSet
	for _, m := range matches {
		if c.retained(m, patterns) {
			kept = append(kept, m)
		}
	}
	return kept
}

func (c *Correlator) retained(m domain.Match, patterns domain.Patterns) bool {
	if c.window == 0 {
		return patterns.ContainsAll(m.Text)
	}

	lines, ok := c.reader.Lines(m.File, m.Line-c.window, m.Line+c.window)
	if !ok {
		// File gone since indexing: no evidence, drop the anchor
		if c.verbose {
			log.Printf("cannot read %s for window inspection, dropping %s:%d", m.File, m.File, m.Line)
		}
		return false
	}
	region := strings.Join(lines, "\n")
	for _, tok := range patterns.Rest() {
		if !strings.Contains(region, tok) {
			return false
		}
	}
	return true
}
