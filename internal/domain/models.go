package domain

import "strings"

// Match is one hit returned by the identifier index: a file, a 1-based
// line number and the text of that line. Matches are never mutated after
// parsing; display truncation happens in the UI layer only.
type Match struct {
	File string
	Line int // 1-based
	Text string
}

// MatchSet is an ordered list of matches. Order is the index tool's
// emission order and must be preserved so interactive numbering stays
// deterministic.
type MatchSet []Match

// Files returns the distinct file paths in the set, in first-seen order.
func (ms MatchSet) Files() []string {
	seen := make(map[string]bool, len(ms))
	var files []string
	for _, m := range ms {
		if !seen[m.File] {
			seen[m.File] = true
			files = append(files, m.File)
		}
	}
	return files
}

// Patterns is the ordered list of search tokens for one query. The first
// entry is the anchor pattern in extended-mode correlation.
type Patterns []string

// Anchor returns the first pattern, or "" for an empty list.
func (p Patterns) Anchor() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Rest returns the non-anchor patterns.
func (p Patterns) Rest() []string {
	if len(p) < 2 {
		return nil
	}
	return p[1:]
}

// Append returns a new pattern list with tok added; the receiver is not
// modified so earlier session states stay valid.
func (p Patterns) Append(tok string) Patterns {
	out := make(Patterns, 0, len(p)+1)
	out = append(out, p...)
	return append(out, tok)
}

// ContainsAll reports whether every pattern occurs as a substring of text.
func (p Patterns) ContainsAll(text string) bool {
	for _, tok := range p {
		if !strings.Contains(text, tok) {
			return false
		}
	}
	return true
}

// SessionState is the data a refinement session carries between steps.
// Original holds the patterns of the initiating query and is never
// modified during narrowing; Active grows by one entry per filter step.
type SessionState struct {
	Matches  MatchSet
	Active   Patterns
	Original Patterns
}

// Selection is the subset of matches the user picked, handed to the
// editor layer together with the patterns that produced it.
type Selection struct {
	Matches  MatchSet
	Patterns Patterns
}

// Empty reports whether nothing was selected (the user quit).
func (s Selection) Empty() bool {
	return len(s.Matches) == 0
}
