package session

import (
	"fmt"
	"strconv"
	"strings"
)

// command is one parsed user input line. The grammar keeps selection and
// filtering unambiguous: anything purely numeric (with commas and ranges)
// is a selection, "/text" is always a filter, and a bare word that is not
// numeric is a filter too. Out-of-range numbers are errors, never
// reinterpreted as filter text.
type command struct {
	kind    commandKind
	indices []int  // 1-based entry numbers for kindSelect
	entry   int    // single entry for kindGroup / kindView
	token   string // filter text for kindFilter
	err     string // user-facing message for kindInvalid
}

type commandKind int

const (
	kindInvalid commandKind = iota
	kindQuit
	kindSelect
	kindGroup  // "a N": every match in entry N's file group
	kindView   // "v N": page entry N's file
	kindFilter // narrow with an extra same-line token
)

// parseCommand interprets line against a display of max numbered entries.
func parseCommand(line string, max int) command {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return command{kind: kindInvalid, err: "enter a match number, /filter text or q"}
	case line == "q" || line == "Q":
		return command{kind: kindQuit}
	}

	if tok, ok := strings.CutPrefix(line, "/"); ok {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return command{kind: kindInvalid, err: "empty filter"}
		}
		return command{kind: kindFilter, token: tok}
	}

	if rest, ok := strings.CutPrefix(line, "a "); ok {
		return parseSingleEntry(kindGroup, rest, max)
	}
	if rest, ok := strings.CutPrefix(line, "v "); ok {
		return parseSingleEntry(kindView, rest, max)
	}

	if indices, ok, err := parseIndices(line, max); ok {
		return command{kind: kindSelect, indices: indices}
	} else if err != "" {
		return command{kind: kindInvalid, err: err}
	}

	return command{kind: kindFilter, token: line}
}

func parseSingleEntry(kind commandKind, arg string, max int) command {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return command{kind: kindInvalid, err: fmt.Sprintf("%q is not a match number", strings.TrimSpace(arg))}
	}
	if n < 1 || n > max {
		return command{kind: kindInvalid, err: outOfRange(n, max)}
	}
	return command{kind: kind, entry: n}
}

// parseIndices parses "3", "1,4", "2-5" and combinations. ok is false
// when the input is not numeric at all (a filter candidate); a non-empty
// err means it was numeric but invalid.
func parseIndices(line string, max int) (indices []int, ok bool, err string) {
	seen := make(map[int]bool)
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		lo, hi, numeric := parseRange(part)
		if !numeric {
			return nil, false, ""
		}
		if lo > hi {
			return nil, false, fmt.Sprintf("bad range %q", part)
		}
		for n := lo; n <= hi; n++ {
			if n < 1 || n > max {
				return nil, false, outOfRange(n, max)
			}
			if !seen[n] {
				seen[n] = true
				indices = append(indices, n)
			}
		}
	}
	return indices, true, ""
}

func parseRange(part string) (lo, hi int, ok bool) {
	if lo, err := strconv.Atoi(part); err == nil {
		return lo, lo, true
	}
	a, b, found := strings.Cut(part, "-")
	if !found {
		return 0, 0, false
	}
	lo, errLo := strconv.Atoi(strings.TrimSpace(a))
	hi, errHi := strconv.Atoi(strings.TrimSpace(b))
	if errLo != nil || errHi != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

func outOfRange(n, max int) string {
	if max == 0 {
		return "no matches to select"
	}
	return fmt.Sprintf("%d is out of range (1-%d)", n, max)
}
