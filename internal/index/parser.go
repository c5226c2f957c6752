package index

import (
	"log"
	"strconv"
	"strings"

	"idseek/internal/domain"
)

// ParseMatches converts raw query output (one file:line:text result per
// line) into a MatchSet. Malformed lines are skipped, never fatal, and
// emission order is preserved.
func ParseMatches(raw string, verbose bool) domain.MatchSet {
	var matches domain.MatchSet
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		m, ok := parseLine(line)
		if !ok {
			if verbose {
				log.Printf("skipping malformed result line: %q", line)
			}
			continue
		}
		matches = append(matches, m)
	}
	return matches
}

func parseLine(line string) (domain.Match, bool) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return domain.Match{}, false
	}
	num, err := strconv.Atoi(parts[1])
	if err != nil || num < 1 {
		return domain.Match{}, false
	}
	return domain.Match{File: parts[0], Line: num, Text: parts[2]}, true
}
