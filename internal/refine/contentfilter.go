package refine

import (
	"idseek/internal/content"
	"idseek/internal/domain"
)

// FilterByContent keeps only matches whose file also contains sym
// somewhere. It works at file granularity: one occurrence anywhere keeps
// every match from that file, zero occurrences drops them all. Unreadable
// files count as containing nothing.
func FilterByContent(reader content.Reader, matches domain.MatchSet, sym string) domain.MatchSet {
	verdict := make(map[string]bool)
	var kept domain.MatchSet
	for _, m := range matches {
		has, seen := verdict[m.File]
		if !seen {
			has = reader.Contains(m.File, sym)
			verdict[m.File] = has
		}
		if has {
			kept = append(kept, m)
		}
	}
	return kept
}
