package refine

import (
	"context"
	"sort"
	"strings"

	"idseek/internal/content"
	"idseek/internal/domain"
	"idseek/internal/index"
)

// Classifier ranks index matches by how much they look like a symbol's
// declaration or definition. It is a line-level heuristic, not a parser:
// odd syntax produces a bad score, never an error.
type Classifier struct {
	queries index.QueryService
	reader  content.Reader
}

// NewClassifier creates a classifier over the given collaborators.
func NewClassifier(queries index.QueryService, reader content.Reader) *Classifier {
	return &Classifier{queries: queries, reader: reader}
}

// FindDeclaration queries the index for pattern and returns candidates
// that resemble a declaration or definition header, best first.
func (cl *Classifier) FindDeclaration(ctx context.Context, pattern, pathPrefix string) (domain.MatchSet, error) {
	matches, err := cl.queries.Query(ctx, pattern, pathPrefix)
	if err != nil {
		return nil, err
	}
	return RankDeclarations(matches, pattern), nil
}

// FindDefinition is the stricter variant: candidates must additionally
// show a body-opening brace on the match line or the line after it.
func (cl *Classifier) FindDefinition(ctx context.Context, pattern string) (domain.MatchSet, error) {
	matches, err := cl.queries.Query(ctx, pattern, "")
	if err != nil {
		return nil, err
	}
	return cl.FilterDefinitions(RankDeclarations(matches, pattern)), nil
}

// RankDeclarations drops matches scoring below zero and orders the rest
// by score, highest first. The sort is stable so index order breaks ties.
func RankDeclarations(matches domain.MatchSet, token string) domain.MatchSet {
	type scored struct {
		m     domain.Match
		score int
	}
	var kept []scored
	for _, m := range matches {
		if s := headerScore(m.Text, token); s >= 0 {
			kept = append(kept, scored{m, s})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})
	out := make(domain.MatchSet, 0, len(kept))
	for _, s := range kept {
		out = append(out, s.m)
	}
	return out
}

// FilterDefinitions keeps matches with body-open evidence: a "{" on the
// match line or at the start of the following line. When the file cannot
// be re-read only the match line itself counts.
func (cl *Classifier) FilterDefinitions(matches domain.MatchSet) domain.MatchSet {
	var kept domain.MatchSet
	for _, m := range matches {
		if strings.Contains(m.Text, "{") {
			kept = append(kept, m)
			continue
		}
		next, ok := cl.reader.Lines(m.File, m.Line+1, m.Line+1)
		if ok && len(next) == 1 && strings.HasPrefix(strings.TrimSpace(next[0]), "{") {
			kept = append(kept, m)
		}
	}
	return kept
}

// headerScore rates how much a line looks like a type or function header
// for token. Positive means header-like, negative means use site.
func headerScore(text, token string) int {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*") {
		return -3
	}

	score := 0
	if strings.HasSuffix(trimmed, ";") {
		score -= 2
	}
	if strings.HasSuffix(trimmed, "{") {
		score++
	}

	idx := strings.Index(text, token)
	if idx < 0 {
		return score
	}
	after := strings.TrimLeft(text[idx+len(token):], " \t")
	if strings.HasPrefix(after, "(") {
		// Parameter-list evidence; worth more when the line is not a
		// terminated statement
		score++
		if !strings.HasSuffix(trimmed, ";") {
			score++
		}
	}

	before := strings.TrimRight(text[:idx], " \t")
	if before != "" {
		last := before[len(before)-1]
		switch {
		case last == '.' || strings.HasSuffix(before, "->"):
			score -= 2
		case last == '=':
			score--
		case isWordByte(last):
			// Likely a return type or storage-class keyword
			score++
		}
	}
	return score
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
