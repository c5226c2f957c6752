package editor

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"idseek/internal/domain"
)

// Variant is the closed set of editor command dialects. It is chosen once
// at startup and passed into the builder; nothing dispatches on editor
// names at build time.
type Variant int

const (
	// VariantPlain is the fallback for unknown editors: open the first
	// selected file with no positioning.
	VariantPlain Variant = iota
	// VariantVim supports +line jumps and +/term search highlighting,
	// also across multiple files.
	VariantVim
	// VariantLine supports +line positioning but no search expression
	// (emacs-style); multiple files open without positioning.
	VariantLine
	// VariantSingle edits one file at a time with +line positioning
	// (nano-style).
	VariantSingle
)

// VariantFor resolves the configured variant name, or guesses from the
// editor program itself when the name is empty.
func VariantFor(name, program string) Variant {
	switch name {
	case "vim":
		return VariantVim
	case "line":
		return VariantLine
	case "single":
		return VariantSingle
	case "plain":
		return VariantPlain
	}
	switch strings.TrimSuffix(filepath.Base(program), ".exe") {
	case "vi", "vim", "nvim", "gvim", "view":
		return VariantVim
	case "emacs", "emacsclient":
		return VariantLine
	case "nano", "pico":
		return VariantSingle
	}
	return VariantPlain
}

// Command describes how to invoke the editor. It is built once per
// selection and handed straight to the launcher.
type Command struct {
	Program string
	Args    []string
}

// Builder turns a selection into an editor command.
type Builder struct {
	program string
	variant Variant
}

// NewBuilder creates a builder for one editor identity.
func NewBuilder(program string, variant Variant) *Builder {
	return &Builder{program: program, variant: variant}
}

// Build maps a selection and its patterns onto an editor invocation.
// Single matches open positioned at their line; multiple matches open
// the deduplicated, sorted file list.
func (b *Builder) Build(sel domain.Selection) Command {
	term := searchTerm(sel.Patterns)

	if len(sel.Matches) == 1 {
		return b.buildSingle(sel.Matches[0], term)
	}
	return b.buildMulti(sel.Matches, term)
}

func (b *Builder) buildSingle(m domain.Match, term string) Command {
	var args []string
	switch b.variant {
	case VariantVim:
		args = append(args, fmt.Sprintf("+%d", m.Line))
		if term != "" {
			args = append(args, "+/"+term)
		}
	case VariantLine, VariantSingle:
		args = append(args, fmt.Sprintf("+%d", m.Line))
	}
	args = append(args, m.File)
	return Command{Program: b.program, Args: args}
}

func (b *Builder) buildMulti(matches domain.MatchSet, term string) Command {
	files := distinctSorted(matches)
	switch b.variant {
	case VariantVim:
		var args []string
		if term != "" {
			args = append(args, "+/"+term)
		}
		return Command{Program: b.program, Args: append(args, files...)}
	case VariantLine:
		return Command{Program: b.program, Args: files}
	default:
		// No multi-file convention: first selected match's file only
		return Command{Program: b.program, Args: []string{matches[0].File}}
	}
}

func distinctSorted(matches domain.MatchSet) []string {
	files := matches.Files()
	sort.Strings(files)
	return files
}

// searchTerm picks the first pattern for in-file positioning, stripping a
// trailing call-parenthesis marker: several editors reject an unbalanced
// or empty "(" in a search expression.
func searchTerm(patterns domain.Patterns) string {
	term := patterns.Anchor()
	term = strings.TrimSuffix(term, "()")
	term = strings.TrimSuffix(term, "(")
	return term
}
