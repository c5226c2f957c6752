package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"idseek/internal/domain"
)

func single(file string, line int) domain.MatchSet {
	return domain.MatchSet{{File: file, Line: line, Text: "x"}}
}

func TestBuildSingleVim(t *testing.T) {
	b := NewBuilder("vim", VariantVim)

	cmd := b.Build(domain.Selection{
		Matches:  single("a.c", 10),
		Patterns: domain.Patterns{"Foo"},
	})
	assert.Equal(t, "vim", cmd.Program)
	assert.Equal(t, []string{"+10", "+/Foo", "a.c"}, cmd.Args)
}

func TestBuildStripsCallParens(t *testing.T) {
	b := NewBuilder("vim", VariantVim)

	for _, pattern := range []string{"Foo(", "Foo()"} {
		cmd := b.Build(domain.Selection{
			Matches:  single("a.c", 10),
			Patterns: domain.Patterns{pattern},
		})
		assert.Contains(t, cmd.Args, "+/Foo", "pattern %q", pattern)
		assert.NotContains(t, cmd.Args, "+/"+pattern)
	}
}

func TestBuildMultiDeduplicatesAndSorts(t *testing.T) {
	b := NewBuilder("vim", VariantVim)

	cmd := b.Build(domain.Selection{
		Matches: domain.MatchSet{
			{File: "b.c", Line: 2, Text: "x"},
			{File: "a.c", Line: 1, Text: "x"},
			{File: "a.c", Line: 9, Text: "x"},
		},
		Patterns: domain.Patterns{"Foo"},
	})
	assert.Equal(t, []string{"+/Foo", "a.c", "b.c"}, cmd.Args)
}

func TestBuildLineVariant(t *testing.T) {
	b := NewBuilder("emacs", VariantLine)

	cmd := b.Build(domain.Selection{
		Matches:  single("a.c", 42),
		Patterns: domain.Patterns{"Foo"},
	})
	assert.Equal(t, []string{"+42", "a.c"}, cmd.Args)

	cmd = b.Build(domain.Selection{
		Matches: domain.MatchSet{
			{File: "b.c", Line: 2, Text: "x"},
			{File: "a.c", Line: 1, Text: "x"},
		},
		Patterns: domain.Patterns{"Foo"},
	})
	assert.Equal(t, []string{"a.c", "b.c"}, cmd.Args, "no multi-file search convention")
}

func TestBuildPlainFallback(t *testing.T) {
	b := NewBuilder("someeditor", VariantPlain)

	cmd := b.Build(domain.Selection{
		Matches: domain.MatchSet{
			{File: "z.c", Line: 7, Text: "x"},
			{File: "a.c", Line: 1, Text: "x"},
		},
		Patterns: domain.Patterns{"Foo"},
	})
	assert.Equal(t, []string{"z.c"}, cmd.Args, "first selected file, unsorted, no positioning")

	cmd = b.Build(domain.Selection{
		Matches:  single("a.c", 3),
		Patterns: domain.Patterns{"Foo"},
	})
	assert.Equal(t, []string{"a.c"}, cmd.Args)
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, VariantVim, VariantFor("", "/usr/bin/nvim"))
	assert.Equal(t, VariantVim, VariantFor("", "vim"))
	assert.Equal(t, VariantLine, VariantFor("", "emacsclient"))
	assert.Equal(t, VariantSingle, VariantFor("", "nano"))
	assert.Equal(t, VariantPlain, VariantFor("", "acme"))
	assert.Equal(t, VariantLine, VariantFor("line", "vim"), "explicit config wins")
}
