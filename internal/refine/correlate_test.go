package refine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idseek/internal/domain"
)

// fakeReader serves file content from memory for the tests.
type fakeReader struct {
	files map[string]string
}

func (f *fakeReader) lines(path string) ([]string, bool) {
	data, ok := f.files[path]
	if !ok {
		return nil, false
	}
	return strings.Split(data, "\n"), true
}

func (f *fakeReader) Lines(path string, lo, hi int) ([]string, bool) {
	lines, ok := f.lines(path)
	if !ok {
		return nil, false
	}
	if lo < 1 {
		lo = 1
	}
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo > hi {
		return nil, true
	}
	return lines[lo-1 : hi], true
}

func (f *fakeReader) Contains(path, sym string) bool {
	lines, ok := f.lines(path)
	if !ok {
		return false
	}
	for _, line := range lines {
		if strings.Contains(line, sym) {
			return true
		}
	}
	return false
}

func TestCorrelateSinglePatternPassesThrough(t *testing.T) {
	c := NewCorrelator(&fakeReader{}, 0, false)
	in := domain.MatchSet{
		{File: "a.c", Line: 1, Text: "int Foo;"},
	}

	assert.Equal(t, in, c.Correlate(in, domain.Patterns{"Foo"}))
}

func TestCorrelateStrictMode(t *testing.T) {
	c := NewCorrelator(&fakeReader{}, 0, false)
	in := domain.MatchSet{
		{File: "a.c", Line: 4, Text: "conn_start(loop, conn);"},
		{File: "a.c", Line: 9, Text: "conn_start(NULL);"},
		{File: "b.c", Line: 2, Text: "loop = conn_start(x);"},
	}

	out := c.Correlate(in, domain.Patterns{"conn_start", "loop"})
	require.Len(t, out, 2)
	assert.Equal(t, 4, out[0].Line)
	assert.Equal(t, "b.c", out[1].File)
}

// Strict-mode result must equal the anchor set narrowed by substring.
func TestCorrelateStrictEquivalence(t *testing.T) {
	c := NewCorrelator(&fakeReader{}, 0, false)
	anchor := domain.MatchSet{
		{File: "a.c", Line: 1, Text: "alpha beta"},
		{File: "a.c", Line: 2, Text: "alpha"},
		{File: "a.c", Line: 3, Text: "beta alpha gamma"},
	}

	var narrowed domain.MatchSet
	for _, m := range anchor {
		if strings.Contains(m.Text, "beta") {
			narrowed = append(narrowed, m)
		}
	}

	assert.Equal(t, narrowed, c.Correlate(anchor, domain.Patterns{"alpha", "beta"}))
}

func TestCorrelateExtendedWindow(t *testing.T) {
	reader := &fakeReader{files: map[string]string{
		"srv.c": strings.Join([]string{
			"static void handle(void)", // 1
			"{",                        // 2
			"    srv_accept(fd);",      // 3
			"    log_ready();",         // 4
			"}",                        // 5
		}, "\n"),
	}}
	anchor := domain.MatchSet{
		{File: "srv.c", Line: 3, Text: "    srv_accept(fd);"},
	}

	// log_ready is one line below the anchor
	out := NewCorrelator(reader, 1, false).Correlate(anchor, domain.Patterns{"srv_accept", "log_ready"})
	require.Len(t, out, 1)
	assert.Equal(t, anchor[0], out[0])

	// handle is two lines above, outside a window of 1
	out = NewCorrelator(reader, 1, false).Correlate(anchor, domain.Patterns{"srv_accept", "handle"})
	assert.Empty(t, out)

	out = NewCorrelator(reader, 2, false).Correlate(anchor, domain.Patterns{"srv_accept", "handle"})
	assert.Len(t, out, 1)
}

// Shrinking the window can only shrink the retained set.
func TestCorrelateWindowMonotonic(t *testing.T) {
	reader := &fakeReader{files: map[string]string{
		"m.c": strings.Join([]string{
			"init();", "run();", "stop();", "run();", "fini();",
		}, "\n"),
	}}
	anchor := domain.MatchSet{
		{File: "m.c", Line: 2, Text: "run();"},
		{File: "m.c", Line: 4, Text: "run();"},
	}
	patterns := domain.Patterns{"run", "fini"}

	prev := len(anchor) + 1
	for _, n := range []int{4, 3, 2, 1} {
		got := len(NewCorrelator(reader, n, false).Correlate(anchor, patterns))
		assert.LessOrEqual(t, got, prev, "window %d", n)
		prev = got
	}
}

func TestCorrelateUnreadableFileDropsAnchor(t *testing.T) {
	reader := &fakeReader{files: map[string]string{}}
	anchor := domain.MatchSet{
		{File: "gone.c", Line: 3, Text: "foo(); bar();"},
	}

	out := NewCorrelator(reader, 2, false).Correlate(anchor, domain.Patterns{"foo", "bar"})
	assert.Empty(t, out)
}
