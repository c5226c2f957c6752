package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idseek/internal/domain"
)

func testMatches() domain.MatchSet {
	return domain.MatchSet{
		{File: "a.c", Line: 10, Text: "void Foo() {"},
		{File: "a.c", Line: 31, Text: "    Foo(ctx);"},
		{File: "b.c", Line: 22, Text: "    Foo();"},
		{File: "c.c", Line: 5, Text: "    Foo(ctx, flags);"},
	}
}

func TestSelectSingle(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	res := s.Step("3")
	require.Equal(t, Selected, res.Status)
	require.Len(t, res.Selection.Matches, 1)
	assert.Equal(t, domain.Match{File: "b.c", Line: 22, Text: "    Foo();"}, res.Selection.Matches[0])
	assert.Equal(t, domain.Patterns{"Foo"}, res.Selection.Patterns)
}

func TestSelectListAndRange(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	res := s.Step("1,3-4")
	require.Equal(t, Selected, res.Status)
	require.Len(t, res.Selection.Matches, 3)
	assert.Equal(t, 10, res.Selection.Matches[0].Line)
	assert.Equal(t, "b.c", res.Selection.Matches[1].File)
	assert.Equal(t, "c.c", res.Selection.Matches[2].File)
}

func TestSelectFileGroup(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	res := s.Step("a 2")
	require.Equal(t, Selected, res.Status)
	require.Len(t, res.Selection.Matches, 2)
	for _, m := range res.Selection.Matches {
		assert.Equal(t, "a.c", m.File)
	}
}

func TestInvalidIndexStaysBrowsing(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	for _, input := range []string{"0", "5", "99", "2-1", "1,9", ""} {
		res := s.Step(input)
		assert.Equal(t, Browsing, res.Status, "input %q", input)
		assert.NotEmpty(t, res.Message, "input %q", input)
	}
	assert.Len(t, s.State().Matches, 4, "state must be unchanged")
}

func TestNarrowing(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	res := s.Step("ctx")
	require.Equal(t, Browsing, res.Status)
	require.Len(t, s.State().Matches, 2)
	assert.Equal(t, 31, s.State().Matches[0].Line)
	assert.Equal(t, "c.c", s.State().Matches[1].File)
	assert.Equal(t, domain.Patterns{"Foo", "ctx"}, s.State().Active)
	assert.Equal(t, domain.Patterns{"Foo"}, s.State().Original, "original patterns stay put")

	// Selection after narrowing carries the grown pattern list
	sel := s.Step("1")
	require.Equal(t, Selected, sel.Status)
	assert.Equal(t, domain.Patterns{"Foo", "ctx"}, sel.Selection.Patterns)
}

func TestSlashFilterMayLookNumericOnlyIfSlashed(t *testing.T) {
	s := New(domain.MatchSet{
		{File: "v.c", Line: 1, Text: "case 42:"},
		{File: "v.c", Line: 2, Text: "other"},
	}, domain.Patterns{"case"})

	// "/42" filters even though "42" alone would be a selection attempt
	res := s.Step("/42")
	require.Equal(t, Browsing, res.Status)
	assert.Len(t, s.State().Matches, 1)
}

func TestUnsatisfiableNarrowingEndsEmpty(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	res := s.Step("no_such_token")
	require.Equal(t, Empty, res.Status)
	assert.True(t, res.Selection.Empty())
	assert.NotEmpty(t, res.Message)
}

func TestQuit(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	res := s.Step("q")
	require.Equal(t, Empty, res.Status)
	assert.True(t, res.Selection.Empty())
}

func TestViewStaysBrowsing(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	res := s.Step("v 4")
	require.Equal(t, Browsing, res.Status)
	require.NotNil(t, res.View)
	assert.Equal(t, "c.c", res.View.File)
	assert.Len(t, s.State().Matches, 4)
}

func TestSelectionDeduplicates(t *testing.T) {
	s := New(testMatches(), domain.Patterns{"Foo"})

	res := s.Step("2,2,1-2")
	require.Equal(t, Selected, res.Status)
	assert.Len(t, res.Selection.Matches, 2)
}
