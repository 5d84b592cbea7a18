package nodelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	var l *List[int]

	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Slice())

	_, ok := l.Last()
	assert.False(t, ok)

	var zero List[int]
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, []int{1}, zero.Append(1).Slice())
}

func TestAppend(t *testing.T) {
	var l *List[string]
	l = l.Append("a").Append("b", "c")

	require.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"a", "b", "c"}, l.Slice())

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, "c", last)
}

func TestReplaceLast(t *testing.T) {
	var base *List[int]
	base = base.Append(1, 2, 3)

	replaced := base.ReplaceLast(9)

	assert.Equal(t, []int{1, 2, 9}, replaced.Slice())
	assert.Equal(t, []int{1, 2, 3}, base.Slice())
	assert.Equal(t, base.Len(), replaced.Len())
}

func TestReplaceLastEmptyPanics(t *testing.T) {
	var l *List[int]
	assert.Panics(t, func() { l.ReplaceLast(1) })
}

func TestBranchesAreIndependent(t *testing.T) {
	var base *List[string]
	base = base.Append("^", "A")

	a := base.Append("digit")
	b := base.Append("word")
	c := a.ReplaceLast("letter").Append("end")

	assert.Equal(t, []string{"^", "A"}, base.Slice())
	assert.Equal(t, []string{"^", "A", "digit"}, a.Slice())
	assert.Equal(t, []string{"^", "A", "word"}, b.Slice())
	assert.Equal(t, []string{"^", "A", "letter", "end"}, c.Slice())
}

func TestSliceIsACopy(t *testing.T) {
	var l *List[int]
	l = l.Append(1, 2)

	s := l.Slice()
	s[0] = 100

	assert.Equal(t, []int{1, 2}, l.Slice())
}

func TestLongChainSharesPrefix(t *testing.T) {
	var base *List[int]
	for i := 0; i < 100; i++ {
		base = base.Append(i)
	}
	branch := base.ReplaceLast(-1).Append(100)

	require.Equal(t, 100, base.Len())
	require.Equal(t, 101, branch.Len())

	got := branch.Slice()
	for i := 0; i < 99; i++ {
		assert.Equal(t, i, got[i])
	}
	assert.Equal(t, -1, got[99])
	assert.Equal(t, 100, got[100])

	last, ok := base.Last()
	require.True(t, ok)
	assert.Equal(t, 99, last)
}
