package sequence

import "testing"
import "github.com/stretchr/testify/assert"

func collect(it WindowIterator) []Sequence {
	windows := make([]Sequence, 0, 10)
	for w, next := it(); next != nil; w, next = next() {
		windows = append(windows, w)
	}
	return windows
}

func TestWindows(x *testing.T) {
	t := assert.New(x)
	s := Sequence{1, 2, 3, 4}
	t.Equal([]Sequence{{1, 2}, {2, 3}, {3, 4}}, collect(Windows(2, s)))
	t.Equal([]Sequence{{1}, {2}, {3}, {4}}, collect(Windows(1, s)))
	t.Equal([]Sequence{{1, 2, 3, 4}}, collect(Windows(4, s)))
	t.Equal(3, WindowCount(2, s))
}

func TestWindowsTooShort(x *testing.T) {
	t := assert.New(x)
	t.Empty(collect(Windows(5, Sequence{1, 2, 3, 4})))
	t.Empty(collect(Windows(1, Sequence{})))
	t.Empty(collect(Windows(0, Sequence{1, 2})))
	t.Equal(0, WindowCount(5, Sequence{1, 2, 3, 4}))
}

func TestWindowsRestart(x *testing.T) {
	t := assert.New(x)
	s := Sequence{7, 7, 8}
	first := collect(Windows(2, s))
	second := collect(Windows(2, s))
	t.Equal(first, second)
	t.Equal(Sequence{7, 7, 8}, s)
}

func TestWindowsAreViews(x *testing.T) {
	t := assert.New(x)
	s := Sequence{1, 2, 3}
	w, _ := Windows(2, s)()
	t.Equal(2, cap(w))
	w = append(w, 9)
	t.Equal(Sequence{1, 2, 3}, s, "appending to a window must not clobber the sequence")
}

func TestContains(x *testing.T) {
	t := assert.New(x)
	s := Sequence{1, 2, 3, 4}
	t.True(s.Contains(Sequence{2, 3}))
	t.True(s.Contains(Sequence{1, 2, 3, 4}))
	t.True(s.Contains(Sequence{}))
	t.False(s.Contains(Sequence{1, 3}))
	t.False(s.Contains(Sequence{1, 2, 3, 4, 5}))
}

func TestLess(x *testing.T) {
	t := assert.New(x)
	t.True(Sequence{1, 2}.Less(Sequence{1, 3}))
	t.True(Sequence{1}.Less(Sequence{1, 0}))
	t.False(Sequence{2}.Less(Sequence{1, 9}))
	t.False(Sequence{1, 2}.Less(Sequence{1, 2}))
}

func TestPatternHashable(x *testing.T) {
	t := assert.New(x)
	a := NewPattern(Sequence{1, 2, 3}, 4)
	b := NewPattern(Sequence{1, 2, 3}, 9)
	c := NewPattern(Sequence{1, 2}, 4)
	t.True(a.Equals(b))
	t.Equal(a.Hash(), b.Hash())
	t.False(a.Equals(c))
	t.True(c.Less(a))
	t.NotEqual(a.Label(), c.Label())
}
