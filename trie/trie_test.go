package trie

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/cspan/types/sequence"
)

type seq = sequence.Sequence

type markAll struct {
	decided []NodeId
}

func (m *markAll) Decide(t *Trie, n NodeId, path sequence.Sequence) {
	m.decided = append(m.decided, n)
	t.Mark(n)
}

func TestAddCountsOncePerSequence(x *testing.T) {
	t := assert.New(x)
	tr := New()
	t.True(tr.Add(seq{1, 2}, true, true))
	t.False(tr.Add(seq{1, 2}, true, true))
	t.False(tr.Add(seq{1, 2}, true, true))
	t.Equal(1, tr.Count(seq{1, 2}))
	tr.UnlockAll()
	t.True(tr.Add(seq{1, 2}, true, true))
	t.Equal(2, tr.Count(seq{1, 2}))
}

func TestAddWithoutLock(x *testing.T) {
	t := assert.New(x)
	tr := New()
	t.True(tr.Add(seq{3}, false, true))
	t.True(tr.Add(seq{3}, false, true))
	t.Equal(2, tr.Count(seq{3}))
}

func TestAddWithoutCreate(x *testing.T) {
	t := assert.New(x)
	tr := New()
	t.False(tr.Add(seq{1, 2}, true, false))
	t.Equal(0, tr.Size())
	tr.Add(seq{1}, true, true)
	t.False(tr.Add(seq{1, 2}, true, false))
	t.Equal(1, tr.Size())
}

func TestCountNeverCreates(x *testing.T) {
	t := assert.New(x)
	tr := New()
	t.Equal(0, tr.Count(seq{4, 5, 6}))
	t.Equal(0, tr.Size())
	tr.Add(seq{4, 5, 6}, true, true)
	t.Equal(3, tr.Size())
	t.Equal(0, tr.Count(seq{4, 5}), "intermediate nodes are not counted")
	t.Equal(1, tr.Count(seq{4, 5, 6}))
	t.Equal(0, tr.Count(seq{}))
}

func TestPathAndParent(x *testing.T) {
	t := assert.New(x)
	tr := New()
	n, added := tr.Insert(seq{9, 8, 7})
	t.True(added)
	t.Equal(seq{9, 8, 7}, tr.Path(n))
	t.Equal(3, tr.Depth(n))
	p := tr.Parent(n)
	t.Equal(seq{9, 8}, tr.Path(p))
	t.True(tr.Locked(n))
	t.False(tr.Locked(p))
	tr.UnlockAll()
	t.False(tr.Locked(n))
}

func TestSupersede(x *testing.T) {
	t := assert.New(x)
	tr := New()
	for i := 0; i < 3; i++ {
		tr.Add(seq{1}, true, true)
		tr.Add(seq{2}, true, true)
		tr.UnlockAll()
	}
	tr.Add(seq{1}, true, true)
	tr.UnlockAll()
	m := &markAll{}
	t.True(tr.Supersede(seq{1}, 4, m))
	t.False(tr.Supersede(seq{2}, 4, m))
	t.False(tr.Supersede(seq{5}, 0, m), "absent paths never survive")
	t.Len(m.decided, 1)
	n1, _ := tr.Find(seq{1})
	n2, _ := tr.Find(seq{2})
	t.True(tr.Closed(n1))
	t.False(tr.Closed(n2))
	t.Equal(3, tr.CountOf(n2), "infrequent nodes stay in the trie")
}

func TestIterateLexicographic(x *testing.T) {
	t := assert.New(x)
	tr := New()
	for _, p := range []seq{{3}, {1, 5}, {1}, {2, 1}, {1, 2}, {1, 2, 9}, {-4}} {
		tr.Add(p, false, true)
	}
	paths := make([]seq, 0)
	for _, e := range tr.Entries(false) {
		paths = append(paths, e.Path)
	}
	t.Equal([]seq{{-4}, {1}, {1, 2}, {1, 2, 9}, {1, 5}, {2}, {2, 1}, {3}}, paths)
	for i := 1; i < len(paths); i++ {
		t.True(paths[i-1].Less(paths[i]))
	}
}

func TestIterateClosedOnly(x *testing.T) {
	t := assert.New(x)
	tr := New()
	a, _ := tr.Insert(seq{1, 2})
	b, _ := tr.Insert(seq{1, 3})
	tr.Insert(seq{2})
	tr.Mark(a)
	tr.Mark(b)
	tr.Unmark(a)
	entries := tr.Entries(true)
	t.Len(entries, 1)
	t.Equal(seq{1, 3}, entries[0].Path)
	t.Equal(1, entries[0].Count)
	t.True(entries[0].Closed)

	all := tr.Entries(false)
	t.Len(all, 4)
	t.Equal(0, all[0].Count, "prefix node [1] has no count of its own")
}

func TestIterateRestartable(x *testing.T) {
	t := assert.New(x)
	tr := New()
	tr.Insert(seq{1, 2, 3})
	tr.Insert(seq{4})
	it := tr.Iterate(false)
	first, next := it()
	t.Equal(seq{1}, first.Path)
	next()
	t.Equal(tr.Entries(false), tr.Entries(false))
	again, _ := tr.Iterate(false)()
	t.Equal(seq{1}, again.Path)
	first.Path[0] = 100
	t.Equal(seq{1}, tr.Entries(false)[0].Path, "entries own their paths")
}

func TestEmptyIterate(x *testing.T) {
	t := assert.New(x)
	tr := New()
	e, next := tr.Iterate(false)()
	t.Nil(e)
	t.Nil(next)
	t.Empty(tr.Patterns(false))
}

func TestMarkRootIgnored(x *testing.T) {
	t := assert.New(x)
	tr := New()
	tr.Mark(Root)
	t.False(tr.Closed(Root))
	t.False(tr.Add(seq{}, true, true))
}
