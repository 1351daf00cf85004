package trie

import (
	"github.com/timtadh/cspan/types/sequence"
)

// Entry is one enumerated node. Path is owned by the entry.
type Entry struct {
	Path   sequence.Sequence
	Count  int
	Closed bool
}

func (e *Entry) Pattern() *sequence.Pattern {
	return sequence.NewPattern(e.Path, e.Count)
}

type EntryIterator func() (*Entry, EntryIterator)

// Iterate enumerates the nodes depth first, visiting children in ascending
// symbol order, so paths come out in lexicographic order. The root is never
// produced. Calling Iterate again restarts the traversal. The trie must not
// be modified while iterating.
func (t *Trie) Iterate(closedOnly bool) (it EntryIterator) {
	type frame struct {
		n    NodeId
		kids []sequence.Symbol
		next int
	}
	path := make(sequence.Sequence, 0, 16)
	stack := []*frame{{n: Root, kids: t.sortedKids(Root)}}
	it = func() (*Entry, EntryIterator) {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next >= len(top.kids) {
				stack = stack[:len(stack)-1]
				if len(path) > 0 {
					path = path[:len(path)-1]
				}
				continue
			}
			sym := top.kids[top.next]
			top.next++
			c := t.nodes[top.n].children[sym]
			path = append(path, sym)
			stack = append(stack, &frame{n: c, kids: t.sortedKids(c)})
			n := &t.nodes[c]
			if closedOnly && !n.closed {
				continue
			}
			p := make(sequence.Sequence, len(path))
			copy(p, path)
			return &Entry{Path: p, Count: n.count, Closed: n.closed}, it
		}
		return nil, nil
	}
	return it
}

func (t *Trie) Entries(closedOnly bool) []*Entry {
	entries := make([]*Entry, 0, t.Size())
	for e, next := t.Iterate(closedOnly)(); next != nil; e, next = next() {
		entries = append(entries, e)
	}
	return entries
}

// Patterns converts the enumeration into patterns with their counts as
// support.
func (t *Trie) Patterns(closedOnly bool) []*sequence.Pattern {
	patterns := make([]*sequence.Pattern, 0, t.Size())
	for e, next := t.Iterate(closedOnly)(); next != nil; e, next = next() {
		patterns = append(patterns, e.Pattern())
	}
	return patterns
}
