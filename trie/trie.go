// Package trie is the frequent pattern index used by the miner. Nodes live in
// an arena and are addressed by NodeId. The path from the root to a node is
// the pattern the node represents.
package trie

import (
	"sort"
)

import (
	"github.com/timtadh/cspan/types/sequence"
)

type NodeId int32

const (
	Root NodeId = 0
	None NodeId = -1
)

type node struct {
	children map[sequence.Symbol]NodeId
	sym      sequence.Symbol
	parent   NodeId
	depth    int
	count    int
	locked   bool
	closed   bool
}

// Closer decides the closed marks once a candidate at node n has met the
// minimum support.
type Closer interface {
	Decide(t *Trie, n NodeId, path sequence.Sequence)
}

type Trie struct {
	nodes  []node
	locked []NodeId
}

func New() *Trie {
	t := &Trie{
		nodes: make([]node, 0, 1024),
	}
	t.nodes = append(t.nodes, node{parent: None})
	return t
}

// Size is the number of nodes, not counting the root.
func (t *Trie) Size() int {
	return len(t.nodes) - 1
}

func (t *Trie) child(n NodeId, sym sequence.Symbol) (NodeId, bool) {
	kids := t.nodes[n].children
	if kids == nil {
		return None, false
	}
	c, has := kids[sym]
	return c, has
}

func (t *Trie) newChild(n NodeId, sym sequence.Symbol) NodeId {
	id := NodeId(len(t.nodes))
	t.nodes = append(t.nodes, node{
		sym:    sym,
		parent: n,
		depth:  t.nodes[n].depth + 1,
	})
	if t.nodes[n].children == nil {
		t.nodes[n].children = make(map[sequence.Symbol]NodeId)
	}
	t.nodes[n].children[sym] = id
	return id
}

// Find walks path without creating nodes.
func (t *Trie) Find(path sequence.Sequence) (NodeId, bool) {
	cur := Root
	for _, sym := range path {
		c, has := t.child(cur, sym)
		if !has {
			return None, false
		}
		cur = c
	}
	return cur, true
}

// Count is the frequency of exactly path, 0 when path is absent.
func (t *Trie) Count(path sequence.Sequence) int {
	n, has := t.Find(path)
	if !has {
		return 0
	}
	return t.nodes[n].count
}

// Add counts one occurrence of path for the current sequence. If the
// terminal node is already locked the occurrence was counted for this
// sequence and Add returns false without touching the counter. With create
// false a missing path is not inserted and Add returns false.
func (t *Trie) Add(path sequence.Sequence, lock, create bool) bool {
	_, added := t.add(path, lock, create)
	return added
}

func (t *Trie) add(path sequence.Sequence, lock, create bool) (NodeId, bool) {
	cur := Root
	for _, sym := range path {
		c, has := t.child(cur, sym)
		if !has {
			if !create {
				return None, false
			}
			c = t.newChild(cur, sym)
		}
		cur = c
	}
	if cur == Root {
		return Root, false
	}
	n := &t.nodes[cur]
	if n.locked {
		return cur, false
	}
	n.count++
	if lock {
		n.locked = true
		t.locked = append(t.locked, cur)
	}
	return cur, true
}

// Insert is Add(path, true, true) that also returns the terminal node.
func (t *Trie) Insert(path sequence.Sequence) (NodeId, bool) {
	return t.add(path, true, true)
}

// UnlockAll must be called after each sequence has been scanned. Only the
// nodes locked since the last call are visited.
func (t *Trie) UnlockAll() {
	for _, n := range t.locked {
		t.nodes[n].locked = false
	}
	t.locked = t.locked[:0]
}

// Supersede finalizes the candidate at path for the current level. A
// candidate below minSupport stays in the trie (it may be a prefix of longer
// paths) but is never closed. Otherwise the closer sets the marks and
// Supersede returns true so the candidate seeds the next level.
func (t *Trie) Supersede(path sequence.Sequence, minSupport int, closer Closer) bool {
	n, has := t.Find(path)
	if !has {
		return false
	}
	return t.SupersedeNode(n, path, minSupport, closer)
}

func (t *Trie) SupersedeNode(n NodeId, path sequence.Sequence, minSupport int, closer Closer) bool {
	if n == Root || t.nodes[n].count < minSupport {
		return false
	}
	closer.Decide(t, n, path)
	return true
}

func (t *Trie) Parent(n NodeId) NodeId {
	return t.nodes[n].parent
}

func (t *Trie) Depth(n NodeId) int {
	return t.nodes[n].depth
}

func (t *Trie) CountOf(n NodeId) int {
	return t.nodes[n].count
}

func (t *Trie) Locked(n NodeId) bool {
	return t.nodes[n].locked
}

func (t *Trie) Closed(n NodeId) bool {
	return t.nodes[n].closed
}

func (t *Trie) Mark(n NodeId) {
	if n != Root {
		t.nodes[n].closed = true
	}
}

func (t *Trie) Unmark(n NodeId) {
	t.nodes[n].closed = false
}

// Path rebuilds the pattern for n by walking parent links.
func (t *Trie) Path(n NodeId) sequence.Sequence {
	path := make(sequence.Sequence, t.nodes[n].depth)
	for cur := n; cur != Root; cur = t.nodes[cur].parent {
		path[t.nodes[cur].depth-1] = t.nodes[cur].sym
	}
	return path
}

func (t *Trie) sortedKids(n NodeId) []sequence.Symbol {
	kids := t.nodes[n].children
	syms := make([]sequence.Symbol, 0, len(kids))
	for sym := range kids {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
