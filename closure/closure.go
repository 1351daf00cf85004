// Package closure holds the redundancy policies consulted when a candidate
// pattern reaches the minimum support. Every policy marks the candidate; they
// differ in which shorter neighbours lose their mark.
package closure

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/cspan/trie"
	"github.com/timtadh/cspan/types/sequence"
)

type Policy int

const (
	// Prefix revokes the immediate prefix when it has the candidate's support.
	Prefix Policy = iota
	// Strict applies the Prefix rule to the immediate suffix as well.
	Strict
	// All keeps every frequent pattern.
	All
	// Maximal revokes the immediate prefix and suffix of every frequent
	// candidate.
	Maximal
)

var Policies = []Policy{Prefix, Strict, All, Maximal}

var names = map[string]Policy{
	"prefix":  Prefix,
	"closed":  Prefix,
	"strict":  Strict,
	"all":     All,
	"max":     Maximal,
	"maximal": Maximal,
}

type UnknownPolicy struct {
	Name string
}

func (u *UnknownPolicy) Error() string {
	return fmt.Sprintf("unknown closure policy '%s' (want one of prefix, strict, all, max)", u.Name)
}

func Parse(name string) (Policy, error) {
	if p, has := names[strings.ToLower(strings.TrimSpace(name))]; has {
		return p, nil
	}
	return Prefix, &UnknownPolicy{Name: name}
}

func (p Policy) String() string {
	switch p {
	case Prefix:
		return "prefix"
	case Strict:
		return "strict"
	case All:
		return "all"
	case Maximal:
		return "max"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Suffix is the token the pattern writer puts after the support annotation.
func (p Policy) Suffix() string {
	switch p {
	case Strict:
		return "#STRICT"
	case All:
		return "#ALL"
	case Maximal:
		return "#MAX"
	default:
		return "#CLOSED"
	}
}

// Decide implements trie.Closer. n has just met the minimum support.
func (p Policy) Decide(t *trie.Trie, n trie.NodeId, path sequence.Sequence) {
	switch p {
	case Prefix:
		revokeEqual(t, n, t.Parent(n))
	case Strict:
		revokeEqual(t, n, t.Parent(n))
		revokeEqual(t, n, suffix(t, path))
	case Maximal:
		revoke(t, t.Parent(n))
		revoke(t, suffix(t, path))
	}
	t.Mark(n)
}

func suffix(t *trie.Trie, path sequence.Sequence) trie.NodeId {
	if len(path) < 2 {
		return trie.None
	}
	s, has := t.Find(path[1:])
	if !has {
		return trie.None
	}
	return s
}

func revokeEqual(t *trie.Trie, n, shorter trie.NodeId) {
	if shorter == trie.None || shorter == trie.Root {
		return
	}
	if t.CountOf(shorter) == t.CountOf(n) {
		t.Unmark(shorter)
	}
}

func revoke(t *trie.Trie, shorter trie.NodeId) {
	if shorter == trie.None || shorter == trie.Root {
		return
	}
	t.Unmark(shorter)
}
