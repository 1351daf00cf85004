package closure

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/cspan/trie"
	"github.com/timtadh/cspan/types/sequence"
)

type seq = sequence.Sequence

// build counts every path once per listed sequence; each inner list is the
// set of paths seen in one sequence.
func build(seqs [][]seq) *trie.Trie {
	t := trie.New()
	for _, paths := range seqs {
		for _, p := range paths {
			t.Add(p, true, true)
		}
		t.UnlockAll()
	}
	return t
}

func closed(t *trie.Trie, p seq) bool {
	n, has := t.Find(p)
	return has && t.Closed(n)
}

func TestPrefixRevokesEqualSupport(x *testing.T) {
	t := assert.New(x)
	tr := build([][]seq{
		{{1}, {2}, {1, 2}},
		{{1}, {2}, {1, 2}},
	})
	t.True(tr.Supersede(seq{1}, 2, Prefix))
	t.True(tr.Supersede(seq{2}, 2, Prefix))
	t.True(tr.Supersede(seq{1, 2}, 2, Prefix))
	t.False(closed(tr, seq{1}))
	t.True(closed(tr, seq{2}), "prefix policy never looks at the suffix")
	t.True(closed(tr, seq{1, 2}))
}

func TestPrefixKeepsHigherSupport(x *testing.T) {
	t := assert.New(x)
	tr := build([][]seq{
		{{1}, {1, 2}},
		{{1}, {1, 2}},
		{{1}},
	})
	t.True(tr.Supersede(seq{1}, 2, Prefix))
	t.True(tr.Supersede(seq{1, 2}, 2, Prefix))
	t.True(closed(tr, seq{1}))
	t.True(closed(tr, seq{1, 2}))
}

func TestStrictRevokesSuffix(x *testing.T) {
	t := assert.New(x)
	tr := build([][]seq{
		{{1}, {2}, {1, 2}},
		{{1}, {2}, {1, 2}},
		{{1}},
	})
	for _, p := range []seq{{1}, {2}, {1, 2}} {
		t.True(tr.Supersede(p, 2, Strict))
	}
	t.True(closed(tr, seq{1}))
	t.False(closed(tr, seq{2}))
	t.True(closed(tr, seq{1, 2}))
}

func TestAllKeepsEverything(x *testing.T) {
	t := assert.New(x)
	tr := build([][]seq{
		{{1}, {2}, {1, 2}},
		{{1}, {2}, {1, 2}},
	})
	for _, p := range []seq{{1}, {2}, {1, 2}} {
		t.True(tr.Supersede(p, 2, All))
	}
	t.Len(tr.Entries(true), 3)
}

func TestMaximalRevokesRegardless(x *testing.T) {
	t := assert.New(x)
	tr := build([][]seq{
		{{1}, {2}, {3}, {1, 2}},
		{{1}, {2}, {3}, {1, 2}},
		{{1}, {2}, {3}},
	})
	for _, p := range []seq{{1}, {2}, {3}, {1, 2}} {
		t.True(tr.Supersede(p, 2, Maximal))
	}
	t.False(closed(tr, seq{1}))
	t.False(closed(tr, seq{2}))
	t.True(closed(tr, seq{3}))
	t.True(closed(tr, seq{1, 2}))
}

func TestInfrequentNotDecided(x *testing.T) {
	t := assert.New(x)
	tr := build([][]seq{
		{{1}, {1, 2}},
		{{1}},
	})
	t.True(tr.Supersede(seq{1}, 2, Prefix))
	t.False(tr.Supersede(seq{1, 2}, 2, Prefix))
	t.True(closed(tr, seq{1}))
	t.False(closed(tr, seq{1, 2}))
}

func TestParse(x *testing.T) {
	t := assert.New(x)
	for name, want := range map[string]Policy{
		"prefix": Prefix, "closed": Prefix, "Strict": Strict,
		"all": All, "max": Maximal, " maximal ": Maximal,
	} {
		p, err := Parse(name)
		t.Nil(err, name)
		t.Equal(want, p, name)
	}
	_, err := Parse("bogus")
	_, ok := err.(*UnknownPolicy)
	t.True(ok, "%v", err)
}

func TestSuffixTokens(x *testing.T) {
	t := assert.New(x)
	t.Equal("#CLOSED", Prefix.Suffix())
	t.Equal("#STRICT", Strict.Suffix())
	t.Equal("#ALL", All.Suffix())
	t.Equal("#MAX", Maximal.Suffix())
	t.Equal("max", Maximal.String())
}
