package reporters

import "testing"

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

import (
	"github.com/stretchr/testify/assert"
)

import (
	"github.com/timtadh/cspan/config"
	"github.com/timtadh/cspan/mine"
	"github.com/timtadh/cspan/types/sequence"
)

func pat(support int, syms ...sequence.Symbol) *sequence.Pattern {
	return sequence.NewPattern(sequence.Sequence(syms), support)
}

func tmpConfig(t *assert.Assertions) (*config.Config, func()) {
	dir, err := ioutil.TempDir("", "cspan-reporters")
	t.Nil(err)
	c := config.Default()
	c.Output = dir
	c.Support = .5
	return c, func() { os.RemoveAll(dir) }
}

func report(t *assert.Assertions, r mine.Reporter, patterns ...*sequence.Pattern) {
	for _, p := range patterns {
		t.Nil(r.Report(p))
	}
	t.Nil(r.Close())
}

func TestChainReportsToAll(x *testing.T) {
	t := assert.New(x)
	a := &Collector{}
	b := &Collector{}
	report(t, &Chain{[]mine.Reporter{a, b}}, pat(2, 1, 2), pat(3, 1))
	t.Equal(2, len(a.Patterns))
	t.Equal(2, len(b.Patterns))
	t.Equal(a.Patterns[1], b.Patterns[1])
}

func TestFileWritesLoadableFormat(x *testing.T) {
	t := assert.New(x)
	c, clean := tmpConfig(t)
	defer clean()
	fmtr := &sequence.Formatter{Suffix: "#CLOSED"}
	r, err := NewFile(c, fmtr, "patterns")
	t.Nil(err)
	report(t, r, pat(8, 1, 2, 3, 4), pat(2, 1, 2, 3, 4, 5))
	bytes, err := ioutil.ReadFile(filepath.Join(c.Output, "patterns.spmf"))
	t.Nil(err)
	t.Equal("1 2 3 4 #SUP:8 #CLOSED\n1 2 3 4 5 #SUP:2 #CLOSED\n", string(bytes))
	loaded, err := sequence.NewLoader(" ").LoadPatterns(strings.NewReader(string(bytes)))
	t.Nil(err)
	t.Equal(2, len(loaded))
	t.Equal(8, loaded[0].Support)
	t.True(loaded[1].Symbols.Equals(sequence.Sequence{1, 2, 3, 4, 5}))
}

func TestCountWritesTotal(x *testing.T) {
	t := assert.New(x)
	c, clean := tmpConfig(t)
	defer clean()
	r, err := NewCount(c, "count")
	t.Nil(err)
	report(t, r, pat(2, 1), pat(2, 2), pat(2, 3))
	bytes, err := ioutil.ReadFile(filepath.Join(c.Output, "count"))
	t.Nil(err)
	t.Equal("3\n", string(bytes))
}

func TestMaxForwardsMaximal(x *testing.T) {
	t := assert.New(x)
	inner := &Collector{}
	r, err := NewMax(inner)
	t.Nil(err)
	report(t, r, pat(4, 1, 2), pat(2, 1, 2, 3), pat(3, 5), pat(2, 2, 3))
	t.Equal(2, len(inner.Patterns))
	t.True(inner.Patterns[0].Symbols.Equals(sequence.Sequence{1, 2, 3}))
	t.True(inner.Patterns[1].Symbols.Equals(sequence.Sequence{5}))
}

func TestSkip(x *testing.T) {
	t := assert.New(x)
	inner := &Collector{}
	report(t, NewSkip(2, inner), pat(1, 1), pat(1, 2), pat(1, 3), pat(1, 4), pat(1, 5))
	t.Equal(2, len(inner.Patterns))
	t.Equal(sequence.Symbol(2), inner.Patterns[0].Symbols[0])
	t.Equal(sequence.Symbol(4), inner.Patterns[1].Symbols[0])
}

func TestUnique(x *testing.T) {
	t := assert.New(x)
	inner := &Collector{}
	report(t, NewUnique(inner), pat(1, 1, 2), pat(5, 1, 2), pat(1, 2, 1))
	t.Equal(2, len(inner.Patterns))
	t.Equal(1, inner.Patterns[0].Support)
}

func TestLogCounts(x *testing.T) {
	t := assert.New(x)
	r := NewLog(&sequence.Formatter{}, "DEBUG", "test")
	report(t, r, pat(1, 1), pat(1, 2))
	t.Equal(2, r.count)
}

func TestSQLiteRoundTrip(x *testing.T) {
	t := assert.New(x)
	c, clean := tmpConfig(t)
	defer clean()
	path := filepath.Join(c.Output, "patterns.db")
	c.MinSupport = 4
	first, err := NewSQLite(path, c)
	t.Nil(err)
	report(t, first, pat(8, 1, 2, 3, 4), pat(2, 1, 2, 3, 4, 5))
	other := c.Copy()
	other.Policy = "max"
	second, err := NewSQLite(path, other)
	t.Nil(err)
	report(t, second, pat(3, 7))
	t.NotEqual(first.RunId, second.RunId)

	loaded, err := LoadRun(path, first.RunId)
	t.Nil(err)
	t.Equal(2, len(loaded))
	t.True(loaded[0].Symbols.Equals(sequence.Sequence{1, 2, 3, 4}))
	t.Equal(8, loaded[0].Support)
	t.Equal(2, loaded[1].Support)

	loaded, err = LoadRun(path, second.RunId)
	t.Nil(err)
	t.Equal(1, len(loaded))
	t.Equal(3, loaded[0].Support)
}
