package reporters

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/cspan/mine"
	"github.com/timtadh/cspan/types/sequence"
)

// Unique drops patterns whose symbols were already reported.
type Unique struct {
	Seen     *set.SortedSet
	Reporter mine.Reporter
}

func NewUnique(reporter mine.Reporter) *Unique {
	return &Unique{
		Seen:     set.NewSortedSet(10),
		Reporter: reporter,
	}
}

func (r *Unique) Report(p *sequence.Pattern) error {
	if r.Seen.Has(p) {
		return nil
	}
	if err := r.Seen.Add(p); err != nil {
		return err
	}
	return r.Reporter.Report(p)
}

func (r *Unique) Close() error {
	return r.Reporter.Close()
}
