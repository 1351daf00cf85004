package reporters

import (
	"github.com/timtadh/cspan/mine"
	"github.com/timtadh/cspan/types/sequence"
)

// Skip forwards every Skip-th pattern.
type Skip struct {
	Skip     int
	Reporter mine.Reporter
	count    int
}

func NewSkip(n int, rptr mine.Reporter) *Skip {
	if n < 1 {
		n = 1
	}
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) Report(p *sequence.Pattern) error {
	r.count++
	if r.count%r.Skip == 0 {
		return r.Reporter.Report(p)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
