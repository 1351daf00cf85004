package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/cspan/mine"
	"github.com/timtadh/cspan/types/sequence"
)

// Max buffers the stream and, on Close, forwards only the patterns that are
// not contained in another reported pattern.
type Max struct {
	Reporter mine.Reporter
	buffered []*sequence.Pattern
}

func NewMax(reporter mine.Reporter) (*Max, error) {
	m := &Max{
		Reporter: reporter,
		buffered: make([]*sequence.Pattern, 0, 100),
	}
	return m, nil
}

func (r *Max) Report(p *sequence.Pattern) error {
	r.buffered = append(r.buffered, p)
	return nil
}

func (r *Max) Close() error {
	subset, err := mine.Reduce(r.buffered)
	if err != nil {
		return err
	}
	errors.Logf("DEBUG", "max: %d of %d patterns are maximal", len(subset), len(r.buffered))
	for _, p := range subset {
		if err := r.Reporter.Report(p); err != nil {
			return err
		}
	}
	r.buffered = nil
	return r.Reporter.Close()
}
