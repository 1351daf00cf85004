package reporters

import (
	"github.com/timtadh/cspan/mine"
	"github.com/timtadh/cspan/types/sequence"
)

type Chain struct {
	Reporters []mine.Reporter
}

func (r *Chain) Report(p *sequence.Pattern) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(p)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
