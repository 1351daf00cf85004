package reporters

import (
	"github.com/timtadh/cspan/types/sequence"
)

type Collector struct {
	Patterns []*sequence.Pattern
}

func (c *Collector) Report(p *sequence.Pattern) error {
	c.Patterns = append(c.Patterns, p)
	return nil
}

func (c *Collector) Close() error {
	return nil
}
