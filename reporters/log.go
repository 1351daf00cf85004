package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/cspan/types/sequence"
)

type Log struct {
	fmtr   *sequence.Formatter
	level  string
	prefix string
	count  int
}

func NewLog(fmtr *sequence.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) Report(p *sequence.Pattern) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v [%v] sup=%d", lr.prefix, lr.count, lr.fmtr.PatternName(p), p.Support)
	} else {
		errors.Logf(lr.level, "%v [%v] sup=%d", lr.count, lr.fmtr.PatternName(p), p.Support)
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
