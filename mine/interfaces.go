package mine

import (
	"github.com/timtadh/cspan/types/sequence"
)

// Reporter receives mined patterns in order. Close flushes whatever the
// reporter buffered.
type Reporter interface {
	Report(*sequence.Pattern) error
	Close() error
}

type InvalidInput struct {
	Reason string
}

func (e *InvalidInput) Error() string {
	return "invalid input: " + e.Reason
}
