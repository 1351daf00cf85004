package stats

import (
	"github.com/timtadh/cspan/types/sequence"
)

// Redundancy is the fraction of patterns that occur as a proper contiguous
// infix of another listed pattern with the same support. Such a pattern adds
// nothing the longer one does not already say.
func Redundancy(patterns []*sequence.Pattern) (float64, error) {
	if len(patterns) == 0 {
		return 0, nil
	}
	redundant := make([]bool, len(patterns))
	err := sequence.Containment(patterns, func(inner, outer int) {
		if patterns[inner].Support == patterns[outer].Support {
			redundant[inner] = true
		}
	})
	if err != nil {
		return 0, err
	}
	count := 0
	for _, r := range redundant {
		if r {
			count++
		}
	}
	return float64(count) / float64(len(patterns)), nil
}
