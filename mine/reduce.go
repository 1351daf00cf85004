package mine

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/cspan/types/sequence"
)

// Reduce keeps the patterns of superset that are not a proper contiguous
// infix of another pattern in superset. Order is preserved and repeated
// patterns collapse onto their first occurrence.
func Reduce(superset []*sequence.Pattern) ([]*sequence.Pattern, error) {
	contained := make([]bool, len(superset))
	err := sequence.Containment(superset, func(inner, outer int) {
		contained[inner] = true
	})
	if err != nil {
		return nil, err
	}
	seen := set.NewSortedSet(len(superset))
	subset := make([]*sequence.Pattern, 0, len(superset)/2+1)
	for i, p := range superset {
		if contained[i] || seen.Has(p) {
			continue
		}
		if err := seen.Add(p); err != nil {
			return nil, err
		}
		subset = append(subset, p)
	}
	return subset, nil
}
