package sequence

import (
	"github.com/timtadh/data-structures/hashtable"
)

// Containment calls do(inner, outer) for every pair of positions where
// patterns[inner] occurs as a proper contiguous infix of patterns[outer].
// do is called once per occurrence. Only symbols are compared, supports are
// left to the caller.
func Containment(patterns []*Pattern, do func(inner, outer int)) error {
	index := hashtable.NewLinearHash()
	lengths := make(map[int]bool)
	for i, p := range patterns {
		var idxs []int
		if index.Has(p) {
			v, err := index.Get(p)
			if err != nil {
				return err
			}
			idxs = v.([]int)
		}
		err := index.Put(p, append(idxs, i))
		if err != nil {
			return err
		}
		lengths[p.Len()] = true
	}
	for outer, q := range patterns {
		L := q.Len()
		for length := 1; length < L; length++ {
			if !lengths[length] {
				continue
			}
			for i := 0; i+length <= L; i++ {
				key := &Pattern{Symbols: q.Symbols[i : i+length]}
				if !index.Has(key) {
					continue
				}
				v, err := index.Get(key)
				if err != nil {
					return err
				}
				for _, inner := range v.([]int) {
					do(inner, outer)
				}
			}
		}
	}
	return nil
}
