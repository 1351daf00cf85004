package sequence

type WindowIterator func() (Sequence, WindowIterator)

// Windows enumerates every contiguous length-k window of s in ascending
// offset order. The windows share memory with s and must not be modified.
// Calling Windows again restarts the enumeration.
func Windows(k int, s Sequence) (it WindowIterator) {
	i := 0
	it = func() (Sequence, WindowIterator) {
		if k < 1 || i+k > len(s) {
			return nil, nil
		}
		w := s[i : i+k : i+k]
		i++
		return w, it
	}
	return it
}

// WindowCount returns the number of windows Windows(k, s) will produce.
func WindowCount(k int, s Sequence) int {
	if k < 1 || len(s) < k {
		return 0
	}
	return len(s) - k + 1
}
