package stats

import (
	"math"
)

// Round rounds half away from zero at the given number of decimal places.
func Round(val float64, places int) (newVal float64) {
	var round float64
	roundOn := .5
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	_div := math.Copysign(div, val)
	_roundOn := math.Copysign(roundOn, val)
	if _div >= _roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	return round / pow
}

// MinSupport converts a relative support in [0,1] to an absolute count for a
// database of size n.
func MinSupport(n int, relative float64) int {
	return int(Round(float64(n)*relative, 0))
}
