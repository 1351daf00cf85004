package sequence

import "testing"
import "github.com/stretchr/testify/assert"

func TestContainment(x *testing.T) {
	t := assert.New(x)
	patterns := []*Pattern{
		NewPattern(Sequence{2, 3}, 4),
		NewPattern(Sequence{1, 2, 3, 4}, 2),
		NewPattern(Sequence{5}, 1),
		NewPattern(Sequence{2, 3}, 4),
	}
	type pair struct{ inner, outer int }
	found := make(map[pair]int)
	err := Containment(patterns, func(inner, outer int) {
		found[pair{inner, outer}]++
	})
	t.Nil(err)
	t.Equal(map[pair]int{{0, 1}: 1, {3, 1}: 1}, found)
}

func TestContainmentRepeatedInfix(x *testing.T) {
	t := assert.New(x)
	patterns := []*Pattern{
		NewPattern(Sequence{7}, 1),
		NewPattern(Sequence{7, 8, 7}, 1),
	}
	count := 0
	t.Nil(Containment(patterns, func(inner, outer int) {
		t.Equal(0, inner)
		t.Equal(1, outer)
		count++
	}))
	t.Equal(2, count, "called once per occurrence")
}
