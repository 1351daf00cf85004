package sequence

import (
	"encoding/binary"
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/types"
)

// Symbol is an opaque event/item identifier.
type Symbol int32

// Sequence is a database record. Sequences are never modified once loaded.
type Sequence []Symbol

// Pattern is a mined (or parsed) contiguous sequential pattern. A covered
// pattern additionally carries the cover statistic from the interchange
// format.
type Pattern struct {
	Symbols Sequence
	Support int
	Cover   int
	Covered bool
}

func NewPattern(symbols Sequence, support int) *Pattern {
	s := make(Sequence, len(symbols))
	copy(s, symbols)
	return &Pattern{Symbols: s, Support: support}
}

func NewCoveredPattern(symbols Sequence, support, cover int) *Pattern {
	p := NewPattern(symbols, support)
	p.Cover = cover
	p.Covered = true
	return p
}

func (p *Pattern) Len() int {
	return len(p.Symbols)
}

func (p *Pattern) String() string {
	if p.Covered {
		return fmt.Sprintf("<Pattern %v sup=%d cover=%d>", p.Symbols, p.Support, p.Cover)
	}
	return fmt.Sprintf("<Pattern %v sup=%d>", p.Symbols, p.Support)
}

// Label is a length prefixed big endian encoding of the symbols. Two patterns
// share a label iff they have the same symbols.
func (p *Pattern) Label() []byte {
	return p.Symbols.Label()
}

// Equals compares symbols only so patterns can key the infix indexes
// regardless of their support.
func (p *Pattern) Equals(o types.Equatable) bool {
	switch b := o.(type) {
	case *Pattern:
		return p.Symbols.Equals(b.Symbols)
	default:
		return false
	}
}

func (p *Pattern) Less(o types.Sortable) bool {
	switch b := o.(type) {
	case *Pattern:
		return p.Symbols.Less(b.Symbols)
	default:
		return false
	}
}

func (p *Pattern) Hash() int {
	return types.ByteSlice(p.Label()).Hash()
}

func (s Sequence) Label() []byte {
	bytes := make([]byte, 4*(len(s)+1))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(s)))
	for i, sym := range s {
		binary.BigEndian.PutUint32(bytes[4*(i+1):4*(i+2)], uint32(sym))
	}
	return bytes
}

func (s Sequence) Equals(b Sequence) bool {
	if len(s) != len(b) {
		return false
	}
	for i := range s {
		if s[i] != b[i] {
			return false
		}
	}
	return true
}

// Less orders sequences lexicographically, a proper prefix sorts first.
func (s Sequence) Less(b Sequence) bool {
	for i := 0; i < len(s) && i < len(b); i++ {
		if s[i] != b[i] {
			return s[i] < b[i]
		}
	}
	return len(s) < len(b)
}

// Contains reports whether b occurs contiguously in s.
func (s Sequence) Contains(b Sequence) bool {
	if len(b) > len(s) {
		return false
	}
	for i := 0; i+len(b) <= len(s); i++ {
		if s[i:i+len(b)].Equals(b) {
			return true
		}
	}
	return false
}

func (s Sequence) String() string {
	parts := make([]string, 0, len(s))
	for _, sym := range s {
		parts = append(parts, fmt.Sprintf("%d", sym))
	}
	return strings.Join(parts, " ")
}
