package symbolic

import (
	"github.com/bits-and-blooms/bitset"
)

// VariableSet is a set of Variables, used for free-variable tracking
// and for cnfizer's quantifier-hoisting intersection test (does a
// clause's free-variable set intersect the bound variables?).
type VariableSet struct {
	bits *bitset.BitSet
}

// NewVariableSet builds a VariableSet containing the given variables.
func NewVariableSet(vs ...Variable) VariableSet {
	s := VariableSet{bits: bitset.New(0)}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set.
func (s *VariableSet) Add(v Variable) {
	if s.bits == nil {
		s.bits = bitset.New(0)
	}
	s.bits.Set(uint(v.id))
}

// Contains reports whether v is a member of the set.
func (s VariableSet) Contains(v Variable) bool {
	if s.bits == nil {
		return false
	}
	return s.bits.Test(uint(v.id))
}

// Union returns a new set containing the members of s and o.
func (s VariableSet) Union(o VariableSet) VariableSet {
	if s.bits == nil {
		return o.clone()
	}
	if o.bits == nil {
		return s.clone()
	}
	return VariableSet{bits: s.bits.Union(o.bits)}
}

// Intersect returns a new set containing the members present in both
// s and o.
func (s VariableSet) Intersect(o VariableSet) VariableSet {
	if s.bits == nil || o.bits == nil {
		return VariableSet{bits: bitset.New(0)}
	}
	return VariableSet{bits: s.bits.Intersection(o.bits)}
}

// IsEmpty reports whether the set has no members.
func (s VariableSet) IsEmpty() bool {
	return s.bits == nil || s.bits.None()
}

// Len returns the number of members in the set.
func (s VariableSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Slice returns the set's members in a deterministic (id) order.
func (s VariableSet) Slice() []Variable {
	if s.bits == nil {
		return nil
	}
	out := make([]Variable, 0, s.bits.Count())
	// NextSet walks bit indices in ascending order, so out is already
	// sorted by variable id.
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if v, found := variableByID(uint64(i)); found {
			out = append(out, v)
		}
	}
	return out
}

func (s VariableSet) clone() VariableSet {
	if s.bits == nil {
		return VariableSet{bits: bitset.New(0)}
	}
	return VariableSet{bits: s.bits.Clone()}
}
