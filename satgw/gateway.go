package satgw

import (
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/nlarith/dsolve/symbolic"
)

// Gateway indexes the atomic formulas (Boolean variables and theory
// atoms) appearing in a clause list and builds a solver.Problem from
// it, the way bf.go's private "vars" type indexes bf's own Boolean
// variables before handing a CNF to the same solver package.
type Gateway struct {
	index map[string]int // canonical key -> 1-based solver variable index
	atoms []symbolic.Formula // index-1 -> the atomic Formula it stands for
}

// NewGateway returns an empty Gateway.
func NewGateway() *Gateway {
	return &Gateway{index: make(map[string]int)}
}

// ErrQuantifiedClause is returned by Build when the clause list
// contains a universally quantified clause: a plain CDCL SAT engine
// has no notion of quantification, and discharging one correctly
// requires a theory solver capable of instantiation or quantifier
// elimination, which is out of scope for this package.
var ErrQuantifiedClause = fmt.Errorf("satgw: quantified clauses require a theory solver, not a plain SAT engine")

// Build turns clauses (as produced by cnfizer.Convert) into a
// solver.Problem. Every clause must satisfy symbolic.IsClause and
// must not be universally quantified.
func (g *Gateway) Build(clauses []symbolic.Formula) (*solver.Problem, error) {
	ints := make([][]int, 0, len(clauses))
	for _, c := range clauses {
		if symbolic.IsTrue(c) {
			// A tautological clause constrains nothing; dropping it
			// matches cnfizer's own Add helper, which never emits one.
			continue
		}
		line, err := g.clauseLits(c)
		if err != nil {
			return nil, err
		}
		ints = append(ints, line)
	}
	return solver.ParseSlice(ints), nil
}

func (g *Gateway) clauseLits(c symbolic.Formula) ([]int, error) {
	switch c.Kind() {
	case symbolic.KindForall:
		return nil, ErrQuantifiedClause
	case symbolic.KindFalse:
		return []int{}, nil
	case symbolic.KindOr:
		operands := symbolic.GetOperands(c)
		lits := make([]int, len(operands))
		for i, op := range operands {
			lit, err := g.literal(op)
			if err != nil {
				return nil, err
			}
			lits[i] = lit
		}
		return lits, nil
	default: // a bare literal: Var, theory atom, or Not(atomic)
		lit, err := g.literal(c)
		if err != nil {
			return nil, err
		}
		return []int{lit}, nil
	}
}

func (g *Gateway) literal(f symbolic.Formula) (int, error) {
	if f.Kind() == symbolic.KindNot {
		operand := symbolic.GetOperand(f)
		if !symbolic.IsAtomic(operand) {
			return 0, fmt.Errorf("satgw: %s is not a literal", f)
		}
		return -g.indexOf(operand), nil
	}
	if !symbolic.IsAtomic(f) {
		return 0, fmt.Errorf("satgw: %s is not a literal", f)
	}
	return g.indexOf(f), nil
}

// indexOf returns the 1-based solver variable index for the atomic
// formula f (a Boolean variable or a theory atom), allocating one if
// f has not been seen before.
func (g *Gateway) indexOf(f symbolic.Formula) int {
	key := symbolic.IdentityKey(f)
	if idx, ok := g.index[key]; ok {
		return idx
	}
	g.atoms = append(g.atoms, f)
	idx := len(g.atoms)
	g.index[key] = idx
	return idx
}

// AtomAt returns the atomic Formula backing the 1-based solver
// variable index idx, the same numbering ModelFrom's []bool binding
// follows (binding i is index i+1).
func (g *Gateway) AtomAt(idx int) (symbolic.Formula, bool) {
	if idx < 1 || idx > len(g.atoms) {
		return nil, false
	}
	return g.atoms[idx-1], true
}

// NumAtoms returns how many distinct atomic formulas the Gateway has
// indexed so far.
func (g *Gateway) NumAtoms() int {
	return len(g.atoms)
}
