package cnfizer

import (
	"strconv"

	"github.com/nlarith/dsolve/metrics"
	"github.com/nlarith/dsolve/symbolic"
)

// proxyCounters holds the per-family, monotonically increasing
// counters used to name fresh proxy variables: one counter per family
// (including "neg", which the original C++ shares a single literal
// name for, here kept distinct per instance). Counters live on the
// Cnfizer rather than as package globals so that concurrent Cnfizer
// instances never contend on them.
type proxyCounters struct {
	conj, disj, neg, forall int
}

// Cnfizer performs a Tseitin-style CNF transformation: it converts an
// arbitrary propositional-over-theory-atoms formula into a clause
// list equisatisfiable with the original, introducing a fresh proxy
// variable for every Boolean compound. The zero value is ready to
// use. A Cnfizer is reusable sequentially across Convert calls but is
// not safe for concurrent use.
type Cnfizer struct {
	defs     definitionMap
	counters proxyCounters
}

// New returns a ready-to-use Cnfizer.
func New() *Cnfizer {
	return &Cnfizer{}
}

// Convert returns a list of clauses whose conjunction is
// equisatisfiable with f. Every returned Formula satisfies
// symbolic.IsClause, with the two documented exceptions of a bare
// theory atom/variable representing a unit clause and a universally
// quantified clause produced by quantifier hoisting.
func (c *Cnfizer) Convert(f symbolic.Formula) ([]symbolic.Formula, error) {
	c.defs.clear()
	head, err := c.visit(f)
	if err != nil {
		return nil, err
	}
	if c.defs.isEmpty() {
		metrics.ObserveConvert(1, 0)
		return []symbolic.Formula{head}, nil
	}
	var ret []symbolic.Formula
	headVar, headIsVar := asVariable(head)
	for _, d := range c.defs.entries() {
		switch {
		case headIsVar && d.proxy.Equal(headVar) && symbolic.IsConjunction(d.body):
			// Top-level proxy elimination: avoid an unnecessary
			// head ⇔ body pair when the head proxy would itself
			// stand for the root conjunction. Each conjunct is routed
			// through add so a True operand (e.g. from True ∧ x) is
			// dropped here exactly as cnfizeConjunction would drop it.
			for _, conjunct := range symbolic.GetOperands(d.body) {
				ret = add(conjunct, ret)
			}
		case headIsVar && d.proxy.Equal(headVar):
			ret = append(ret, d.body)
		default:
			emitted, err := cnfizeDefinition(d.proxy, d.body)
			if err != nil {
				return nil, err
			}
			ret = append(ret, emitted...)
		}
	}
	metrics.ObserveConvert(len(ret), len(c.defs.entries()))
	return ret, nil
}

func asVariable(f symbolic.Formula) (symbolic.Variable, bool) {
	if f.Kind() != symbolic.KindVar {
		return symbolic.Variable{}, false
	}
	return symbolic.GetVariable(f), true
}

// visit is the kind-dispatch recursion at the heart of the
// transformation. It returns f unchanged for leaves and theory atoms,
// and a fresh proxy variable for Boolean compounds, extending c.defs
// as a side effect.
func (c *Cnfizer) visit(f symbolic.Formula) (symbolic.Formula, error) {
	switch f.Kind() {
	case symbolic.KindTrue, symbolic.KindFalse, symbolic.KindVar,
		symbolic.KindEq, symbolic.KindNeq, symbolic.KindGt,
		symbolic.KindGeq, symbolic.KindLt, symbolic.KindLeq:
		return f, nil
	case symbolic.KindAnd:
		return c.visitAnd(f)
	case symbolic.KindOr:
		return c.visitOr(f)
	case symbolic.KindNot:
		return c.visitNot(f)
	case symbolic.KindForall:
		return c.visitForall(f)
	default:
		return nil, invariantViolation("visit: unhandled formula kind %s", f.Kind())
	}
}

func (c *Cnfizer) visitAnd(f symbolic.Formula) (symbolic.Formula, error) {
	transformed, err := c.visitOperands(f)
	if err != nil {
		return nil, err
	}
	proxy := c.freshProxy(&c.counters.conj, "conj")
	c.defs.insert(proxy, symbolic.And(transformed...))
	return symbolic.VarFormula(proxy), nil
}

func (c *Cnfizer) visitOr(f symbolic.Formula) (symbolic.Formula, error) {
	transformed, err := c.visitOperands(f)
	if err != nil {
		return nil, err
	}
	proxy := c.freshProxy(&c.counters.disj, "disj")
	c.defs.insert(proxy, symbolic.Or(transformed...))
	return symbolic.VarFormula(proxy), nil
}

func (c *Cnfizer) visitOperands(f symbolic.Formula) ([]symbolic.Formula, error) {
	operands := symbolic.GetOperands(f)
	transformed := make([]symbolic.Formula, len(operands))
	for i, op := range operands {
		v, err := c.visit(op)
		if err != nil {
			return nil, err
		}
		transformed[i] = v
	}
	return transformed, nil
}

func (c *Cnfizer) visitNot(f symbolic.Formula) (symbolic.Formula, error) {
	operand := symbolic.GetOperand(f)
	if symbolic.IsAtomic(operand) {
		// Pushing the negation through is unnecessary: operand is
		// already a literal, so f itself is a literal.
		return f, nil
	}
	transformedOperand, err := c.visit(operand)
	if err != nil {
		return nil, err
	}
	proxy := c.freshProxy(&c.counters.neg, "neg")
	c.defs.insert(proxy, symbolic.Not(transformedOperand))
	return symbolic.VarFormula(proxy), nil
}

func (c *Cnfizer) freshProxy(counter *int, family string) symbolic.Variable {
	*counter++
	return symbolic.NewVariable(proxyName(family, *counter), symbolic.Boolean)
}

func proxyName(family string, n int) string {
	return family + strconv.Itoa(n)
}
