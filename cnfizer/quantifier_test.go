package cnfizer

import (
	"testing"

	"github.com/nlarith/dsolve/symbolic"
)

// S6-ish: f = ∀y. (p(x,y) ∧ q(x)). The inner Convert yields the two
// conjuncts as separate unit clauses (the head conjunction is
// elided); only the clause mentioning y gets wrapped in the
// quantifier, and since two clauses survive, the outer Visit must
// allocate a "forall" proxy for their conjunction.
func TestVisitForallDistributesOverConjunction(t *testing.T) {
	x := symbolic.NewVariable("x", symbolic.Continuous)
	y := symbolic.NewVariable("y", symbolic.Continuous)
	p := symbolic.Gt(symbolic.TermVariable(x), symbolic.TermVariable(y))
	q := symbolic.Gt(symbolic.TermVariable(x), symbolic.Const(0))
	body := symbolic.And(p, q)
	f := symbolic.Forall(symbolic.NewVariableSet(y), body)

	c := New()
	clauses, err := c.Convert(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAllClauses(t, clauses)
	// The outer Convert call's own head is the "forall" proxy it
	// allocates for And(∀y.p, q); since that head's body is itself a
	// conjunction, head-elision flattens it into its two conjuncts.
	if len(clauses) != 2 {
		t.Fatalf("Convert(∀y.(p∧q)) produced %d top-level clauses, want 2", len(clauses))
	}
	sawQuantified := false
	for _, cl := range clauses {
		if cl.Kind() == symbolic.KindForall {
			sawQuantified = true
		}
	}
	if !sawQuantified {
		t.Errorf("expected one of the output clauses to remain universally quantified")
	}
}

// When the quantified body CNFizes to a single clause that mentions
// the bound variable, the quantifier wraps it directly with no proxy
// allocation at all.
func TestVisitForallSingleClauseNoProxy(t *testing.T) {
	x := symbolic.NewVariable("x", symbolic.Continuous)
	y := symbolic.NewVariable("y", symbolic.Continuous)
	p := symbolic.Gt(symbolic.TermVariable(x), symbolic.TermVariable(y))
	f := symbolic.Forall(symbolic.NewVariableSet(y), p)

	c := New()
	clauses, err := c.Convert(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clauses) != 1 {
		t.Fatalf("Convert(∀y.p) produced %d clauses, want 1", len(clauses))
	}
	if clauses[0].Kind() != symbolic.KindForall {
		t.Errorf("expected the single clause to remain a Forall, got kind %s", clauses[0].Kind())
	}
}

// When the quantified body doesn't mention the bound variable, the
// quantifier hoists away entirely.
func TestVisitForallTrivialHoist(t *testing.T) {
	x := symbolic.NewVariable("x", symbolic.Continuous)
	y := symbolic.NewVariable("y", symbolic.Continuous)
	qx := symbolic.Gt(symbolic.TermVariable(x), symbolic.Const(0))
	f := symbolic.Forall(symbolic.NewVariableSet(y), qx)

	c := New()
	clauses, err := c.Convert(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clauses) != 1 || clauses[0] != qx {
		t.Errorf("Convert(∀y.q(x)) = %v, want [q(x)] unwrapped", clauses)
	}
}

// The inner Cnfizer used to CNFize a quantified body must be disjoint
// from the outer one: its proxies must never leak into the outer
// definition map under names the outer map also uses.
func TestNestedCnfizerIsDisjoint(t *testing.T) {
	x := symbolic.NewVariable("x", symbolic.Continuous)
	y := symbolic.NewVariable("y", symbolic.Continuous)
	outer := New()
	// Force the outer Cnfizer to allocate a "conj1" proxy itself
	// before visiting the Forall; the inner Cnfizer allocates its own
	// "conj1" for the quantified body.
	a := symbolic.VarFormula(symbolic.NewVariable("a", symbolic.Boolean))
	b := symbolic.VarFormula(symbolic.NewVariable("b", symbolic.Boolean))
	outerConj := symbolic.And(a, b)
	if _, err := outer.visit(outerConj); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := symbolic.And(
		symbolic.Gt(symbolic.TermVariable(x), symbolic.TermVariable(y)),
		symbolic.Gt(symbolic.TermVariable(x), symbolic.Const(0)),
	)
	f := symbolic.Forall(symbolic.NewVariableSet(y), body)
	if _, err := outer.visit(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The outer map holds only its own two definitions (conj1 for a∧b
	// and the forall proxy); the inner Cnfizer's definition for the
	// body's conjunction stays in the inner map.
	if got := len(outer.defs.entries()); got != 2 {
		t.Errorf("outer definition map has %d entries, want 2 (inner definitions leaked)", got)
	}
}
