package cnfizer

import "github.com/nlarith/dsolve/symbolic"

// visitForall distributes quantification over CNF. Given ∀y. φ(x,y),
// it CNFizes φ in a fresh, disjoint Cnfizer instance — never the outer
// map —
// then pushes the quantifier over each resulting clause that
// mentions a bound variable, per the identity
// ∀y.(C₁ ∧ ... ∧ Cₙ) ≡ (∀y.C₁) ∧ ... ∧ (∀y.Cₙ).
func (c *Cnfizer) visitForall(f symbolic.Formula) (symbolic.Formula, error) {
	quantifiedVars := symbolic.GetQuantifiedVariables(f)
	body := symbolic.GetQuantifiedFormula(f)

	inner := New()
	clauses, err := inner.Convert(body)
	if err != nil {
		return nil, err
	}
	if len(clauses) == 0 {
		return nil, invariantViolation("visitForall: inner Convert produced no clauses")
	}
	for i, clause := range clauses {
		if !clause.GetFreeVariables().Intersect(quantifiedVars).IsEmpty() {
			clauses[i] = symbolic.Forall(quantifiedVars, clause)
		}
		// else: clause does not depend on the bound variables and
		// hoists trivially out of the quantifier, unchanged.
	}
	if len(clauses) == 1 {
		return clauses[0], nil
	}
	proxy := c.freshProxy(&c.counters.forall, "forall")
	c.defs.insert(proxy, symbolic.And(clauses...))
	return symbolic.VarFormula(proxy), nil
}
