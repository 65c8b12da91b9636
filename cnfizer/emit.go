package cnfizer

import "github.com/nlarith/dsolve/symbolic"

// cnfizeDefinition dispatches on the kind of body and emits the
// clauses realizing proxy ⇔ body. body is always one of And, Or, or
// Not by the definitionMap invariant; any other kind indicates a bug
// in visit.
func cnfizeDefinition(proxy symbolic.Variable, body symbolic.Formula) ([]symbolic.Formula, error) {
	switch body.Kind() {
	case symbolic.KindAnd:
		return cnfizeConjunction(proxy, body), nil
	case symbolic.KindOr:
		return cnfizeDisjunction(proxy, body), nil
	case symbolic.KindNot:
		return cnfizeNegation(proxy, body), nil
	default:
		return nil, invariantViolation("cnfizeDefinition: definition map held a non-compound body of kind %s", body.Kind())
	}
}

// add appends f to clauses unless f is syntactically True.
func add(f symbolic.Formula, clauses []symbolic.Formula) []symbolic.Formula {
	if symbolic.IsTrue(f) {
		return clauses
	}
	return append(clauses, f)
}

// addIff appends clauses realizing f1 ⇔ f2: (f1 → f2) ∧ (f2 → f1).
func addIff(f1, f2 symbolic.Formula, clauses []symbolic.Formula) []symbolic.Formula {
	clauses = add(symbolic.Implies(f1, f2), clauses)
	clauses = add(symbolic.Implies(f2, f1), clauses)
	return clauses
}

// cnfizeNegation emits b ⇔ ¬b₁ as:
//   ¬b ∨ ¬b₁   (from b → ¬b₁)
//   b₁ ∨ b     (from ¬b₁ → b)
// f is the full Not(b₁) formula (the definition map's recorded
// value), not b₁ itself — AddIff is applied to b and ¬b₁ directly.
func cnfizeNegation(b symbolic.Variable, f symbolic.Formula) []symbolic.Formula {
	return addIff(symbolic.VarFormula(b), f, nil)
}

// cnfizeConjunction emits b ⇔ (b₁ ∧ ... ∧ bₙ) as n+1 clauses:
//   ¬b ∨ bᵢ          for each i
//   ¬b₁ ∨ ... ∨ ¬bₙ ∨ b
func cnfizeConjunction(b symbolic.Variable, f symbolic.Formula) []symbolic.Formula {
	operands := symbolic.GetOperands(f)
	bVar := symbolic.VarFormula(b)
	var clauses []symbolic.Formula
	for _, bi := range operands {
		clauses = add(symbolic.Or(symbolic.Not(bVar), bi), clauses)
	}
	negated := make([]symbolic.Formula, len(operands))
	for i, bi := range operands {
		negated[i] = symbolic.Not(bi)
	}
	clauses = add(symbolic.Or(append(negated, bVar)...), clauses)
	return clauses
}

// cnfizeDisjunction emits b ⇔ (b₁ ∨ ... ∨ bₙ) as n+1 clauses:
//   ¬b ∨ b₁ ∨ ... ∨ bₙ
//   ¬bᵢ ∨ b          for each i
func cnfizeDisjunction(b symbolic.Variable, f symbolic.Formula) []symbolic.Formula {
	operands := symbolic.GetOperands(f)
	bVar := symbolic.VarFormula(b)
	clauses := add(symbolic.Or(append([]symbolic.Formula{symbolic.Not(bVar)}, operands...)...), nil)
	for _, bi := range operands {
		clauses = add(symbolic.Or(symbolic.Not(bi), bVar), clauses)
	}
	return clauses
}
