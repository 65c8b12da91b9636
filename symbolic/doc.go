// Package symbolic provides the formula and term algebra consumed by
// package cnfizer: variables, arithmetic terms, and the propositional
// and theory-atom formula kinds a Cnfizer can traverse.
//
// A Formula is a rooted DAG. Leaves are constants, Boolean variables,
// or theory atoms over Term expressions; compounds are And, Or, Not,
// and Forall. Construction functions (And, Or, Not, Forall, Eq, Lt,
// ...) canonicalize their operands the way a SAT/SMT front end
// expects: And/Or operands are deduplicated and ordered for
// deterministic output, and Not pushes through the rare cases where
// doing so is free (double negation).
//
// Variables are created with NewVariable and carry a globally unique
// identity; two variables with the same name are never equal unless
// they are literally the same Variable value.
package symbolic
