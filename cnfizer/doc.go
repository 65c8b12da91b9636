// Package cnfizer implements a Tseitin-style definitional CNF
// transformer for formulas built from package symbolic.
//
// Convert walks a Formula, introducing a fresh Boolean proxy variable
// for each compound subformula it encounters and recording the
// proxy-to-subformula biconditional in a definition map. It then
// drains that map into a flat clause list, emitting the small,
// kind-specific clause set that realizes each biconditional. The
// result is equisatisfiable with, not logically equivalent to, the
// input: proxies are implicitly existentially quantified.
//
// A Cnfizer is reusable across sequential Convert calls but is not
// safe for concurrent use; create one Cnfizer per goroutine, or guard
// Convert calls with an external lock.
package cnfizer
