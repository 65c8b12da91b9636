package cnfizer

import "fmt"

// InvariantViolation is returned as Cnfizer.Convert's error value
// when the definition map holds a value that is not one of the
// compound kinds the emitter knows how to cnfize. This indicates a
// bug in the visitor or in the definition map itself, not a
// malformed-input condition a caller can recover from.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("cnfizer: invariant violation: %s", e.Reason)
}

func invariantViolation(format string, args ...interface{}) error {
	return &InvariantViolation{Reason: fmt.Sprintf(format, args...)}
}
