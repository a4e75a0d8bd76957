package erc

import "fmt"

// InputError signals that a snapshot is so ill-typed it cannot be indexed
// at all, distinct from any rule code, and distinct from the malformed
// single-connection case (which rules skip silently, see index.go).
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("erc: snapshot cannot be indexed: %s", e.Reason)
}

func inputErrorf(format string, args ...interface{}) *InputError {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}
