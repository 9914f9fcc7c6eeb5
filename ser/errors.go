package ser

import "fmt"

// MarshalError represents a recoverable error converting a value.
type MarshalError struct {
	Path    string // Path to the failing value (e.g., "$.person.address[0]")
	Message string
	Err     error
}

func (e *MarshalError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Path != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("marshal error: %s", msg)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// ContractViolation is the panic value used when a producer misuses a
// builder session.
type ContractViolation struct {
	Op      string
	Message string
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("ser: %s: %s", c.Op, c.Message)
}

func violation(op, format string, args ...any) {
	panic(&ContractViolation{Op: op, Message: fmt.Sprintf(format, args...)})
}
