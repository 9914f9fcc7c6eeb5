package emit

import "fmt"

// IOError is returned when the destination writer rejects a write.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("emit: write failed: %v", e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// EncodingError is returned when rendered output is not valid UTF-8 text.
type EncodingError struct {
	Offset int // byte offset of the first invalid sequence
	Err    error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("emit: invalid UTF-8 at byte %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("emit: invalid UTF-8 at byte %d", e.Offset)
}

func (e *EncodingError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEncoding}
	}
	return []error{ErrEncoding, e.Err}
}
