package ir

import "errors"

var (
	ErrType  = errors.New("type error")
	ErrFloat = errors.New("bad float text")
	ErrQuery = errors.New("bad query")
)
