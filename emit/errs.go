package emit

import "errors"

var (
	ErrIO       = errors.New("i/o error")
	ErrEncoding = errors.New("encoding error")
	ErrEmit     = errors.New("emit error")
	ErrEngine   = errors.New("bad engine")
	ErrKey      = errors.New("unsupported mapping key")
	ErrJSON     = errors.New("not representable in JSON")
)
