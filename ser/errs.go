package ser

import "errors"

var (
	ErrMaxDepth    = errors.New("max depth exceeded")
	ErrUnsupported = errors.New("unsupported type")
	ErrNilNode     = errors.New("nil node")
)
