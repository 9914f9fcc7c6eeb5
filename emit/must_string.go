package emit

import (
	"strings"

	"github.com/signadot/yamlser/ir"
)

// MustString renders node with opts and trims surrounding space. It panics
// on error and is meant for tests and diagnostics.
func MustString(node *ir.Node, opts ...EmitOption) string {
	s, err := RenderString(node, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}
