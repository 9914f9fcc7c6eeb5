package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlser/emit"
	"github.com/signadot/yamlser/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr. Trees are rendered as YAML and
// generic JSON values as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			s, err := emit.RenderString(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %+v", x)
				continue
			}
			args[i] = s
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
