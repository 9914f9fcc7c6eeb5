package emit

type EmitOption func(*EmitState)

// EmitState holds the settings of one rendering.
type EmitState struct {
	engine Engine
	indent int
	flow   bool
	json   bool
	colors *Colors
}

func newEmitState(opts ...EmitOption) *EmitState {
	es := &EmitState{
		engine: YAMLv3,
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.json {
		es.engine = Goccy
	}
	if es.indent < 1 {
		es.indent = 2
	}
	return es
}

func WithEngine(e Engine) EmitOption {
	return func(es *EmitState) { es.engine = e }
}

// Indent sets the number of spaces per nesting level.
func Indent(n int) EmitOption {
	return func(es *EmitState) { es.indent = n }
}

// Flow renders sequences and mappings in flow style ([a, b], {k: v}).
func Flow(v bool) EmitOption {
	return func(es *EmitState) { es.flow = v }
}

// JSON renders JSON, which implies the Goccy engine.
func JSON(v bool) EmitOption {
	return func(es *EmitState) { es.json = v }
}

// EmitColors colorizes the output with ANSI escapes.
func EmitColors(c *Colors) EmitOption {
	return func(es *EmitState) { es.colors = c }
}

// EngineFromOpts extracts the engine the options select.
func EngineFromOpts(opts ...EmitOption) Engine {
	return newEmitState(opts...).engine
}
