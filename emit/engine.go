package emit

import "fmt"

// Engine selects the library which lays out the text.
type Engine int

const (
	// YAMLv3 renders through gopkg.in/yaml.v3.
	YAMLv3 Engine = iota
	// Goccy renders through github.com/goccy/go-yaml, and is used for
	// JSON output.
	Goccy
)

func ParseEngine(v string) (Engine, error) {
	e, ok := map[string]Engine{
		"v3":      YAMLv3,
		"yaml.v3": YAMLv3,
		"yamlv3":  YAMLv3,
		"goccy":   Goccy,
		"go-yaml": Goccy,
	}[v]
	if ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrEngine, v)
}

func (e Engine) String() string {
	d, err := e.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (e Engine) MarshalText() ([]byte, error) {
	switch e {
	case YAMLv3:
		return []byte("yaml.v3"), nil
	case Goccy:
		return []byte("goccy"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an engine>", e)
	}
}

func (e *Engine) UnmarshalText(d []byte) error {
	pe, err := ParseEngine(string(d))
	if err != nil {
		return err
	}
	*e = pe
	return nil
}
