// Package yamlser converts Go values to YAML text.
//
// A value is first converted to an [ir.Node] document tree through the
// visitor protocol of package ser, then rendered by package emit:
//
//	type Config struct {
//	    Name  string `yaml:"name"`
//	    Count int    `yaml:"count"`
//	}
//
//	s, err := yamlser.ToString(Config{Name: "a", Count: 3})
//	// name: a
//	// count: 3
//
// Types control their own shape by implementing [ser.Serializable].
// Everything else is described by reflection.
package yamlser
