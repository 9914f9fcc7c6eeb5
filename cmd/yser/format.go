package main

import "fmt"

type format int

const (
	yamlFormat format = iota
	jsonFormat
)

func parseFormat(v string) (format, error) {
	switch v {
	case "yaml", "y", "yml":
		return yamlFormat, nil
	case "json", "j":
		return jsonFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}

func (f format) String() string {
	if f == jsonFormat {
		return "json"
	}
	return "yaml"
}
