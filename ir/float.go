package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatFloat returns the canonical text of f, the shortest decimal that
// reads back to the same value at bitSize precision. The text always
// contains a '.' or an exponent so that it reads back as a float and not
// an int. Non-finite values use the YAML spellings .nan, .inf and -.inf.
func FormatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// ParseFloat parses float text as produced by FormatFloat, and also
// accepts the other YAML 1.2 core schema spellings of non-finite values.
func ParseFloat(text string) (float64, error) {
	switch text {
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), nil
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), nil
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFloat, text)
	}
	return f, nil
}

// Float64 returns the value of a Float node.
func (y *Node) Float64() (float64, error) {
	if y.Type != FloatType {
		return 0, fmt.Errorf("%w: %s is not a float", ErrType, y.Type)
	}
	return ParseFloat(y.Float)
}
