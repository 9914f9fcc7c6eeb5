package emit

import (
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
	AnchorColor
	AliasColor
)

// Colors maps token classes to terminal colors. Output is only colorized
// while color.NoColor is false and a key color is set.
type Colors struct {
	Map map[ColorAttr]*color.Color
}

func NewColors() *Colors {
	return &Colors{
		Map: map[ColorAttr]*color.Color{
			KeyColor:    color.RGB(128, 168, 196),
			StringColor: color.RGB(8, 196, 16),
			NumberColor: color.RGB(128, 216, 236),
			BoolColor:   color.New(color.FgCyan),
			AnchorColor: color.RGB(196, 168, 128),
			AliasColor:  color.RGB(196, 168, 128),
		},
	}
}

// Colorize returns text with ANSI escapes around scalars and keys.
func (c *Colors) Colorize(text string) string {
	if text == "" {
		return text
	}
	if prefix, _ := c.escapes(KeyColor); prefix == "" {
		return text
	}
	p := printer.Printer{
		MapKey: c.property(KeyColor),
		String: c.property(StringColor),
		Number: c.property(NumberColor),
		Bool:   c.property(BoolColor),
		Anchor: c.property(AnchorColor),
		Alias:  c.property(AliasColor),
	}
	res := p.PrintTokens(lexer.Tokenize(text))
	if strings.HasSuffix(text, "\n") && !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return res
}

func (c *Colors) property(a ColorAttr) printer.PrintFunc {
	prefix, suffix := c.escapes(a)
	return func() *printer.Property {
		return &printer.Property{Prefix: prefix, Suffix: suffix}
	}
}

// escapes splits the color's rendering of a marker byte into the sequences
// before and after it.
func (c *Colors) escapes(a ColorAttr) (string, string) {
	col := c.Map[a]
	if col == nil {
		return "", ""
	}
	s := col.Sprint("\x00")
	i := strings.IndexByte(s, 0)
	if i < 0 {
		return "", ""
	}
	return s[:i], s[i+1:]
}
