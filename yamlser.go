package yamlser

import (
	"io"

	"github.com/signadot/yamlser/emit"
	"github.com/signadot/yamlser/ir"
	"github.com/signadot/yamlser/ser"
)

type Option func(*options)

type options struct {
	convert []ser.Option
	emit    []emit.EmitOption
}

// WithConvert passes options to the converter.
func WithConvert(opts ...ser.Option) Option {
	return func(o *options) { o.convert = append(o.convert, opts...) }
}

// WithEmit passes options to the renderer.
func WithEmit(opts ...emit.EmitOption) Option {
	return func(o *options) { o.emit = append(o.emit, opts...) }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ToIR converts v to a document tree without rendering it.
func ToIR(v any, opts ...Option) (*ir.Node, error) {
	return ser.Convert(v, newOptions(opts).convert...)
}

// ToWriter converts v and writes it as YAML to w. Nothing is written when
// conversion fails.
func ToWriter(w io.Writer, v any, opts ...Option) error {
	o := newOptions(opts)
	node, err := ser.Convert(v, o.convert...)
	if err != nil {
		return err
	}
	return emit.Render(node, w, o.emit...)
}

// ToBytes converts v and returns its YAML text.
func ToBytes(v any, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	node, err := ser.Convert(v, o.convert...)
	if err != nil {
		return nil, err
	}
	return emit.RenderBytes(node, o.emit...)
}

// ToString is like ToBytes, and fails with an *emit.EncodingError if the
// text is not valid UTF-8.
func ToString(v any, opts ...Option) (string, error) {
	o := newOptions(opts)
	node, err := ser.Convert(v, o.convert...)
	if err != nil {
		return "", err
	}
	return emit.RenderString(node, o.emit...)
}
