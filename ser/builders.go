package ser

import "github.com/signadot/yamlser/ir"

type seqBuilder struct {
	c      Converter
	values []*ir.Node
	done   bool
}

func (b *seqBuilder) Element(v any) error {
	if b.done {
		violation("Element", "sequence builder used after End")
	}
	node, err := b.c.nested(b.c.at.at(len(b.values))).Convert(v)
	if err != nil {
		return err
	}
	b.values = append(b.values, node)
	return nil
}

func (b *seqBuilder) End() (*ir.Node, error) {
	if b.done {
		violation("End", "sequence builder ended twice")
	}
	b.done = true
	res := &ir.Node{Type: ir.SequenceType, Values: b.values}
	b.values = nil
	return res, nil
}

type tupleVariantBuilder struct {
	variant string
	seq     seqBuilder
}

func (b *tupleVariantBuilder) Field(v any) error {
	return b.seq.Element(v)
}

func (b *tupleVariantBuilder) End() (*ir.Node, error) {
	node, err := b.seq.End()
	if err != nil {
		return nil, err
	}
	return ir.Singleton(ir.FromString(b.variant), node), nil
}

type mapBuilder struct {
	c       Converter
	kvs     []ir.KeyVal
	pending *ir.Node
	done    bool
}

func (b *mapBuilder) Key(k any) error {
	if b.done {
		violation("Key", "map builder used after End")
	}
	if b.pending != nil {
		violation("Key", "called while key %s has no value", b.c.at.key(b.pending))
	}
	node, err := b.c.nested(b.c.at.child("<key>")).Convert(k)
	if err != nil {
		return err
	}
	b.pending = node
	return nil
}

func (b *mapBuilder) Value(v any) error {
	if b.done {
		violation("Value", "map builder used after End")
	}
	if b.pending == nil {
		violation("Value", "called before Key")
	}
	key := b.pending
	b.pending = nil
	node, err := b.c.nested(b.c.at.key(key)).Convert(v)
	if err != nil {
		return err
	}
	b.kvs = append(b.kvs, ir.KeyVal{Key: key, Val: node})
	return nil
}

func (b *mapBuilder) Entry(k, v any) error {
	if err := b.Key(k); err != nil {
		return err
	}
	return b.Value(v)
}

func (b *mapBuilder) End() (*ir.Node, error) {
	if b.done {
		violation("End", "map builder ended twice")
	}
	if b.pending != nil {
		violation("End", "key %s has no value", b.c.at.key(b.pending))
	}
	b.done = true
	res := ir.FromKeyVals(b.kvs)
	b.kvs = nil
	return res, nil
}

type structBuilder struct {
	c    Converter
	kvs  []ir.KeyVal
	done bool
}

func (b *structBuilder) Field(name string, v any) error {
	if b.done {
		violation("Field", "struct builder used after End")
	}
	node, err := b.c.nested(b.c.at.child(name)).Convert(v)
	if err != nil {
		return err
	}
	b.kvs = append(b.kvs, ir.KeyVal{Key: ir.FromString(name), Val: node})
	return nil
}

func (b *structBuilder) Skip(string) error {
	if b.done {
		violation("Skip", "struct builder used after End")
	}
	return nil
}

func (b *structBuilder) End() (*ir.Node, error) {
	if b.done {
		violation("End", "struct builder ended twice")
	}
	b.done = true
	res := ir.FromKeyVals(b.kvs)
	b.kvs = nil
	return res, nil
}

type structVariantBuilder struct {
	variant string
	fields  structBuilder
}

func (b *structVariantBuilder) Field(name string, v any) error {
	return b.fields.Field(name, v)
}

func (b *structVariantBuilder) Skip(name string) error {
	return b.fields.Skip(name)
}

func (b *structVariantBuilder) End() (*ir.Node, error) {
	node, err := b.fields.End()
	if err != nil {
		return nil, err
	}
	return ir.Singleton(ir.FromString(b.variant), node), nil
}
