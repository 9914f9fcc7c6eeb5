package ser

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// fieldInfo describes one serialized struct field.
type fieldInfo struct {
	Name      string
	Index     []int
	OmitEmpty bool
}

type fieldsKey struct {
	typ     reflect.Type
	tagName string
}

type fieldsEntry struct {
	fields []fieldInfo
	err    error
}

var fieldCache sync.Map // fieldsKey -> fieldsEntry

// structTag is a parsed `yaml:"name,omitempty,inline"` style tag.
type structTag struct {
	Name      string
	Skip      bool
	OmitEmpty bool
	Inline    bool
}

func parseStructTag(tag string) (structTag, error) {
	if tag == "-" {
		return structTag{Skip: true}, nil
	}
	parts := strings.Split(tag, ",")
	res := structTag{Name: strings.TrimSpace(parts[0])}
	for _, flag := range parts[1:] {
		switch strings.TrimSpace(flag) {
		case "omitempty":
			res.OmitEmpty = true
		case "inline":
			res.Inline = true
		case "", "flow":
		default:
			return structTag{}, fmt.Errorf("unknown struct tag flag %q", flag)
		}
	}
	return res, nil
}

// structFields returns the serialized fields of the struct type typ in
// declaration order. Embedded structs without a name and fields tagged
// inline are flattened into the parent.
func structFields(typ reflect.Type, tagName string) ([]fieldInfo, error) {
	key := fieldsKey{typ: typ, tagName: tagName}
	if e, ok := fieldCache.Load(key); ok {
		entry := e.(fieldsEntry)
		return entry.fields, entry.err
	}
	fields, err := collectFields(typ, tagName, nil, map[reflect.Type]bool{})
	if err == nil {
		seen := make(map[string]bool, len(fields))
		for _, f := range fields {
			if seen[f.Name] {
				err = fmt.Errorf("field name conflict: %s has more than one field named %q", typ, f.Name)
				break
			}
			seen[f.Name] = true
		}
	}
	e, _ := fieldCache.LoadOrStore(key, fieldsEntry{fields: fields, err: err})
	entry := e.(fieldsEntry)
	return entry.fields, entry.err
}

func collectFields(typ reflect.Type, tagName string, index []int, inProgress map[reflect.Type]bool) ([]fieldInfo, error) {
	if inProgress[typ] {
		return nil, fmt.Errorf("%s inlines itself", typ)
	}
	inProgress[typ] = true
	defer delete(inProgress, typ)

	var res []fieldInfo
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag, err := parseStructTag(field.Tag.Get(tagName))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", typ, field.Name, err)
		}
		if tag.Skip {
			continue
		}
		fieldIndex := make([]int, len(index)+1)
		copy(fieldIndex, index)
		fieldIndex[len(index)] = i

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if (field.Anonymous && tag.Name == "") || tag.Inline {
			if ft.Kind() != reflect.Struct {
				if tag.Inline {
					return nil, fmt.Errorf("%s.%s: inline requires a struct, got %s", typ, field.Name, field.Type)
				}
				if !field.IsExported() {
					continue
				}
			} else {
				sub, err := collectFields(ft, tagName, fieldIndex, inProgress)
				if err != nil {
					return nil, err
				}
				res = append(res, sub...)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		name := tag.Name
		if name == "" {
			name = field.Name
		}
		res = append(res, fieldInfo{
			Name:      name,
			Index:     fieldIndex,
			OmitEmpty: tag.OmitEmpty,
		})
	}
	return res, nil
}

// isEmptyValue reports whether an omitempty field should be left out.
func isEmptyValue(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Map, reflect.String:
		return val.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return val.IsNil()
	default:
		return val.IsZero()
	}
}
