package codec

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/hatlonely/soax/soa"
)

// Format 快照格式
type Format string

const (
	FormatJson    Format = "json"
	FormatYaml    Format = "yaml"
	FormatMsgPack Format = "msgpack"
)

var ErrSchemaMismatch = errors.New("snapshot schema mismatch")

// fieldSpec 快照中的字段描述，用于解码时核对模式
type fieldSpec struct {
	Name string `json:"name" yaml:"name" msgpack:"name"`
	Type string `json:"type" yaml:"type" msgpack:"type"`
}

// snapshotDoc 按列组织的快照：每个字段一条完整的值数组
type snapshotDoc struct {
	Fields  []fieldSpec    `json:"fields" yaml:"fields" msgpack:"fields"`
	Columns map[string]any `json:"columns" yaml:"columns" msgpack:"columns"`
}

// Marshal 把集合内容编码为按列组织的快照
func Marshal(c soa.Collection, format Format) ([]byte, error) {
	fields := c.Fields()
	doc := snapshotDoc{
		Fields:  make([]fieldSpec, fields.Len()),
		Columns: make(map[string]any, fields.Len()),
	}
	for i := 0; i < fields.Len(); i++ {
		f := fields.At(i)
		doc.Fields[i] = fieldSpec{Name: f.Name(), Type: f.Type().String()}
		doc.Columns[f.Name()] = c.ColumnAt(i).Raw()
	}

	switch format {
	case FormatJson:
		return json.Marshal(doc)
	case FormatYaml:
		return yaml.Marshal(doc)
	case FormatMsgPack:
		return msgpack.Marshal(doc)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

type jsonDoc struct {
	Fields  []fieldSpec                `json:"fields"`
	Columns map[string]json.RawMessage `json:"columns"`
}

type yamlDoc struct {
	Fields  []fieldSpec          `yaml:"fields"`
	Columns map[string]yaml.Node `yaml:"columns"`
}

type msgpackDoc struct {
	Fields  []fieldSpec                   `msgpack:"fields"`
	Columns map[string]msgpack.RawMessage `msgpack:"columns"`
}

// Unmarshal 把快照解码进容器，整体替换容器内容
// 快照的字段模式必须与容器完全一致；先把所有列解码并校验等长，
// 再一次性替换，不会留下解到一半的状态
func Unmarshal(data []byte, c *soa.Container, format Format) error {
	var specs []fieldSpec
	var decodeColumn func(name string, out any) error

	switch format {
	case FormatJson:
		var doc jsonDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return errors.WithMessage(err, "json.Unmarshal failed")
		}
		specs = doc.Fields
		decodeColumn = func(name string, out any) error {
			raw, ok := doc.Columns[name]
			if !ok {
				return errors.WithMessagef(ErrSchemaMismatch, "column %s missing", name)
			}
			return json.Unmarshal(raw, out)
		}
	case FormatYaml:
		var doc yamlDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return errors.WithMessage(err, "yaml.Unmarshal failed")
		}
		specs = doc.Fields
		decodeColumn = func(name string, out any) error {
			node, ok := doc.Columns[name]
			if !ok {
				return errors.WithMessagef(ErrSchemaMismatch, "column %s missing", name)
			}
			return node.Decode(out)
		}
	case FormatMsgPack:
		var doc msgpackDoc
		if err := msgpack.Unmarshal(data, &doc); err != nil {
			return errors.WithMessage(err, "msgpack.Unmarshal failed")
		}
		specs = doc.Fields
		decodeColumn = func(name string, out any) error {
			raw, ok := doc.Columns[name]
			if !ok {
				return errors.WithMessagef(ErrSchemaMismatch, "column %s missing", name)
			}
			return msgpack.Unmarshal(raw, out)
		}
	default:
		return errors.Errorf("unknown format %q", format)
	}

	fields := c.Fields()
	if len(specs) != fields.Len() {
		return errors.WithMessagef(ErrSchemaMismatch, "snapshot has %d fields, container has %d", len(specs), fields.Len())
	}
	for i, spec := range specs {
		f := fields.At(i)
		if spec.Name != f.Name() || spec.Type != f.Type().String() {
			return errors.WithMessagef(ErrSchemaMismatch, "field %d is %s(%s) in snapshot, %s(%s) in container",
				i, spec.Name, spec.Type, f.Name(), f.Type())
		}
	}

	// 先把所有列解码到独立切片
	slices := make([]reflect.Value, fields.Len())
	for i := 0; i < fields.Len(); i++ {
		f := fields.At(i)
		ptr := reflect.New(reflect.SliceOf(f.Type()))
		if err := decodeColumn(f.Name(), ptr.Interface()); err != nil {
			return errors.WithMessagef(err, "decode column %s failed", f.Name())
		}
		slices[i] = ptr.Elem()
	}

	// 列之间等长校验
	n := slices[0].Len()
	for i, s := range slices {
		if s.Len() != n {
			return errors.WithMessagef(soa.ErrLengthMismatch,
				"column %s has length %d, column %s has length %d",
				fields.At(i).Name(), s.Len(), fields.At(0).Name(), n)
		}
	}

	for i := 0; i < fields.Len(); i++ {
		if err := c.ColumnAt(i).ReplaceAll(slices[i].Interface()); err != nil {
			return errors.WithMessagef(err, "replace column %s failed", fields.At(i).Name())
		}
	}
	return nil
}
