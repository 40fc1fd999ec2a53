package field

import (
	"encoding/json"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format 字段声明文档的格式
type Format string

const (
	FormatJson Format = "json"
	FormatYaml Format = "yaml"
	FormatToml Format = "toml"
)

// Spec 单个字段的声明
type Spec struct {
	Name string `yaml:"name" json:"name" toml:"name"`
	Type string `yaml:"type" json:"type" toml:"type"`
}

type document struct {
	Fields []Spec `yaml:"fields" json:"fields" toml:"fields"`
}

var (
	typeRegistryMu sync.RWMutex
	typeRegistry   = map[string]func(name string) Descriptor{}
)

// RegisterType 注册类型名到字段构造器的映射，供 Load 使用
// 同名重复注册时覆盖
func RegisterType[T any](typeName string) {
	typeRegistryMu.Lock()
	defer typeRegistryMu.Unlock()
	typeRegistry[typeName] = func(name string) Descriptor {
		return New[T](name)
	}
}

func init() {
	RegisterType[bool]("bool")
	RegisterType[int]("int")
	RegisterType[int8]("int8")
	RegisterType[int16]("int16")
	RegisterType[int32]("int32")
	RegisterType[int64]("int64")
	RegisterType[uint]("uint")
	RegisterType[uint8]("uint8")
	RegisterType[uint16]("uint16")
	RegisterType[uint32]("uint32")
	RegisterType[uint64]("uint64")
	RegisterType[float32]("float32")
	RegisterType[float64]("float64")
	RegisterType[string]("string")
}

// Load 从声明文档构建字段序列
//
//	fields:
//	  - name: x
//	    type: float64
//	  - name: n
//	    type: int
func Load(data []byte, format Format) (List, error) {
	var doc document
	switch format {
	case FormatJson:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WithMessage(err, "json.Unmarshal failed")
		}
	case FormatYaml:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WithMessage(err, "yaml.Unmarshal failed")
		}
	case FormatToml:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WithMessage(err, "toml.Unmarshal failed")
		}
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}

	if len(doc.Fields) == 0 {
		return nil, errors.New("document declares no fields")
	}

	typeRegistryMu.RLock()
	defer typeRegistryMu.RUnlock()

	fields := make([]Descriptor, 0, len(doc.Fields))
	for _, spec := range doc.Fields {
		if spec.Name == "" {
			return nil, errors.New("field name is empty")
		}
		newField, ok := typeRegistry[spec.Type]
		if !ok {
			return nil, errors.Errorf("unknown field type %q for field %q", spec.Type, spec.Name)
		}
		fields = append(fields, newField(spec.Name))
	}

	return NewList(fields...)
}
