package field

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// List 有序的字段序列，顺序决定存储列顺序和记录内的位置
// 通过 NewList / Concat 构造，构造后不再变化
type List []Descriptor

// NewList 创建字段序列，按身份和名字去重，重复时返回 ErrDuplicateField
func NewList(fields ...Descriptor) (List, error) {
	names := make(map[string]struct{}, len(fields))
	seen := make(map[Descriptor]struct{}, len(fields))
	for _, f := range fields {
		if f == nil {
			return nil, errors.New("field is nil")
		}
		if _, ok := seen[f]; ok {
			return nil, errors.WithMessagef(ErrDuplicateField, "field %s", f.Name())
		}
		if _, ok := names[f.Name()]; ok {
			return nil, errors.WithMessagef(ErrDuplicateField, "field name %s", f.Name())
		}
		seen[f] = struct{}{}
		names[f.Name()] = struct{}{}
	}
	return List(fields), nil
}

// MustNewList 同 NewList，出错时 panic
func MustNewList(fields ...Descriptor) List {
	l, err := NewList(fields...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l List) Len() int {
	return len(l)
}

func (l List) At(i int) Descriptor {
	return l[i]
}

// Find 按身份查找字段位置
func (l List) Find(f Descriptor) (int, bool) {
	for i, d := range l {
		if d == f {
			return i, true
		}
	}
	return 0, false
}

// MustFind 同 Find，字段不存在时 panic 并给出字段名
func (l List) MustFind(f Descriptor) int {
	i, ok := l.Find(f)
	if !ok {
		panic(fmt.Sprintf("field %s not in list %v", f.Name(), l.Names()))
	}
	return i
}

func (l List) Contains(f Descriptor) bool {
	_, ok := l.Find(f)
	return ok
}

// CountType 统计值类型为 t 的字段个数
func (l List) CountType(t reflect.Type) int {
	n := 0
	for _, d := range l {
		if d.Type() == t {
			n++
		}
	}
	return n
}

// FindByType 按裸值类型推断字段位置
// 没有匹配返回 ErrFieldNotFound，多于一个匹配返回 ErrAmbiguousField
func (l List) FindByType(t reflect.Type) (int, error) {
	pos := -1
	for i, d := range l {
		if d.Type() != t {
			continue
		}
		if pos >= 0 {
			return 0, errors.WithMessagef(ErrAmbiguousField, "type %s matches fields %s and %s", t, l[pos].Name(), d.Name())
		}
		pos = i
	}
	if pos < 0 {
		return 0, errors.WithMessagef(ErrFieldNotFound, "no field of type %s", t)
	}
	return pos, nil
}

// Concat 拼接两个字段序列，用于 zip，重复字段返回 ErrDuplicateField
func (l List) Concat(other List) (List, error) {
	merged := make([]Descriptor, 0, len(l)+len(other))
	merged = append(merged, l...)
	merged = append(merged, other...)
	return NewList(merged...)
}

func (l List) Names() []string {
	names := make([]string, len(l))
	for i, d := range l {
		names[i] = d.Name()
	}
	return names
}

// Equal 按身份逐位比较
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}
