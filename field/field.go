package field

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/hatlonely/soax/column"
)

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrFieldNotFound  = errors.New("field not found")
	ErrAmbiguousField = errors.New("ambiguous field")
)

// Descriptor 逻辑字段的标识，同时充当该字段存储列的工厂
// 同一个 Descriptor 实例代表同一个字段，身份按实例区分
type Descriptor interface {
	Name() string
	// Type 字段值类型
	Type() reflect.Type
	// NewColumn 创建该字段的拥有存储列
	NewColumn(capacity int) column.Column
	// NewBorrowed 将外部切片包装为该字段的借用列，切片元素类型不匹配时报错
	NewBorrowed(slice any) (column.Column, error)
}

// Field 带类型参数的字段标识，通过 New 创建
type Field[T any] struct {
	name string
}

// New 创建一个名为 name、值类型为 T 的字段标识
func New[T any](name string) *Field[T] {
	return &Field[T]{name: name}
}

func (f *Field[T]) Name() string {
	return f.name
}

func (f *Field[T]) Type() reflect.Type {
	var t T
	return reflect.TypeOf(t)
}

func (f *Field[T]) NewColumn(capacity int) column.Column {
	return column.NewSlice[T](capacity)
}

func (f *Field[T]) NewBorrowed(slice any) (column.Column, error) {
	s, ok := slice.([]T)
	if !ok {
		return nil, errors.WithMessagef(column.ErrTypeMismatch, "field %s: slice is %T, want []%s", f.name, slice, f.Type())
	}
	return column.Borrow(s), nil
}
