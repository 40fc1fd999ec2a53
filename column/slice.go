package column

import (
	"reflect"
	"slices"

	"github.com/pkg/errors"
)

// Slice 基于 Go 切片的动态数组列实现
// 借用窗口与拥有列共享同一类型，通过 borrowed 标记区分
type Slice[T any] struct {
	data     []T
	borrowed bool
}

// NewSlice 创建空的拥有列，预留 capacity 容量
func NewSlice[T any](capacity int) *Slice[T] {
	return &Slice[T]{
		data: make([]T, 0, capacity),
	}
}

// NewSliceFrom 接管给定切片作为拥有列
func NewSliceFrom[T any](data []T) *Slice[T] {
	return &Slice[T]{
		data: data,
	}
}

// Borrow 将外部切片包装为借用窗口，元素读写直接落在原切片上
func Borrow[T any](data []T) *Slice[T] {
	return &Slice[T]{
		data:     data,
		borrowed: true,
	}
}

// Data 取出列的原始切片，供单列算法直接使用
func Data[T any](c Column) ([]T, error) {
	s, ok := c.(*Slice[T])
	if !ok {
		var t T
		return nil, errors.WithMessagef(ErrTypeMismatch, "column element is %s, want %s", c.Elem(), reflect.TypeOf(t))
	}
	return s.data, nil
}

func (c *Slice[T]) Len() int {
	return len(c.data)
}

func (c *Slice[T]) Cap() int {
	return cap(c.data)
}

func (c *Slice[T]) Elem() reflect.Type {
	var t T
	return reflect.TypeOf(t)
}

func (c *Slice[T]) Borrowed() bool {
	return c.borrowed
}

func (c *Slice[T]) Raw() any {
	return c.data
}

func (c *Slice[T]) Get(i int) any {
	return c.data[i]
}

// At 返回元素的直接引用
func (c *Slice[T]) At(i int) *T {
	return &c.data[i]
}

func (c *Slice[T]) Set(i int, v any) error {
	if i < 0 || i >= len(c.data) {
		return errors.WithMessagef(ErrOutOfRange, "index %d, len %d", i, len(c.data))
	}
	t, ok := v.(T)
	if !ok {
		return errors.WithMessagef(ErrTypeMismatch, "value is %T, want %s", v, c.Elem())
	}
	c.data[i] = t
	return nil
}

func (c *Slice[T]) Swap(i, j int) {
	c.data[i], c.data[j] = c.data[j], c.data[i]
}

func (c *Slice[T]) CopyElem(dst int, src Column, srcIdx int) error {
	s, ok := src.(*Slice[T])
	if !ok {
		return errors.WithMessagef(ErrTypeMismatch, "source column element is %s, want %s", src.Elem(), c.Elem())
	}
	if dst < 0 || dst >= len(c.data) {
		return errors.WithMessagef(ErrOutOfRange, "dst index %d, len %d", dst, len(c.data))
	}
	if srcIdx < 0 || srcIdx >= len(s.data) {
		return errors.WithMessagef(ErrOutOfRange, "src index %d, len %d", srcIdx, len(s.data))
	}
	c.data[dst] = s.data[srcIdx]
	return nil
}

func (c *Slice[T]) PushBack(v any) error {
	if c.borrowed {
		return ErrBorrowed
	}
	t, ok := v.(T)
	if !ok {
		return errors.WithMessagef(ErrTypeMismatch, "value is %T, want %s", v, c.Elem())
	}
	c.data = append(c.data, t)
	return nil
}

// Push 类型安全的追加
func (c *Slice[T]) Push(v T) error {
	if c.borrowed {
		return ErrBorrowed
	}
	c.data = append(c.data, v)
	return nil
}

func (c *Slice[T]) Insert(i int, v any, n int) error {
	if c.borrowed {
		return ErrBorrowed
	}
	if i < 0 || i > len(c.data) {
		return errors.WithMessagef(ErrOutOfRange, "index %d, len %d", i, len(c.data))
	}
	if n < 0 {
		return errors.WithMessagef(ErrOutOfRange, "negative count %d", n)
	}
	t, ok := v.(T)
	if !ok {
		return errors.WithMessagef(ErrTypeMismatch, "value is %T, want %s", v, c.Elem())
	}
	fill := make([]T, n)
	for k := range fill {
		fill[k] = t
	}
	c.data = slices.Insert(c.data, i, fill...)
	return nil
}

func (c *Slice[T]) InsertFrom(i int, src Column, lo, hi int) error {
	if c.borrowed {
		return ErrBorrowed
	}
	s, ok := src.(*Slice[T])
	if !ok {
		return errors.WithMessagef(ErrTypeMismatch, "source column element is %s, want %s", src.Elem(), c.Elem())
	}
	if i < 0 || i > len(c.data) {
		return errors.WithMessagef(ErrOutOfRange, "index %d, len %d", i, len(c.data))
	}
	if lo < 0 || hi < lo || hi > len(s.data) {
		return errors.WithMessagef(ErrOutOfRange, "range [%d, %d), src len %d", lo, hi, len(s.data))
	}
	// 先复制一份，避免源窗口与本列底层数组重叠时数据错乱
	tmp := slices.Clone(s.data[lo:hi])
	c.data = slices.Insert(c.data, i, tmp...)
	return nil
}

func (c *Slice[T]) Erase(lo, hi int) error {
	if c.borrowed {
		return ErrBorrowed
	}
	if lo < 0 || hi < lo || hi > len(c.data) {
		return errors.WithMessagef(ErrOutOfRange, "range [%d, %d), len %d", lo, hi, len(c.data))
	}
	c.data = slices.Delete(c.data, lo, hi)
	return nil
}

func (c *Slice[T]) Resize(n int, fill any) error {
	if c.borrowed {
		return ErrBorrowed
	}
	if n < 0 {
		return errors.WithMessagef(ErrOutOfRange, "negative size %d", n)
	}
	if n <= len(c.data) {
		c.data = c.data[:n]
		return nil
	}
	var t T
	if fill != nil {
		v, ok := fill.(T)
		if !ok {
			return errors.WithMessagef(ErrTypeMismatch, "fill value is %T, want %s", fill, c.Elem())
		}
		t = v
	}
	for len(c.data) < n {
		c.data = append(c.data, t)
	}
	return nil
}

func (c *Slice[T]) ReplaceAll(slice any) error {
	if c.borrowed {
		return ErrBorrowed
	}
	s, ok := slice.([]T)
	if !ok {
		return errors.WithMessagef(ErrTypeMismatch, "slice is %T, want []%s", slice, c.Elem())
	}
	c.data = slices.Clone(s)
	return nil
}

// Reserve 保证容量不小于 n，借用窗口上不做任何事
func (c *Slice[T]) Reserve(n int) {
	if c.borrowed {
		return
	}
	if n > cap(c.data) {
		c.data = slices.Grow(c.data, n-len(c.data))
	}
}

// ShrinkToFit 去除多余容量，借用窗口上不做任何事
func (c *Slice[T]) ShrinkToFit() {
	if c.borrowed {
		return
	}
	c.data = slices.Clip(c.data)
}

func (c *Slice[T]) Slice(lo, hi int) Column {
	return &Slice[T]{
		data:     c.data[lo:hi:hi],
		borrowed: true,
	}
}

func (c *Slice[T]) Clone() Column {
	return &Slice[T]{
		data: slices.Clone(c.data),
	}
}

func (c *Slice[T]) Compare(i int, other Column, j int) (int, error) {
	o, ok := other.(*Slice[T])
	if !ok {
		return 0, errors.WithMessagef(ErrTypeMismatch, "other column element is %s, want %s", other.Elem(), c.Elem())
	}
	return compareValues(reflect.ValueOf(c.data[i]), reflect.ValueOf(o.data[j]))
}

func (c *Slice[T]) Equal(i int, other Column, j int) bool {
	o, ok := other.(*Slice[T])
	if !ok {
		return false
	}
	return reflect.DeepEqual(c.data[i], o.data[j])
}
