package soa

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/hatlonely/soax/column"
	"github.com/hatlonely/soax/field"
)

// Collection Container 与 View 共同的读取接口
// 算法层只依赖这个接口，不关心数据是拥有还是借用
type Collection interface {
	Fields() field.List
	Len() int
	Empty() bool
	// Index 无越界检查的下标访问，越界行为未定义
	Index(i int) Proxy
	// At 带越界检查的下标访问
	At(i int) (Proxy, error)
	Front() Proxy
	Back() Proxy
	Begin() Iterator
	End() Iterator
	// All 按下标顺序遍历所有记录代理
	All() iter.Seq2[int, Proxy]
	// IsReadOnly 元素内容是否只读
	IsReadOnly() bool
	// ColumnAt 第 i 个字段的底层存储列
	ColumnAt(i int) column.Column

	storageRef() *storage
}

// collectionBase Container 与 View 的公共实现
type collectionBase struct {
	s *storage
}

func (c *collectionBase) storageRef() *storage {
	return c.s
}

func (c *collectionBase) Fields() field.List {
	return c.s.fields
}

func (c *collectionBase) Len() int {
	return c.s.size()
}

func (c *collectionBase) Empty() bool {
	return c.s.size() == 0
}

func (c *collectionBase) IsReadOnly() bool {
	return c.s.readonly
}

func (c *collectionBase) Index(i int) Proxy {
	return Proxy{s: c.s, i: i}
}

func (c *collectionBase) At(i int) (Proxy, error) {
	if i < 0 || i >= c.s.size() {
		return Proxy{}, errors.WithMessagef(ErrOutOfRange, "index %d, len %d", i, c.s.size())
	}
	return Proxy{s: c.s, i: i}, nil
}

func (c *collectionBase) Front() Proxy {
	return Proxy{s: c.s, i: 0}
}

func (c *collectionBase) Back() Proxy {
	return Proxy{s: c.s, i: c.s.size() - 1}
}

func (c *collectionBase) Begin() Iterator {
	return Iterator{s: c.s, i: 0}
}

func (c *collectionBase) End() Iterator {
	return Iterator{s: c.s, i: c.s.size()}
}

func (c *collectionBase) All() iter.Seq2[int, Proxy] {
	return func(yield func(int, Proxy) bool) {
		for i := 0; i < c.s.size(); i++ {
			if !yield(i, Proxy{s: c.s, i: i}) {
				return
			}
		}
	}
}

// ColumnAt 第 i 个字段的底层存储列
// 绕过代理层和只读标记的逃生通道，序列化等按列批量处理的场景使用
func (c *collectionBase) ColumnAt(i int) column.Column {
	return c.s.cols[i]
}

// Slice 集合 [lo, hi) 下标区间的零拷贝视图
func (c *collectionBase) Slice(lo, hi int) (*View, error) {
	if lo < 0 || hi < lo || hi > c.s.size() {
		return nil, errors.WithMessagef(ErrOutOfRange, "range [%d, %d), len %d", lo, hi, c.s.size())
	}
	return &View{collectionBase{s: newStorage(c.s.fields, c.s.borrowAll(lo, hi), c.s.readonly)}}, nil
}

// FieldData 单个字段的原始切片，跳过代理层直接跑单列算法
// 只读集合返回 ErrReadOnly，用 FieldValues 取副本
func FieldData[T any](c Collection, f *field.Field[T]) ([]T, error) {
	s := c.storageRef()
	if s.readonly {
		return nil, ErrReadOnly
	}
	pos, ok := s.find(f)
	if !ok {
		return nil, errors.WithMessagef(field.ErrFieldNotFound, "field %s not in %v", f.Name(), s.fields.Names())
	}
	return column.Data[T](s.cols[pos])
}

// FieldValues 单个字段所有值的独立副本
func FieldValues[T any](c Collection, f *field.Field[T]) ([]T, error) {
	s := c.storageRef()
	pos, ok := s.find(f)
	if !ok {
		return nil, errors.WithMessagef(field.ErrFieldNotFound, "field %s not in %v", f.Name(), s.fields.Names())
	}
	data, err := column.Data[T](s.cols[pos])
	if err != nil {
		return nil, err
	}
	out := make([]T, len(data))
	copy(out, data)
	return out, nil
}
