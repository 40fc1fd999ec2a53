package soa

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hatlonely/soax/column"
	"github.com/hatlonely/soax/field"
)

// Proxy 逻辑下标处的记录代理，只持有存储引用和下标，不拥有数据
// 读写都直接落在底层存储列上
//
// 代理的赋值语义分为两个互不混淆的操作：
//   - CopyFrom / CopyRecord：值语义，把来源的字段内容复制到当前下标，
//     不改变代理指向哪个下标
//   - Rebind：指针语义，改变代理指向的 (存储, 下标)，不触碰任何数据
//
// 底层 Container 发生重新分配或销毁后代理失效，失效后的使用行为未定义
type Proxy struct {
	s *storage
	i int
}

// Index 代理指向的逻辑下标
func (p Proxy) Index() int {
	return p.i
}

// Valid 代理是否指向有效下标
func (p Proxy) Valid() bool {
	return p.s != nil && p.i >= 0 && p.i < p.s.size()
}

// Fields 代理背后的字段序列
func (p Proxy) Fields() field.List {
	return p.s.fields
}

// Record 当前下标处所有字段值的独立快照
func (p Proxy) Record() Record {
	rec := make(Record, len(p.s.cols))
	for k, col := range p.s.cols {
		rec[k] = col.Get(p.i)
	}
	return rec
}

// GetAt 按字段位置读取
func (p Proxy) GetAt(pos int) any {
	return p.s.cols[pos].Get(p.i)
}

// SetAt 按字段位置写入
func (p Proxy) SetAt(pos int, v any) error {
	if p.s.readonly {
		return ErrReadOnly
	}
	if pos < 0 || pos >= len(p.s.cols) {
		return errors.WithMessagef(ErrOutOfRange, "field position %d, field count %d", pos, len(p.s.cols))
	}
	return p.s.cols[pos].Set(p.i, v)
}

// CopyFrom 值语义赋值：把 other 的字段内容复制到当前下标
// 两个代理的字段序列必须逐位相同
func (p Proxy) CopyFrom(other Proxy) error {
	if p.s.readonly {
		return ErrReadOnly
	}
	if !p.s.fields.Equal(other.s.fields) {
		return errors.WithMessagef(ErrFieldMismatch, "%v vs %v", p.s.fields.Names(), other.s.fields.Names())
	}
	for k, col := range p.s.cols {
		if err := col.CopyElem(p.i, other.s.cols[k], other.i); err != nil {
			return errors.WithMessagef(err, "field %s", p.s.fields.At(k).Name())
		}
	}
	return nil
}

// CopyRecord 值语义赋值：把记录的字段值写入当前下标
func (p Proxy) CopyRecord(rec Record) error {
	if p.s.readonly {
		return ErrReadOnly
	}
	if err := bindRecord(p.s.fields, rec); err != nil {
		return err
	}
	for k, col := range p.s.cols {
		if err := col.Set(p.i, rec[k]); err != nil {
			return errors.WithMessagef(err, "field %s", p.s.fields.At(k).Name())
		}
	}
	return nil
}

// Rebind 指针语义赋值：让代理改为指向 other 的 (存储, 下标)，不复制数据
func (p *Proxy) Rebind(other Proxy) {
	p.s = other.s
	p.i = other.i
}

// Equal 按字段逐位比较两个代理指向的内容
func (p Proxy) Equal(other Proxy) bool {
	if !p.s.fields.Equal(other.s.fields) {
		return false
	}
	for k, col := range p.s.cols {
		if !col.Equal(p.i, other.s.cols[k], other.i) {
			return false
		}
	}
	return true
}

// EqualRecord 代理内容与记录按字段逐位比较
func (p Proxy) EqualRecord(rec Record) bool {
	if len(rec) != len(p.s.cols) {
		return false
	}
	return p.Record().Equal(rec)
}

// Compare 按字段顺序做字典序三向比较
func (p Proxy) Compare(other Proxy) (int, error) {
	if !p.s.fields.Equal(other.s.fields) {
		return 0, errors.WithMessagef(ErrFieldMismatch, "%v vs %v", p.s.fields.Names(), other.s.fields.Names())
	}
	for k, col := range p.s.cols {
		c, err := col.Compare(p.i, other.s.cols[k], other.i)
		if err != nil {
			return 0, errors.WithMessagef(err, "field %s", p.s.fields.At(k).Name())
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// CompareRecord 代理内容与记录按字段顺序做字典序三向比较
func (p Proxy) CompareRecord(rec Record) (int, error) {
	if err := bindRecord(p.s.fields, rec); err != nil {
		return 0, err
	}
	for k, col := range p.s.cols {
		c, err := column.CompareAny(col.Get(p.i), rec[k])
		if err != nil {
			return 0, errors.WithMessagef(err, "field %s", p.s.fields.At(k).Name())
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// Less 字典序小于，字段不可排序时 panic
func (p Proxy) Less(other Proxy) bool {
	c, err := p.Compare(other)
	if err != nil {
		panic(err)
	}
	return c < 0
}

// Swap 交换两个代理指向的字段内容，不改变任何一方指向的下标
func Swap(a, b Proxy) error {
	if a.s.readonly || b.s.readonly {
		return ErrReadOnly
	}
	if !a.s.fields.Equal(b.s.fields) {
		return errors.WithMessagef(ErrFieldMismatch, "%v vs %v", a.s.fields.Names(), b.s.fields.Names())
	}
	if a.s == b.s {
		for _, col := range a.s.cols {
			col.Swap(a.i, b.i)
		}
		return nil
	}
	for k, col := range a.s.cols {
		tmp := col.Get(a.i)
		if err := col.CopyElem(a.i, b.s.cols[k], b.i); err != nil {
			return err
		}
		if err := b.s.cols[k].Set(b.i, tmp); err != nil {
			return err
		}
	}
	return nil
}

// Get 返回代理在字段 f 处的元素直接引用，通过它读写直接作用于底层列
// 字段不存在、类型不匹配或集合只读时 panic，属于调用方前置条件
func Get[T any](p Proxy, f *field.Field[T]) *T {
	if p.s.readonly {
		panic(fmt.Sprintf("field %s: %s", f.Name(), ErrReadOnly))
	}
	pos, ok := p.s.find(f)
	if !ok {
		panic(fmt.Sprintf("field %s not in %v", f.Name(), p.s.fields.Names()))
	}
	col, ok := p.s.cols[pos].(*column.Slice[T])
	if !ok {
		panic(fmt.Sprintf("field %s: column element is %s", f.Name(), p.s.cols[pos].Elem()))
	}
	return col.At(p.i)
}

// Value 读取代理在字段 f 处的元素副本，只读集合上也可用
func Value[T any](p Proxy, f *field.Field[T]) T {
	pos, ok := p.s.find(f)
	if !ok {
		panic(fmt.Sprintf("field %s not in %v", f.Name(), p.s.fields.Names()))
	}
	col, ok := p.s.cols[pos].(*column.Slice[T])
	if !ok {
		panic(fmt.Sprintf("field %s: column element is %s", f.Name(), p.s.cols[pos].Elem()))
	}
	return *col.At(p.i)
}

// Set 写入代理在字段 f 处的元素
func Set[T any](p Proxy, f *field.Field[T], v T) error {
	if p.s.readonly {
		return ErrReadOnly
	}
	pos, ok := p.s.find(f)
	if !ok {
		return errors.WithMessagef(field.ErrFieldNotFound, "field %s not in %v", f.Name(), p.s.fields.Names())
	}
	return p.s.cols[pos].Set(p.i, v)
}
