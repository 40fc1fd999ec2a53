package soa

import (
	"github.com/pkg/errors"

	"github.com/hatlonely/soax/column"
	"github.com/hatlonely/soax/field"
)

// ContainerOptions 容器创建选项
type ContainerOptions struct {
	// Fields 字段序列，不能为空
	Fields field.List `cfg:"fields"`

	// InitialCapacity 每条列的初始容量
	InitialCapacity int `cfg:"initialCapacity" validate:"gte=0"`

	// InitialLen 初始长度，元素为字段零值
	InitialLen int `cfg:"initialLen" validate:"gte=0"`

	// Checked 开启后每次结构性操作都会校验列长度一致性
	// 热路径下的下标访问不受影响
	Checked bool `cfg:"checked"`
}

// Container 拥有数据的 SOA 集合，所有结构性操作对每条列同步生效
type Container struct {
	collectionBase

	checked bool
}

// NewContainer 按字段序列创建空容器
func NewContainer(fields ...field.Descriptor) (*Container, error) {
	list, err := field.NewList(fields...)
	if err != nil {
		return nil, errors.WithMessage(err, "field.NewList failed")
	}
	return NewContainerWithOptions(&ContainerOptions{Fields: list})
}

// MustNewContainer 同 NewContainer，出错时 panic
func MustNewContainer(fields ...field.Descriptor) *Container {
	c, err := NewContainer(fields...)
	if err != nil {
		panic(err)
	}
	return c
}

func NewContainerWithOptions(options *ContainerOptions) (*Container, error) {
	if options == nil {
		return nil, errors.New("options is nil")
	}
	if err := validateStruct(options); err != nil {
		return nil, errors.WithMessage(err, "validateStruct failed")
	}
	if options.Fields.Len() == 0 {
		return nil, ErrNoFields
	}
	// Fields 可能由调用方手工拼出来，这里重新做一遍去重校验
	list, err := field.NewList(options.Fields...)
	if err != nil {
		return nil, errors.WithMessage(err, "field.NewList failed")
	}

	cols := make([]column.Column, list.Len())
	for i := 0; i < list.Len(); i++ {
		cols[i] = list.At(i).NewColumn(options.InitialCapacity)
	}

	c := &Container{
		collectionBase: collectionBase{s: newStorage(list, cols, false)},
		checked:        options.Checked,
	}
	if options.InitialLen > 0 {
		if err := c.Resize(options.InitialLen, nil); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// afterMutate Checked 模式下校验长度不变量
func (c *Container) afterMutate() error {
	if !c.checked {
		return nil
	}
	return c.s.checkLengths()
}

// PushBack 追加一条记录
// 先对所有列做类型校验，再逐列追加，保证不会出现部分列追加成功的状态
func (c *Container) PushBack(rec Record) error {
	if err := bindRecord(c.s.fields, rec); err != nil {
		return err
	}
	for k, col := range c.s.cols {
		if err := col.PushBack(rec[k]); err != nil {
			return errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
	}
	return c.afterMutate()
}

// EmplaceBack 按字段顺序逐个传值追加，值个数必须与字段个数严格一致
func (c *Container) EmplaceBack(vals ...any) error {
	if len(vals) != c.s.fields.Len() {
		return errors.WithMessagef(ErrArity, "got %d values, want %d fields %v", len(vals), c.s.fields.Len(), c.s.fields.Names())
	}
	return c.PushBack(Record(vals))
}

// PopBack 删除末尾一条记录
func (c *Container) PopBack() error {
	n := c.s.size()
	if n == 0 {
		return errors.WithMessage(ErrOutOfRange, "container is empty")
	}
	_, err := c.EraseRange(n-1, n)
	return err
}

// Insert 在 i 处插入一条记录，返回指向新元素的迭代器
func (c *Container) Insert(i int, rec Record) (Iterator, error) {
	return c.InsertN(i, 1, rec)
}

// InsertN 在 i 处插入 n 条相同记录
func (c *Container) InsertN(i int, n int, rec Record) (Iterator, error) {
	if i < 0 || i > c.s.size() {
		return Iterator{}, errors.WithMessagef(ErrOutOfRange, "index %d, len %d", i, c.s.size())
	}
	if n < 0 {
		return Iterator{}, errors.WithMessagef(ErrOutOfRange, "negative count %d", n)
	}
	if err := bindRecord(c.s.fields, rec); err != nil {
		return Iterator{}, err
	}
	for k, col := range c.s.cols {
		if err := col.Insert(i, rec[k], n); err != nil {
			return Iterator{}, errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
	}
	if err := c.afterMutate(); err != nil {
		return Iterator{}, err
	}
	return Iterator{s: c.s, i: i}, nil
}

// InsertFrom 在 i 处插入 src 的全部记录，逐列整体复制
// src 的字段序列必须与容器逐位相同，src 可以是容器自身的视图
func (c *Container) InsertFrom(i int, src Collection) (Iterator, error) {
	if i < 0 || i > c.s.size() {
		return Iterator{}, errors.WithMessagef(ErrOutOfRange, "index %d, len %d", i, c.s.size())
	}
	ss := src.storageRef()
	if !c.s.fields.Equal(ss.fields) {
		return Iterator{}, errors.WithMessagef(ErrFieldMismatch, "%v vs %v", c.s.fields.Names(), ss.fields.Names())
	}
	n := ss.size()
	for k, col := range c.s.cols {
		if err := col.InsertFrom(i, ss.cols[k], 0, n); err != nil {
			return Iterator{}, errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
	}
	if err := c.afterMutate(); err != nil {
		return Iterator{}, err
	}
	return Iterator{s: c.s, i: i}, nil
}

// Erase 删除 i 处的记录，返回指向后继元素的迭代器
func (c *Container) Erase(i int) (Iterator, error) {
	if i < 0 || i >= c.s.size() {
		return Iterator{}, errors.WithMessagef(ErrOutOfRange, "index %d, len %d", i, c.s.size())
	}
	return c.EraseRange(i, i+1)
}

// EraseRange 删除 [lo, hi) 区间，空区间是无副作用的合法调用
func (c *Container) EraseRange(lo, hi int) (Iterator, error) {
	if lo < 0 || hi < lo || hi > c.s.size() {
		return Iterator{}, errors.WithMessagef(ErrOutOfRange, "range [%d, %d), len %d", lo, hi, c.s.size())
	}
	for k, col := range c.s.cols {
		if err := col.Erase(lo, hi); err != nil {
			return Iterator{}, errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
	}
	if err := c.afterMutate(); err != nil {
		return Iterator{}, err
	}
	return Iterator{s: c.s, i: lo}, nil
}

// Resize 把每条列的长度统一调整到 n
// fill 为 nil 时增长部分用字段零值，否则用 fill 对应字段的值
func (c *Container) Resize(n int, fill Record) error {
	if n < 0 {
		return errors.WithMessagef(ErrOutOfRange, "negative size %d", n)
	}
	if fill != nil {
		if err := bindRecord(c.s.fields, fill); err != nil {
			return err
		}
	}
	for k, col := range c.s.cols {
		var v any
		if fill != nil {
			v = fill[k]
		}
		if err := col.Resize(n, v); err != nil {
			return errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
	}
	return c.afterMutate()
}

// Reserve 每条列预留至少 n 的容量
func (c *Container) Reserve(n int) {
	for _, col := range c.s.cols {
		col.Reserve(n)
	}
}

// Cap 所有列容量的最小值，保守容量下界
func (c *Container) Cap() int {
	capacity := c.s.cols[0].Cap()
	for _, col := range c.s.cols[1:] {
		if col.Cap() < capacity {
			capacity = col.Cap()
		}
	}
	return capacity
}

func (c *Container) ShrinkToFit() {
	for _, col := range c.s.cols {
		col.ShrinkToFit()
	}
}

// Assign 用 n 条相同记录整体替换内容
func (c *Container) Assign(n int, rec Record) error {
	if n < 0 {
		return errors.WithMessagef(ErrOutOfRange, "negative count %d", n)
	}
	if err := bindRecord(c.s.fields, rec); err != nil {
		return err
	}
	for k, col := range c.s.cols {
		if err := col.Erase(0, col.Len()); err != nil {
			return errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
		if err := col.Insert(0, rec[k], n); err != nil {
			return errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
	}
	return c.afterMutate()
}

// AssignFrom 用 src 的全部记录整体替换内容
func (c *Container) AssignFrom(src Collection) error {
	ss := src.storageRef()
	if !c.s.fields.Equal(ss.fields) {
		return errors.WithMessagef(ErrFieldMismatch, "%v vs %v", c.s.fields.Names(), ss.fields.Names())
	}
	n := ss.size()
	for k, col := range c.s.cols {
		// 先整体复制源列，源可能是本容器自身的视图
		tmp := ss.cols[k].Clone()
		if err := col.Erase(0, col.Len()); err != nil {
			return errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
		if err := col.InsertFrom(0, tmp, 0, n); err != nil {
			return errors.WithMessagef(err, "field %s", c.s.fields.At(k).Name())
		}
	}
	return c.afterMutate()
}

// Clear 清空所有记录，保留容量
func (c *Container) Clear() {
	for _, col := range c.s.cols {
		// 拥有列上 Erase 全区间不会失败
		_ = col.Erase(0, col.Len())
	}
}

// View 覆盖全部字段和全部下标的零拷贝视图
func (c *Container) View() *View {
	return &View{collectionBase{s: newStorage(c.s.fields, c.s.borrowAll(0, c.s.size()), false)}}
}
