package soa

import (
	"github.com/pkg/errors"

	"github.com/hatlonely/soax/column"
	"github.com/hatlonely/soax/field"
)

// View 非拥有的零拷贝窗口，呈现与 Container 相同的读取接口
// 没有任何结构性操作；元素内容是否可写取决于来源是否只读
//
// 视图借用来源的底层数组，来源 Container 的结构性修改会让视图失效，
// 由临时 Container 派生的视图在 Container 回收后悬空，调用方需要保证
// 来源在视图的整个生命周期内存活且不发生结构性修改
type View struct {
	collectionBase
}

// ReadOnly 冻结元素内容的视图副本，所有写路径都会被拒绝
func (v *View) ReadOnly() *View {
	return &View{collectionBase{s: newStorage(v.s.fields, v.s.cols, true)}}
}

// Select 选取字段子集的零拷贝视图，字段顺序按参数顺序
func Select(c Collection, fields ...field.Descriptor) (*View, error) {
	s := c.storageRef()
	list, err := field.NewList(fields...)
	if err != nil {
		return nil, errors.WithMessage(err, "field.NewList failed")
	}
	if list.Len() == 0 {
		return nil, ErrNoFields
	}

	n := s.size()
	cols := make([]column.Column, list.Len())
	for i := 0; i < list.Len(); i++ {
		f := list.At(i)
		pos, ok := s.find(f)
		if !ok {
			return nil, errors.WithMessagef(field.ErrFieldNotFound, "field %s not in %v", f.Name(), s.fields.Names())
		}
		cols[i] = s.cols[pos].Slice(0, n)
	}

	return &View{collectionBase{s: newStorage(list, cols, s.readonly)}}, nil
}

// Zip 把多个等长集合拼接成一个视图，字段序列为各来源字段序列的连接
// 长度不一致返回 ErrLengthMismatch，字段重复返回 ErrDuplicateField
func Zip(cs ...Collection) (*View, error) {
	if len(cs) == 0 {
		return nil, errors.New("no collections to zip")
	}

	n := cs[0].Len()
	merged := cs[0].storageRef().fields
	readonly := cs[0].IsReadOnly()
	for _, c := range cs[1:] {
		if c.Len() != n {
			return nil, errors.WithMessagef(ErrLengthMismatch, "size %d vs %d", n, c.Len())
		}
		var err error
		merged, err = merged.Concat(c.storageRef().fields)
		if err != nil {
			return nil, errors.WithMessage(err, "field list concat failed")
		}
		readonly = readonly || c.IsReadOnly()
	}

	cols := make([]column.Column, 0, merged.Len())
	for _, c := range cs {
		cols = append(cols, c.storageRef().borrowAll(0, n)...)
	}

	return &View{collectionBase{s: newStorage(merged, cols, readonly)}}, nil
}

// SlicePair 外部切片与其字段标识的配对
type SlicePair struct {
	Field field.Descriptor
	Slice any
}

// FromSlices 把若干外部切片包装成一个零拷贝视图
// 所有切片长度必须一致，元素类型必须与对应字段一致
func FromSlices(pairs ...SlicePair) (*View, error) {
	if len(pairs) == 0 {
		return nil, ErrNoFields
	}

	fields := make([]field.Descriptor, len(pairs))
	cols := make([]column.Column, len(pairs))
	for i, pair := range pairs {
		if pair.Field == nil {
			return nil, errors.New("field is nil")
		}
		col, err := pair.Field.NewBorrowed(pair.Slice)
		if err != nil {
			return nil, err
		}
		fields[i] = pair.Field
		cols[i] = col
	}

	n := cols[0].Len()
	for i, col := range cols {
		if col.Len() != n {
			return nil, errors.WithMessagef(ErrLengthMismatch, "field %s has length %d, field %s has length %d",
				fields[i].Name(), col.Len(), fields[0].Name(), n)
		}
	}

	list, err := field.NewList(fields...)
	if err != nil {
		return nil, errors.WithMessage(err, "field.NewList failed")
	}

	return &View{collectionBase{s: newStorage(list, cols, false)}}, nil
}

// Range 视图在字段 f 上的原始窗口切片
func Range[T any](c Collection, f *field.Field[T]) ([]T, error) {
	return FieldData(c, f)
}
