package soa

import (
	"github.com/pkg/errors"

	"github.com/hatlonely/soax/column"
	"github.com/hatlonely/soax/field"
)

// storage 存储元组：每个字段一条列，列之间长度始终保持一致
type storage struct {
	fields   field.List
	cols     []column.Column
	pos      map[field.Descriptor]int
	readonly bool
}

func newStorage(fields field.List, cols []column.Column, readonly bool) *storage {
	pos := make(map[field.Descriptor]int, fields.Len())
	for i := 0; i < fields.Len(); i++ {
		pos[fields.At(i)] = i
	}
	return &storage{
		fields:   fields,
		cols:     cols,
		pos:      pos,
		readonly: readonly,
	}
}

// size 集合长度，定义为第 0 条列的长度
func (s *storage) size() int {
	if len(s.cols) == 0 {
		return 0
	}
	return s.cols[0].Len()
}

// find 字段在存储中的列下标
func (s *storage) find(f field.Descriptor) (int, bool) {
	i, ok := s.pos[f]
	return i, ok
}

// checkLengths 校验所有列长度一致，Checked 模式下在每次结构性操作后调用
func (s *storage) checkLengths() error {
	n := s.size()
	for i, col := range s.cols {
		if col.Len() != n {
			return errors.WithMessagef(ErrLengthMismatch,
				"field %s has length %d, field %s has length %d",
				s.fields.At(i).Name(), col.Len(), s.fields.At(0).Name(), n)
		}
	}
	return nil
}

// borrowAll 所有列 [lo, hi) 区间的借用窗口
func (s *storage) borrowAll(lo, hi int) []column.Column {
	cols := make([]column.Column, len(s.cols))
	for i, col := range s.cols {
		cols[i] = col.Slice(lo, hi)
	}
	return cols
}
