package soa

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/hatlonely/soax/column"
	"github.com/hatlonely/soax/field"
)

// Record 按字段顺序排列的值元组，是唯一独立于存储存在的"真实"记录
type Record []any

// Values 构造一条记录
func Values(vals ...any) Record {
	return Record(vals)
}

// Equal 按字段逐位比较
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if !reflect.DeepEqual(r[i], other[i]) {
			return false
		}
	}
	return true
}

// bindRecord 校验记录与字段序列的匹配：个数一致且每个值类型严格等于字段类型
// 不做任何隐式数值转换
func bindRecord(fields field.List, rec Record) error {
	if len(rec) != fields.Len() {
		return errors.WithMessagef(ErrArity, "got %d values, want %d fields %v", len(rec), fields.Len(), fields.Names())
	}
	for i, v := range rec {
		f := fields.At(i)
		if v == nil {
			return errors.WithMessagef(column.ErrTypeMismatch, "field %s: value is nil, want %s", f.Name(), f.Type())
		}
		if reflect.TypeOf(v) != f.Type() {
			return errors.WithMessagef(column.ErrTypeMismatch, "field %s: value is %T, want %s", f.Name(), v, f.Type())
		}
	}
	return nil
}
