// Package algo 基于 Collection/Proxy 契约的通用算法，不感知物理布局
package algo

import (
	"github.com/pkg/errors"

	"github.com/hatlonely/soax/field"
	"github.com/hatlonely/soax/soa"
)

// ForEach 按下标顺序访问每条记录代理
func ForEach(c soa.Collection, fn func(p soa.Proxy)) {
	n := c.Len()
	for i := 0; i < n; i++ {
		fn(c.Index(i))
	}
}

// ForEachIndex 同 ForEach，带下标
func ForEachIndex(c soa.Collection, fn func(i int, p soa.Proxy)) {
	n := c.Len()
	for i := 0; i < n; i++ {
		fn(i, c.Index(i))
	}
}

// Fill 把每条记录都写成 rec
func Fill(c soa.Collection, rec soa.Record) error {
	if c.IsReadOnly() {
		return soa.ErrReadOnly
	}
	n := c.Len()
	for i := 0; i < n; i++ {
		if err := c.Index(i).CopyRecord(rec); err != nil {
			return errors.WithMessagef(err, "index %d", i)
		}
	}
	return nil
}

// Find 第一条满足谓词的记录
func Find(c soa.Collection, pred func(p soa.Proxy) bool) (soa.Iterator, bool) {
	it := c.Begin()
	for ; !it.Equal(c.End()); it.Inc() {
		if pred(it.Deref()) {
			return it, true
		}
	}
	return it, false
}

// CountIf 满足谓词的记录条数
func CountIf(c soa.Collection, pred func(p soa.Proxy) bool) int {
	n := 0
	ForEach(c, func(p soa.Proxy) {
		if pred(p) {
			n++
		}
	})
	return n
}

// ForEachField 跳过代理层，在单个字段的原始切片上逐元素访问
// 循环体只触碰一条连续数组，便于编译器向量化
func ForEachField[T any](c soa.Collection, f *field.Field[T], fn func(v *T)) error {
	data, err := soa.FieldData(c, f)
	if err != nil {
		return err
	}
	for i := range data {
		fn(&data[i])
	}
	return nil
}

// Transform 逐条记录把 src 字段的值经 fn 写入 dst 字段，两个字段都在 c 内
func Transform[T, U any](c soa.Collection, src *field.Field[T], dst *field.Field[U], fn func(v T) U) error {
	in, err := soa.FieldValues(c, src)
	if err != nil {
		return err
	}
	out, err := soa.FieldData(c, dst)
	if err != nil {
		return err
	}
	for i := range in {
		out[i] = fn(in[i])
	}
	return nil
}
