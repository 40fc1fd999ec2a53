package column

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrOutOfRange   = errors.New("index out of range")
	ErrTypeMismatch = errors.New("element type mismatch")
	ErrBorrowed     = errors.New("structural operation on borrowed column")
	ErrNotOrdered   = errors.New("element type is not ordered")
)

// Column 单个字段的底层存储列，类型擦除接口
// 拥有列支持全部结构性操作，借用列（窗口）只支持元素读写
type Column interface {
	Len() int
	Cap() int
	// Elem 列元素类型
	Elem() reflect.Type
	// Borrowed 是否为借用窗口，借用窗口上的结构性操作返回 ErrBorrowed
	Borrowed() bool

	// Raw 底层切片本体（[]T），与列共享存储，供序列化等按列整体读取
	Raw() any

	// Get 读取元素副本，越界时 panic
	Get(i int) any
	// Set 写入元素，类型不匹配时返回 ErrTypeMismatch
	Set(i int, v any) error
	// Swap 交换两个元素的内容
	Swap(i, j int)
	// CopyElem 将 src 列 srcIdx 处的元素复制到 dst 位置
	CopyElem(dst int, src Column, srcIdx int) error

	// PushBack 追加一个元素
	PushBack(v any) error
	// Insert 在 i 处插入 n 个 v 的副本
	Insert(i int, v any, n int) error
	// InsertFrom 在 i 处插入 src 列 [lo, hi) 区间的副本
	InsertFrom(i int, src Column, lo, hi int) error
	// Erase 删除 [lo, hi) 区间
	Erase(lo, hi int) error
	// Resize 调整长度到 n，增长部分使用 fill，fill 为 nil 时使用零值
	Resize(n int, fill any) error
	// ReplaceAll 用给定切片的副本整体替换列内容
	ReplaceAll(slice any) error
	Reserve(n int)
	ShrinkToFit()

	// Slice 返回 [lo, hi) 区间的零拷贝借用窗口
	Slice(lo, hi int) Column
	// Clone 返回内容的独立拥有副本
	Clone() Column

	// Compare 按元素序比较，元素类型不可排序时返回 ErrNotOrdered
	Compare(i int, other Column, j int) (int, error)
	// Equal 按元素值比较
	Equal(i int, other Column, j int) bool
}

// CompareAny 对两个可排序的标量值做三向比较
func CompareAny(a, b any) (int, error) {
	return compareValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

// compareValues 对可排序的标量类型做三向比较
func compareValues(a, b reflect.Value) (int, error) {
	if a.Kind() != b.Kind() {
		return 0, errors.WithMessagef(ErrTypeMismatch, "compare %s with %s", a.Kind(), b.Kind())
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, y := a.Int(), b.Int()
		return compareOrdered(x, y), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x, y := a.Uint(), b.Uint()
		return compareOrdered(x, y), nil
	case reflect.Float32, reflect.Float64:
		x, y := a.Float(), b.Float()
		return compareOrdered(x, y), nil
	case reflect.String:
		x, y := a.String(), b.String()
		return compareOrdered(x, y), nil
	case reflect.Bool:
		x, y := boolInt(a.Bool()), boolInt(b.Bool())
		return compareOrdered(x, y), nil
	}

	return 0, errors.WithMessagef(ErrNotOrdered, "kind %s", a.Kind())
}

func compareOrdered[T int64 | uint64 | float64 | string | int](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
