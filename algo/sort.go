package algo

import (
	"sort"

	"github.com/hatlonely/soax/soa"
)

// proxySorter 通过代理内容交换适配 sort.Interface
// Swap 交换的是两个下标处的字段内容，所有列同步换位，不会出现字段错位
type proxySorter struct {
	c    soa.Collection
	less func(a, b soa.Proxy) bool
}

func (s proxySorter) Len() int {
	return s.c.Len()
}

func (s proxySorter) Less(i, j int) bool {
	return s.less(s.c.Index(i), s.c.Index(j))
}

func (s proxySorter) Swap(i, j int) {
	// 同一存储、同一字段序列且非只读，Swap 不会失败
	_ = soa.Swap(s.c.Index(i), s.c.Index(j))
}

// Sort 按比较函数对集合排序，只读集合返回 ErrReadOnly
func Sort(c soa.Collection, less func(a, b soa.Proxy) bool) error {
	if c.IsReadOnly() {
		return soa.ErrReadOnly
	}
	sort.Sort(proxySorter{c: c, less: less})
	return nil
}

// SortStable 稳定排序
func SortStable(c soa.Collection, less func(a, b soa.Proxy) bool) error {
	if c.IsReadOnly() {
		return soa.ErrReadOnly
	}
	sort.Stable(proxySorter{c: c, less: less})
	return nil
}

// IsSorted 集合是否已按比较函数有序
func IsSorted(c soa.Collection, less func(a, b soa.Proxy) bool) bool {
	return sort.IsSorted(proxySorter{c: c, less: less})
}
