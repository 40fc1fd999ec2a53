package soa

// Iterator 逻辑下标上的随机访问迭代器，解引用得到一次性的 Proxy
// 比较不同集合上的迭代器没有意义，结果未定义
type Iterator struct {
	s *storage
	i int
}

// Deref 当前下标处的记录代理，每次调用都返回新的代理
func (it Iterator) Deref() Proxy {
	return Proxy{s: it.s, i: it.i}
}

// Pos 当前逻辑下标
func (it Iterator) Pos() int {
	return it.i
}

// Valid 是否指向有效元素（即非 End）
func (it Iterator) Valid() bool {
	return it.s != nil && it.i >= 0 && it.i < it.s.size()
}

// Inc 前进一位
func (it *Iterator) Inc() {
	it.i++
}

// Dec 后退一位
func (it *Iterator) Dec() {
	it.i--
}

// Add 返回前进 n 位后的迭代器
func (it Iterator) Add(n int) Iterator {
	return Iterator{s: it.s, i: it.i + n}
}

// Sub 返回后退 n 位后的迭代器
func (it Iterator) Sub(n int) Iterator {
	return Iterator{s: it.s, i: it.i - n}
}

// Distance 带符号距离 it - other
func (it Iterator) Distance(other Iterator) int {
	return it.i - other.i
}

func (it Iterator) Equal(other Iterator) bool {
	return it.s == other.s && it.i == other.i
}

func (it Iterator) Less(other Iterator) bool {
	return it.i < other.i
}

// Compare 按下标三向比较
func (it Iterator) Compare(other Iterator) int {
	switch {
	case it.i < other.i:
		return -1
	case it.i > other.i:
		return 1
	}
	return 0
}
