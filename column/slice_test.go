package column

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSlicePushBack(t *testing.T) {
	Convey("Slice.PushBack", t, func() {
		c := NewSlice[int](4)

		Convey("追加元素", func() {
			So(c.PushBack(1), ShouldBeNil)
			So(c.PushBack(2), ShouldBeNil)
			So(c.Len(), ShouldEqual, 2)
			So(c.Get(0), ShouldEqual, 1)
			So(c.Get(1), ShouldEqual, 2)
		})

		Convey("类型不匹配时报错", func() {
			err := c.PushBack("not an int")
			So(errors.Is(err, ErrTypeMismatch), ShouldBeTrue)
			So(c.Len(), ShouldEqual, 0)
		})
	})
}

func TestSliceInsertErase(t *testing.T) {
	Convey("Slice.Insert / Slice.Erase", t, func() {
		c := NewSliceFrom([]int{1, 2, 3, 4})

		Convey("中间插入", func() {
			So(c.Insert(2, 9, 2), ShouldBeNil)
			data, err := Data[int](c)
			So(err, ShouldBeNil)
			So(data, ShouldResemble, []int{1, 2, 9, 9, 3, 4})
		})

		Convey("区间删除", func() {
			So(c.Erase(1, 3), ShouldBeNil)
			data, _ := Data[int](c)
			So(data, ShouldResemble, []int{1, 4})
		})

		Convey("空区间删除是无副作用的合法调用", func() {
			So(c.Erase(2, 2), ShouldBeNil)
			So(c.Len(), ShouldEqual, 4)
		})

		Convey("越界时报错", func() {
			So(errors.Is(c.Insert(5, 0, 1), ErrOutOfRange), ShouldBeTrue)
			So(errors.Is(c.Erase(2, 9), ErrOutOfRange), ShouldBeTrue)
			So(errors.Is(c.Erase(3, 2), ErrOutOfRange), ShouldBeTrue)
		})
	})
}

func TestSliceInsertFrom(t *testing.T) {
	Convey("Slice.InsertFrom", t, func() {
		c := NewSliceFrom([]int{1, 2, 3})

		Convey("插入另一列的区间", func() {
			src := NewSliceFrom([]int{7, 8, 9})
			So(c.InsertFrom(1, src, 0, 2), ShouldBeNil)
			data, _ := Data[int](c)
			So(data, ShouldResemble, []int{1, 7, 8, 2, 3})
		})

		Convey("源窗口与本列重叠时数据不错乱", func() {
			window := c.Slice(0, 3)
			So(c.InsertFrom(1, window, 0, 3), ShouldBeNil)
			data, _ := Data[int](c)
			So(data, ShouldResemble, []int{1, 1, 2, 3, 2, 3})
		})

		Convey("元素类型不匹配时报错", func() {
			src := NewSliceFrom([]string{"a"})
			So(errors.Is(c.InsertFrom(0, src, 0, 1), ErrTypeMismatch), ShouldBeTrue)
		})
	})
}

func TestSliceResize(t *testing.T) {
	Convey("Slice.Resize", t, func() {
		c := NewSliceFrom([]int{1, 2, 3})

		Convey("增长时用填充值", func() {
			So(c.Resize(5, 7), ShouldBeNil)
			data, _ := Data[int](c)
			So(data, ShouldResemble, []int{1, 2, 3, 7, 7})
		})

		Convey("增长时 nil 填充用零值", func() {
			So(c.Resize(4, nil), ShouldBeNil)
			data, _ := Data[int](c)
			So(data, ShouldResemble, []int{1, 2, 3, 0})
		})

		Convey("收缩截断", func() {
			So(c.Resize(1, nil), ShouldBeNil)
			data, _ := Data[int](c)
			So(data, ShouldResemble, []int{1})
		})

		Convey("填充值类型不匹配时报错", func() {
			So(errors.Is(c.Resize(5, "x"), ErrTypeMismatch), ShouldBeTrue)
		})
	})
}

func TestSliceBorrowed(t *testing.T) {
	Convey("借用窗口", t, func() {
		c := NewSliceFrom([]int{1, 2, 3, 4, 5})
		w := c.Slice(1, 4)

		Convey("窗口零拷贝别名原列", func() {
			So(w.Len(), ShouldEqual, 3)
			So(w.Get(0), ShouldEqual, 2)
			So(w.Set(0, 42), ShouldBeNil)
			So(c.Get(1), ShouldEqual, 42)
		})

		Convey("窗口上的结构性操作被拒绝", func() {
			So(errors.Is(w.PushBack(9), ErrBorrowed), ShouldBeTrue)
			So(errors.Is(w.Insert(0, 9, 1), ErrBorrowed), ShouldBeTrue)
			So(errors.Is(w.Erase(0, 1), ErrBorrowed), ShouldBeTrue)
			So(errors.Is(w.Resize(9, nil), ErrBorrowed), ShouldBeTrue)
			So(errors.Is(w.ReplaceAll([]int{}), ErrBorrowed), ShouldBeTrue)
		})

		Convey("Borrow 包装外部切片", func() {
			data := []int{1, 2}
			b := Borrow(data)
			So(b.Borrowed(), ShouldBeTrue)
			So(b.Set(1, 9), ShouldBeNil)
			So(data[1], ShouldEqual, 9)
		})
	})
}

func TestSliceCompare(t *testing.T) {
	Convey("Slice.Compare", t, func() {
		Convey("可排序标量三向比较", func() {
			c := NewSliceFrom([]float64{1.0, 2.0})
			o := NewSliceFrom([]float64{2.0, 2.0})

			cmp, err := c.Compare(0, o, 0)
			So(err, ShouldBeNil)
			So(cmp, ShouldEqual, -1)

			cmp, err = c.Compare(1, o, 1)
			So(err, ShouldBeNil)
			So(cmp, ShouldEqual, 0)

			cmp, err = o.Compare(0, c, 0)
			So(err, ShouldBeNil)
			So(cmp, ShouldEqual, 1)
		})

		Convey("不可排序类型报错", func() {
			type blob struct{ b []byte }
			c := NewSliceFrom([]blob{{b: []byte{1}}})
			o := NewSliceFrom([]blob{{b: []byte{2}}})
			_, err := c.Compare(0, o, 0)
			So(errors.Is(err, ErrNotOrdered), ShouldBeTrue)

			Convey("Equal 仍然可用", func() {
				So(c.Equal(0, o, 0), ShouldBeFalse)
				So(c.Equal(0, c, 0), ShouldBeTrue)
			})
		})
	})
}

func TestSliceCloneReserve(t *testing.T) {
	Convey("Slice.Clone / Reserve / ShrinkToFit", t, func() {
		c := NewSliceFrom([]int{1, 2, 3})

		Convey("Clone 产生独立副本", func() {
			d := c.Clone()
			So(d.Set(0, 42), ShouldBeNil)
			So(c.Get(0), ShouldEqual, 1)
			So(d.Borrowed(), ShouldBeFalse)
		})

		Convey("Reserve 只增容量不变长度", func() {
			c.Reserve(100)
			So(c.Cap(), ShouldBeGreaterThanOrEqualTo, 100)
			So(c.Len(), ShouldEqual, 3)
		})

		Convey("ShrinkToFit 去除多余容量", func() {
			c.Reserve(100)
			c.ShrinkToFit()
			So(c.Cap(), ShouldEqual, 3)
		})
	})
}
