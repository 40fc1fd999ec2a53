package soa

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hatlonely/soax/field"
)

func TestZip(t *testing.T) {
	Convey("Zip", t, func() {
		x := field.New[float64]("x")
		v := field.New[float64]("v")
		m := field.New[float64]("m")

		pos := MustNewContainer(x)
		vel := MustNewContainer(v, m)
		for i := 0; i < 3; i++ {
			So(pos.EmplaceBack(float64(i)), ShouldBeNil)
			So(vel.EmplaceBack(float64(i)*10, 1.0+float64(i)), ShouldBeNil)
		}

		Convey("拼接独立存储的字段组", func() {
			z, err := Zip(pos, vel)
			So(err, ShouldBeNil)
			So(z.Len(), ShouldEqual, 3)
			So(z.Fields().Names(), ShouldResemble, []string{"x", "v", "m"})

			Convey("逐字段值与各来源一致", func() {
				for i := 0; i < 3; i++ {
					So(Value(z.Index(i), x), ShouldEqual, Value(pos.Index(i), x))
					So(Value(z.Index(i), v), ShouldEqual, Value(vel.Index(i), v))
					So(Value(z.Index(i), m), ShouldEqual, Value(vel.Index(i), m))
				}
			})

			Convey("零拷贝：写 zip 视图落在来源上", func() {
				So(Get(z.Index(1), x) == Get(pos.Index(1), x), ShouldBeTrue)
				*Get(z.Index(1), v) = 99.0
				So(Value(vel.Index(1), v), ShouldEqual, 99.0)
			})

			Convey("拼接不改变来源", func() {
				So(pos.Len(), ShouldEqual, 3)
				So(vel.Len(), ShouldEqual, 3)
			})
		})

		Convey("长度不一致时报错", func() {
			So(pos.EmplaceBack(9.0), ShouldBeNil)
			_, err := Zip(pos, vel)
			So(errors.Is(err, ErrLengthMismatch), ShouldBeTrue)
		})

		Convey("同一字段出现两次时报错", func() {
			_, err := Zip(pos, pos)
			So(errors.Is(err, field.ErrDuplicateField), ShouldBeTrue)
		})

		Convey("zip 视图和来源视图混合拼接", func() {
			sub, err := Select(vel, m)
			So(err, ShouldBeNil)
			z, err := Zip(pos, sub)
			So(err, ShouldBeNil)
			So(z.Fields().Names(), ShouldResemble, []string{"x", "m"})
			So(z.Index(2).Record(), ShouldResemble, Values(2.0, 3.0))
		})

		Convey("单个集合的 zip 等价于全量视图", func() {
			z, err := Zip(pos)
			So(err, ShouldBeNil)
			So(z.Len(), ShouldEqual, pos.Len())
			So(z.Fields().Equal(pos.Fields()), ShouldBeTrue)
		})

		Convey("任一来源只读则结果只读", func() {
			ro := vel.View().ReadOnly()
			z, err := Zip(pos, ro)
			So(err, ShouldBeNil)
			So(z.IsReadOnly(), ShouldBeTrue)
			So(errors.Is(Set(z.Index(0), x, 1.0), ErrReadOnly), ShouldBeTrue)
		})

		Convey("空参数时报错", func() {
			_, err := Zip()
			So(err, ShouldNotBeNil)
		})
	})
}
