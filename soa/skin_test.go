package soa

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hatlonely/soax/field"
)

var (
	particleX  = field.New[float64]("x")
	particleVX = field.New[float64]("vx")
	particleM  = field.New[float64]("m")
)

// Particle 测试用外观：在裸代理上提供具名访问方法
type Particle struct {
	Proxy
}

func (p *Particle) Bind(proxy Proxy) {
	p.Proxy = proxy
}

func (p *Particle) X() *float64 {
	return Get(p.Proxy, particleX)
}

func (p *Particle) VX() *float64 {
	return Get(p.Proxy, particleVX)
}

func (p *Particle) M() *float64 {
	return Get(p.Proxy, particleM)
}

// Momentum 由具名访问方法组合出的领域计算
func (p *Particle) Momentum() float64 {
	return *p.M() * *p.VX()
}

func TestSkin(t *testing.T) {
	Convey("Skin", t, func() {
		c := MustNewContainer(particleX, particleVX, particleM)
		So(c.EmplaceBack(0.0, 2.0, 1.5), ShouldBeNil)
		So(c.EmplaceBack(1.0, 3.0, 2.0), ShouldBeNil)

		Convey("As 包装单个代理", func() {
			p := As[Particle](c.Index(1))
			So(*p.X(), ShouldEqual, 1.0)
			So(p.Momentum(), ShouldEqual, 6.0)

			Convey("通过外观写字段落在容器上", func() {
				*p.VX() = 10.0
				So(Value(c.Index(1), particleVX), ShouldEqual, 10.0)
			})
		})

		Convey("EachAs 遍历", func() {
			total := 0.0
			EachAs(c, func(p *Particle) {
				total += p.Momentum()
			})
			So(total, ShouldEqual, 9.0)
		})

		Convey("AtAs 带越界检查", func() {
			p, err := AtAs[Particle](c, 0)
			So(err, ShouldBeNil)
			So(*p.X(), ShouldEqual, 0.0)

			_, err = AtAs[Particle](c, 2)
			So(err, ShouldNotBeNil)
		})

		Convey("外观在视图上同样可用", func() {
			v, err := Select(c, particleX, particleVX, particleM)
			So(err, ShouldBeNil)
			p := As[Particle](v.Index(0))
			So(p.Momentum(), ShouldEqual, 3.0)
		})
	})
}
