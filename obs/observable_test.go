package obs

import (
	"context"
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hatlonely/soax/field"
	"github.com/hatlonely/soax/soa"
)

func newTestContainer() *soa.Container {
	return soa.MustNewContainer(field.New[float64]("x"), field.New[int]("n"))
}

func TestNewObservableContainerWithOptions(t *testing.T) {
	Convey("NewObservableContainerWithOptions", t, func() {
		Convey("容器为 nil 时报错", func() {
			_, err := NewObservableContainerWithOptions(nil, &ObservableContainerOptions{})
			So(err, ShouldNotBeNil)
		})

		Convey("选项为 nil 时报错", func() {
			_, err := NewObservableContainerWithOptions(newTestContainer(), nil)
			So(err, ShouldNotBeNil)
		})

		Convey("全部开关关闭时也能创建", func() {
			obs, err := NewObservableContainerWithOptions(newTestContainer(), &ObservableContainerOptions{})
			So(err, ShouldBeNil)
			So(obs, ShouldNotBeNil)
		})
	})
}

func TestObservableContainerOperations(t *testing.T) {
	Convey("ObservableContainer 操作透传", t, func() {
		c := newTestContainer()
		obs, err := NewObservableContainerWithOptions(c, &ObservableContainerOptions{
			EnableLogging: true,
			Logger:        NewSlogLogger(slog.Default()),
			Name:          "passthrough",
		})
		So(err, ShouldBeNil)

		ctx := context.Background()

		Convey("结构性操作作用于被包装容器", func() {
			So(obs.PushBack(ctx, soa.Values(1.0, 1)), ShouldBeNil)
			So(obs.EmplaceBack(ctx, 2.0, 2), ShouldBeNil)
			So(c.Len(), ShouldEqual, 2)

			it, err := obs.Insert(ctx, 1, soa.Values(1.5, 15))
			So(err, ShouldBeNil)
			So(it.Pos(), ShouldEqual, 1)
			So(c.Len(), ShouldEqual, 3)

			_, err = obs.EraseRange(ctx, 0, 2)
			So(err, ShouldBeNil)
			So(c.Len(), ShouldEqual, 1)
			So(c.Index(0).Record(), ShouldResemble, soa.Values(2.0, 2))

			So(obs.Resize(ctx, 4, soa.Values(0.0, 0)), ShouldBeNil)
			So(c.Len(), ShouldEqual, 4)

			So(obs.PopBack(ctx), ShouldBeNil)
			So(c.Len(), ShouldEqual, 3)

			So(obs.Clear(ctx), ShouldBeNil)
			So(c.Empty(), ShouldBeTrue)
		})

		Convey("操作失败时错误原样返回", func() {
			So(obs.EmplaceBack(ctx, 1.0), ShouldNotBeNil)
			_, err := obs.Erase(ctx, 42)
			So(err, ShouldNotBeNil)
		})

		Convey("Unwrap 返回被包装容器", func() {
			So(obs.Unwrap(), ShouldEqual, c)
		})
	})
}

func TestObservableContainerMetrics(t *testing.T) {
	Convey("ObservableContainer 指标", t, func() {
		c := newTestContainer()
		// prometheus 默认 registry 不允许重名，指标名在测试间唯一
		obs, err := NewObservableContainerWithOptions(c, &ObservableContainerOptions{
			EnableMetrics: true,
			Name:          "obs_metrics_test",
		})
		So(err, ShouldBeNil)

		ctx := context.Background()

		Convey("带指标的操作正常透传", func() {
			So(obs.PushBack(ctx, soa.Values(1.0, 1)), ShouldBeNil)
			So(obs.AssignFrom(ctx, c.View()), ShouldBeNil)
			So(c.Len(), ShouldEqual, 1)
			So(obs.metrics, ShouldNotBeNil)
		})
	})
}
