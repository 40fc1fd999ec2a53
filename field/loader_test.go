package field

import (
	"errors"
	"reflect"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("从 yaml 加载", func() {
			data := []byte(`
fields:
  - name: x
    type: float64
  - name: n
    type: int
`)
			l, err := Load(data, FormatYaml)
			So(err, ShouldBeNil)
			So(l.Names(), ShouldResemble, []string{"x", "n"})
			So(l.At(0).Type(), ShouldEqual, reflect.TypeOf(float64(0)))
			So(l.At(1).Type(), ShouldEqual, reflect.TypeOf(int(0)))
		})

		Convey("从 json 加载", func() {
			data := []byte(`{"fields": [{"name": "name", "type": "string"}, {"name": "age", "type": "int64"}]}`)
			l, err := Load(data, FormatJson)
			So(err, ShouldBeNil)
			So(l.Names(), ShouldResemble, []string{"name", "age"})
		})

		Convey("从 toml 加载", func() {
			data := []byte(`
[[fields]]
name = "x"
type = "float32"

[[fields]]
name = "flag"
type = "bool"
`)
			l, err := Load(data, FormatToml)
			So(err, ShouldBeNil)
			So(l.Names(), ShouldResemble, []string{"x", "flag"})
			So(l.At(0).Type(), ShouldEqual, reflect.TypeOf(float32(0)))
		})

		Convey("未知类型名时报错", func() {
			data := []byte(`{"fields": [{"name": "x", "type": "complex128"}]}`)
			_, err := Load(data, FormatJson)
			So(err, ShouldNotBeNil)
		})

		Convey("重名字段时报错", func() {
			data := []byte(`{"fields": [{"name": "x", "type": "int"}, {"name": "x", "type": "int"}]}`)
			_, err := Load(data, FormatJson)
			So(errors.Is(err, ErrDuplicateField), ShouldBeTrue)
		})

		Convey("空字段声明时报错", func() {
			_, err := Load([]byte(`{}`), FormatJson)
			So(err, ShouldNotBeNil)
		})

		Convey("未知格式时报错", func() {
			_, err := Load([]byte(`{}`), Format("xml"))
			So(err, ShouldNotBeNil)
		})

		Convey("自定义类型注册后可用", func() {
			type point struct{ X, Y float64 }
			RegisterType[point]("point")
			data := []byte(`{"fields": [{"name": "p", "type": "point"}]}`)
			l, err := Load(data, FormatJson)
			So(err, ShouldBeNil)
			So(l.At(0).Type(), ShouldEqual, reflect.TypeOf(point{}))
		})
	})
}
