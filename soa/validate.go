package soa

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validateStruct 使用 validator 校验选项结构体
// nil 或非结构体输入直接放行，只在真正拿到结构体实例时校验
func validateStruct(object any) error {
	if object == nil {
		return nil
	}

	rv := reflect.ValueOf(object)
	if !rv.IsValid() {
		return nil
	}

	current := rv
	for current.Kind() == reflect.Ptr {
		if current.IsNil() {
			return nil
		}
		current = current.Elem()
	}
	if current.Kind() != reflect.Struct {
		return nil
	}

	return validator.New().Struct(current.Interface())
}
