// Package soa 提供结构数组（SOA）布局的记录集合
//
// 用户通过 field 包声明一组命名的类型字段，Container 为每个字段维护一条
// 独立的连续存储列，并在逻辑下标处以 Proxy 提供类似单条记录的访问接口，
// 记录本身从不落地为连续内存。View 在不复制数据的前提下对字段子集、
// 下标区间或多个来源的拼接（Zip）呈现与 Container 一致的只读结构接口。
//
// Proxy、Iterator 和 View 都直接别名底层存储列。对 Container 的任何
// 结构性修改（PushBack、Insert、Erase、Resize 等）都可能让底层数组
// 重新分配，使在此之前取得的 Proxy、Iterator 和 View 失效，失效后的
// 使用行为未定义，规则与 Go 切片在 append 后的别名失效一致。
//
// 本包不做任何并发控制，多个 goroutine 并发修改同一个 Container 需要
// 调用方自行加锁；只读 View 上的并发读取是安全的。
package soa

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrReadOnly       = errors.New("collection is read only")
	ErrArity          = errors.New("value count does not match field count")
	ErrNoFields       = errors.New("no fields")
	ErrFieldMismatch  = errors.New("field list mismatch")
)
