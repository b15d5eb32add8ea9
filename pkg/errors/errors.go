package errors

import (
	"fmt"
	"strings"
)

// InvalidEnumError 枚举字段取值非法
// 状态校验只做成员检查：任意合法值之间可以互相跳转
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("字段 %s 取值 %q 非法，允许值: %s",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// NewInvalidEnum 构造枚举校验错误
func NewInvalidEnum(field, value string, allowed []string) *InvalidEnumError {
	return &InvalidEnumError{Field: field, Value: value, Allowed: allowed}
}

// DependencyConflictError 引用保护冲突：存在依赖行时拒绝删除
// Blocking 为被阻塞的依赖行列表，随错误响应一并返回
type DependencyConflictError struct {
	Resource string
	Blocking interface{}
}

func (e *DependencyConflictError) Error() string {
	return fmt.Sprintf("%s 存在关联数据，无法删除", e.Resource)
}

// NewDependencyConflict 构造引用保护错误
func NewDependencyConflict(resource string, blocking interface{}) *DependencyConflictError {
	return &DependencyConflictError{Resource: resource, Blocking: blocking}
}
