package service

import (
	"errors"
	"strings"
)

// 业务错误口径：handler 只负责把这些映射成线上的状态码/报文
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrDuplicateEmail     = errors.New("Email already exists")
	ErrDuplicateCode      = errors.New("Store code already exists")
	ErrNotFound           = errors.New("not found")
	ErrMainUserExists     = errors.New("A main user already exists")
	ErrSelfDelete         = errors.New("Cannot delete your own account")
)

// ForbiddenError 带原因的拒绝，原因会原样回给调用方
type ForbiddenError struct{ Reason string }

func (e *ForbiddenError) Error() string { return e.Reason }

func Forbidden(reason string) error { return &ForbiddenError{Reason: reason} }

// ValidationError 客户端输入不合格式
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

func Invalid(msg string) error { return &ValidationError{Message: msg} }

// isDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
func isDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
