package errors

import (
	"errors"
	"strings"
)

// ErrValidation 所有 ValidationError 均满足 errors.Is(err, ErrValidation)
var ErrValidation = errors.New("参数校验失败")

// FieldError 单个字段的校验失败原因
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError 聚合多个字段的校验失败
type ValidationError struct {
	Fields []FieldError
}

// Add 追加一条字段错误
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// OrNil 无字段错误时返回 nil，避免返回带类型的 nil 接口
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is 支持 errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidation 从错误链中提取 ValidationError
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
