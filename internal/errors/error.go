package errors

import (
	stderrors "errors"
	"fmt"
)

// BridgeError 是跨边界的结构化错误：稳定 code + 可读 message + 上下文 details。
// message/details 里绝不包含 secret 值本身。
type BridgeError struct {
	Code    Code           `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	cause   error
}

func (e *BridgeError) Error() string {
	if e == nil {
		return ""
	}
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
}

func (e *BridgeError) Unwrap() error { return e.cause }

func New(code Code, message string, details map[string]any) *BridgeError {
	return &BridgeError{Code: code, Message: message, Details: details}
}

func Wrap(code Code, message string, details map[string]any, cause error) *BridgeError {
	return &BridgeError{Code: code, Message: message, Details: details, cause: cause}
}

func As(err error) (*BridgeError, bool) {
	var be *BridgeError
	if stderrors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func AsOrWrap(err error) *BridgeError {
	if be, ok := As(err); ok {
		return be
	}
	return Wrap(CodeInternal, err.Error(), nil, err)
}
