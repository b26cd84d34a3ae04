// Package envelope contains the Result type that every response body of
// the rest api is wrapped in.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

const (
	DefaultSuccessMessage = "success"
	DefaultFailMessage    = "fail"
)

// Result wraps the outcome of an operation: a status code, a human-readable
// message and an optional payload.
//
// A Result is not safe for concurrent mutation. Treat it as owned by
// the request that built it.
type Result[T any] struct {
	code    Code
	message string
	data    *T
}

// New creates a Result. A nil data pointer means there is no payload.
func New[T any](code Code, message string, data *T) *Result[T] {
	return &Result[T]{
		code:    code,
		message: message,
		data:    data,
	}
}

func Ok[T any](message string, data T) *Result[T] {
	return New(CodeSuccess, message, &data)
}

// DefaultOk is a successful Result with the default message and no payload.
func DefaultOk[T any]() *Result[T] {
	return New[T](CodeSuccess, DefaultSuccessMessage, nil)
}

func Error[T any](message string, data T) *Result[T] {
	return New(CodeFail, message, &data)
}

// DefaultError is a failed Result with the default message and no payload.
func DefaultError[T any]() *Result[T] {
	return New[T](CodeFail, DefaultFailMessage, nil)
}

// WithMessage replaces the message in place and returns the same Result.
func (r *Result[T]) WithMessage(message string) *Result[T] {
	r.message = message
	return r
}

// WithData replaces the payload in place and returns the same Result.
func (r *Result[T]) WithData(data T) *Result[T] {
	r.data = &data
	return r
}

// WithoutData removes the payload in place and returns the same Result.
func (r *Result[T]) WithoutData() *Result[T] {
	r.data = nil
	return r
}

// Code returns the integer status, 1 for success and 0 for failure.
func (r *Result[T]) Code() int {
	return r.code.Value()
}

func (r *Result[T]) Status() Code {
	return r.code
}

func (r *Result[T]) IsOk() bool {
	return r.code == CodeSuccess
}

func (r *Result[T]) Message() string {
	return r.message
}

// Data returns the payload, or nil if there is none.
func (r *Result[T]) Data() *T {
	return r.data
}

func (r *Result[T]) String() string {
	data := "null"
	if r.data != nil && !isNil(*r.data) {
		data = fmt.Sprintf("%v", *r.data)
	}
	return fmt.Sprintf("Result{code=%d, message='%s', data=%s}", r.code.Value(), r.message, data)
}

// isNil reports whether v is a nil pointer, interface, map, slice, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

type wireResult[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

func (r *Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireResult[T]{
		Code:    r.code.Value(),
		Message: r.message,
		Data:    r.data,
	})
}

// UnmarshalJSON rejects a missing code and any code other than 1 or 0.
// A json null leaves the Result unchanged.
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	w := struct {
		Code    *int   `json:"code"`
		Message string `json:"message"`
		Data    *T     `json:"data"`
	}{}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Code == nil {
		return errors.New("result code is missing")
	}

	code, err := CodeFromValue(*w.Code)
	if err != nil {
		return err
	}

	r.code = code
	r.message = w.Message
	r.data = w.Data
	return nil
}
