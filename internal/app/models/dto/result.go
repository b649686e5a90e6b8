package dto

// Result is the uniform outcome of a gateway operation.
// A failed result carries no data and a user-facing message.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK builds a successful result.
func OK[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

// Fail builds a failed result.
func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Message: message}
}

// Map converts the payload of a successful result, keeping failures as they are.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.Success {
		return Fail[U](r.Message)
	}
	return OK(fn(r.Data), r.Message)
}
