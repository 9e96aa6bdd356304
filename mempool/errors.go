package mempool

import "fmt"

// ErrorCode classifies the failure kinds surfaced by Pool operations
// (base spec §7).
type ErrorCode int

const (
	ErrCodeInvalidArgument ErrorCode = iota
	ErrCodeInvalidSlot
	ErrCodeDoubleFree
	ErrCodeQueueFull
	ErrCodeInternal
)

// Error is a structured Pool error with a Code and optional Context,
// grounded in api/errors.go's Error/ErrorCode/WithContext shape.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Is reports whether target carries the same ErrorCode, so errors.Is
// matches a contextualized copy against the bare sentinel it was derived
// from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a structured error with an empty Context.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message, Context: make(map[string]any)}
}

// WithContext returns a copy of e with key/value merged in; it never
// mutates the receiver. The sentinels below are shared package-level
// singletons compared by identity from concurrent Pool operations, so
// in-place mutation would race across callers.
func (e *Error) WithContext(key string, value any) *Error {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &Error{Code: e.Code, Message: e.Message, Context: ctx}
}

// Sentinel errors surfaced by Pool operations. They are returned as status
// codes to the immediate caller and never escalate further (base spec §7).
// Callers compare by identity (err == ErrDoubleFree) or with errors.Is;
// Pool never mutates these: New attaches context through WithContext, which
// returns a copy, so its errors match only via errors.Is.
var (
	ErrInvalidArgument = NewError(ErrCodeInvalidArgument, "mempool: invalid argument")
	ErrInvalidSlot     = NewError(ErrCodeInvalidSlot, "mempool: invalid slot")
	ErrDoubleFree      = NewError(ErrCodeDoubleFree, "mempool: double free")
	ErrQueueFull       = NewError(ErrCodeQueueFull, "mempool: queue full")
	ErrInternal        = NewError(ErrCodeInternal, "mempool: internal error")
)
