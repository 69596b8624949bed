package database

import "errors"

// Kinds of item failures. Test for them with errors.Is.
var (
	ErrNotFound         = errors.New("item not found")
	ErrDecode           = errors.New("item could not be decoded")
	ErrInvalidID        = errors.New("invalid item id")
	ErrStoreUnavailable = errors.New("item store unavailable")
	ErrWriteFailed      = errors.New("item write failed")
	ErrStoreFailed      = errors.New("item query failed")
)

// ItemError is returned by every item operation.
// Error() only gives the caller-facing message, the store detail stays in Err and in the logs.
type ItemError struct {
	Op   string
	Kind error
	Msg  string
	Err  error
}

func (e *ItemError) Error() string {
	return e.Msg
}

func (e *ItemError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
