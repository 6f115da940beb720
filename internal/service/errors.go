package service

import "errors"

// Messages returned to clients for rejected input.
const (
	MsgMissingFields = "Missing required fields"
	MsgInvalidDate   = "Invalid date"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// ValidationError reports client input that cannot be accepted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError wraps a failure from the ledger store. Its message is the underlying error message.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
