package bridge

// BadRequestError reports a submission rejected before any store access. The
// reason is surfaced to the caller as-is.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string {
	return e.Reason
}

// StoreError wraps a failure from the entity store. The store's own message
// is passed through verbatim; no retry or rollback is attempted.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
