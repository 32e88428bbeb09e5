package services

// ErrorKind classifies service failures so the HTTP boundary can map
// them to status codes.
type ErrorKind int

const (
	// KindValidation covers malformed input (bad UUID shape, bad enum)
	KindValidation ErrorKind = iota
	// KindAuth covers missing or invalid credentials
	KindAuth
	// KindNotFound covers references to absent entities
	KindNotFound
	// KindStore covers failures of the underlying query
	KindStore
	// KindInternal covers unexpected in-process failures; callers get a
	// generic message, the cause stays server-side
	KindInternal
)

// Error is the error type returned by all services
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed input
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewAuthError reports a failed credential check
func NewAuthError(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NewNotFoundError reports an absent entity
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewStoreError wraps a query failure, surfacing the store's message
func NewStoreError(err error) *Error {
	return &Error{Kind: KindStore, Message: err.Error(), Err: err}
}

// NewInternalError wraps an unexpected in-process failure
func NewInternalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: "unexpected error", Err: err}
}
