package domain

import "errors"

var (
	// ErrNotFound indicates the referenced goal no longer exists, usually
	// because it was deleted between render and action.
	ErrNotFound = errors.New("goal not found")

	// ErrStoreUnavailable indicates the persistent store failed; the
	// triggering operation is aborted and may be retried by the user.
	ErrStoreUnavailable = errors.New("goal store unavailable")

	// ErrMalformedToken indicates a corrupt or foreign inline-action token.
	ErrMalformedToken = errors.New("malformed action token")
)

// ValidationError is bad user input: a non-integer, an out-of-range value,
// an unparseable date. It is always recovered locally by re-prompting in
// the same dialog state.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
