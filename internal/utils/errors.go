package utils

import "errors"

// Domain error taxonomy. Services return these (possibly wrapped); handlers
// translate them to HTTP responses. Read paths deliberately collapse
// "does not exist" and "scoped away" into ErrNotFound so existence is not
// leaked.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbiddenAccess   = errors.New("access denied")
	ErrConflict          = errors.New("conflict")
	ErrUnavailable       = errors.New("labourer not available")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

func IsNotFound(err error) bool          { return errors.Is(err, ErrNotFound) }
func IsForbidden(err error) bool         { return errors.Is(err, ErrForbiddenAccess) }
func IsConflict(err error) bool          { return errors.Is(err, ErrConflict) }
func IsUnavailable(err error) bool       { return errors.Is(err, ErrUnavailable) }
func IsInvalidTransition(err error) bool { return errors.Is(err, ErrInvalidTransition) }
