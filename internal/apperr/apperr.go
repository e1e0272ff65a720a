package apperr

import "errors"

// Kind classifies an operation failure so the transport layer can map
// it to a status code without string matching.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) error {
	return New(KindValidation, message)
}

func Unauthenticated(message string) error {
	return New(KindUnauthenticated, message)
}

func Forbidden(message string) error {
	return New(KindForbidden, message)
}

func NotFound(message string) error {
	return New(KindNotFound, message)
}

func Conflict(message string) error {
	return New(KindConflict, message)
}

// KindOf reports the kind of err and whether err is an apperr.Error.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

// Is reports whether err is an apperr.Error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
