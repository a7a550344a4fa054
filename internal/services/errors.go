package services

import (
	"errors"
	"strings"
)

// Kind classifies a failed operation. The HTTP layer maps each kind to a status code.
type Kind int

const (
	// KindInternal covers persistence failures and any untyped error.
	KindInternal Kind = iota
	// KindValidation reports one message per missing required field.
	KindValidation
	// KindInvalidInput rejects a request with a single message.
	KindInvalidInput
	// KindConflict reports a business rule violation such as a duplicate email.
	KindConflict
	// KindInvalidReference reports an id that does not point at an existing record.
	KindInvalidReference
	// KindNotFound reports that the addressed record does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	case KindInvalidReference:
		return "invalid_reference"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Client-facing messages.
const (
	MsgInvalidBody           = "invalid request body"
	MsgEmailExists           = "email already exists!"
	MsgNoBooksFound          = "No books found"
	MsgInvalidUserOrBook     = "Invalid user or book ID!"
	MsgTitleAndGenreRequired = "title and genre is required!"
	MsgBookNotFound          = "Book not found!"
	MsgReadingListIDRequired = "Reading list id is required!"
	MsgReadingListNotFound   = "readingList id doesn't exists!"
)

// Error is the typed failure returned by LibraryService operations.
type Error struct {
	Kind    Kind
	Message string   // single message for every kind except KindValidation
	Errors  []string // ordered field messages for KindValidation
	Err     error    // underlying cause, never shown to clients
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	switch {
	case e.Message != "":
		b.WriteString(": " + e.Message)
	case len(e.Errors) > 0:
		b.WriteString(": " + strings.Join(e.Errors, "; "))
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ValidationFailed builds a KindValidation error from ordered field messages.
func ValidationFailed(messages ...string) *Error {
	return &Error{Kind: KindValidation, Errors: messages}
}

// KindOf returns the kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
