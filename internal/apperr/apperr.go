package apperr

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries a client-safe Message; Err is the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func InvalidArgument(msg string) *Error { return New(KindInvalidArgument, msg) }
func Unauthorized(msg string) *Error    { return New(KindUnauthorized, msg) }
func Forbidden(msg string) *Error       { return New(KindForbidden, msg) }
func NotFound(msg string) *Error        { return New(KindNotFound, msg) }
func Conflict(msg string) *Error        { return New(KindConflict, msg) }

// Wrap marks err as Internal with a client-safe message.
func Wrap(err error, msg string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

func Status(k Kind) int {
	switch k {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// From classifies any error returned by a handler. Already-classified errors
// pass through; store errors map to NotFound or Conflict when recognisable.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return &Error{Kind: kindFromStatus(fe.Code), Message: fe.Message, Err: err}
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return &Error{Kind: KindNotFound, Message: "resource not found", Err: err}
	case mongo.IsDuplicateKeyError(err):
		return &Error{Kind: KindConflict, Message: "resource already exists", Err: err}
	}
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// StatusOf returns the HTTP status for err, keeping a fiber.Error's own code.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		var ae *Error
		if !errors.As(err, &ae) {
			return fe.Code
		}
	}
	return Status(From(err).Kind)
}

func kindFromStatus(code int) Kind {
	switch code {
	case http.StatusBadRequest:
		return KindInvalidArgument
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindInternal
	}
}
