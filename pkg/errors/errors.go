package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Сессия и токены
	ErrUnauthorized = errors.New("authentication required")
	ErrInvalidToken = fmt.Errorf("%w: invalid session token", ErrUnauthorized)

	// Доступ
	ErrForbidden         = errors.New("access denied")
	ErrBranchNotAssigned = fmt.Errorf("%w: branch not assigned", ErrForbidden)
	ErrBranchMismatch    = fmt.Errorf("%w: branch mismatch", ErrForbidden)

	ErrRateLimited = errors.New("too many requests, try again later")

	// Авторизация
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid or expired code")

	// Общие
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
)

// HttpError несёт код ответа и сообщение для клиента; Err остаётся только для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest, nil)
}

// StatusCode maps an error to the transport status. The session taxonomy
// (unauthenticated, forbidden, rate limited) is matched before anything else.
func StatusCode(err error) int {
	var httpErr *HttpError
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, ErrInvalidCode), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text safe to show to the client.
func Message(err error) string {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	switch {
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized.Error()
	case errors.Is(err, ErrBranchNotAssigned):
		return "Branch not assigned"
	case errors.Is(err, ErrForbidden):
		return ErrForbidden.Error()
	case errors.Is(err, ErrRateLimited), errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidCode), errors.Is(err, ErrNotFound), errors.Is(err, ErrBadRequest):
		return err.Error()
	default:
		return "internal server error"
	}
}
