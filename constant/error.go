package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrEmailExists
	ErrEmailNotFound
	ErrWrongPassword
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrUnauthorize:    "unauthorize request",
	ErrEmailExists:    "email already exists",
	ErrEmailNotFound:  "email does not exists",
	ErrWrongPassword:  "wrong password",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusBadRequest,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrUnauthorize:    http.StatusUnauthorized,
	ErrEmailExists:    http.StatusConflict,
	ErrEmailNotFound:  http.StatusUnauthorized,
	ErrWrongPassword:  http.StatusUnauthorized,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrUnauthorize:    "0004",
	ErrEmailExists:    "0005",
	ErrEmailNotFound:  "0006",
	ErrWrongPassword:  "0007",
}
