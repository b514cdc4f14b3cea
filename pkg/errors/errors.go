// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal server error")
	ErrValidation    = errors.New("validation failed")
	ErrKeyNotFound   = errors.New("storage key not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)
