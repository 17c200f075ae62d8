package dto

import "errors"

var (
	ErrInternalFailure = errors.New("internal failure")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrNotFound        = errors.New("not found")
	ErrSessionClosed   = errors.New("session closed")
)
