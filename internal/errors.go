package internal

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")

	ErrPermissionDenied = errors.New("permission denied for order data")
	ErrUnknownProfile   = errors.New("unknown export profile")
)
