package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrInvalidFileField   = errors.New("invalid file field")
	ErrCompanyRequired    = errors.New("company is required")
	ErrInvalidReturn      = errors.New("invalid return")
)
