package domain

import "errors"

var (
	// Validation rejections. Neither one ever produces a record.
	ErrUnsupportedType = errors.New("only PDF input is supported")
	ErrFileTooLarge    = errors.New("file size exceeds the 10 MiB limit")

	ErrRecordNotFound = errors.New("conversion record not found")
	ErrNotCompleted   = errors.New("conversion is not completed yet")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired or unknown")
)

// IsValidation reports whether err is a submission-time rejection,
// as opposed to a workflow-stage failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrFileTooLarge)
}
