package usecase

import "errors"

// Domain failures recovered at the service boundary. Handlers map these to
// HTTP status classes with errors.Is; anything else is an internal error and
// never leaks detail to the caller.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailTaken             = errors.New("this email is already taken")
	ErrWrongPassword          = errors.New("wrong password")
	ErrOldPasswordMismatch    = errors.New("old password does not match")
	ErrResetTokenMismatch     = errors.New("reset token does not match")
	ErrMissingAuthorization   = errors.New("authorization header missing")
	ErrMalformedAuthorization = errors.New("invalid authorization header")
	ErrInvalidToken           = errors.New("invalid token")
	ErrValidation             = errors.New("validation failed")
)
