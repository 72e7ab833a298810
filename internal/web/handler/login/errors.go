package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is shown for an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountDisabled is shown when the account exists but may not log in.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrInternalServerError is returned for unexpected failures during the login process.
	ErrInternalServerError = errors.New("internal server error")
)
