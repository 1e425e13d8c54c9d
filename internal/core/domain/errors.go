package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken is returned when a request carries no bearer credential.
	ErrMissingToken = errors.New("missing access token")

	// ErrInvalidToken is returned for malformed, mis-signed or expired tokens.
	ErrInvalidToken = errors.New("invalid access token")

	// ErrUserNotFound is returned when a username or user id does not resolve
	// in the credential store.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when an authenticated identity lacks the role
	// or shared secret a route requires.
	ErrForbidden = errors.New("access forbidden")

	// ErrSubmissionNotFound is returned when grading an unknown submission id.
	ErrSubmissionNotFound = errors.New("submission not found")
)
