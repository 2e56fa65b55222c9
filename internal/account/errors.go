package account

import "errors"

// Sentinel error kinds carried on Result.Err. The human-readable Result
// message intentionally does not distinguish ErrAccountNotFound from
// ErrInvalidCredentials, so callers cannot probe which emails have
// accounts; tests and programmatic callers match the kind with errors.Is.
var (
	ErrDirectoryUnavailable = errors.New("storage directory unavailable")
	ErrAccountExists        = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidRegistration  = errors.New("invalid registration")
)
