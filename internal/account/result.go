package account

// Result is the outcome shape every public store operation returns to the
// UI layer: a success flag, a short human-readable message, and the
// underlying error kind for programmatic callers. Raw platform errors are
// always wrapped, never surfaced as-is.
type Result struct {
	Success bool
	Message string
	Err     error
}

func success(msg string) Result {
	return Result{Success: true, Message: msg}
}

func failure(msg string, err error) Result {
	return Result{Success: false, Message: msg, Err: err}
}
