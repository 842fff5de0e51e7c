package mailer

import "errors"

// SendError is the transport outcome type. Transient marks failures in
// the connectivity/protocol class that the retry controller may retry;
// everything else (malformed input, message construction) is fatal and
// aborts immediately.
type SendError struct {
	Err       error
	Transient bool
}

func (e *SendError) Error() string {
	return e.Err.Error()
}

func (e *SendError) Unwrap() error {
	return e.Err
}

func transient(err error) *SendError {
	return &SendError{Err: err, Transient: true}
}

func fatal(err error) *SendError {
	return &SendError{Err: err, Transient: false}
}

// IsTransient reports whether err is a transport failure worth
// retrying. Non-SendError values are treated as fatal.
func IsTransient(err error) bool {
	var se *SendError
	if errors.As(err, &se) {
		return se.Transient
	}
	return false
}
