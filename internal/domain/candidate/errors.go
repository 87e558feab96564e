package candidate

import "errors"

var (
	ErrInvalidInput   = errors.New("candidate: invalid input")
	ErrLogUnavailable = errors.New("candidate: log unavailable")
	ErrNoHistory      = errors.New("candidate: no historical rejection data")
)
