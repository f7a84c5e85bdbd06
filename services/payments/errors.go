package payments

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrProviderRejected    = errors.New("payment provider rejected the preference")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
