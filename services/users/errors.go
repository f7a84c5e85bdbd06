package users

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrPlateTaken         = errors.New("plate already registered")
	ErrNotVehicleOwner    = errors.New("vehicle belongs to another user")
	ErrNotDriver          = errors.New("only drivers can register vehicles")
	ErrDocumentMissing    = errors.New("document has not been submitted")
	ErrVehicleChanged     = errors.New("vehicle was modified meanwhile, reload and retry")
	ErrSelfRating         = errors.New("users cannot rate themselves")
	ErrDuplicateRating    = errors.New("user already rated for this trip")
)
