package user

import "errors"

// Typed failures of the mutation operations. Callers match them with
// errors.Is; the wrapping message names the offending field or id.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrManagerNotFound       = errors.New("manager_id not found")
	ErrManagerInactive       = errors.New("manager_id is not active")
	ErrDuplicateActiveMobile = errors.New("active user with this mobile number already exists")
	ErrNotFound              = errors.New("user not found")
	ErrAmbiguousMobile       = errors.New("multiple users match this mobile number, use user_id")
)
