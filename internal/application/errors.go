package application

import "errors"

// Service-level sentinel errors. Handlers map these onto HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileExists      = errors.New("profile already exists")
	ErrNotOwner           = errors.New("not authorized to modify this resource")
	ErrMissingFields      = errors.New("please fill all the fields")
	ErrInvalidCategory    = errors.New("unknown blog category")
)
