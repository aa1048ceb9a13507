package errorz

import "errors"

var (
	ErrPinFetch        = errors.New("failed to fetch candidate pins")
	ErrPreferenceFetch = errors.New("failed to fetch notification preferences")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
)
