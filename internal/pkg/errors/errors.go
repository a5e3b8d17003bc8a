package errors

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalid     = errors.New("invalid")
	ErrFetchFailed = errors.New("fetch failed")
	ErrInternal    = errors.New("internal")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}
