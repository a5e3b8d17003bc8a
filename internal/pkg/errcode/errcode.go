package errcode

const (
	ErrUnknown = 10000000 + iota
	ErrNotFound
	ErrInvalid
	ErrUpstreamFailed
	ErrInternal
	ErrTooMany
)
