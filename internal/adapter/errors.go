package adapter

import "errors"

// Errors returned by [Pinner] implementations. Upstream HTTP statuses are
// mapped onto them by mapHTTPError.
var (
	ErrBadRequest          = errors.New("upstream rejected request")
	ErrUnauthorized        = errors.New("upstream rejected credentials")
	ErrForbidden           = errors.New("upstream forbade request")
	ErrTooManyRequests     = errors.New("upstream rate limit exceeded")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrUpstream            = errors.New("unexpected upstream response")

	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrEmptyHash         = errors.New("upstream response has no content hash")
)
