package restclient

import "errors"

var (
	errEmptyBody = errors.New("restclient: empty response body")
	errNullBody  = errors.New("restclient: response body is null")
)
