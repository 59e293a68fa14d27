package form

import "errors"

var (
	ErrMissingBinding   = errors.New("form: field has no handle bound")
	ErrMissingIndicator = errors.New("form: strength indicator is not bound")
)
