package encode

import "errors"

var (
	ErrCharset     = errors.New("unsupported charset")
	ErrRoot        = errors.New("no document element")
	ErrUnsupported = errors.New("value cannot be encoded")
)
