package ir

import "errors"

var (
	ErrUnsupported = errors.New("unsupported value")
	ErrDupField    = errors.New("duplicate field")
)
