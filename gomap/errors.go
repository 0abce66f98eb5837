package gomap

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported go type")
	ErrKeyType         = errors.New("map key is not a string")
	ErrIntRange        = errors.New("integer out of int64 range")
)
