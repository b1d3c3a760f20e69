package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	// ErrUpstreamFailure covers every failed call to the football data provider.
	// Status codes are kept in the wrapped message only.
	ErrUpstreamFailure = errors.New("upstream failure")
)
