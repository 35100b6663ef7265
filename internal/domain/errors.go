package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrPlatformUnavailable = errors.New("display platform unavailable")
	ErrAlreadyPresented    = errors.New("overlay already presented")
	ErrNotPresented        = errors.New("overlay not presented")
	ErrEmptyComment        = errors.New("comment text is empty")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
)
