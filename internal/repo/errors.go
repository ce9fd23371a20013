package repo

import "errors"

var (
	// ErrNotFound covers both a missing row and a row owned by another user;
	// callers cannot distinguish them.
	ErrNotFound = errors.New("record not found")

	ErrDuplicateEmail = errors.New("email already registered")
)
