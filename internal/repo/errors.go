package repo

import "errors"

// ErrNotFound is returned when an id or email resolves to no record.
var ErrNotFound = errors.New("record not found")
