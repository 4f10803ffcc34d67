package models

import "errors"

// ErrDuplicate is returned by stores when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")
