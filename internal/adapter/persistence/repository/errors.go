package repository

import "errors"

// ErrAlreadyExists is returned by Create when the id is taken.
var ErrAlreadyExists = errors.New("request already exists")
