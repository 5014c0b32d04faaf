package model

import "errors"

var ErrGenreNotFound = errors.New("genre not found")
