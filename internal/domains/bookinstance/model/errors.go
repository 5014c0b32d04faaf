package model

import "errors"

var ErrBookInstanceNotFound = errors.New("book instance not found")
