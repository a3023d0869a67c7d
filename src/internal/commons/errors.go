package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrRecordAlreadyExists = errors.New("Record already exists")
