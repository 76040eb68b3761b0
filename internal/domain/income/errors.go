package income

import "errors"

var (
	ErrSourceNotFound  = errors.New("income source not found")
	ErrSourceNameTaken = errors.New("income source name already exists")
)
