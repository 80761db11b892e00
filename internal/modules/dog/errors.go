package dog

import "errors"

var (
	ErrNotFound           = errors.New("dog not found")
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrInvalidSize        = errors.New("invalid dog size")
	ErrInvalidTemperament = errors.New("invalid temperament tag")
)
