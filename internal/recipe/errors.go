package recipe

import "errors"

var (
	ErrParse      = errors.New("recipe parse failed")
	ErrValidation = errors.New("recipe validation failed")
	ErrFetch      = errors.New("recipe fetch failed")
	ErrFilename   = errors.New("package filename parse failed")
)
