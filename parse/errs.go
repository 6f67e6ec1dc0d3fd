package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse    = errors.New("parse error")
	errInternal = fmt.Errorf("%w: internal failure", ErrParse)
	ErrMaxDepth = fmt.Errorf("%w: maximum nesting depth exceeded", ErrParse)
)
