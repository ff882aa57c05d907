package errs

import (
	"errors"
)

var (
	ErrMissingField = errors.New("missing required parameters: startDate, endDate, or roomType")
	ErrInvalidDate  = errors.New("invalid date format, use YYYY-MM-DD")
)
