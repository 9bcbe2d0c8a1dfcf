package generator

import "errors"

var (
	ErrInvalidDays   = errors.New("day count out of range")
	ErrSegmentFailed = errors.New("plan segment failed")
)
