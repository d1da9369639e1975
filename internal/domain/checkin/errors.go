package checkin

import "errors"

var (
	ErrCheckInNotFound = errors.New("check-in not found")
)
