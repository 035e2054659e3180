package calendar

import "errors"

var (
	ErrUnknownRegion = errors.New("unknown region")
	ErrNoOccurrence  = errors.New("no occurrence in year")
	ErrInvalidRule   = errors.New("invalid holiday rule")
	ErrInvalidDate   = errors.New("invalid date")
)
