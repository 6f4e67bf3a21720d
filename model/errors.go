package model

import "errors"

// Configuration errors: the request itself is malformed.
var (
	ErrYearStartFormat       = errors.New("hydrological year start must be a valid \"DD/MM\" string")
	ErrUnknownCharacteristic = errors.New("unknown streamflow characteristic")
	ErrBadTimeAxis           = errors.New("time axis must be 0 or 1")
	ErrDrainageArea          = errors.New("drainage area must be a positive number")
)

// Data-integrity errors: the record cannot be trusted.
var (
	ErrLengthMismatch     = errors.New("flow series and date index lengths differ")
	ErrDatesNotContiguous = errors.New("date index must increase by exactly one day per step")
	ErrInvalidFlow        = errors.New("flow series contains a NaN or infinite value")
	ErrNegativeFlow       = errors.New("flow series contains a negative value")
)
