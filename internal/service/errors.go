package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request body is missing
	// required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned by Login when the supplied password does
	// not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidAPIKey is returned by the weather service when the apikey
	// query parameter does not equal the configured shared secret. No
	// upstream call is made in that case.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrNoForecastData is returned when the upstream forecast API answers
	// without a usable result set.
	ErrNoForecastData = errors.New("no forecast data found")

	// ErrTokenIsExpiredOrInvalid is returned when a bearer token fails
	// verification.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
