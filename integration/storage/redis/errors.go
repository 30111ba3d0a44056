package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned when Connect receives no URL.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
	// ErrFailedToParseConnString is returned for a malformed connection URL.
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	// ErrRedisNotReady is returned when the server does not answer a ping
	// within the configured retry budget.
	ErrRedisNotReady = errors.New("redis did not become ready within the given time period")
)
