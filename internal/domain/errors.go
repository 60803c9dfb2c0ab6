package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotAvailableOffline indicates the requested chapter is not cached
	// and the device is offline. Terminal for that request: callers must not
	// retry automatically.
	ErrNotAvailableOffline = errors.New("chapter not available offline: connect to the internet to download it")

	// ErrServerOffline indicates the content server is unreachable
	ErrServerOffline = errors.New("content server is unreachable")

	// ErrAuthFailed indicates the API key was rejected
	ErrAuthFailed = errors.New("api key is invalid")

	// ErrChapterNotFound indicates the requested chapter does not exist
	ErrChapterNotFound = errors.New("chapter not found")
)
