package wailsapp

import "errors"

var (
	// ErrNotReady is returned when a binding is called on an App that was
	// built without the service it needs.
	ErrNotReady = errors.New("application not initialized")
)
