package sessions

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionSave     = errors.New("failed to save session cookie")
)
