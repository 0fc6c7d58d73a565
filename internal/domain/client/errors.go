package client

import "errors"

var (
	// ErrClientNotFound indicates the client doesn't exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidInput indicates invalid client input.
	ErrInvalidInput = errors.New("invalid client input")
	// ErrNoEmail indicates the client has no address to compose mail to.
	ErrNoEmail = errors.New("no valid email address found for this client")
)
