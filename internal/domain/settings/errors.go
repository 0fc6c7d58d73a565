package settings

import "errors"

var (
	// ErrInvalidInput indicates invalid settings input.
	ErrInvalidInput = errors.New("invalid settings input")
	// ErrInvalidAvatar indicates the avatar is not an image data URI.
	ErrInvalidAvatar = errors.New("avatar must be an image data URI")
)
