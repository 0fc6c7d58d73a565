package project

import "errors"

var (
	// ErrProjectNotFound indicates no stored project has the given id.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates a project form value failed validation.
	ErrInvalidInput = errors.New("invalid project input")
)
