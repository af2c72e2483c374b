package domain

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrCellPhoneNotFound     = errors.New("cellphone not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrGenerationUnavailable = errors.New("text generation is not configured")
	ErrEmptyGeneration       = errors.New("text generation returned no content")
)
