package domain

import "time"

const DefaultLanguage = "en"

type User struct {
	ID          int64
	Name        *string
	Language    string
	Preferences *string
	TelegramID  *int64
	CreatedAt   time.Time
}

// NewUser carries the fields accepted when registering a user.
type NewUser struct {
	Name        *string `validate:"omitempty,max=200"`
	Language    string  `validate:"omitempty,max=16"`
	Preferences *string `validate:"omitempty,max=4000"`
	TelegramID  *int64
}
