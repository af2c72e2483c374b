package domain

import "time"

// ContactInfo is a sales lead: a user asking to be called back about a cellphone.
type ContactInfo struct {
	ID          int64
	UserID      int64
	CellPhoneID int64
	Name        string
	Email       string
	Phone       string
	Timestamp   time.Time
}

type NewContactInfo struct {
	UserID      int64
	CellPhoneID int64
	Name        string `validate:"required,max=200"`
	Email       string `validate:"required,email,max=320"`
	Phone       string `validate:"required,max=40"`
}
