package domain

import "time"

type Conversation struct {
	ID        int64
	UserID    int64
	Message   string
	Response  string
	Timestamp time.Time
}
