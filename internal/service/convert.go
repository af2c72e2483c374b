package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/repository/sqlc"
)

// pgTimestamptzToTime converts pgtype.Timestamptz to time.Time.
func pgTimestamptzToTime(ts pgtype.Timestamptz) time.Time {
	if ts.Valid {
		return ts.Time
	}
	return time.Time{}
}

// timeToPgTimestamptz converts time.Time to pgtype.Timestamptz.
func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

// validationError wraps validator output in domain.ErrInvalidInput.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed on %q", domain.ErrInvalidInput, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func rowToUser(row sqlc.User) *domain.User {
	return &domain.User{
		ID:          row.ID,
		Name:        row.Name,
		Language:    row.Language,
		Preferences: row.Preferences,
		TelegramID:  row.TelegramID,
		CreatedAt:   pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToCellPhone(row sqlc.Cellphone) domain.CellPhone {
	return domain.CellPhone{
		ID:          row.ID,
		Brand:       row.Brand,
		Model:       row.Model,
		Year:        int(row.Year),
		Price:       row.Price,
		Storage:     row.Storage,
		BatteryLife: row.BatteryLife,
	}
}

func rowToConversation(row sqlc.Conversation) domain.Conversation {
	return domain.Conversation{
		ID:        row.ID,
		UserID:    row.UserID,
		Message:   row.Message,
		Response:  row.Response,
		Timestamp: pgTimestamptzToTime(row.Timestamp),
	}
}

func rowToContactInfo(row sqlc.ContactInfo) domain.ContactInfo {
	return domain.ContactInfo{
		ID:          row.ID,
		UserID:      row.UserID,
		CellPhoneID: row.CellphoneID,
		Name:        row.Name,
		Email:       row.Email,
		Phone:       row.Phone,
		Timestamp:   pgTimestamptzToTime(row.Timestamp),
	}
}
