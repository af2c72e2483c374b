package httpapi

import (
	"time"

	"github.com/set-night/phonechat/internal/domain"
	"github.com/shopspring/decimal"
)

type userResponse struct {
	ID          int64     `json:"id"`
	Name        *string   `json:"name"`
	Language    string    `json:"language"`
	Preferences *string   `json:"preferences"`
	TelegramID  *int64    `json:"telegram_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Language:    u.Language,
		Preferences: u.Preferences,
		TelegramID:  u.TelegramID,
		CreatedAt:   u.CreatedAt,
	}
}

// cellPhoneResponse renders price as a JSON number, as API clients expect.
type cellPhoneResponse struct {
	ID          int64   `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Price       float64 `json:"price"`
	Storage     *string `json:"storage"`
	BatteryLife *string `json:"battery_life"`
}

func toCellPhoneResponse(p domain.CellPhone) cellPhoneResponse {
	return cellPhoneResponse{
		ID:          p.ID,
		Brand:       p.Brand,
		Model:       p.Model,
		Year:        p.Year,
		Price:       p.Price.InexactFloat64(),
		Storage:     p.Storage,
		BatteryLife: p.BatteryLife,
	}
}

func toCellPhoneResponses(phones []domain.CellPhone) []cellPhoneResponse {
	out := make([]cellPhoneResponse, 0, len(phones))
	for _, p := range phones {
		out = append(out, toCellPhoneResponse(p))
	}
	return out
}

type conversationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type contactInfoResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CellPhoneID int64     `json:"cellphone_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Timestamp   time.Time `json:"timestamp"`
}

type createUserRequest struct {
	Name        *string `json:"name"`
	Language    string  `json:"language"`
	Preferences *string `json:"preferences"`
}

// Price accepts both 999.99 and "999.99"; absent or null is rejected.
type createCellPhoneRequest struct {
	Brand       string           `json:"brand" binding:"required"`
	Model       string           `json:"model" binding:"required"`
	Year        int              `json:"year" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Storage     *string          `json:"storage"`
	BatteryLife *string          `json:"battery_life"`
}

type chatRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

type chatResponse struct {
	Response        string              `json:"response"`
	Recommendations []cellPhoneResponse `json:"recommendations"`
}

type contactInfoRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	CellPhoneID int64  `json:"cellphone_id"`
	UserID      int64  `json:"user_id"`
}

type contactInfoSubmitResponse struct {
	Message     string              `json:"message"`
	ContactInfo contactInfoResponse `json:"contact_info"`
}
