package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/domain"
)

// LeadCallbackPrefix starts the callback data of "I want this one" buttons.
const LeadCallbackPrefix = "lead_"

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// RecommendationKeyboard has one row per recommended phone. Nil when there is nothing to offer.
func RecommendationKeyboard(phones []domain.CellPhone) *models.InlineKeyboardMarkup {
	if len(phones) == 0 {
		return nil
	}
	rows := make([][]models.InlineKeyboardButton, 0, len(phones))
	for _, p := range phones {
		label := fmt.Sprintf("🛒 %s %s ($%s)", p.Brand, p.Model, p.Price.StringFixed(2))
		rows = append(rows, []models.InlineKeyboardButton{
			InlineButton(label, LeadCallbackData(p.ID)),
		})
	}
	return InlineKeyboard(rows...)
}

func LeadCallbackData(cellPhoneID int64) string {
	return LeadCallbackPrefix + strconv.FormatInt(cellPhoneID, 10)
}

// ParseLeadCallback extracts the cellphone ID from lead callback data.
func ParseLeadCallback(data string) (int64, bool) {
	raw, ok := strings.CutPrefix(data, LeadCallbackPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
