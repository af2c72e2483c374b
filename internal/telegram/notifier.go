package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/config"
	"github.com/set-night/phonechat/internal/domain"
)

// MessageSender is the part of *bot.Bot used for outgoing messages.
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Notifier posts sales leads and operational errors to forum topics of a
// staff chat. A zero chat ID or topic disables the corresponding feed.
type Notifier struct {
	sender      MessageSender
	chatID      int64
	topicLeads  int
	topicErrors int
}

func NewNotifier(sender MessageSender, cfg *config.Config) *Notifier {
	return &Notifier{
		sender:      sender,
		chatID:      cfg.NotifyChatID,
		topicLeads:  cfg.NotifyTopicLeads,
		topicErrors: cfg.NotifyTopicErrors,
	}
}

type notification string

const (
	notificationLead  notification = "lead"
	notificationError notification = "error"
)

func (n *Notifier) send(kind notification, message string) {
	if n == nil || n.sender == nil || n.chatID == 0 {
		return
	}

	topicID := n.topicID(kind)
	if topicID == 0 {
		return
	}

	if len([]rune(message)) > config.MaxTelegramMessageLen {
		message = string([]rune(message)[:config.MaxTelegramMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.NotifyTimeout)
	defer cancel()

	_, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          n.chatID,
		Text:            message,
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram notification", "type", kind, "error", err)
	}
}

func (n *Notifier) topicID(kind notification) int {
	switch kind {
	case notificationLead:
		return n.topicLeads
	case notificationError:
		return n.topicErrors
	default:
		return 0
	}
}

func (n *Notifier) NotifyLead(user *domain.User, phone *domain.CellPhone, lead domain.ContactInfo) {
	var b strings.Builder
	fmt.Fprintf(&b, "📱 New lead #%d\n\n", lead.ID)
	fmt.Fprintf(&b, "Phone: %s %s ($%s)\n", phone.Brand, phone.Model, phone.Price.StringFixed(2))
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Callback: %s\n", lead.Phone)
	fmt.Fprintf(&b, "User: %d", user.ID)
	if user.TelegramID != nil {
		fmt.Fprintf(&b, " (telegram %d)", *user.TelegramID)
	}
	n.send(notificationLead, b.String())
}

func (n *Notifier) NotifyError(err error, context string) {
	msg := fmt.Sprintf("❌ Error\n\nContext: %s\nError: %s\nTime: %s",
		context, err.Error(), time.Now().UTC().Format("2006-01-02 15:04:05"))
	n.send(notificationError, msg)
}
