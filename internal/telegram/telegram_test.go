package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/phonechat/internal/config"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/shopspring/decimal"
)

type stubSender struct {
	mu       sync.Mutex
	sent     []*bot.SendMessageParams
	failMode models.ParseMode
	failAll  bool
}

func (s *stubSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *params
	s.sent = append(s.sent, &cp)
	if s.failAll || (s.failMode != "" && params.ParseMode == s.failMode) {
		return nil, errors.New("bad request")
	}
	return &models.Message{ID: len(s.sent)}, nil
}

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   []string
	}{
		{"short", "hello", 10, []string{"hello"}},
		{"hard split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newline split", "abcdef\nghij", 8, []string{"abcdef\n", "ghij"}},
		{"early newline ignored", "a\nbcdefghij", 8, []string{"a\nbcdefg", "hij"}},
		{"multibyte", "ééééé", 2, []string{"éé", "éé", "é"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitMessage(tt.text, tt.maxLen)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("SplitMessage(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
			for _, p := range got {
				if utf8.RuneCountInString(p) > tt.maxLen {
					t.Errorf("part %q longer than %d", p, tt.maxLen)
				}
			}
		})
	}
}

func TestFixMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"double asterisks", "Try the **Acme X1**!", "Try the *Acme X1*!"},
		{"heading", "## Options\nSome text", "*Options*\nSome text"},
		{"hashtag kept", "#1 choice", "#1 choice"},
		{"unclosed inline code", "use `code", "use `code`"},
		{"unclosed block", "```\nx := 1", "```\nx := 1\n```"},
		{"code block untouched", "```\n**x**\n```", "```\n**x**\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixMarkdown(tt.in); got != tt.want {
				t.Errorf("FixMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSendLongMessageFallsBackToPlainText(t *testing.T) {
	s := &stubSender{failMode: models.ParseModeMarkdownV1}
	markup := InlineKeyboard([]models.InlineKeyboardButton{InlineButton("x", "y")})

	if err := SendLongMessage(context.Background(), s, 5, "hello", markup); err != nil {
		t.Fatalf("SendLongMessage() error = %v", err)
	}
	if len(s.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(s.sent))
	}
	if s.sent[1].ParseMode != "" || s.sent[1].ReplyMarkup == nil {
		t.Errorf("fallback params = %+v", s.sent[1])
	}
}

func TestSendLongMessageMarkupOnLastPart(t *testing.T) {
	s := &stubSender{}
	text := strings.Repeat("a", config.MaxTelegramMessageLen+10)
	markup := InlineKeyboard([]models.InlineKeyboardButton{InlineButton("x", "y")})

	if err := SendLongMessage(context.Background(), s, 5, text, markup); err != nil {
		t.Fatalf("SendLongMessage() error = %v", err)
	}
	if len(s.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(s.sent))
	}
	if s.sent[0].ReplyMarkup != nil || s.sent[1].ReplyMarkup == nil {
		t.Error("markup should only be attached to the last part")
	}
}

func TestSendLongMessageError(t *testing.T) {
	s := &stubSender{failAll: true}
	if err := SendLongMessage(context.Background(), s, 5, "hello", nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestRecommendationKeyboard(t *testing.T) {
	if RecommendationKeyboard(nil) != nil {
		t.Error("empty recommendations should give no keyboard")
	}

	kb := RecommendationKeyboard([]domain.CellPhone{
		{ID: 3, Brand: "Acme", Model: "X1", Price: decimal.NewFromInt(999)},
		{ID: 8, Brand: "Bolt", Model: "Y2", Price: decimal.RequireFromString("450.5")},
	})
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(kb.InlineKeyboard))
	}
	btn := kb.InlineKeyboard[1][0]
	if btn.CallbackData != "lead_8" || !strings.Contains(btn.Text, "Bolt Y2 ($450.50)") {
		t.Errorf("button = %+v", btn)
	}
}

func TestParseLeadCallback(t *testing.T) {
	tests := []struct {
		data   string
		want   int64
		wantOK bool
	}{
		{"lead_12", 12, true},
		{LeadCallbackData(7), 7, true},
		{"lead_", 0, false},
		{"lead_x", 0, false},
		{"lead_-1", 0, false},
		{"other_1", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLeadCallback(tt.data)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLeadCallback(%q) = %d, %v; want %d, %v", tt.data, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNotifier(t *testing.T) {
	s := &stubSender{}
	n := NewNotifier(s, &config.Config{NotifyChatID: -100, NotifyTopicLeads: 3, NotifyTopicErrors: 4})

	tgID := int64(555)
	n.NotifyLead(
		&domain.User{ID: 1, TelegramID: &tgID},
		&domain.CellPhone{ID: 2, Brand: "Acme", Model: "X1", Price: decimal.NewFromInt(999)},
		domain.ContactInfo{ID: 9, Name: "Ann", Email: "ann@example.com", Phone: "555-0100"},
	)
	n.NotifyError(errors.New("db down"), "record conversation")

	if len(s.sent) != 2 {
		t.Fatalf("sent %d, want 2", len(s.sent))
	}
	lead := s.sent[0]
	if lead.ChatID != int64(-100) || lead.MessageThreadID != 3 {
		t.Errorf("lead routed to %v/%d", lead.ChatID, lead.MessageThreadID)
	}
	for _, want := range []string{"#9", "Acme X1 ($999.00)", "ann@example.com", "555-0100", "telegram 555"} {
		if !strings.Contains(lead.Text, want) {
			t.Errorf("lead text missing %q: %s", want, lead.Text)
		}
	}
	if s.sent[1].MessageThreadID != 4 || !strings.Contains(s.sent[1].Text, "db down") {
		t.Errorf("error notification = %+v", s.sent[1])
	}
}

func TestNotifierDisabled(t *testing.T) {
	s := &stubSender{}
	NewNotifier(s, &config.Config{}).NotifyError(errors.New("x"), "ctx")
	NewNotifier(s, &config.Config{NotifyChatID: 1, NotifyTopicErrors: 0}).NotifyError(errors.New("x"), "ctx")

	var nilNotifier *Notifier
	nilNotifier.NotifyError(errors.New("x"), "ctx")

	if len(s.sent) != 0 {
		t.Errorf("sent %d, want 0", len(s.sent))
	}
}
