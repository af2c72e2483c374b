package httpapi

import (
	"context"
	"time"

	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/service"
)

type stubUsers struct {
	users   map[int64]*domain.User
	created []domain.NewUser
	err     error
}

func (s *stubUsers) Create(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, in)
	lang := in.Language
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	return &domain.User{ID: 42, Name: in.Name, Language: lang, Preferences: in.Preferences}, nil
}

func (s *stubUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type stubCatalog struct {
	phones   []domain.CellPhone
	imported []domain.NewCellPhone
	err      error
}

func (s *stubCatalog) Create(ctx context.Context, in domain.NewCellPhone) (*domain.CellPhone, error) {
	if s.err != nil {
		return nil, s.err
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return &domain.CellPhone{ID: 9, Brand: in.Brand, Model: in.Model, Year: in.Year, Price: *in.Price}, nil
}

func (s *stubCatalog) GetByID(ctx context.Context, id int64) (*domain.CellPhone, error) {
	for _, p := range s.phones {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrCellPhoneNotFound
}

func (s *stubCatalog) ListAll(ctx context.Context) ([]domain.CellPhone, error) {
	return s.phones, s.err
}

func (s *stubCatalog) Import(ctx context.Context, phones []domain.NewCellPhone) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.imported = append(s.imported, phones...)
	return len(phones), nil
}

type stubConversations struct {
	convs     []domain.Conversation
	lastLimit int
}

func (s *stubConversations) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Conversation, error) {
	s.lastLimit = limit
	return s.convs, nil
}

type stubChat struct {
	result   *service.ChatResult
	err      error
	lastUser int64
	lastMsg  string
}

func (s *stubChat) Chat(ctx context.Context, userID int64, message string) (*service.ChatResult, error) {
	s.lastUser, s.lastMsg = userID, message
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubLeads struct {
	result *service.LeadResult
	err    error
	last   domain.NewContactInfo
}

func (s *stubLeads) Submit(ctx context.Context, in domain.NewContactInfo) (*service.LeadResult, error) {
	s.last = in
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
