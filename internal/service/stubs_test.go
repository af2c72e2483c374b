package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/repository/sqlc"
	"github.com/shopspring/decimal"
)

type stubUsers struct {
	users map[int64]*domain.User
	err   error
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
	phones []domain.CellPhone
	err    error
}

func (s *stubCatalog) ListAll(ctx context.Context) ([]domain.CellPhone, error) {
	return s.phones, s.err
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

type recordedConversation struct {
	userID  int64
	message string
	reply   string
	at      time.Time
}

type stubConversations struct {
	mu          sync.Mutex
	records     []recordedConversation
	err         error
	hadDeadline bool
}

func (s *stubConversations) Record(ctx context.Context, userID int64, message, reply string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, s.hadDeadline = ctx.Deadline()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, recordedConversation{userID, message, reply, at})
	return nil
}

type stubGateway struct {
	text       string
	err        error
	block      bool
	lastPrompt string
}

func (s *stubGateway) Generate(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.text, s.err
}

type stubNotifier struct {
	mu     sync.Mutex
	leads  []domain.ContactInfo
	errors []error
}

func (s *stubNotifier) NotifyLead(user *domain.User, phone *domain.CellPhone, lead domain.ContactInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, lead)
}

func (s *stubNotifier) NotifyError(err error, context string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, err)
}

type stubContactStore struct {
	saved []sqlc.CreateContactInfoParams
	err   error
}

func (s *stubContactStore) CreateContactInfo(ctx context.Context, arg sqlc.CreateContactInfoParams) (sqlc.ContactInfo, error) {
	if s.err != nil {
		return sqlc.ContactInfo{}, s.err
	}
	s.saved = append(s.saved, arg)
	return sqlc.ContactInfo{
		ID:          int64(len(s.saved)),
		UserID:      arg.UserID,
		CellphoneID: arg.CellphoneID,
		Name:        arg.Name,
		Email:       arg.Email,
		Phone:       arg.Phone,
	}, nil
}

var errStorage = errors.New("connection refused")

func testCatalog() []domain.CellPhone {
	return []domain.CellPhone{
		{ID: 1, Brand: "Acme", Model: "X1", Year: 2023, Price: decimal.NewFromInt(999)},
		{ID: 2, Brand: "Bolt", Model: "Y2", Year: 2022, Price: decimal.NewFromInt(450)},
		{ID: 3, Brand: "Crest", Model: "Z3", Year: 2024, Price: decimal.NewFromInt(1200)},
	}
}

func strPtr(s string) *string { return &s }
