package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/repository/sqlc"
)

type cellPhoneGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.CellPhone, error)
}

type contactStore interface {
	CreateContactInfo(ctx context.Context, arg sqlc.CreateContactInfoParams) (sqlc.ContactInfo, error)
}

type LeadResult struct {
	Contact   domain.ContactInfo
	CellPhone domain.CellPhone
	Message   string
}

// LeadService records requests to be contacted about a specific cellphone.
type LeadService struct {
	users    userGetter
	catalog  cellPhoneGetter
	store    contactStore
	notifier Notifier
	validate *validator.Validate
}

func NewLeadService(users userGetter, catalog cellPhoneGetter, store contactStore, notifier Notifier) *LeadService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &LeadService{
		users:    users,
		catalog:  catalog,
		store:    store,
		notifier: notifier,
		validate: validator.New(),
	}
}

func (s *LeadService) Submit(ctx context.Context, in domain.NewContactInfo) (*LeadResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	phone, err := s.catalog.GetByID(ctx, in.CellPhoneID)
	if err != nil {
		return nil, err
	}

	row, err := s.store.CreateContactInfo(ctx, sqlc.CreateContactInfoParams{
		UserID:      in.UserID,
		CellphoneID: in.CellPhoneID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact info: %w", err)
	}
	contact := rowToContactInfo(row)

	slog.Info("lead captured", "lead_id", contact.ID, "user_id", user.ID, "cellphone_id", phone.ID)
	s.notifier.NotifyLead(user, phone, contact)

	return &LeadResult{
		Contact:   contact,
		CellPhone: *phone,
		Message:   confirmationMessage(in.Name, phone, in.Phone),
	}, nil
}

func confirmationMessage(name string, phone *domain.CellPhone, callback string) string {
	return fmt.Sprintf(
		"Thank you %s! We've received your contact information for the %s %s. We'll call you at %s within 24 hours to confirm your purchase.",
		name, phone.Brand, phone.Model, callback,
	)
}
