package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/repository/sqlc"
)

type UserService struct {
	queries  *sqlc.Queries
	validate *validator.Validate
}

func NewUserService(queries *sqlc.Queries) *UserService {
	return &UserService{queries: queries, validate: validator.New()}
}

func (s *UserService) Create(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		Name:        in.Name,
		Language:    normalizeLanguage(in.Language),
		Preferences: in.Preferences,
		TelegramID:  in.TelegramID,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return rowToUser(row), nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return rowToUser(row), nil
}

// FindOrCreateByTelegramID returns the user bound to a Telegram account,
// registering one on first contact. The bool reports whether it was created.
func (s *UserService) FindOrCreateByTelegramID(ctx context.Context, telegramID int64, firstName, languageCode string) (*domain.User, bool, error) {
	row, err := s.queries.GetUserByTelegramID(ctx, &telegramID)
	if err == nil {
		return rowToUser(row), false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("get user by telegram id: %w", err)
	}

	in := domain.NewUser{
		Language:   languageCode,
		TelegramID: &telegramID,
	}
	if name := strings.TrimSpace(firstName); name != "" {
		in.Name = &name
	}
	user, err := s.Create(ctx, in)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *UserService) SetLanguage(ctx context.Context, userID int64, language string) error {
	language = strings.TrimSpace(language)
	if err := s.validate.Var(language, "required,max=16"); err != nil {
		return validationError(err)
	}
	if err := s.queries.UpdateUserLanguage(ctx, sqlc.UpdateUserLanguageParams{
		ID:       userID,
		Language: language,
	}); err != nil {
		return fmt.Errorf("update language: %w", err)
	}
	return nil
}

// SetPreferences replaces the free-text preferences; blank text clears them.
func (s *UserService) SetPreferences(ctx context.Context, userID int64, preferences string) error {
	var prefs *string
	if p := strings.TrimSpace(preferences); p != "" {
		if err := s.validate.Var(p, "max=4000"); err != nil {
			return validationError(err)
		}
		prefs = &p
	}
	if err := s.queries.UpdateUserPreferences(ctx, sqlc.UpdateUserPreferencesParams{
		ID:          userID,
		Preferences: prefs,
	}); err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	return nil
}

func normalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return domain.DefaultLanguage
	}
	return lang
}
