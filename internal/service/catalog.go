package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/repository/sqlc"
)

type CatalogService struct {
	db       *pgxpool.Pool
	queries  *sqlc.Queries
	validate *validator.Validate
}

func NewCatalogService(db *pgxpool.Pool, queries *sqlc.Queries) *CatalogService {
	return &CatalogService{db: db, queries: queries, validate: validator.New()}
}

func (s *CatalogService) Create(ctx context.Context, in domain.NewCellPhone) (*domain.CellPhone, error) {
	if err := s.check(&in); err != nil {
		return nil, err
	}
	row, err := s.queries.CreateCellPhone(ctx, cellPhoneParams(in))
	if err != nil {
		return nil, fmt.Errorf("create cellphone: %w", err)
	}
	phone := rowToCellPhone(row)
	return &phone, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.CellPhone, error) {
	row, err := s.queries.GetCellPhoneByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCellPhoneNotFound
		}
		return nil, fmt.Errorf("get cellphone: %w", err)
	}
	phone := rowToCellPhone(row)
	return &phone, nil
}

// ListAll returns the whole catalog ordered by id.
func (s *CatalogService) ListAll(ctx context.Context) ([]domain.CellPhone, error) {
	rows, err := s.queries.ListCellPhones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cellphones: %w", err)
	}
	phones := make([]domain.CellPhone, len(rows))
	for i, r := range rows {
		phones[i] = rowToCellPhone(r)
	}
	return phones, nil
}

// Import inserts all phones in a single transaction or none of them.
func (s *CatalogService) Import(ctx context.Context, phones []domain.NewCellPhone) (int, error) {
	for i := range phones {
		if err := s.check(&phones[i]); err != nil {
			return 0, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	if len(phones) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := s.queries.WithTx(tx)
	for i, in := range phones {
		if _, err := qtx.CreateCellPhone(ctx, cellPhoneParams(in)); err != nil {
			return 0, fmt.Errorf("insert item %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return len(phones), nil
}

// check trims brand and model in place so whitespace-only names fail "required".
func (s *CatalogService) check(in *domain.NewCellPhone) error {
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	if err := s.validate.Struct(in); err != nil {
		return validationError(err)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func cellPhoneParams(in domain.NewCellPhone) sqlc.CreateCellPhoneParams {
	return sqlc.CreateCellPhoneParams{
		Brand:       in.Brand,
		Model:       in.Model,
		Year:        int32(in.Year),
		Price:       in.Price.Round(2),
		Storage:     in.Storage,
		BatteryLife: in.BatteryLife,
	}
}
