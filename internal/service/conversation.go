package service

import (
	"context"
	"fmt"
	"time"

	"github.com/set-night/phonechat/internal/config"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/repository/sqlc"
)

type ConversationService struct {
	queries *sqlc.Queries
}

func NewConversationService(queries *sqlc.Queries) *ConversationService {
	return &ConversationService{queries: queries}
}

func (s *ConversationService) Record(ctx context.Context, userID int64, message, reply string, at time.Time) error {
	if _, err := s.queries.CreateConversation(ctx, sqlc.CreateConversationParams{
		UserID:    userID,
		Message:   message,
		Response:  reply,
		Timestamp: timeToPgTimestamptz(at),
	}); err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}

// ListByUser returns the most recent exchanges first.
func (s *ConversationService) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Conversation, error) {
	rows, err := s.queries.ListConversationsByUserID(ctx, sqlc.ListConversationsByUserIDParams{
		UserID: userID,
		Limit:  int32(clampHistoryLimit(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	out := make([]domain.Conversation, len(rows))
	for i, r := range rows {
		out[i] = rowToConversation(r)
	}
	return out, nil
}

func clampHistoryLimit(limit int) int {
	if limit <= 0 {
		return config.DefaultHistoryLimit
	}
	if limit > config.MaxHistoryLimit {
		return config.MaxHistoryLimit
	}
	return limit
}
