package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/recommend"
)

type userGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type catalogLister interface {
	ListAll(ctx context.Context) ([]domain.CellPhone, error)
}

type conversationRecorder interface {
	Record(ctx context.Context, userID int64, message, reply string, at time.Time) error
}

type replier interface {
	Reply(ctx context.Context, prompt string) string
}

type ChatResult struct {
	Reply           string
	Recommendations []domain.CellPhone
	Tier            recommend.Tier
}

// ChatService answers one user message with generated text and catalog picks.
type ChatService struct {
	users         userGetter
	catalog       catalogLister
	conversations conversationRecorder
	generator     replier
	notifier      Notifier
	writeTimeout  time.Duration
	now           func() time.Time

	pending sync.WaitGroup
}

type ChatDeps struct {
	Users         userGetter
	Catalog       catalogLister
	Conversations conversationRecorder
	Generator     replier
	Notifier      Notifier
	WriteTimeout  time.Duration
}

func NewChatService(deps ChatDeps) *ChatService {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &ChatService{
		users:         deps.Users,
		catalog:       deps.Catalog,
		conversations: deps.Conversations,
		generator:     deps.Generator,
		notifier:      notifier,
		writeTimeout:  deps.WriteTimeout,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *ChatService) Chat(ctx context.Context, userID int64, message string) (*ChatResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	rec := recommend.Recommend(message, catalog)
	prompt := recommend.ComposePrompt(user.Language, user.Preferences, message, rec.Context)
	reply := s.generator.Reply(ctx, prompt)

	s.recordAsync(ctx, user.ID, message, reply)

	slog.Debug("chat answered",
		"user_id", user.ID,
		"catalog_size", len(catalog),
		"tier", rec.Tier,
		"recommendations", len(rec.Products),
	)

	return &ChatResult{
		Reply:           reply,
		Recommendations: rec.Products,
		Tier:            rec.Tier,
	}, nil
}

// recordAsync stores the exchange without holding up the reply. The write
// outlives the request context but is bounded by writeTimeout.
func (s *ChatService) recordAsync(ctx context.Context, userID int64, message, reply string) {
	at := s.now()
	writeCtx := context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		if s.writeTimeout > 0 {
			var cancel context.CancelFunc
			writeCtx, cancel = context.WithTimeout(writeCtx, s.writeTimeout)
			defer cancel()
		}

		if err := s.conversations.Record(writeCtx, userID, message, reply, at); err != nil {
			slog.Error("failed to record conversation", "error", err, "user_id", userID)
			s.notifier.NotifyError(err, fmt.Sprintf("record conversation for user %d", userID))
		}
	}()
}

// Wait blocks until every pending conversation write has finished.
func (s *ChatService) Wait() {
	s.pending.Wait()
}
