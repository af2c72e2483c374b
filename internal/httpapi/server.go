// Package httpapi exposes users, the catalog, chat and lead capture over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/set-night/phonechat/internal/domain"
	"github.com/set-night/phonechat/internal/service"
)

type userService interface {
	Create(ctx context.Context, in domain.NewUser) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type catalogService interface {
	Create(ctx context.Context, in domain.NewCellPhone) (*domain.CellPhone, error)
	GetByID(ctx context.Context, id int64) (*domain.CellPhone, error)
	ListAll(ctx context.Context) ([]domain.CellPhone, error)
	Import(ctx context.Context, phones []domain.NewCellPhone) (int, error)
}

type conversationLister interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Conversation, error)
}

type chatter interface {
	Chat(ctx context.Context, userID int64, message string) (*service.ChatResult, error)
}

type leadSubmitter interface {
	Submit(ctx context.Context, in domain.NewContactInfo) (*service.LeadResult, error)
}

type Services struct {
	Users         userService
	Catalog       catalogService
	Conversations conversationLister
	Chat          chatter
	Leads         leadSubmitter
}

type Options struct {
	AllowedOrigins  []string
	MaxImportSizeMB int64
}

type Handler struct {
	svc  Services
	opts Options
}

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(svc Services, opts Options) *gin.Engine {
	h := &Handler{svc: svc, opts: opts}

	r := gin.New()
	r.Use(recovery(), requestID(), accessLog())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	r.POST("/users", h.CreateUser)
	r.GET("/users/:id", h.GetUser)
	r.GET("/users/:id/conversations", h.ListConversations)

	r.POST("/cellphones", h.CreateCellPhone)
	r.GET("/cellphones", h.ListCellPhones)
	r.GET("/cellphones/:id", h.GetCellPhone)
	r.POST("/cellphones/import", h.ImportCellPhones)

	r.POST("/chat", h.Chat)
	r.POST("/contact-info", h.SubmitContactInfo)

	return r
}

// NewServer wraps the router in an http.Server with a read-header timeout.
func NewServer(addr string, handler http.Handler, readHeaderTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Cellphone Chat API is running!"})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
