package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/set-night/phonechat/internal/domain"
)

// writeError maps service errors onto HTTP responses. Anything unrecognised
// is a storage failure and is logged rather than echoed to the client.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
	case errors.Is(err, domain.ErrCellPhoneNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Cellphone not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		slog.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}
