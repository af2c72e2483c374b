package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/set-night/phonechat/internal/domain"
)

func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.Chat.Chat(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chatResponse{
		Response:        res.Reply,
		Recommendations: toCellPhoneResponses(res.Recommendations),
	})
}

func (h *Handler) SubmitContactInfo(c *gin.Context) {
	var req contactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.Leads.Submit(c.Request.Context(), domain.NewContactInfo{
		UserID:      req.UserID,
		CellPhoneID: req.CellPhoneID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	ci := res.Contact
	c.JSON(http.StatusOK, contactInfoSubmitResponse{
		Message: res.Message,
		ContactInfo: contactInfoResponse{
			ID:          ci.ID,
			UserID:      ci.UserID,
			CellPhoneID: ci.CellPhoneID,
			Name:        ci.Name,
			Email:       ci.Email,
			Phone:       ci.Phone,
			Timestamp:   ci.Timestamp,
		},
	})
}
