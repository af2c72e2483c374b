package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/set-night/phonechat/internal/catalogfile"
	"github.com/set-night/phonechat/internal/domain"
)

func (h *Handler) CreateCellPhone(c *gin.Context) {
	var req createCellPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	phone, err := h.svc.Catalog.Create(c.Request.Context(), domain.NewCellPhone{
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		Storage:     req.Storage,
		BatteryLife: req.BatteryLife,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCellPhoneResponse(*phone))
}

func (h *Handler) ListCellPhones(c *gin.Context) {
	phones, err := h.svc.Catalog.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCellPhoneResponses(phones))
}

func (h *Handler) GetCellPhone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	phone, err := h.svc.Catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCellPhoneResponse(*phone))
}

// ImportCellPhones loads a catalog file (.xlsx or HTML table) uploaded as the "file" form field.
func (h *Handler) ImportCellPhones(c *gin.Context) {
	maxSize := h.opts.MaxImportSizeMB
	if maxSize <= 0 {
		maxSize = 5
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize<<20)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": fmt.Sprintf("File too large. Maximum size is %dMB", maxSize)})
			return
		}
		badRequest(c, "No file uploaded")
		return
	}
	defer file.Close()

	phones, err := catalogfile.ReadFile(header.Filename, file)
	if err != nil {
		if errors.Is(err, catalogfile.ErrUnsupportedFormat) {
			badRequest(c, "Invalid file type. Only .xlsx workbooks and .html tables are accepted")
			return
		}
		badRequest(c, err.Error())
		return
	}

	n, err := h.svc.Catalog.Import(c.Request.Context(), phones)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": n})
}
