// Package catalogfile reads cellphone catalogs from .xlsx workbooks and
// HTML table exports.
//
// The data must start with a header row. Columns are matched by name,
// case-insensitively and in any order: brand, model, year and price are
// required; storage and battery_life (or "battery life") are optional.
package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/set-night/phonechat/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNoSheet           = errors.New("workbook has no sheets")
	ErrUnsupportedFormat = errors.New("unsupported catalog file format")
)

// ReadFile picks the reader by file extension.
func ReadFile(filename string, r io.Reader) ([]domain.NewCellPhone, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return Read(r)
	case ".html", ".htm":
		return ReadHTML(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

const (
	colBrand       = "brand"
	colModel       = "model"
	colYear        = "year"
	colPrice       = "price"
	colStorage     = "storage"
	colBatteryLife = "battery_life"
)

var requiredColumns = []string{colBrand, colModel, colYear, colPrice}

// Read parses the first sheet of an .xlsx workbook. Blank rows are skipped.
func Read(r io.Reader) ([]domain.NewCellPhone, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]domain.NewCellPhone, error) {
	if len(rows) == 0 {
		return nil, errors.New("missing header row")
	}

	columns, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var phones []domain.NewCellPhone
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		phone, err := parseRow(row, columns)
		if err != nil {
			// +2: one for the header, one for 1-based numbering
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		phones = append(phones, phone)
	}
	return phones, nil
}

func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		key = strings.ReplaceAll(key, " ", "_")
		if key == "" {
			continue
		}
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return columns, nil
}

func parseRow(row []string, columns map[string]int) (domain.NewCellPhone, error) {
	cell := func(col string) string {
		i, ok := columns[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err := strconv.Atoi(cell(colYear))
	if err != nil {
		return domain.NewCellPhone{}, fmt.Errorf("invalid year %q", cell(colYear))
	}

	if cell(colPrice) == "" {
		return domain.NewCellPhone{}, errors.New("missing price")
	}
	rawPrice := strings.TrimPrefix(cell(colPrice), "$")
	rawPrice = strings.ReplaceAll(rawPrice, ",", "")
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return domain.NewCellPhone{}, fmt.Errorf("invalid price %q", cell(colPrice))
	}

	return domain.NewCellPhone{
		Brand:       cell(colBrand),
		Model:       cell(colModel),
		Year:        year,
		Price:       &price,
		Storage:     optional(cell(colStorage)),
		BatteryLife: optional(cell(colBatteryLife)),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
