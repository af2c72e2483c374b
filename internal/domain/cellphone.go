package domain

import "github.com/shopspring/decimal"

type CellPhone struct {
	ID          int64
	Brand       string
	Model       string
	Year        int
	Price       decimal.Decimal
	Storage     *string
	BatteryLife *string
}

type NewCellPhone struct {
	Brand       string           `validate:"required,max=100"`
	Model       string           `validate:"required,max=100"`
	Year        int              `validate:"gte=1970,lte=2100"`
	Price       *decimal.Decimal `validate:"required"`
	Storage     *string          `validate:"omitempty,max=50"`
	BatteryLife *string          `validate:"omitempty,max=50"`
}
