package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int
	Username string
	Email    string
	Password string
}

type SaleRecord struct {
	ID         int
	UserID     int
	Date       time.Time
	Category   string
	Product    string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

type Upload struct {
	ID        string
	UserID    int
	Filename  string
	Imported  int
	Skipped   int
	CreatedAt time.Time
}

type SalesSummary struct {
	Total decimal.Decimal
	Count int
}

type PeriodTotal struct {
	Period string
	Total  decimal.Decimal
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type ProductTotal struct {
	Product string
	Total   decimal.Decimal
}
