package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
)

// Valid reports whether s is one of the known bill states.
func (s BillStatus) Valid() bool {
	return s == BillPending || s == BillPaid
}

// StatusForBalance returns paid once nothing is left to collect.
func StatusForBalance(balance decimal.Decimal) BillStatus {
	if balance.LessThanOrEqual(decimal.Zero) {
		return BillPaid
	}
	return BillPending
}

type Bill struct {
	ID              string          `json:"id"`
	BillNumber      string          `json:"bill_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	BillDate        time.Time       `json:"bill_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	BalanceAmount   decimal.Decimal `json:"balance_amount"`
	Status          BillStatus      `json:"status"`
	OwnerID         string          `json:"owner_id"`
	PdfURL          *string         `json:"pdf_url,omitempty"`
	PdfCreatedAt    *time.Time      `json:"pdf_created_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}

// Recompute derives balance and status from the total and what has been paid.
func (b *Bill) Recompute() {
	b.BalanceAmount = b.TotalAmount.Sub(b.TotalPaid)
	b.Status = StatusForBalance(b.BalanceAmount)
}
