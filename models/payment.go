package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentInitialAdvance = "Initial Advance Payment"
	PaymentAdditional     = "Additional Payment"
)

type Payment struct {
	ID          string          `json:"id"`
	BillID      string          `json:"bill_id"`
	OwnerID     string          `json:"owner_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Time        string          `json:"time"` // HH:MM:SS
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewPayment stamps a payment with the date and time it was received.
func NewPayment(billID, ownerID string, amount decimal.Decimal, description string, at time.Time) *Payment {
	return &Payment{
		BillID:      billID,
		OwnerID:     ownerID,
		Amount:      amount,
		Date:        at.Format("2006-01-02"),
		Time:        at.Format("15:04:05"),
		Description: description,
		CreatedAt:   at.UTC(),
	}
}
