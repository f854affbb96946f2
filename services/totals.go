package services

import (
	"fmt"
	"strings"
	"time"

	"siddeshlogistics/models"

	"github.com/shopspring/decimal"
)

type Totals struct {
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BalanceAmount decimal.Decimal `json:"balance_amount"`
}

// AmountPlaces is the precision every store keeps money at (paise).
const AmountPlaces = 2

// RoundAmount brings d to store precision, rounding half away from zero.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// ParseAmount reads a typed amount. Empty or unparsable input counts as zero
// so a half-filled line never blocks a preview or a submission.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return RoundAmount(d)
}

// ComputeTotals sums the line amounts and subtracts the advance. The balance
// goes negative when the advance exceeds the total.
func ComputeTotals(shipments []models.ShipmentDraft, advance decimal.Decimal) Totals {
	advance = RoundAmount(advance)
	total := decimal.Zero
	for _, s := range shipments {
		total = total.Add(ParseAmount(s.TotalFair))
	}
	return Totals{
		TotalAmount:   total,
		BalanceAmount: total.Sub(advance),
	}
}

// RecalculateDraft refreshes the derived amounts of a draft after an edit.
func RecalculateDraft(d *models.BillDraft) {
	t := ComputeTotals(d.Shipments, d.AdvanceAmount)
	d.TotalAmount = t.TotalAmount
	d.BalanceAmount = t.BalanceAmount
}

// GenerateBillNumber formats PREFIX/DDMMYY/TTTT where TTTT are the last four
// digits of the epoch milliseconds. Unique in practice, not guaranteed.
func GenerateBillNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%04d", prefix, now.Format("020106"), now.UnixMilli()%10000)
}
