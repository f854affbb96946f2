package services

import (
	"regexp"
	"testing"
	"time"

	"siddeshlogistics/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func lines(amounts ...string) []models.ShipmentDraft {
	out := make([]models.ShipmentDraft, 0, len(amounts))
	for i, a := range amounts {
		out = append(out, models.ShipmentDraft{SrNo: i + 1, TotalFair: a})
	}
	return out
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		advance string
		total   string
		balance string
	}{
		{"two shipments with advance", []string{"1000", "2000"}, "500", "3000", "2500"},
		{"no shipments", nil, "0", "0", "0"},
		{"unparsable lines count as zero", []string{"1500.50", "", "abc", " 499.50 "}, "0", "2000", "2000"},
		{"advance above total goes negative", []string{"1000"}, "1500", "1000", "-500"},
		{"fractions stay exact", []string{"0.1", "0.2"}, "0", "0.3", "0.3"},
		{"lines round to paise", []string{"100.005", "0.004"}, "0.004", "100.01", "100.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(lines(tt.amounts...), dec(tt.advance))
			assert.True(t, dec(tt.total).Equal(got.TotalAmount), "total = %s", got.TotalAmount)
			assert.True(t, dec(tt.balance).Equal(got.BalanceAmount), "balance = %s", got.BalanceAmount)
		})
	}
}

func TestParseAmount_RoundsToPaise(t *testing.T) {
	tests := map[string]string{
		"100.005":  "100.01",
		"100.004":  "100",
		"-10.125":  "-10.13",
		"0.004":    "0",
		"2500":     "2500",
		"nonsense": "0",
	}
	for in, want := range tests {
		assert.True(t, dec(want).Equal(ParseAmount(in)), "%s -> %s", in, ParseAmount(in))
	}
}

func TestRecalculateDraft(t *testing.T) {
	d := &models.BillDraft{Shipments: lines("15000"), AdvanceAmount: dec("5000")}
	RecalculateDraft(d)
	assert.True(t, dec("15000").Equal(d.TotalAmount))
	assert.True(t, dec("10000").Equal(d.BalanceAmount))

	d.AddShipment().TotalFair = "2500"
	RecalculateDraft(d)
	assert.True(t, dec("17500").Equal(d.TotalAmount))
	assert.True(t, dec("12500").Equal(d.BalanceAmount))
}

func TestGenerateBillNumber(t *testing.T) {
	at := time.Date(2025, time.August, 26, 14, 3, 7, 0, time.UTC).Add(42 * time.Millisecond)
	got := GenerateBillNumber("SL", at)

	assert.Equal(t, "SL/260825/", got[:10])
	assert.Regexp(t, regexp.MustCompile(`^SL/\d{6}/\d{4}$`), got)
	assert.Equal(t, at.UnixMilli()%10000, mustAtoi(t, got[10:]))
}

func TestGenerateBillNumber_PadsSuffix(t *testing.T) {
	// 1_700_000_000_007 ms ends in 0007.
	at := time.UnixMilli(1_700_000_000_007).UTC()
	assert.Equal(t, "SL/141123/0007", GenerateBillNumber("SL", at))
}

func mustAtoi(t *testing.T, s string) int64 {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("suffix %q is not numeric: %v", s, err)
	}
	return d.IntPart()
}
