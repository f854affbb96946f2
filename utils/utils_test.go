package utils

import (
	"strings"
	"testing"
	"time"

	"siddeshlogistics/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Zero Rupees Only"},
		{"1", "One Rupees Only"},
		{"0.50", "Fifty Paise Only"},
		{"3000", "Three Thousand Rupees Only"},
		{"2500.75", "Two Thousand Five Hundred Rupees and Seventy Five Paise Only"},
		{"150000", "One Lakh Fifty Thousand Rupees Only"},
		{"12345678", "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{"-500", "Five Hundred Rupees Only"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(dec(tt.amount)))
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := map[string]string{
		"0":        "0.00",
		"999":      "999.00",
		"1000":     "1,000.00",
		"150000":   "1,50,000.00",
		"12345678": "1,23,45,678.00",
		"2500.5":   "2,500.50",
		"-3000":    "-3,000.00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatINR(dec(in)), in)
	}
}

func TestFormatInvoiceDate(t *testing.T) {
	assert.Equal(t, "25-08-2025", FormatInvoiceDate(time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", FormatInvoiceDate(time.Time{}))
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "SIDDESH_LOGISTICS_BILL_SL_260825_1234.pdf", PDFFileName("SIDDESH_LOGISTICS", "SL/260825/1234"))
}

func TestObjectKey(t *testing.T) {
	key, err := ObjectKey("https://files.example.com/SIDDESH_LOGISTICS_BILL_SL_260825_1234.pdf")
	require.NoError(t, err)
	assert.Equal(t, "SIDDESH_LOGISTICS_BILL_SL_260825_1234.pdf", key)

	_, err = ObjectKey("https://files.example.com/")
	assert.Error(t, err)
}

func TestR2ConfigEnabled(t *testing.T) {
	assert.False(t, R2Config{}.Enabled())
	assert.True(t, R2Config{AccountID: "acc", Bucket: "bills", PublicURL: "https://files.example.com"}.Enabled())
}

func TestRenderBillHTML(t *testing.T) {
	data := &models.BillPDFData{
		Company: &models.InitialSetup{
			CompanyName: "Siddesh Logistics",
			Taglines:    []string{"Container Transport"},
			Bank:        models.BankAccount{Holder: "Siddesh Logistics", Number: "00112233", IFSC: "HDFC0000123"},
			Terms:       []string{"Payment due within 15 days"},
		},
		Bill: &models.Bill{
			BillNumber:   "SL/260825/1234",
			CustomerName: "ABC <Industries>",
		},
		Shipments: []models.ShipmentRow{
			{SrNo: 1, Date: "20-08-2025", ContainerNo: "TCLU1", From: "Mumbai Port", To: "Delhi ICD", TotalFair: "1,000.00"},
		},
		Contacts:   "9800000000(Office)",
		Date:       "25-08-2025",
		Total:      "3,000.00",
		Advance:    "500.00",
		Balance:    "2,500.00",
		TotalWords: "Three Thousand Rupees Only",
	}

	html, err := RenderBillHTML(data)
	require.NoError(t, err)

	out := string(html)
	for _, want := range []string{
		"Siddesh Logistics", "Container Transport", "SL/260825/1234", "25-08-2025",
		"TCLU1", "2,500.00", "Three Thousand Rupees Only", "HDFC0000123",
		"Payment due within 15 days", "9800000000(Office)",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "ABC &lt;Industries&gt;")
	assert.False(t, strings.Contains(out, "<Industries>"))
}

func TestRenderBillHTML_WithoutLetterhead(t *testing.T) {
	html, err := RenderBillHTML(&models.BillPDFData{Bill: &models.Bill{BillNumber: "SL/010125/0001"}})
	require.NoError(t, err)
	assert.Contains(t, string(html), "SL/010125/0001")
	assert.NotContains(t, string(html), "letterhead\">")
}
