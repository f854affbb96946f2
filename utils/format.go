package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const InvoiceDateLayout = "02-01-2006"

// FormatINR formats amount with two decimals and Indian digit grouping, e.g. 1,50,000.00.
func FormatINR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	if len(intPart) <= 3 {
		return sign + intPart + "." + frac
	}
	head, last3 := intPart[:len(intPart)-3], intPart[len(intPart)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + strings.Join(groups, ",") + "," + last3 + "." + frac
}

// FormatInvoiceDate returns DD-MM-YYYY, or "-" for a zero time.
func FormatInvoiceDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(InvoiceDateLayout)
}

// PDFFileName builds <prefix>_BILL_<bill number>.pdf with every "/" replaced by "_".
func PDFFileName(prefix, billNumber string) string {
	return prefix + "_BILL_" + strings.ReplaceAll(billNumber, "/", "_") + ".pdf"
}
