package services

import (
	"testing"
	"time"

	"siddeshlogistics/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDraft_MapsShipments(t *testing.T) {
	day := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	bill := &models.Bill{
		BillNumber:      "SL/260825/1234",
		CustomerName:    "ABC Industries",
		CustomerAddress: "Sector 15, Gurgaon",
		BillDate:        time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC),
		TotalAmount:     dec("3000"),
		TotalPaid:       dec("500"),
		BalanceAmount:   dec("2500"),
	}
	shipments := []*models.Shipment{
		{SrNo: 1, Date: &day, ContainerNo: "TCLU123", VehicleNo: "HR-26-1", FromLocation: "Mumbai Port", ToLocation: "Delhi ICD", Weight: "25.5", TotalFair: dec("1000")},
		{SrNo: 2, ContainerNo: "TCLU456", TotalFair: dec("2000")},
	}

	d := ToDraft(bill, shipments)

	assert.Equal(t, "SL/260825/1234", d.BillNo)
	assert.Equal(t, "2025-08-26", d.Date)
	assert.True(t, dec("500").Equal(d.AdvanceAmount))
	assert.True(t, dec("2500").Equal(d.BalanceAmount))
	require.Len(t, d.Shipments, 2)
	assert.Equal(t, models.ShipmentDraft{
		SrNo: 1, Date: "2025-08-20", ContainerNo: "TCLU123", VehicleNo: "HR-26-1",
		From: "Mumbai Port", To: "Delhi ICD", Weight: "25.5", TotalFair: "1000",
	}, d.Shipments[0])
	assert.Empty(t, d.Shipments[1].Date)

	totals := ComputeTotals(d.Shipments, d.AdvanceAmount)
	assert.True(t, bill.TotalAmount.Equal(totals.TotalAmount))
}

func TestToDraft_LegacyBillGetsPlaceholderLine(t *testing.T) {
	bill := &models.Bill{
		BillNumber:  "SL/010125/0001",
		BillDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: dec("15000"),
		TotalPaid:   dec("5000"),
	}

	d := ToDraft(bill, nil)

	require.Len(t, d.Shipments, 1)
	line := d.Shipments[0]
	assert.Equal(t, 1, line.SrNo)
	assert.Equal(t, "2025-01-01", line.Date)
	assert.Equal(t, UnknownField, line.ContainerNo)
	assert.Equal(t, UnknownField, line.VehicleNo)
	assert.Equal(t, UnknownField, line.From)
	assert.Equal(t, UnknownField, line.To)
	assert.Equal(t, "15000", line.TotalFair)
}
