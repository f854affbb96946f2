package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillDraft_AddAndRemoveShipment(t *testing.T) {
	d := &BillDraft{}
	d.AddShipment().ContainerNo = "A"
	d.AddShipment().ContainerNo = "B"
	d.AddShipment().ContainerNo = "C"

	require.Len(t, d.Shipments, 3)
	assert.Equal(t, 3, d.Shipments[2].SrNo)

	require.NoError(t, d.RemoveShipment(0))
	require.Len(t, d.Shipments, 2)
	assert.Equal(t, "B", d.Shipments[0].ContainerNo)
	assert.Equal(t, 1, d.Shipments[0].SrNo)
	assert.Equal(t, "C", d.Shipments[1].ContainerNo)
	assert.Equal(t, 2, d.Shipments[1].SrNo)
}

func TestBillDraft_RemoveShipmentKeepsLastLine(t *testing.T) {
	d := &BillDraft{}
	d.AddShipment()

	assert.ErrorIs(t, d.RemoveShipment(0), ErrLastShipment)
	assert.Len(t, d.Shipments, 1)
	assert.Error(t, d.RemoveShipment(5))
}

func TestBill_Recompute(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		paid    string
		balance string
		status  BillStatus
	}{
		{"outstanding", "3000", "500", "2500", BillPending},
		{"settled", "3000", "3000", "0", BillPaid},
		{"overpaid", "3000", "3500", "-500", BillPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bill{TotalAmount: dec(tt.total), TotalPaid: dec(tt.paid)}
			b.Recompute()
			assert.True(t, dec(tt.balance).Equal(b.BalanceAmount), "balance %s", b.BalanceAmount)
			assert.Equal(t, tt.status, b.Status)
		})
	}
}

func TestBillStatus_Valid(t *testing.T) {
	assert.True(t, BillPaid.Valid())
	assert.True(t, BillPending.Valid())
	assert.False(t, BillStatus("cancelled").Valid())
}
