package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ShipmentDraft is an editable shipment line. Values stay as typed so a
// half-filled form can still be previewed.
type ShipmentDraft struct {
	SrNo        int    `json:"sr_no"`
	Date        string `json:"date"`
	ContainerNo string `json:"container_no"`
	VehicleNo   string `json:"vehicle_no"`
	From        string `json:"from"`
	To          string `json:"to"`
	Weight      string `json:"weight"`
	TotalFair   string `json:"total_fair"`
}

// BillDraft is the not yet persisted shape of a bill used by forms and views.
type BillDraft struct {
	BillNo          string          `json:"bill_no"`
	Date            string          `json:"date"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	Shipments       []ShipmentDraft `json:"shipments"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AdvanceAmount   decimal.Decimal `json:"advance_amount"`
	BalanceAmount   decimal.Decimal `json:"balance_amount"`
}

var ErrLastShipment = errors.New("a bill needs at least one shipment line")

// AddShipment appends an empty line numbered after the existing ones.
func (d *BillDraft) AddShipment() *ShipmentDraft {
	d.Shipments = append(d.Shipments, ShipmentDraft{SrNo: len(d.Shipments) + 1})
	return &d.Shipments[len(d.Shipments)-1]
}

// RemoveShipment drops the line at index and renumbers the rest from 1.
func (d *BillDraft) RemoveShipment(index int) error {
	if index < 0 || index >= len(d.Shipments) {
		return errors.New("shipment index out of range")
	}
	if len(d.Shipments) <= 1 {
		return ErrLastShipment
	}
	d.Shipments = append(d.Shipments[:index], d.Shipments[index+1:]...)
	d.Renumber()
	return nil
}

func (d *BillDraft) Renumber() {
	for i := range d.Shipments {
		d.Shipments[i].SrNo = i + 1
	}
}
