package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment is one transport line of a bill, linked back through BillID.
type Shipment struct {
	ID           string          `json:"id"`
	BillID       string          `json:"bill_id"`
	OwnerID      string          `json:"owner_id"`
	SrNo         int             `json:"sr_no"`
	Date         *time.Time      `json:"date,omitempty"`
	ContainerNo  string          `json:"container_no"`
	VehicleNo    string          `json:"vehicle_no"`
	FromLocation string          `json:"from_location"`
	ToLocation   string          `json:"to_location"`
	Weight       string          `json:"weight"`
	TotalFair    decimal.Decimal `json:"total_fair"`
	CreatedAt    time.Time       `json:"created_at"`
}
