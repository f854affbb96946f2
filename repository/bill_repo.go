package repository

import (
	"context"
	"errors"
	"time"

	"siddeshlogistics/models"
)

// ErrNotFound is returned when a record id does not exist for the owner.
var ErrNotFound = errors.New("record not found")

// Collection names shared by every store.
const (
	BillsCollection     = "bills"
	ShipmentsCollection = "shipments"
	PaymentsCollection  = "payments"
)

// BillRepository stores bill headers. Filters are equality matches on
// the keys listed in BillFilterKeys.
type BillRepository interface {
	CreateBill(ctx context.Context, bill *models.Bill) error
	GetBill(ctx context.Context, ownerID, id string) (*models.Bill, error)
	ListBills(ctx context.Context, filters map[string]interface{}) ([]*models.Bill, error)
	UpdateBill(ctx context.Context, bill *models.Bill) error
	// SetPDFLocation writes only pdf_url and pdf_created_at. An empty fileURL
	// leaves pdf_url untouched.
	SetPDFLocation(ctx context.Context, ownerID, id, fileURL string, at time.Time) error
	DeleteBill(ctx context.Context, ownerID, id string) error
}

type ShipmentRepository interface {
	CreateShipment(ctx context.Context, shipment *models.Shipment) error
	ListShipments(ctx context.Context, filters map[string]interface{}) ([]*models.Shipment, error)
	DeleteShipment(ctx context.Context, id string) error
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	ListPayments(ctx context.Context, filters map[string]interface{}) ([]*models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}
