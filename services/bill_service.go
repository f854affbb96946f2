package services

import (
	"context"
	"errors"
	"log"
	"time"

	"siddeshlogistics/apperror"
	"siddeshlogistics/models"
	"siddeshlogistics/repository"

	"github.com/shopspring/decimal"
)

// PDFArchive removes a previously uploaded invoice.
type PDFArchive interface {
	Delete(ctx context.Context, fileURL string) error
}

// BillService owns the bill lifecycle: creation with shipments and the
// advance payment, later payments, status overrides and cascading deletes.
//
// Every store call is a separate round trip. Two concurrent payments on the
// same bill race on totalPaid and the last write wins.
type BillService struct {
	Bills     repository.BillRepository
	Shipments repository.ShipmentRepository
	Payments  repository.PaymentRepository

	// Archive is optional; when set, deleting a bill also removes its stored PDF.
	Archive PDFArchive

	prefix string
	clock  func() time.Time
}

func NewBillService(
	bills repository.BillRepository,
	shipments repository.ShipmentRepository,
	payments repository.PaymentRepository,
	prefix string,
) *BillService {
	return &BillService{
		Bills:     bills,
		Shipments: shipments,
		Payments:  payments,
		prefix:    prefix,
		clock:     time.Now,
	}
}

// CreateBill persists the bill, its shipment lines and the advance payment.
// The bill number and totals are derived here, at submission time. If a line
// or the advance cannot be saved, everything already written is deleted again.
func (s *BillService) CreateBill(ctx context.Context, ownerID string, draft models.BillDraft) (*models.Bill, error) {
	if ownerID == "" {
		return nil, apperror.NewValidationError("owner is required")
	}
	advance := RoundAmount(draft.AdvanceAmount)
	if advance.IsNegative() {
		return nil, apperror.NewValidationError("advance amount cannot be negative")
	}

	now := s.clock()
	totals := ComputeTotals(draft.Shipments, advance)

	billDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d, ok := parseDate(draft.Date); ok {
		billDate = d
	}

	bill := &models.Bill{
		BillNumber:      GenerateBillNumber(s.prefix, now),
		CustomerName:    draft.CustomerName,
		CustomerAddress: draft.CustomerAddress,
		BillDate:        billDate,
		TotalAmount:     totals.TotalAmount,
		TotalPaid:       advance,
		OwnerID:         ownerID,
		CreatedAt:       now.UTC(),
	}
	bill.Recompute()

	if err := s.Bills.CreateBill(ctx, bill); err != nil {
		return nil, apperror.NewPersistenceError("create bill", err)
	}

	var written []*models.Shipment
	for i, line := range draft.Shipments {
		shipment := &models.Shipment{
			BillID:       bill.ID,
			OwnerID:      ownerID,
			SrNo:         i + 1,
			ContainerNo:  line.ContainerNo,
			VehicleNo:    line.VehicleNo,
			FromLocation: line.From,
			ToLocation:   line.To,
			Weight:       line.Weight,
			TotalFair:    ParseAmount(line.TotalFair),
			CreatedAt:    now.UTC(),
		}
		if d, ok := parseDate(line.Date); ok {
			shipment.Date = &d
		}
		if err := s.Shipments.CreateShipment(ctx, shipment); err != nil {
			return nil, s.undoCreate(ctx, bill, written, "save shipment", err)
		}
		written = append(written, shipment)
	}

	if advance.IsPositive() {
		payment := models.NewPayment(bill.ID, ownerID, advance, models.PaymentInitialAdvance, now)
		if err := s.Payments.CreatePayment(ctx, payment); err != nil {
			return nil, s.undoCreate(ctx, bill, written, "save advance payment", err)
		}
	}

	log.Printf("[INFO] created bill %s (%s) with %d shipments for owner %s", bill.ID, bill.BillNumber, len(written), ownerID)
	return bill, nil
}

// undoCreate deletes what CreateBill managed to write before failing. It runs
// detached from ctx so a cancelled request still gets cleaned up.
func (s *BillService) undoCreate(
	ctx context.Context,
	bill *models.Bill,
	shipments []*models.Shipment,
	op string,
	cause error,
) error {
	ctx = context.WithoutCancel(ctx)

	var cleanup []error
	for _, sh := range shipments {
		if err := s.Shipments.DeleteShipment(ctx, sh.ID); err != nil {
			cleanup = append(cleanup, err)
		}
	}
	if err := s.Bills.DeleteBill(ctx, bill.OwnerID, bill.ID); err != nil {
		cleanup = append(cleanup, err)
	}

	if len(cleanup) > 0 {
		log.Printf("[ERROR] bill %s left partially written after %s failed: %v", bill.ID, op, errors.Join(cleanup...))
		return apperror.NewPersistenceError(op, errors.Join(append([]error{cause}, cleanup...)...))
	}
	log.Printf("[WARN] rolled back bill %s after %s failed: %v", bill.ID, op, cause)
	return apperror.NewPersistenceError(op, cause)
}

// ApplyPayment adds amount to what has been paid and records an additional
// payment. The amount is rounded to paise first; anything that rounds to zero
// is rejected.
func (s *BillService) ApplyPayment(ctx context.Context, ownerID, billID string, amount decimal.Decimal) (*models.Bill, error) {
	amount = RoundAmount(amount)
	if !amount.IsPositive() {
		return nil, apperror.NewValidationError("payment amount must be a positive number")
	}

	bill, err := s.GetBill(ctx, ownerID, billID)
	if err != nil {
		return nil, err
	}

	bill.TotalPaid = bill.TotalPaid.Add(amount)
	bill.Recompute()
	if err := s.Bills.UpdateBill(ctx, bill); err != nil {
		return nil, storeError("update bill", "bill", err)
	}

	payment := models.NewPayment(bill.ID, ownerID, amount, models.PaymentAdditional, s.clock())
	if err := s.Payments.CreatePayment(ctx, payment); err != nil {
		return nil, apperror.NewPersistenceError("record payment", err)
	}
	return bill, nil
}

// ToggleStatus overrides the status without touching the amounts.
func (s *BillService) ToggleStatus(ctx context.Context, ownerID, billID string, status models.BillStatus) (*models.Bill, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError("status must be pending or paid")
	}

	bill, err := s.GetBill(ctx, ownerID, billID)
	if err != nil {
		return nil, err
	}
	bill.Status = status
	if err := s.Bills.UpdateBill(ctx, bill); err != nil {
		return nil, storeError("update bill", "bill", err)
	}
	return bill, nil
}

// DeleteBill removes each shipment and payment of the bill, then the bill.
// A failure stops the sequence and may leave some child records behind.
func (s *BillService) DeleteBill(ctx context.Context, ownerID, billID string) error {
	bill, err := s.GetBill(ctx, ownerID, billID)
	if err != nil {
		return err
	}
	byBill := map[string]interface{}{"bill_id": billID, "owner_id": ownerID}

	shipments, err := s.Shipments.ListShipments(ctx, byBill)
	if err != nil {
		return apperror.NewPersistenceError("list shipments", err)
	}
	for _, sh := range shipments {
		if err := s.Shipments.DeleteShipment(ctx, sh.ID); err != nil {
			return storeError("delete shipment", "shipment", err)
		}
	}

	payments, err := s.Payments.ListPayments(ctx, byBill)
	if err != nil {
		return apperror.NewPersistenceError("list payments", err)
	}
	for _, p := range payments {
		if err := s.Payments.DeletePayment(ctx, p.ID); err != nil {
			return storeError("delete payment", "payment", err)
		}
	}

	if err := s.Bills.DeleteBill(ctx, ownerID, billID); err != nil {
		return storeError("delete bill", "bill", err)
	}

	if s.Archive != nil && bill.PdfURL != nil && *bill.PdfURL != "" {
		if err := s.Archive.Delete(ctx, *bill.PdfURL); err != nil {
			log.Printf("[WARN] bill %s deleted but its PDF %s was not: %v", billID, *bill.PdfURL, err)
		}
	}
	return nil
}

// ListBills returns the owner's bills, newest first. An empty status lists all.
func (s *BillService) ListBills(ctx context.Context, ownerID string, status models.BillStatus) ([]*models.Bill, error) {
	filters := map[string]interface{}{"owner_id": ownerID}
	if status != "" {
		filters["status"] = string(status)
	}
	bills, err := s.Bills.ListBills(ctx, filters)
	if err != nil {
		return nil, apperror.NewPersistenceError("list bills", err)
	}
	if bills == nil {
		bills = []*models.Bill{}
	}
	return bills, nil
}

func (s *BillService) GetBill(ctx context.Context, ownerID, billID string) (*models.Bill, error) {
	bill, err := s.Bills.GetBill(ctx, ownerID, billID)
	if err != nil {
		return nil, storeError("get bill", "bill", err)
	}
	return bill, nil
}

// SavePDFLocation records when the invoice was rendered and, if it was
// archived, where. Amounts and status are left as they are in the store.
func (s *BillService) SavePDFLocation(ctx context.Context, ownerID, billID, fileURL string) error {
	if err := s.Bills.SetPDFLocation(ctx, ownerID, billID, fileURL, s.clock().UTC()); err != nil {
		return storeError("save pdf location", "bill", err)
	}
	return nil
}

// GetShipments never fails: a read error is logged and yields no lines.
func (s *BillService) GetShipments(ctx context.Context, ownerID, billID string) []*models.Shipment {
	shipments, err := s.Shipments.ListShipments(ctx, map[string]interface{}{"bill_id": billID, "owner_id": ownerID})
	if err != nil {
		log.Printf("[WARN] shipments of bill %s unavailable: %v", billID, err)
		return []*models.Shipment{}
	}
	if shipments == nil {
		return []*models.Shipment{}
	}
	return shipments
}

// GetPaymentHistory never fails: a read error is logged and yields no payments.
func (s *BillService) GetPaymentHistory(ctx context.Context, ownerID, billID string) []*models.Payment {
	payments, err := s.Payments.ListPayments(ctx, map[string]interface{}{"bill_id": billID, "owner_id": ownerID})
	if err != nil {
		log.Printf("[WARN] payments of bill %s unavailable: %v", billID, err)
		return []*models.Payment{}
	}
	if payments == nil {
		return []*models.Payment{}
	}
	return payments
}

func storeError(op, resource string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NewNotFoundError(resource)
	}
	return apperror.NewPersistenceError(op, err)
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
