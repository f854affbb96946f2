package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"siddeshlogistics/models"

	"github.com/google/uuid"
)

// MemoryStore keeps every collection in process. It backs DB_TYPE=memory and the tests.
type MemoryStore struct {
	mu        sync.RWMutex
	bills     map[string]models.Bill
	shipments map[string]models.Shipment
	payments  map[string]models.Payment
	users     map[string]models.AppUser
	initials  map[string]models.InitialSetup

	// seq breaks created_at ties so listings keep insertion order.
	seq    map[string]int64
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bills:     make(map[string]models.Bill),
		shipments: make(map[string]models.Shipment),
		payments:  make(map[string]models.Payment),
		users:     make(map[string]models.AppUser),
		initials:  make(map[string]models.InitialSetup),
		seq:       make(map[string]int64),
	}
}

func (s *MemoryStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}
	bill.ID = uuid.NewString()
	s.bills[bill.ID] = *bill
	return nil
}

func (s *MemoryStore) GetBill(ctx context.Context, ownerID, id string) (*models.Bill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bills[id]
	if !ok || b.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *MemoryStore) ListBills(ctx context.Context, filters map[string]interface{}) ([]*models.Bill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkFilters(BillsCollection, filters, BillFilterKeys); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Bill
	for _, b := range s.bills {
		fields := map[string]string{
			"owner_id":      b.OwnerID,
			"status":        string(b.Status),
			"customer_name": b.CustomerName,
			"bill_number":   b.BillNumber,
		}
		if matches(fields, filters) {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) UpdateBill(ctx context.Context, bill *models.Bill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.bills[bill.ID]
	if !ok || existing.OwnerID != bill.OwnerID {
		return ErrNotFound
	}
	now := time.Now().UTC()
	bill.UpdatedAt = &now
	s.bills[bill.ID] = *bill
	return nil
}

func (s *MemoryStore) SetPDFLocation(ctx context.Context, ownerID, id, fileURL string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[id]
	if !ok || b.OwnerID != ownerID {
		return ErrNotFound
	}
	b.PdfCreatedAt = &at
	if fileURL != "" {
		b.PdfURL = &fileURL
	}
	s.bills[id] = b
	return nil
}

func (s *MemoryStore) DeleteBill(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[id]
	if !ok || b.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(s.bills, id)
	return nil
}

func (s *MemoryStore) CreateShipment(ctx context.Context, shipment *models.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if shipment.CreatedAt.IsZero() {
		shipment.CreatedAt = time.Now().UTC()
	}
	shipment.ID = uuid.NewString()
	s.shipments[shipment.ID] = *shipment
	return nil
}

func (s *MemoryStore) ListShipments(ctx context.Context, filters map[string]interface{}) ([]*models.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkFilters(ShipmentsCollection, filters, ShipmentFilterKeys); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Shipment
	for _, sh := range s.shipments {
		if matches(map[string]string{"owner_id": sh.OwnerID, "bill_id": sh.BillID}, filters) {
			sh := sh
			out = append(out, &sh)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SrNo < out[j].SrNo })
	return out, nil
}

func (s *MemoryStore) DeleteShipment(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shipments[id]; !ok {
		return ErrNotFound
	}
	delete(s.shipments, id)
	return nil
}

func (s *MemoryStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	payment.ID = uuid.NewString()
	s.payments[payment.ID] = *payment
	s.nextID++
	s.seq[payment.ID] = s.nextID
	return nil
}

func (s *MemoryStore) ListPayments(ctx context.Context, filters map[string]interface{}) ([]*models.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkFilters(PaymentsCollection, filters, PaymentFilterKeys); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Payment
	for _, p := range s.payments {
		if matches(map[string]string{"owner_id": p.OwnerID, "bill_id": p.BillID}, filters) {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return s.seq[out[i].ID] < s.seq[out[j].ID]
	})
	return out, nil
}

func (s *MemoryStore) DeletePayment(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[id]; !ok {
		return ErrNotFound
	}
	delete(s.payments, id)
	delete(s.seq, id)
	return nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.AppUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.users[user.Email] = *user
	return nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// SaveInitial keeps one setup per owner; saving again replaces it.
func (s *MemoryStore) SaveInitial(ctx context.Context, initial *models.InitialSetup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if initial.CreatedAt.IsZero() {
		initial.CreatedAt = time.Now().UTC()
	}
	if initial.ID == "" {
		initial.ID = uuid.NewString()
	}
	s.initials[initial.OwnerID] = *initial
	return nil
}

func (s *MemoryStore) GetInitial(ctx context.Context, ownerID string) (*models.InitialSetup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.initials[ownerID]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func matches(fields map[string]string, filters map[string]interface{}) bool {
	for key := range filters {
		want, _ := filterString(filters, key)
		if fields[key] != want {
			return false
		}
	}
	return true
}
