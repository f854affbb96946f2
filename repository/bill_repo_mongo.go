package repository

import (
	"context"
	"errors"
	"time"

	"siddeshlogistics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoBillRepo struct {
	DB *mongo.Database
}

func NewMongoBillRepo(db *mongo.Database) *MongoBillRepo {
	return &MongoBillRepo{DB: db}
}

// billDoc is the stored shape of a bill. PaidAmount and LegacyPaid are only
// read from documents written before total_paid existed; those hold a plain
// number (double or int) rather than a Decimal128.
type billDoc struct {
	ID              primitive.ObjectID    `bson:"_id,omitempty"`
	BillNumber      string                `bson:"bill_number"`
	CustomerName    string                `bson:"customer_name"`
	CustomerAddress string                `bson:"customer_address"`
	BillDate        time.Time             `bson:"bill_date"`
	TotalAmount     primitive.Decimal128  `bson:"total_amount"`
	TotalPaid       *primitive.Decimal128 `bson:"total_paid,omitempty"`
	PaidAmount      *bson.RawValue        `bson:"paid_amount,omitempty"`
	LegacyPaid      *bson.RawValue        `bson:"paidAmount,omitempty"`
	BalanceAmount   primitive.Decimal128  `bson:"balance_amount"`
	Status          string                `bson:"status"`
	OwnerID         string                `bson:"owner_id"`
	PdfURL          *string               `bson:"pdf_url,omitempty"`
	PdfCreatedAt    *time.Time            `bson:"pdf_created_at,omitempty"`
	CreatedAt       time.Time             `bson:"created_at"`
	UpdatedAt       *time.Time            `bson:"updated_at,omitempty"`
}

func newBillDoc(b *models.Bill) (*billDoc, error) {
	total, err := toDecimal128(b.TotalAmount)
	if err != nil {
		return nil, err
	}
	paid, err := toDecimal128(b.TotalPaid)
	if err != nil {
		return nil, err
	}
	balance, err := toDecimal128(b.BalanceAmount)
	if err != nil {
		return nil, err
	}
	return &billDoc{
		BillNumber:      b.BillNumber,
		CustomerName:    b.CustomerName,
		CustomerAddress: b.CustomerAddress,
		BillDate:        b.BillDate,
		TotalAmount:     total,
		TotalPaid:       &paid,
		BalanceAmount:   balance,
		Status:          string(b.Status),
		OwnerID:         b.OwnerID,
		PdfURL:          b.PdfURL,
		PdfCreatedAt:    b.PdfCreatedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}, nil
}

func (d *billDoc) model() (*models.Bill, error) {
	total, err := fromDecimal128(d.TotalAmount)
	if err != nil {
		return nil, err
	}
	b := &models.Bill{
		ID:              d.ID.Hex(),
		BillNumber:      d.BillNumber,
		CustomerName:    d.CustomerName,
		CustomerAddress: d.CustomerAddress,
		BillDate:        d.BillDate,
		TotalAmount:     total,
		Status:          models.BillStatus(d.Status),
		OwnerID:         d.OwnerID,
		PdfURL:          d.PdfURL,
		PdfCreatedAt:    d.PdfCreatedAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	switch {
	case d.TotalPaid != nil:
		b.TotalPaid, err = fromDecimal128(*d.TotalPaid)
	case d.PaidAmount != nil:
		b.TotalPaid, err = legacyAmount(*d.PaidAmount)
	case d.LegacyPaid != nil:
		b.TotalPaid, err = legacyAmount(*d.LegacyPaid)
	}
	if err != nil {
		return nil, err
	}
	if b.BalanceAmount, err = fromDecimal128(d.BalanceAmount); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *MongoBillRepo) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}
	doc, err := newBillDoc(bill)
	if err != nil {
		return err
	}
	res, err := r.DB.Collection(BillsCollection).InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		bill.ID = oid.Hex()
	}
	return nil
}

func (r *MongoBillRepo) GetBill(ctx context.Context, ownerID, id string) (*models.Bill, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc billDoc
	err = r.DB.Collection(BillsCollection).
		FindOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.model()
}

// ListBills returns bills newest first.
func (r *MongoBillRepo) ListBills(ctx context.Context, filters map[string]interface{}) ([]*models.Bill, error) {
	if err := checkFilters(BillsCollection, filters, BillFilterKeys); err != nil {
		return nil, err
	}
	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.DB.Collection(BillsCollection).Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Bill
	for cur.Next(ctx) {
		var doc billDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		b, err := doc.model()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

// UpdateBill replaces the stored document, which also drops any legacy paid amount field.
func (r *MongoBillRepo) UpdateBill(ctx context.Context, bill *models.Bill) error {
	oid, err := objectID(bill.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	bill.UpdatedAt = &now

	doc, err := newBillDoc(bill)
	if err != nil {
		return err
	}
	doc.ID = oid

	res, err := r.DB.Collection(BillsCollection).
		ReplaceOne(ctx, bson.M{"_id": oid, "owner_id": bill.OwnerID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBillRepo) SetPDFLocation(ctx context.Context, ownerID, id, fileURL string, at time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	set := bson.M{"pdf_created_at": at}
	if fileURL != "" {
		set["pdf_url"] = fileURL
	}
	res, err := r.DB.Collection(BillsCollection).
		UpdateOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBillRepo) DeleteBill(ctx context.Context, ownerID, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.DB.Collection(BillsCollection).DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
