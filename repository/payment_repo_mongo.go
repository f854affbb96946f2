package repository

import (
	"context"
	"time"

	"siddeshlogistics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPaymentRepo struct {
	DB *mongo.Database
}

func NewMongoPaymentRepo(db *mongo.Database) *MongoPaymentRepo {
	return &MongoPaymentRepo{DB: db}
}

type paymentDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	BillID      string               `bson:"bill_id"`
	OwnerID     string               `bson:"owner_id"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Date        string               `bson:"date"`
	Time        string               `bson:"time"`
	Description string               `bson:"description"`
	CreatedAt   time.Time            `bson:"created_at"`
}

func (r *MongoPaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	amount, err := toDecimal128(p.Amount)
	if err != nil {
		return err
	}
	res, err := r.DB.Collection(PaymentsCollection).InsertOne(ctx, paymentDoc{
		BillID:      p.BillID,
		OwnerID:     p.OwnerID,
		Amount:      amount,
		Date:        p.Date,
		Time:        p.Time,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

// ListPayments returns payments oldest first.
func (r *MongoPaymentRepo) ListPayments(ctx context.Context, filters map[string]interface{}) ([]*models.Payment, error) {
	if err := checkFilters(PaymentsCollection, filters, PaymentFilterKeys); err != nil {
		return nil, err
	}
	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.DB.Collection(PaymentsCollection).Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Payment
	for cur.Next(ctx) {
		var doc paymentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		amount, err := fromDecimal128(doc.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, &models.Payment{
			ID:          doc.ID.Hex(),
			BillID:      doc.BillID,
			OwnerID:     doc.OwnerID,
			Amount:      amount,
			Date:        doc.Date,
			Time:        doc.Time,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return out, cur.Err()
}

func (r *MongoPaymentRepo) DeletePayment(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.DB.Collection(PaymentsCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
