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

type MongoShipmentRepo struct {
	DB *mongo.Database
}

func NewMongoShipmentRepo(db *mongo.Database) *MongoShipmentRepo {
	return &MongoShipmentRepo{DB: db}
}

type shipmentDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	BillID       string               `bson:"bill_id"`
	OwnerID      string               `bson:"owner_id"`
	SrNo         int                  `bson:"sr_no"`
	Date         *time.Time           `bson:"date,omitempty"`
	ContainerNo  string               `bson:"container_no"`
	VehicleNo    string               `bson:"vehicle_no"`
	FromLocation string               `bson:"from_location"`
	ToLocation   string               `bson:"to_location"`
	Weight       string               `bson:"weight"`
	TotalFair    primitive.Decimal128 `bson:"total_fair"`
	CreatedAt    time.Time            `bson:"created_at"`
}

func (r *MongoShipmentRepo) CreateShipment(ctx context.Context, s *models.Shipment) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	fair, err := toDecimal128(s.TotalFair)
	if err != nil {
		return err
	}
	res, err := r.DB.Collection(ShipmentsCollection).InsertOne(ctx, shipmentDoc{
		BillID:       s.BillID,
		OwnerID:      s.OwnerID,
		SrNo:         s.SrNo,
		Date:         s.Date,
		ContainerNo:  s.ContainerNo,
		VehicleNo:    s.VehicleNo,
		FromLocation: s.FromLocation,
		ToLocation:   s.ToLocation,
		Weight:       s.Weight,
		TotalFair:    fair,
		CreatedAt:    s.CreatedAt,
	})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

// ListShipments uses the bill_id index and returns lines in srNo order.
func (r *MongoShipmentRepo) ListShipments(ctx context.Context, filters map[string]interface{}) ([]*models.Shipment, error) {
	if err := checkFilters(ShipmentsCollection, filters, ShipmentFilterKeys); err != nil {
		return nil, err
	}
	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	opts := options.Find().SetSort(bson.D{{Key: "sr_no", Value: 1}})
	cur, err := r.DB.Collection(ShipmentsCollection).Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Shipment
	for cur.Next(ctx) {
		var doc shipmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		fair, err := fromDecimal128(doc.TotalFair)
		if err != nil {
			return nil, err
		}
		out = append(out, &models.Shipment{
			ID:           doc.ID.Hex(),
			BillID:       doc.BillID,
			OwnerID:      doc.OwnerID,
			SrNo:         doc.SrNo,
			Date:         doc.Date,
			ContainerNo:  doc.ContainerNo,
			VehicleNo:    doc.VehicleNo,
			FromLocation: doc.FromLocation,
			ToLocation:   doc.ToLocation,
			Weight:       doc.Weight,
			TotalFair:    fair,
			CreatedAt:    doc.CreatedAt,
		})
	}
	return out, cur.Err()
}

func (r *MongoShipmentRepo) DeleteShipment(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.DB.Collection(ShipmentsCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
