package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client *mongo.Client
	URL    string
	Name   string
}

func NewMongoDB(url, name string) *MongoDB {
	return &MongoDB{
		URL:  url,
		Name: name,
	}
}

func (m *MongoDB) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.URL))
	if err != nil {
		return err
	}
	m.Client = client
	return m.Client.Ping(ctx, nil)
}

func (m *MongoDB) Disconnect(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

func (m *MongoDB) Database() *mongo.Database {
	return m.Client.Database(m.Name)
}

// Indexes lists the secondary indexes each collection needs. Shipments and
// payments are always fetched by bill, bills by owner.
var Indexes = map[string][]mongo.IndexModel{
	"bills": {
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
	},
	"shipments": {
		{Keys: bson.D{{Key: "bill_id", Value: 1}, {Key: "sr_no", Value: 1}}},
	},
	"payments": {
		{Keys: bson.D{{Key: "bill_id", Value: 1}, {Key: "created_at", Value: 1}}},
	},
	"app_user": {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	"initial_setup": {
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	},
}

// EnsureIndexes creates any missing index. Existing ones are left alone.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	db := m.Database()
	for collection, models := range Indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
