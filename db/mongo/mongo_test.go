package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIndexesLeadWithLookupKey(t *testing.T) {
	leading := map[string]string{
		"bills":     "owner_id",
		"shipments": "bill_id",
		"payments":  "bill_id",
	}
	for collection, key := range leading {
		models := Indexes[collection]
		require.NotEmpty(t, models, collection)

		keys, ok := models[0].Keys.(bson.D)
		require.True(t, ok, collection)
		assert.Equal(t, key, keys[0].Key, collection)
	}
}

func TestDisconnectWithoutClient(t *testing.T) {
	assert.NoError(t, NewMongoDB("mongodb://localhost:27017", "test").Disconnect(context.Background()))
}
