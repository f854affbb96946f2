package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode amount %s: %w", d, err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	if v == (primitive.Decimal128{}) {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode amount %s: %w", v, err)
	}
	return d, nil
}

// legacyAmount reads a money field of an old document, which may have been
// written as a double, an int or a Decimal128. Null counts as zero.
func legacyAmount(v bson.RawValue) (decimal.Decimal, error) {
	switch v.Type {
	case bsontype.Double:
		return decimal.NewFromFloat(v.Double()).Round(2), nil
	case bsontype.Int32:
		return decimal.NewFromInt32(v.Int32()), nil
	case bsontype.Int64:
		return decimal.NewFromInt(v.Int64()), nil
	case bsontype.Decimal128:
		return fromDecimal128(v.Decimal128())
	case bsontype.String:
		d, err := decimal.NewFromString(v.StringValue())
		if err != nil {
			return decimal.Zero, fmt.Errorf("decode legacy amount %q: %w", v.StringValue(), err)
		}
		return d, nil
	case bsontype.Null, bsontype.Undefined:
		return decimal.Zero, nil
	}
	return decimal.Zero, fmt.Errorf("decode legacy amount: unsupported bson type %s", v.Type)
}

// objectID maps an opaque record id to a mongo key. Ids that are not valid
// hex cannot exist in the collection.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}
