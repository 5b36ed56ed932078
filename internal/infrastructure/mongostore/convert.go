package mongostore

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

// toBSON convierte decimales a Decimal128 para conservar precisión exacta.
func toBSON(row store.Row) bson.M {
	doc := make(bson.M, len(row))
	for k, v := range row {
		doc[k] = toBSONValue(v)
	}
	return doc
}

func toBSONValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		if d128, err := primitive.ParseDecimal128(d.String()); err == nil {
			return d128
		}
	}
	return v
}

func toFilter(f store.Filter) bson.M {
	out := make(bson.M, len(f))
	for k, v := range f {
		out[k] = toBSONValue(v)
	}
	return out
}

// fromBSON devuelve tipos de Go: Decimal128 -> decimal, DateTime -> time.Time; descarta _id.
func fromBSON(doc bson.M) store.Row {
	if doc == nil {
		return nil
	}
	row := make(store.Row, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		switch x := v.(type) {
		case primitive.Decimal128:
			if d, err := decimal.NewFromString(x.String()); err == nil {
				row[k] = d
				continue
			}
			row[k] = x.String()
		case primitive.DateTime:
			row[k] = x.Time().UTC()
		case primitive.ObjectID:
			row[k] = x.Hex()
		default:
			row[k] = v
		}
	}
	return row
}
