package storerepo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/store"
)

func TestParseProduct_PrecioNoNumericoEsCero(t *testing.T) {
	p := parseProduct(store.Row{"product_id": "p1", "name": "Router", "price": "abc"})
	assert.True(t, p.Price.IsZero())
	assert.Equal(t, []string{"price", "stock_quantity"}, p.DefaultedFields)
}

func TestParseProduct_TiposHeterogeneos(t *testing.T) {
	cases := []struct {
		name  string
		price any
		want  string
	}{
		{"decimal", decimal.RequireFromString("50.25"), "50.25"},
		{"string", " 19.99 ", "19.99"},
		{"float", 12.5, "12.5"},
		{"int32", int32(7), "7"},
		{"int64", int64(9), "9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseProduct(store.Row{"price": tc.price, "stock_quantity": 1})
			assert.True(t, p.Price.Equal(decimal.RequireFromString(tc.want)), "got %s", p.Price)
			assert.Empty(t, p.DefaultedFields)
		})
	}
}

func TestParseRestock_CantidadAusente(t *testing.T) {
	r := parseRestock(store.Row{"id": "r1", "product_id": "p1"})
	assert.Equal(t, int64(0), r.StockAmount)
	assert.Equal(t, []string{"stock_amount"}, r.DefaultedFields)
	assert.Equal(t, entity.FinanceApprovalPending, r.FinanceApproval)
	assert.Equal(t, entity.RestockStatusPending, r.Status)
}

func TestParseRestock_CantidadFraccionariaSeTruncaYSeAnota(t *testing.T) {
	for name, qty := range map[string]any{
		"float":   4.5,
		"string":  " 4.5 ",
		"decimal": decimal.RequireFromString("4.5"),
	} {
		t.Run(name, func(t *testing.T) {
			r := parseRestock(store.Row{"id": "r1", "stock_amount": qty})
			assert.Equal(t, int64(4), r.StockAmount)
			assert.Equal(t, []string{"stock_amount"}, r.DefaultedFields)
		})
	}

	r := parseRestock(store.Row{"id": "r2", "stock_amount": decimal.NewFromInt(4)})
	assert.Equal(t, int64(4), r.StockAmount)
	assert.Empty(t, r.DefaultedFields, "un entero exacto no se anota")
}

func TestParseRestock_NormalizaDecline(t *testing.T) {
	r := parseRestock(store.Row{"id": "r1", "stock_amount": "4", "finance_approval": "decline"})
	assert.Equal(t, entity.FinanceApprovalDeclined, r.FinanceApproval)
	assert.Equal(t, int64(4), r.StockAmount)
}

func TestParseFinancialRecord(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := parseFinancialRecord(store.Row{
		"id": "f1", "amount": decimal.NewFromInt(200), "balance": decimal.NewFromInt(800),
		"payment_type": "outgoing", "restock_id": "r1", "created_at": now,
	})
	assert.Equal(t, entity.PaymentOutgoing, rec.PaymentType)
	if assert.NotNil(t, rec.RestockID) {
		assert.Equal(t, "r1", *rec.RestockID)
	}
	assert.True(t, now.Equal(rec.CreatedAt))

	legacy := parseFinancialRecord(store.Row{"id": "f0", "amount": 1, "balance": 1})
	assert.Nil(t, legacy.RestockID)
}
