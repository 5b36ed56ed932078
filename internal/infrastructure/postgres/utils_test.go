package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

func TestBuildSelect(t *testing.T) {
	sql, args := buildSelect("financial_records", store.Query{
		Columns: []string{"balance"},
		Filter:  store.Filter{"restock_id": "r1", "employee_id": nil},
		Order:   &store.Order{Column: "created_at"},
		Limit:   1,
	})
	assert.Equal(t,
		`SELECT "balance" FROM "financial_records" WHERE "employee_id" IS NULL AND "restock_id" = $1 ORDER BY "created_at" DESC LIMIT 1`,
		sql)
	assert.Equal(t, []any{"r1"}, args)
}

func TestBuildSelect_ForUpdate(t *testing.T) {
	sql, args := buildSelect("restock", store.Query{Filter: store.Filter{"id": "x"}, ForUpdate: true})
	assert.Equal(t, `SELECT * FROM "restock" WHERE "id" = $1 FOR UPDATE`, sql)
	assert.Equal(t, []any{"x"}, args)
}

func TestBuildInsert(t *testing.T) {
	sql, args := buildInsert("restock", store.Row{"stock_amount": 4, "product_id": "p1"})
	assert.Equal(t, `INSERT INTO "restock" ("product_id", "stock_amount") VALUES ($1, $2) RETURNING *`, sql)
	assert.Equal(t, []any{"p1", 4}, args)
}

func TestBuildUpdate_PlaceholdersContinuan(t *testing.T) {
	sql, args := buildUpdate("dispatches",
		store.Row{"status": "complete", "driver_status": "delivered"},
		store.Filter{"order_id": "o1"})
	assert.Equal(t, `UPDATE "dispatches" SET "driver_status" = $1, "status" = $2 WHERE "order_id" = $3`, sql)
	assert.Equal(t, []any{"delivered", "complete", "o1"}, args)
}

func TestNormalizeRow_UUID(t *testing.T) {
	var raw [16]byte
	raw[15] = 1
	row := normalizeRow(map[string]any{"id": raw, "name": "x"})
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", row["id"])
	assert.Equal(t, "x", row["name"])
}

func TestInsertError_UnicoEsErrDuplicate(t *testing.T) {
	err := insertError("financial_records", &pgconn.PgError{Code: "23505", ConstraintName: "financial_records_restock_id_key"})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	err = insertError("financial_records", &pgconn.PgError{Code: "23503"})
	assert.NotErrorIs(t, err, store.ErrDuplicate)
}
