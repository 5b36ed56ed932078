package store

import (
	"fmt"
	"sort"
)

// Tablas del almacén.
const (
	TableRestock          = "restock"
	TableProducts         = "products"
	TableFinancialRecords = "financial_records"
	TableDispatches       = "dispatches"
	TableOrders           = "orders"
	TableRepairs          = "repairs"
)

// Table describe una tabla permitida. Unique lista columnas que no admiten dos filas con
// el mismo valor no nulo (índice único parcial en los drivers).
type Table struct {
	Name       string
	PrimaryKey string
	Columns    []string
	Unique     []string
}

// Has indica si la columna pertenece a la tabla.
func (t Table) Has(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Schema lista blanca de tablas y columnas; los drivers no aceptan identificadores fuera de ella.
var Schema = map[string]Table{
	TableRestock: {
		Name: TableRestock, PrimaryKey: "id",
		Columns: []string{"id", "product_id", "stock_amount", "finance_approval", "status", "created_at"},
	},
	TableProducts: {
		Name: TableProducts, PrimaryKey: "product_id",
		Columns: []string{"product_id", "name", "description", "price", "stock_quantity", "created_at"},
	},
	TableFinancialRecords: {
		Name: TableFinancialRecords, PrimaryKey: "id",
		Columns: []string{"id", "amount", "balance", "payment_type", "description", "employee_id", "restock_id", "created_at"},
		Unique:  []string{"restock_id"},
	},
	TableDispatches: {
		Name: TableDispatches, PrimaryKey: "dispatch_id",
		Columns: []string{"dispatch_id", "order_id", "driver_id", "status", "driver_status", "delivery_address", "tracking_number", "dispatch_date", "created_at"},
	},
	TableOrders: {
		Name: TableOrders, PrimaryKey: "order_id",
		Columns: []string{"order_id", "product_id", "user_id", "quantity", "total_price", "status", "finance_approval", "dispatch_status", "created_at"},
	},
	TableRepairs: {
		Name: TableRepairs, PrimaryKey: "id",
		Columns: []string{"id", "product_id", "customer_id", "technician_id", "description", "cost", "status", "finance_status", "created_at"},
	},
}

// Lookup devuelve la tabla y verifica que las columnas existan.
func Lookup(table string, columns ...string) (Table, error) {
	t, ok := Schema[table]
	if !ok {
		return Table{}, fmt.Errorf("%w: table %q", ErrUnknownIdentifier, table)
	}
	for _, c := range columns {
		if !t.Has(c) {
			return Table{}, fmt.Errorf("%w: column %q.%q", ErrUnknownIdentifier, table, c)
		}
	}
	return t, nil
}

// CheckQuery valida todos los identificadores de una consulta.
func CheckQuery(table string, q Query) (Table, error) {
	cols := append([]string{}, q.Columns...)
	cols = append(cols, Keys(q.Filter)...)
	if q.Order != nil {
		cols = append(cols, q.Order.Column)
	}
	return Lookup(table, cols...)
}

// Keys columnas de un mapa en orden estable (para SQL determinista).
func Keys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tables nombres de todas las tablas en orden estable.
func Tables() []string {
	names := make([]string, 0, len(Schema))
	for n := range Schema {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
