package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

// fixtureOrder orden de carga: las tablas referenciadas van primero.
var fixtureOrder = []string{
	store.TableProducts,
	store.TableRestock,
	store.TableFinancialRecords,
	store.TableOrders,
	store.TableDispatches,
	store.TableRepairs,
}

// decimalColumns columnas monetarias que se cargan como decimal.Decimal.
var decimalColumns = map[string]bool{"price": true, "amount": true, "balance": true, "total_price": true, "cost": true}

// LoadFixture inserta las filas de un documento JSON {"tabla": [{...}, ...]}. Devuelve las filas insertadas.
func LoadFixture(ctx context.Context, c store.Client, r io.Reader) (int, error) {
	var doc map[string][]map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return 0, fmt.Errorf("decodificar fixture: %w", err)
	}
	for t := range doc {
		if _, err := store.Lookup(t); err != nil {
			return 0, err
		}
	}

	n := 0
	for _, t := range fixtureOrder {
		for _, raw := range doc[t] {
			row := make(store.Row, len(raw))
			for k, v := range raw {
				row[k] = fixtureValue(k, v)
			}
			if _, err := c.Insert(ctx, t, row); err != nil {
				return n, fmt.Errorf("insertar en %s: %w", t, err)
			}
			n++
		}
	}
	return n, nil
}

// LoadFixtureFile abre path y llama a LoadFixture.
func LoadFixtureFile(ctx context.Context, c store.Client, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("abrir fixture: %w", err)
	}
	defer f.Close()
	return LoadFixture(ctx, c, f)
}

func fixtureValue(col string, v any) any {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if decimalColumns[col] {
		if d, err := decimal.NewFromString(num.String()); err == nil {
			return d
		}
	}
	if i, err := num.Int64(); err == nil {
		return i
	}
	return num.String()
}
