package storerepo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

// rowReader convierte una fila sin tipar en campos tipados. Los numéricos ausentes o
// ilegibles se leen como cero y quedan anotados en defaulted, igual que los enteros truncados.
type rowReader struct {
	row       store.Row
	defaulted []string
}

func newReader(row store.Row) *rowReader {
	return &rowReader{row: row}
}

func (r *rowReader) str(col string) string {
	switch v := r.row[col].(type) {
	case nil:
		return ""
	case [16]byte:
		return uuid.UUID(v).String()
	default:
		return cast.ToString(v)
	}
}

func (r *rowReader) optStr(col string) *string {
	if r.row[col] == nil {
		return nil
	}
	s := r.str(col)
	return &s
}

func (r *rowReader) decimal(col string) decimal.Decimal {
	d, err := toDecimal(r.row[col])
	if err != nil {
		r.defaulted = append(r.defaulted, col)
		return decimal.Zero
	}
	return d
}

// int64 con parte fraccionaria se trunca y también queda anotada en defaulted.
func (r *rowReader) int64(col string) int64 {
	d, err := toDecimal(r.row[col])
	if err != nil {
		r.defaulted = append(r.defaulted, col)
		return 0
	}
	if !d.Equal(d.Truncate(0)) {
		r.defaulted = append(r.defaulted, col)
	}
	return d.IntPart()
}

func (r *rowReader) time(col string) time.Time {
	t, err := cast.ToTimeE(r.row[col])
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r *rowReader) optTime(col string) *time.Time {
	if r.row[col] == nil {
		return nil
	}
	t := r.time(col)
	return &t
}

var errNoValue = errors.New("no value")

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, errNoValue
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, errNoValue
		}
		return *x, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(x))
	case float32, float64:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromFloat(f), nil
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not numeric: %T", v)
	}
	return decimal.NewFromInt(n), nil
}
