package ledger

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/pkg/listing"
)

// CurrencyPrefix prefijo de los montos mostrados.
const CurrencyPrefix = "KSh"

var hundred = decimal.NewFromInt(100)

// Summary tarjetas del panel financiero.
type Summary struct {
	Balance      decimal.Decimal
	Revenue      decimal.Decimal
	Expenses     decimal.Decimal
	Profit       decimal.Decimal
	RevenuePct   decimal.Decimal
	ExpensesPct  decimal.Decimal
	BalanceLabel string
	ProfitLabel  string
	Records      int
}

// RestockStats conteos por estado financiero.
type RestockStats struct {
	Total    int
	Pending  int
	Approved int
	Declined int
}

// RestockList página de solicitudes más sus conteos (calculados sobre el total, no sobre el filtro).
type RestockList struct {
	Page  listing.Page[*entity.RestockRequest]
	Stats RestockStats
}

// ListRecords libro completo, más reciente primero.
func (uc *UseCase) ListRecords(ctx context.Context) ([]*entity.FinancialRecord, error) {
	return uc.records.List(ctx)
}

// Summary saldo vigente, ingresos, egresos, utilidad y porcentajes sobre el total movido.
func (uc *UseCase) Summary(ctx context.Context) (*Summary, error) {
	records, err := uc.records.List(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(records), nil
}

// Summarize calcula el resumen sobre registros ordenados del más reciente al más antiguo.
func Summarize(records []*entity.FinancialRecord) *Summary {
	s := &Summary{Records: len(records)}
	if len(records) > 0 {
		s.Balance = records[0].Balance
	}
	for _, r := range records {
		switch r.PaymentType {
		case entity.PaymentIncoming:
			s.Revenue = s.Revenue.Add(r.Amount)
		case entity.PaymentOutgoing:
			s.Expenses = s.Expenses.Add(r.Amount)
		}
	}
	s.Profit = s.Revenue.Sub(s.Expenses)
	if total := s.Revenue.Add(s.Expenses); !total.IsZero() {
		s.RevenuePct = s.Revenue.Div(total).Mul(hundred).Round(2)
		s.ExpensesPct = s.Expenses.Div(total).Mul(hundred).Round(2)
	}
	s.BalanceLabel = FormatAmount(s.Balance)
	s.ProfitLabel = FormatAmount(s.Profit)
	return s
}

var printer = message.NewPrinter(language.English)

// FormatAmount "KSh 1,234.00". Exacto a dos decimales; solo la parte entera se agrupa.
func FormatAmount(d decimal.Decimal) string {
	r := d.Round(2)
	abs := r.Abs()
	whole := abs.Truncate(0)
	frac := abs.Sub(whole).StringFixed(2)[1:]
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	return CurrencyPrefix + " " + sign + groupThousands(whole) + frac
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

func groupThousands(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(maxInt64) {
		return printer.Sprintf("%d", whole.IntPart())
	}
	digits := whole.String()
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ListRestocks solicitudes con producto, filtradas en memoria por estado financiero
// ("All" o vacío = todas) y paginadas de a listing.RestockPageSize. Un filtro desconocido
// devuelve domain.ErrInvalidInput.
func (uc *UseCase) ListRestocks(ctx context.Context, filter string, page int) (*RestockList, error) {
	var want entity.FinanceApproval
	if f := strings.TrimSpace(filter); f != "" && !strings.EqualFold(f, "all") {
		a, ok := entity.ParseFinanceApproval(f)
		if !ok {
			return nil, fmt.Errorf("%w: finance approval filter %q", domain.ErrInvalidInput, filter)
		}
		want = a
	}

	all, err := uc.restocks.List(ctx, repository.RestockFilter{})
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, r := range all {
		r.Product = byID[r.ProductID]
	}

	stats := RestockStats{
		Total:    len(all),
		Pending:  listing.Tally(all, approvalIs(entity.FinanceApprovalPending)),
		Approved: listing.Tally(all, approvalIs(entity.FinanceApprovalApproved)),
		Declined: listing.Tally(all, approvalIs(entity.FinanceApprovalDeclined)),
	}

	shown := all
	if want != "" {
		shown = listing.Filter(all, approvalIs(want))
	}
	return &RestockList{
		Page:  listing.NewPage(shown, listing.RestockPageSize, page),
		Stats: stats,
	}, nil
}

func approvalIs(a entity.FinanceApproval) func(*entity.RestockRequest) bool {
	return func(r *entity.RestockRequest) bool { return r.FinanceApproval == a }
}

func latestBalance(latest *entity.FinancialRecord) decimal.Decimal {
	if latest == nil {
		return decimal.Zero
	}
	return latest.Balance
}
