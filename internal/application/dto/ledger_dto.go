package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// FinancialRecordResponse asiento del libro.
type FinancialRecordResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	PaymentType string          `json:"payment_type"`
	Description string          `json:"description"`
	EmployeeID  string          `json:"employee_id"`
	RestockID   *string         `json:"restock_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ApprovalResponse resultado de aprobar una reposición.
type ApprovalResponse struct {
	Message string                  `json:"message"`
	Request RestockResponse         `json:"request"`
	Record  FinancialRecordResponse `json:"record"`
	Resumed bool                    `json:"resumed"`
}

// SummaryResponse tarjetas del panel financiero.
type SummaryResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	RevenuePct   decimal.Decimal `json:"revenue_pct"`
	ExpensesPct  decimal.Decimal `json:"expenses_pct"`
	BalanceLabel string          `json:"balance_label"`
	ProfitLabel  string          `json:"profit_label"`
	Records      int             `json:"records"`
}

// NewFinancialRecordResponse mapea la entidad.
func NewFinancialRecordResponse(r *entity.FinancialRecord) FinancialRecordResponse {
	return FinancialRecordResponse{
		ID:          r.ID,
		Amount:      r.Amount,
		Balance:     r.Balance,
		PaymentType: string(r.PaymentType),
		Description: r.Description,
		EmployeeID:  r.EmployeeID,
		RestockID:   r.RestockID,
		CreatedAt:   r.CreatedAt,
	}
}

// NewFinancialRecordResponses mapea una lista; nunca devuelve nil.
func NewFinancialRecordResponses(items []*entity.FinancialRecord) []FinancialRecordResponse {
	out := make([]FinancialRecordResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewFinancialRecordResponse(r))
	}
	return out
}
