package dto

import "github.com/shopspring/decimal"

// PartnerBalanceDTO resumen financiero de un tercero.
// Convención de signo: Balance < 0 = el tercero debe a la empresa (deudor);
// Balance > 0 = crédito a favor del tercero.
type PartnerBalanceDTO struct {
	PartnerID            string          `json:"partner_id"`
	PartnerName          string          `json:"partner_name"`
	OrderCount           int             `json:"order_count"`
	TotalInvoiced        decimal.Decimal `json:"total_invoiced"`
	TotalAdvancePayments decimal.Decimal `json:"total_advance_payments"`
	TotalIncome          decimal.Decimal `json:"total_income"`
	TotalExpense         decimal.Decimal `json:"total_expense"`
	Balance              decimal.Decimal `json:"balance"`
	AverageOrder         decimal.Decimal `json:"average_order"`
}

// MaterialRequirementDTO requerimiento de materia prima de un pedido:
// cantidad requerida según la fórmula de consumo vs stock actual.
type MaterialRequirementDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit,omitempty"`
	Required     decimal.Decimal `json:"required"`
	Stock        decimal.Decimal `json:"stock"`
	Shortage     bool            `json:"shortage"` // stock < required
}

// OrderRequirementsDTO proyección de requerimientos de un pedido.
// Derivada y de solo lectura; no se persiste.
type OrderRequirementsDTO struct {
	OrderID      string                   `json:"order_id"`
	Requirements []MaterialRequirementDTO `json:"requirements"`
}

// DebtorDTO tercero deudor en el resumen financiero.
type DebtorDTO struct {
	PartnerID   string          `json:"partner_id"`
	PartnerName string          `json:"partner_name"`
	Balance     decimal.Decimal `json:"balance"`
}

// FinanceSummaryDTO resumen de caja de hoy y del mes en curso.
type FinanceSummaryDTO struct {
	TodayIncome   decimal.Decimal `json:"today_income"`
	TodayExpense  decimal.Decimal `json:"today_expense"`
	TodayNet      decimal.Decimal `json:"today_net"`
	MonthIncome   decimal.Decimal `json:"month_income"`
	MonthExpense  decimal.Decimal `json:"month_expense"`
	MonthNet      decimal.Decimal `json:"month_net"`
	TopDebtors    []DebtorDTO     `json:"top_debtors"`
	DateLabel     string          `json:"date_label"`
}
