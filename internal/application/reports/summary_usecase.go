package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/domain/repository"
)

const summaryTopDebtors = 5 // número de deudores en el resumen

// SummaryUseCase genera el resumen de caja del día y del mes en curso.
//
// Fuente de datos: FinanceRepository (consultas read-only).
// No accede directamente a la tabla de transacciones; delega en el repo.
type SummaryUseCase struct {
	financeRepo repository.FinanceRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(financeRepo repository.FinanceRepository) *SummaryUseCase {
	return &SummaryUseCase{financeRepo: financeRepo}
}

// GetSummary construye el FinanceSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetCashflow(hoy)     → TodayIncome / TodayExpense
//  2. GetCashflow(mes)     → MonthIncome / MonthExpense
//  3. GetTopDebtors(top 5) → TopDebtors
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*dto.FinanceSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type cashflowResult struct {
		income  decimal.Decimal
		expense decimal.Decimal
		err     error
	}
	type debtorsResult struct {
		debtors []dto.DebtorDTO
		err     error
	}

	todayCh := make(chan cashflowResult, 1)
	monthCh := make(chan cashflowResult, 1)
	debtorsCh := make(chan debtorsResult, 1)

	go func() {
		income, expense, err := uc.financeRepo.GetCashflow(ctx, todayStart, todayEnd)
		todayCh <- cashflowResult{income, expense, err}
	}()
	go func() {
		income, expense, err := uc.financeRepo.GetCashflow(ctx, monthStart, monthEnd)
		monthCh <- cashflowResult{income, expense, err}
	}()
	go func() {
		debtors, err := uc.financeRepo.GetTopDebtors(ctx, summaryTopDebtors)
		debtorsCh <- debtorsResult{debtors, err}
	}()

	today := <-todayCh
	month := <-monthCh
	debtors := <-debtorsCh

	if today.err != nil {
		return nil, fmt.Errorf("resumen: caja de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("resumen: caja del mes: %w", month.err)
	}
	if debtors.err != nil {
		return nil, fmt.Errorf("resumen: deudores: %w", debtors.err)
	}

	return &dto.FinanceSummaryDTO{
		TodayIncome:  today.income.Round(2),
		TodayExpense: today.expense.Round(2),
		TodayNet:     today.income.Sub(today.expense).Round(2),
		MonthIncome:  month.income.Round(2),
		MonthExpense: month.expense.Round(2),
		MonthNet:     month.income.Sub(month.expense).Round(2),
		TopDebtors:   debtors.debtors,
		DateLabel:    monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
