// Package pdf implementa la generación del extracto de cuenta de un
// tercero usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Extracto de Cuenta  │  Tercero + Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS DEL TERCERO: contacto / tel / email                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA PEDIDOS: Fecha | Estado | Total | Pagado | Pago       │
//	│  TABLA MOVIMIENTOS: Fecha | Tipo | Descripción | Monto       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Facturado / Abonado / Ingresos / Egresos / SALDO   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/erp-produccion/internal/application/dto"
	"github.com/tu-usuario/erp-produccion/internal/application/reports"
	"github.com/tu-usuario/erp-produccion/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa reports.StatementPDFGenerator usando
// Maroto v2.
type MarotoStatementGenerator struct{}

var _ reports.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF del extracto y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	partner *entity.Partner,
	orders []*entity.Order,
	txs []*entity.Transaction,
	balance *dto.PartnerBalanceDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extracto de Cuenta - "+partner.Name, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(partner, balance))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partnerRow(partner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de pedidos
	m.AddRows(sectionTitleRow("PEDIDOS"))
	m.AddRows(orderHeaderRow())
	for _, r := range orderRows(orders) {
		m.AddRows(r)
	}

	// Tabla de movimientos
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("MOVIMIENTOS DE CAJA"))
	m.AddRows(txnHeaderRow())
	for _, r := range txnRows(txs) {
		m.AddRows(r)
	}

	// Resumen
	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(balance))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y nombre del tercero + saldo (der).
func headerRow(partner *entity.Partner, balance *dto.PartnerBalanceDTO) core.Row {
	saldoColor := colorPrimary
	if balance.Balance.IsNegative() {
		saldoColor = colorRed
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("EXTRACTO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tipo de tercero: "+labelType(partner.Type), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(partner.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Saldo: $"+formatMoney(balance.Balance.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9, Color: saldoColor,
			}),
		),
	)
}

// partnerRow: datos de contacto del tercero.
func partnerRow(partner *entity.Partner) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL TERCERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Contacto: %s   |   Tel: %s   |   Email: %s   |   Dirección: %s",
				nonEmpty(partner.ContactName, "—"),
				nonEmpty(partner.Phone, "—"),
				nonEmpty(partner.Email, "—"),
				nonEmpty(partner.Address, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}),
	))
}

func orderHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 2, align.Left),
		h("Estado", 3, align.Left),
		h("Total", 3, align.Right),
		h("Pagado", 2, align.Right),
		h("Pago", 2, align.Center),
	)
}

func orderRows(orders []*entity.Order) []core.Row {
	if len(orders) == 0 {
		return []core.Row{emptyRow("Sin pedidos registrados")}
	}
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(o.OrderDate.Format("02/01/2006"), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(o.Status, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New("$"+formatMoney(o.TotalPrice.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+formatMoney(o.PaidAmount.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(o.PaymentStatus, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func txnHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("Monto", 3, align.Right),
	)
}

func txnRows(txs []*entity.Transaction) []core.Row {
	if len(txs) == 0 {
		return []core.Row{emptyRow("Sin movimientos registrados")}
	}
	result := make([]core.Row, 0, len(txs))
	for _, t := range txs {
		amount := t.Amount
		tipo := "Ingreso"
		if t.Type == entity.TransactionTypeExpense {
			amount = amount.Neg()
			tipo = "Egreso"
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(t.Date.Format("02/01/2006"), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(tipo, props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New(t.Description, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(signedMoney(amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
	))
}

// summaryRow: bloque de totales alineado a la derecha.
func summaryRow(balance *dto.PartnerBalanceDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	saldoColor := colorPrimary
	if balance.Balance.IsNegative() {
		saldoColor = colorRed
	}
	grandLabel := text.New("SALDO:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: saldoColor, Right: 2,
	})
	grandValue := text.New(signedMoney(balance.Balance), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: saldoColor, Right: 1,
	})

	return row.New(34).Add(
		col.New(3), // espacio izquierdo
		col.New(3).Add(
			label("Total facturado:"),
			label("Total abonado:"),
			label("Ingresos directos:"),
			label("Egresos directos:"),
			grandLabel,
		),
		col.New(3).Add(
			value("$"+formatMoney(balance.TotalInvoiced.StringFixed(0))),
			value("$"+formatMoney(balance.TotalAdvancePayments.StringFixed(0))),
			value("$"+formatMoney(balance.TotalIncome.StringFixed(0))),
			value("$"+formatMoney(balance.TotalExpense.StringFixed(0))),
			grandValue,
		),
		col.New(3), // espacio derecho
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func labelType(t string) string {
	if t == entity.PartnerTypeSupplier {
		return "Proveedor"
	}
	return "Cliente"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// signedMoney formatea un monto con signo: "-$1.500" o "$1.500".
func signedMoney(d decimal.Decimal) string {
	s := formatMoney(d.Abs().StringFixed(0))
	if d.IsNegative() {
		return "-$" + s
	}
	return "$" + s
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
