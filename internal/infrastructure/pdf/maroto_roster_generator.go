// Package pdf genera el reporte PDF de la plantilla de empleados del panel RH.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Agencia | Nacimiento | Alta | Baja | Estado │
//	│         | Administrador (email)                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de empleados listados                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/rh-admin-api/internal/application/usecase"
	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateFormat = "02/01/2006"

var _ usecase.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// MarotoRosterGenerator implementa usecase.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator { return &MarotoRosterGenerator{} }

// GenerateRosterPDF genera el PDF de la plantilla y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(_ context.Context, employees []*entity.Employee) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plantilla de empleados", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(employees) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(employees)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format(dateFormat)
	return row.New(14).Add(
		col.New(8).Add(
			text.New("PLANTILLA DE EMPLEADOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Panel de administración RH", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de empleados.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Empleado", 3, align.Left),
		h("Agencia", 2, align.Left),
		h("Nacimiento", 1, align.Center),
		h("Alta", 1, align.Center),
		h("Baja", 1, align.Center),
		h("Estado", 1, align.Center),
		h("Administrador", 3, align.Left),
	)
}

// tableRows: una fila por empleado, fechas en dd/mm/yyyy.
func tableRows(employees []*entity.Employee) []core.Row {
	result := make([]core.Row, 0, len(employees))
	for _, e := range employees {
		baja := "—"
		if e.LowDate != nil {
			baja = e.LowDate.Format(dateFormat)
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				e.Name+" "+e.LastName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.Agency,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				e.DateOfBirth.Format(dateFormat),
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				e.HighDate.Format(dateFormat),
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				baja,
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				e.Status,
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				e.UserEmail,
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// footerRow: total de empleados listados.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de empleados: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}
