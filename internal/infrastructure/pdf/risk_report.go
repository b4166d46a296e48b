// Package pdf implementa la generación del reporte de riesgo de quiebre de
// stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de pares evaluados / críticos / altos        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Facility | Insumo | Quiebre estimado | Riesgo | Conf │
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

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// RiskReportGenerator genera el reporte de riesgo usando Maroto v2.
type RiskReportGenerator struct{}

// NewRiskReportGenerator construye el generador.
func NewRiskReportGenerator() *RiskReportGenerator { return &RiskReportGenerator{} }

// Generate arma el PDF con las predicciones más recientes y devuelve sus bytes.
func (g *RiskReportGenerator) Generate(_ context.Context, predictions []repository.PredictionRow, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Riesgo de Quiebre de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(predictions))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, p := range predictions {
		m.AddRows(tableDetailRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Riesgo de Quiebre de Stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: conteos por nivel de riesgo.
func summaryRow(predictions []repository.PredictionRow) core.Row {
	var critical, high int
	for _, p := range predictions {
		switch p.Prediction.RiskLevel {
		case entity.RiskCritical:
			critical++
		case entity.RiskHigh:
			high++
		}
	}
	summary := fmt.Sprintf("%d pares evaluados  |  %d críticos  |  %d altos",
		len(predictions), critical, high)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(summary, props.Text{Size: 9, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("Establecimiento", 3),
		header("Insumo", 3),
		header("Quiebre estimado", 2),
		header("Riesgo", 2),
		header("Confianza", 2),
	)
}

func tableDetailRow(p repository.PredictionRow) core.Row {
	riskColor := colorGray
	if p.Prediction.RiskLevel == entity.RiskCritical || p.Prediction.RiskLevel == entity.RiskHigh {
		riskColor = colorDanger
	}
	cell := func(value string, size int, color *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1, Color: color}))
	}
	return row.New(6).Add(
		cell(fmt.Sprintf("%s (%s)", p.FacilityName, p.FacilityCode), 3, nil),
		cell(fmt.Sprintf("%s (%s)", p.CommodityName, p.CommodityCode), 3, nil),
		cell(p.Prediction.PredictedStockOutDate.Format("02/01/2006"), 2, nil),
		cell(p.Prediction.RiskLevel, 2, riskColor),
		cell(p.Prediction.ConfidenceScore.String(), 2, nil),
	)
}
