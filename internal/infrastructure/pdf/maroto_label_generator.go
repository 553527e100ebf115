// Package pdf implementa la generación de la hoja de etiquetas de precio
// para góndola, con código de barras Code-128 por producto.
//
// Layout de la página A4: grilla de 3 etiquetas por fila.
//
//	┌───────────────┬───────────────┬───────────────┐
//	│  Nombre       │  Nombre       │  Nombre       │
//	│  $ Precio     │  $ Precio     │  $ Precio     │
//	│  ||||||||||   │  ||||||||||   │  ||||||||||   │
//	│  SKU          │  SKU          │  SKU          │
//	└───────────────┴───────────────┴───────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

const labelsPerRow = 3

var (
	labelColorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	labelColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLabelGenerator implementa usecase.LabelPDFGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabelSheet genera el PDF de etiquetas y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateLabelSheet(_ context.Context, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas de precio", true).
		Build()

	m := maroto.New(cfg)

	for start := 0; start < len(products); start += labelsPerRow {
		end := start + labelsPerRow
		if end > len(products) {
			end = len(products)
		}
		m.AddRows(labelRow(products[start:end]))
		m.AddRows(row.New(4))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRow: hasta tres etiquetas lado a lado; las celdas sobrantes quedan vacías.
func labelRow(products []*entity.Product) core.Row {
	cols := make([]core.Col, 0, labelsPerRow)
	for _, p := range products {
		cols = append(cols, labelCol(p))
	}
	for len(cols) < labelsPerRow {
		cols = append(cols, col.New(4))
	}
	return row.New(34).Add(cols...)
}

// labelCol: nombre, precio destacado, código de barras del SKU y el SKU legible.
func labelCol(p *entity.Product) core.Col {
	return col.New(4).Add(
		text.New(p.Name, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1,
		}),
		text.New("$"+p.Price.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center,
			Color: labelColorPrimary, Top: 6,
		}),
		code.NewBar(p.SKU, props.Barcode{
			Percent: 80,
			Center:  true,
			Top:     13,
		}),
		text.New(p.SKU, props.Text{
			Size: 7, Align: align.Center, Color: labelColorGray, Top: 29,
		}),
	)
}
