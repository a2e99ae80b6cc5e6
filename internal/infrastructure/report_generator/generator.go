package report_generator

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	titleHeight  = 12
	headerHeight = 8
	rowHeight    = 6
	margin       = 10
)

var (
	titleStyle = props.Text{
		Size:  14,
		Style: fontstyle.Bold,
		Align: align.Center,
	}

	subtitleStyle = props.Text{
		Size:  9,
		Align: align.Center,
	}

	headerStyle = props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Top:   2,
	}

	cellStyle = props.Text{
		Size: 7,
		Left: 1,
		Top:  1,
	}

	numberStyle = props.Text{
		Size:  7,
		Right: 1,
		Top:   1,
		Align: align.Right,
	}
)

// Generator renders PDF reports on the 12 column maroto grid.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

type column struct {
	label   string
	size    int
	numeric bool
}

func newDocument(orient orientation.Type) core.Maroto {
	cfg := config.NewBuilder().
		WithOrientation(orient).
		WithLeftMargin(margin).
		WithTopMargin(margin).
		WithRightMargin(margin).
		Build()

	return maroto.New(cfg)
}

func (g *Generator) addTitle(m core.Maroto, title, subtitle string) {
	m.AddRows(text.NewRow(titleHeight, title, titleStyle))
	m.AddRows(text.NewRow(headerHeight, subtitle, subtitleStyle))
	m.AddRows(text.NewRow(headerHeight, "Generated at "+g.now().Format(time.DateTime), subtitleStyle))
}

func addTable(m core.Maroto, columns []column, rows [][]string) {
	header := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		header = append(header, text.NewCol(c.size, c.label, headerStyle))
	}
	m.AddRow(headerHeight, header...)

	for _, values := range rows {
		cols := make([]core.Col, 0, len(columns))
		for i, c := range columns {
			style := cellStyle
			if c.numeric {
				style = numberStyle
			}
			cols = append(cols, text.NewCol(c.size, values[i], style))
		}
		m.AddRow(rowHeight, cols...)
	}
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
