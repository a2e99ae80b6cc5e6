package report_generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

var summaryColumns = []column{
	{label: "Return Period", size: 2},
	{label: "Filing Status", size: 2},
	{label: "Filing Date", size: 2},
	{label: "Acknowledgement Number", size: 3},
	{label: "Generation Status", size: 3},
}

// GenerateReport writes the GSTR-1 filing summary of gstin to outputPath.
func (g *Generator) GenerateReport(outputPath, gstin, sourceFile string, logs []*domain.FiledLog) error {
	m := newDocument(orientation.Vertical)
	g.addTitle(m, "GSTR-1 Filing Summary "+gstin, "Source: "+filepath.Base(sourceFile))

	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		filingDate := ""
		if l.FilingDate != nil {
			filingDate = l.FilingDate.Format(time.DateOnly)
		}

		rows = append(rows, []string{
			l.ReturnPeriod,
			l.FilingStatus,
			filingDate,
			l.AcknowledgementNumber,
			l.GenerationStatus,
		})
	}

	addTable(m, summaryColumns, rows)

	content, err := generate(m)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write report %q: %w", outputPath, err)
	}

	return nil
}
