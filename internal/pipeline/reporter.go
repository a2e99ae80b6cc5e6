package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.ReturnsBatch
	filedLogs       FiledLogsProvider
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.ReturnsBatch,
	filedLogs FiledLogsProvider,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		filedLogs:       filedLogs,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case batch, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("filename", batch.Filename),
				slog.String("gstin", batch.GSTIN),
			)

			log.InfoContext(ctx, "received returns batch, generating filing summary")

			if err := r.processBatch(ctx, batch); err != nil {
				log.ErrorContext(ctx, "failed to generate filing summary", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processBatch(ctx context.Context, batch *domain.ReturnsBatch) error {
	logs, err := r.filedLogs.FiledLogsByGSTIN(ctx, batch.GSTIN)
	if err != nil {
		return fmt.Errorf("failed to get filed logs: %w", err)
	}

	if len(logs) == 0 {
		return nil
	}

	// один отчет на GSTIN, перезаписывается при каждом импорте
	path := filepath.Join(r.outputDir, batch.GSTIN+".pdf")

	if err := r.reportGenerator.GenerateReport(path, batch.GSTIN, batch.Filename, logs); err != nil {
		return fmt.Errorf("gstin %s: %w", batch.GSTIN, err)
	}

	return nil
}
