package pipeline

import (
	"context"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
	"github.com/kurochkinivan/gst_compliance/internal/filing"
)

type FilesProvider interface {
	ImportFiles(ctx context.Context) ([]*domain.ImportFile, error)
}

type FileUpdater interface {
	UpsertImportFile(ctx context.Context, file *domain.ImportFile) error
}

type ReturnsReconciler interface {
	Process(ctx context.Context, gstin string, info *domain.ReturnsInfo) (filing.Result, error)
}

type FiledLogsProvider interface {
	FiledLogsByGSTIN(ctx context.Context, gstin string) ([]*domain.FiledLog, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	GenerateReport(outputPath, gstin, sourceFile string, logs []*domain.FiledLog) error
}
