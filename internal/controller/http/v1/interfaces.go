package v1

import (
	"context"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
	"github.com/kurochkinivan/gst_compliance/internal/filedlog"
	"github.com/kurochkinivan/gst_compliance/internal/filing"
)

type FiledLogService interface {
	FiledLog(ctx context.Context, name string) (*domain.FiledLog, error)
	Overview(ctx context.Context, name string) (*filedlog.Overview, error)
	LoadData(ctx context.Context, log *domain.FiledLog) (map[domain.FileField]map[string]any, error)
	JSONFor(ctx context.Context, name string, field domain.FileField) (map[string]any, bool, error)
	UpdateJSONFor(ctx context.Context, log *domain.FiledLog, field domain.FileField, data map[string]any, overwrite bool) error
	UpdateStatus(ctx context.Context, name, status string) error
	IsSEKValid(ctx context.Context, log *domain.FiledLog) (bool, error)
}

type FiledLogsRepository interface {
	FiledLogsPage(ctx context.Context, gstin string, limit, offset uint64) ([]*domain.FiledLog, int, error)
}

type ReturnsReconciler interface {
	Process(ctx context.Context, gstin string, info *domain.ReturnsInfo) (filing.Result, error)
}

type AdvanceReporter interface {
	Execute(ctx context.Context, filters *domain.AdvanceFilters) ([]domain.Column, []*domain.AdvanceEntry, error)
}

type AdvancePDFGenerator interface {
	AdvanceReport(filters *domain.AdvanceFilters, columns []domain.Column, entries []*domain.AdvanceEntry) ([]byte, error)
}
