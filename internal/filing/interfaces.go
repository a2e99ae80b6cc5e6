package filing

import (
	"context"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

type FiledLogStore interface {
	FilingStatuses(ctx context.Context, names []string) (map[string]string, error)
	CreateFiledLog(ctx context.Context, log *domain.FiledLog) error
	UpdateFilingDetails(ctx context.Context, name string, details domain.FilingDetails) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
