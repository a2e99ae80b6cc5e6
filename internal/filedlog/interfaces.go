package filedlog

import (
	"context"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

type FiledLogRepository interface {
	FiledLog(ctx context.Context, name string) (*domain.FiledLog, error)
	LockFiledLog(ctx context.Context, name string) error
	UpdateGenerationStatus(ctx context.Context, name, status string) error
	SetFile(ctx context.Context, name string, field domain.FileField, url string) error
}

type AttachmentRepository interface {
	AttachmentFor(ctx context.Context, doctype, name, field string) (*domain.Attachment, error)
	CreateAttachment(ctx context.Context, attachment *domain.Attachment) error
	TouchAttachment(ctx context.Context, id string, size int64) error
}

type BlobStorage interface {
	Put(ctx context.Context, key string, content []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

type SettingsProvider interface {
	Settings(ctx context.Context) (*domain.Settings, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
