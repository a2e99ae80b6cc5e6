package filedlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

const privateFilesPrefix = "/private/files/"

// Service keeps derived GSTR-1 payloads of a filed log as gzipped JSON
// attachments, one per file field.
type Service struct {
	log         *slog.Logger
	logs        FiledLogRepository
	attachments AttachmentRepository
	blobs       BlobStorage
	settings    SettingsProvider
	transactor  Transactor
	now         func() time.Time
}

func NewService(
	log *slog.Logger,
	logs FiledLogRepository,
	attachments AttachmentRepository,
	blobs BlobStorage,
	settings SettingsProvider,
	transactor Transactor,
) *Service {
	return &Service{
		log:         log,
		logs:        logs,
		attachments: attachments,
		blobs:       blobs,
		settings:    settings,
		transactor:  transactor,
		now:         time.Now,
	}
}

// Overview is a filed log together with the file checks derived from settings.
type Overview struct {
	FiledLog         *domain.FiledLog   `json:"filed_log"`
	ApplicableFields []domain.FileField `json:"applicable_fields"`
	HasAllFiles      bool               `json:"has_all_files"`
	IsSEKNeeded      bool               `json:"is_sek_needed"`
}

func (s *Service) FiledLog(ctx context.Context, name string) (*domain.FiledLog, error) {
	log, err := s.logs.FiledLog(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get filed log %q: %w", name, err)
	}

	return log, nil
}

func (s *Service) Overview(ctx context.Context, name string) (*Overview, error) {
	log, err := s.FiledLog(ctx, name)
	if err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		FiledLog:         log,
		ApplicableFields: log.ApplicableFileFields(settings),
		HasAllFiles:      log.HasAllFiles(settings),
		IsSEKNeeded:      log.IsSEKNeeded(settings),
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, name, status string) error {
	if err := s.logs.UpdateGenerationStatus(ctx, name, status); err != nil {
		return fmt.Errorf("failed to update status of %q: %w", name, err)
	}

	return nil
}

// LoadData returns the stored payload of every applicable field that has one.
func (s *Service) LoadData(ctx context.Context, log *domain.FiledLog) (map[domain.FileField]map[string]any, error) {
	fields, err := s.ApplicableFileFields(ctx, log)
	if err != nil {
		return nil, err
	}

	data := make(map[domain.FileField]map[string]any, len(fields))
	for _, field := range fields {
		payload, ok, err := s.JSONFor(ctx, log.Name, field)
		if err != nil {
			return nil, err
		}

		if ok && len(payload) > 0 {
			data[field] = payload
		}
	}

	return data, nil
}

// JSONFor returns the payload stored for field. ok is false when nothing is attached.
func (s *Service) JSONFor(ctx context.Context, name string, field domain.FileField) (_ map[string]any, ok bool, err error) {
	attachment, err := s.attachmentFor(ctx, name, field)
	if err != nil || attachment == nil {
		return nil, false, err
	}

	payload, err := s.read(ctx, attachment)
	if err != nil {
		return nil, false, err
	}

	return payload, true, nil
}

// UpdateJSONFor stores data for field. With overwrite unset, data is merged
// over the stored payload key by key. The filed log row stays locked while
// the attachment is looked up and written, so a field never gets a second file.
func (s *Service) UpdateJSONFor(
	ctx context.Context,
	log *domain.FiledLog,
	field domain.FileField,
	data map[string]any,
	overwrite bool,
) error {
	if _, err := domain.ParseFileField(string(field)); err != nil {
		return err
	}

	var fileURL string
	err := s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.logs.LockFiledLog(ctx, log.Name); err != nil {
			return fmt.Errorf("failed to lock filed log: %w", err)
		}

		attachment, err := s.attachmentFor(ctx, log.Name, field)
		if err != nil {
			return err
		}

		if attachment == nil {
			fileURL, err = s.createFile(ctx, log, field, data)
			return err
		}

		fileURL = attachment.FileURL

		return s.rewriteFile(ctx, log, field, attachment, data, overwrite)
	})
	if err != nil {
		return fmt.Errorf("failed to save %s of %q: %w", field, log.Name, err)
	}

	log.SetFile(field, fileURL)

	return nil
}

func (s *Service) ApplicableFileFields(ctx context.Context, log *domain.FiledLog) ([]domain.FileField, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	return log.ApplicableFileFields(settings), nil
}

func (s *Service) HasAllFiles(ctx context.Context, log *domain.FiledLog) (bool, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return false, err
	}

	return log.HasAllFiles(settings), nil
}

func (s *Service) IsSEKNeeded(ctx context.Context, log *domain.FiledLog) (bool, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return false, err
	}

	return log.IsSEKNeeded(settings), nil
}

func (s *Service) IsSEKValid(ctx context.Context, log *domain.FiledLog) (bool, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return false, err
	}

	return log.IsSEKValid(settings, s.now())
}

func (s *Service) createFile(ctx context.Context, log *domain.FiledLog, field domain.FileField, data map[string]any) (string, error) {
	content, err := Compress(data)
	if err != nil {
		return "", err
	}

	fileName := scrub(fmt.Sprintf("%s-%s.json.gz", log.Name, field))
	attachment := &domain.Attachment{
		ID:                uuid.NewString(),
		FileName:          fileName,
		FileURL:           privateFilesPrefix + fileName,
		AttachedToDoctype: domain.FiledLogDoctype,
		AttachedToName:    log.Name,
		AttachedToField:   string(field),
		IsPrivate:         true,
		FileSize:          int64(len(content)),
	}

	if err := s.blobs.Put(ctx, objectKey(attachment.FileURL), content); err != nil {
		return "", fmt.Errorf("failed to store blob: %w", err)
	}

	if err := s.attachments.CreateAttachment(ctx, attachment); err != nil {
		return "", fmt.Errorf("failed to create attachment: %w", err)
	}

	if err := s.logs.SetFile(ctx, log.Name, field, attachment.FileURL); err != nil {
		return "", err
	}

	s.log.DebugContext(ctx, "created filed log file",
		slog.String("name", log.Name),
		slog.String("field", string(field)),
		slog.String("file_url", attachment.FileURL),
	)

	return attachment.FileURL, nil
}

func (s *Service) rewriteFile(
	ctx context.Context,
	log *domain.FiledLog,
	field domain.FileField,
	attachment *domain.Attachment,
	data map[string]any,
	overwrite bool,
) error {
	payload := data
	if !overwrite {
		stored, err := s.read(ctx, attachment)
		if err != nil {
			return err
		}
		if stored == nil {
			stored = make(map[string]any, len(data))
		}
		maps.Copy(stored, data)
		payload = stored
	}

	content, err := Compress(payload)
	if err != nil {
		return err
	}

	if err := s.blobs.Put(ctx, objectKey(attachment.FileURL), content); err != nil {
		return fmt.Errorf("failed to overwrite blob: %w", err)
	}

	if err := s.attachments.TouchAttachment(ctx, attachment.ID, int64(len(content))); err != nil {
		return fmt.Errorf("failed to update attachment: %w", err)
	}

	if err := s.logs.SetFile(ctx, log.Name, field, attachment.FileURL); err != nil {
		return err
	}

	s.log.DebugContext(ctx, "updated filed log file",
		slog.String("name", log.Name),
		slog.String("field", string(field)),
		slog.Bool("overwrite", overwrite),
	)

	return nil
}

func (s *Service) attachmentFor(ctx context.Context, name string, field domain.FileField) (*domain.Attachment, error) {
	attachment, err := s.attachments.AttachmentFor(ctx, domain.FiledLogDoctype, name, string(field))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s attachment of %q: %w", field, name, err)
	}

	return attachment, nil
}

func (s *Service) read(ctx context.Context, attachment *domain.Attachment) (map[string]any, error) {
	content, err := s.blobs.Get(ctx, objectKey(attachment.FileURL))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", attachment.FileURL, err)
	}

	payload, err := Decompress(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", attachment.FileURL, err)
	}

	return payload, nil
}

func (s *Service) loadSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load gst settings: %w", err)
	}

	return settings, nil
}

func objectKey(fileURL string) string {
	return strings.TrimPrefix(fileURL, "/")
}

// scrub lower-cases s and turns spaces and dashes into underscores.
func scrub(s string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(s))
}
