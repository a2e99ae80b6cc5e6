package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
	"github.com/kurochkinivan/gst_compliance/internal/filing"
)

type Writer struct {
	log         *slog.Logger
	batches     <-chan *domain.ReturnsBatch
	reports     chan<- *domain.ReturnsBatch
	fileUpdater FileUpdater
	reconciler  ReturnsReconciler
	transactor  Transactor
	now         func() time.Time
}

func NewWriter(
	log *slog.Logger,
	batches <-chan *domain.ReturnsBatch,
	reports chan<- *domain.ReturnsBatch,
	fileUpdater FileUpdater,
	reconciler ReturnsReconciler,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:         log,
		batches:     batches,
		reports:     reports,
		fileUpdater: fileUpdater,
		reconciler:  reconciler,
		transactor:  transactor,
		now:         time.Now,
	}
}

func (w *Writer) Run(ctx context.Context) error {
	defer close(w.reports)

	for {
		select {
		case batch, ok := <-w.batches:
			if !ok {
				return nil
			}

			log := w.log.With(
				slog.String("filename", batch.Filename),
				slog.String("gstin", batch.GSTIN),
			)

			log.InfoContext(ctx, "received returns batch")

			if err := w.processBatch(ctx, log, batch); err != nil {
				log.ErrorContext(ctx, "failed to process returns batch", slog.String("err", err.Error()))
				continue
			}

			// отчет строим только по успешно сохраненным файлам
			if batch.Error != nil {
				continue
			}

			select {
			case w.reports <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Writer) processBatch(ctx context.Context, log *slog.Logger, batch *domain.ReturnsBatch) error {
	if batch.Error == nil {
		log.DebugContext(ctx, "reconciling filed logs")

		result, err := w.saveBatch(ctx, batch)
		if err == nil {
			log.InfoContext(ctx, "filed logs reconciled",
				slog.Int("created", result.Created),
				slog.Int("updated", result.Updated),
				slog.Int("unchanged", result.Unchanged),
			)

			return nil
		}

		// ошибка сверки помечает файл как ошибочный, как и ошибка парсинга
		batch.Error = err
	}

	log.DebugContext(ctx, "marking returns file as failed")

	now := w.now()
	err := w.fileUpdater.UpsertImportFile(ctx, &domain.ImportFile{
		Name:         filepath.Base(batch.Filename),
		GSTIN:        batch.GSTIN,
		Status:       domain.ImportStatusError,
		ErrorMessage: batch.Error.Error(),
		ProcessedAt:  &now,
	})
	if err != nil {
		return fmt.Errorf("failed to save import error: %w", err)
	}

	return nil
}

func (w *Writer) saveBatch(ctx context.Context, batch *domain.ReturnsBatch) (filing.Result, error) {
	var result filing.Result

	err := w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		result, err = w.reconciler.Process(ctx, batch.GSTIN, batch.Info)
		if err != nil {
			return fmt.Errorf("failed to reconcile returns: %w", err)
		}

		now := w.now()
		err = w.fileUpdater.UpsertImportFile(ctx, &domain.ImportFile{
			Name:        filepath.Base(batch.Filename),
			GSTIN:       batch.GSTIN,
			Status:      domain.ImportStatusDone,
			ProcessedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("failed to update file status: %w", err)
		}

		return nil
	})

	return result, err
}
