package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

const TableImportFiles = "import_files"

// ImportFilesRepository tracks returns files picked up from the inbox directory.
type ImportFilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewImportFilesRepository(pool *pgxpool.Pool) *ImportFilesRepository {
	return &ImportFilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ImportFilesRepository) ImportFiles(ctx context.Context) ([]*domain.ImportFile, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"name",
			"gstin",
			"status",
			"processed_at",
			"error_message",
		).
		From(TableImportFiles).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.ImportFile])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

func (r *ImportFilesRepository) UpsertImportFile(ctx context.Context, file *domain.ImportFile) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableImportFiles).
		Columns(
			"name",
			"gstin",
			"status",
			"error_message",
			"processed_at",
		).
		Values(
			file.Name,
			file.GSTIN,
			file.Status,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			gstin = EXCLUDED.gstin,
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// ResetProcessingFiles requeues files left in processing by a previous run.
func (r *ImportFilesRepository) ResetProcessingFiles(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableImportFiles).
		Set("status", domain.ImportStatusPending).
		Where(sq.Eq{"status": domain.ImportStatusProcessing}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
