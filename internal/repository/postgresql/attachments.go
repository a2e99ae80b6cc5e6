package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

const TableAttachments = "attachments"

type AttachmentsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewAttachmentsRepository(pool *pgxpool.Pool) *AttachmentsRepository {
	return &AttachmentsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// AttachmentFor returns the oldest attachment bound to a record field, or domain.ErrNotFound.
func (r *AttachmentsRepository) AttachmentFor(ctx context.Context, doctype, name, field string) (*domain.Attachment, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"id",
			"file_name",
			"file_url",
			"attached_to_doctype",
			"attached_to_name",
			"attached_to_field",
			"is_private",
			"file_size",
			"created_at",
			"modified_at",
		).
		From(TableAttachments).
		Where(sq.Eq{
			"attached_to_doctype": doctype,
			"attached_to_name":    name,
			"attached_to_field":   field,
		}).
		OrderBy("created_at").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	attachment, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Attachment])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return attachment, nil
}

func (r *AttachmentsRepository) CreateAttachment(ctx context.Context, a *domain.Attachment) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableAttachments).
		Columns(
			"id",
			"file_name",
			"file_url",
			"attached_to_doctype",
			"attached_to_name",
			"attached_to_field",
			"is_private",
			"file_size",
		).
		Values(
			a.ID,
			a.FileName,
			a.FileURL,
			a.AttachedToDoctype,
			a.AttachedToName,
			a.AttachedToField,
			a.IsPrivate,
			a.FileSize,
		).
		Suffix("RETURNING created_at, modified_at").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&a.CreatedAt, &a.ModifiedAt); err != nil {
		return scanRowError(err)
	}

	return nil
}

// TouchAttachment records that the attachment content was rewritten.
func (r *AttachmentsRepository) TouchAttachment(ctx context.Context, id string, size int64) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableAttachments).
		Set("file_size", size).
		Set("modified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
