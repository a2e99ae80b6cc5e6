package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

const TableFiledLogs = "filed_logs"

var filedLogColumns = []string{
	"name",
	"gstin",
	"return_period",
	"filing_status",
	"filing_date",
	"acknowledgement_number",
	"generation_status",
	"is_latest_data",
	"computed_gstr1",
	"computed_gstr1_summary",
	"reconciled_gstr1",
	"reconciled_gstr1_summary",
	"filed_gstr1",
	"filed_gstr1_summary",
	"e_invoice_data",
	"e_invoice_summary",
}

type FiledLogsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFiledLogsRepository(pool *pgxpool.Pool) *FiledLogsRepository {
	return &FiledLogsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FiledLogsRepository) FiledLog(ctx context.Context, name string) (*domain.FiledLog, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(filedLogColumns...).
		From(TableFiledLogs).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	log, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.FiledLog])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return log, nil
}

// LockFiledLog takes a row lock on the filed log until the surrounding
// transaction ends. It must run inside WithTransaction.
func (r *FiledLogsRepository) LockFiledLog(ctx context.Context, name string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := lockFiledLogQuery(r.qb, name).ToSql()
	if err != nil {
		return createQueryError(err)
	}

	var locked string
	if err := db.QueryRow(ctx, sql, args...).Scan(&locked); err != nil {
		return scanRowError(err)
	}

	return nil
}

func lockFiledLogQuery(qb sq.StatementBuilderType, name string) sq.SelectBuilder {
	return qb.
		Select("name").
		From(TableFiledLogs).
		Where(sq.Eq{"name": name}).
		Suffix("FOR UPDATE")
}

func (r *FiledLogsRepository) FiledLogsByGSTIN(ctx context.Context, gstin string) ([]*domain.FiledLog, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(filedLogColumns...).
		From(TableFiledLogs).
		Where(sq.Eq{"gstin": gstin}).
		OrderBy("RIGHT(return_period, 4) DESC", "LEFT(return_period, 2) DESC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	logs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.FiledLog])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return logs, nil
}

// FiledLogsPage returns one page of the GSTIN's filed logs, latest period first,
// together with the total count.
func (r *FiledLogsRepository) FiledLogsPage(
	ctx context.Context,
	gstin string,
	limit, offset uint64,
) ([]*domain.FiledLog, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableFiledLogs).
		Where(sq.Eq{"gstin": gstin}).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(filedLogColumns...).
		From(TableFiledLogs).
		Where(sq.Eq{"gstin": gstin}).
		OrderBy("RIGHT(return_period, 4) DESC", "LEFT(return_period, 2) DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	logs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.FiledLog])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return logs, total, nil
}

// FilingStatuses maps each existing name to its filing status.
func (r *FiledLogsRepository) FilingStatuses(ctx context.Context, names []string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("name", "filing_status").
		From(TableFiledLogs).
		Where(sq.Eq{"name": names}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}
	defer rows.Close()

	statuses := make(map[string]string, len(names))
	for rows.Next() {
		var name, status string
		if err := rows.Scan(&name, &status); err != nil {
			return nil, scanRowError(err)
		}
		statuses[name] = status
	}

	if err := rows.Err(); err != nil {
		return nil, collectRowsError(err)
	}

	return statuses, nil
}

func (r *FiledLogsRepository) CreateFiledLog(ctx context.Context, log *domain.FiledLog) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFiledLogs).
		Columns(
			"name",
			"gstin",
			"return_period",
			"filing_status",
			"filing_date",
			"acknowledgement_number",
			"generation_status",
			"is_latest_data",
		).
		Values(
			log.Name,
			log.GSTIN,
			log.ReturnPeriod,
			log.FilingStatus,
			log.FilingDate,
			log.AcknowledgementNumber,
			log.GenerationStatus,
			log.IsLatestData,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *FiledLogsRepository) UpdateFilingDetails(ctx context.Context, name string, details domain.FilingDetails) error {
	return r.update(ctx, name, map[string]any{
		"filing_status":          details.FilingStatus,
		"acknowledgement_number": details.AcknowledgementNumber,
		"filing_date":            details.FilingDate,
	})
}

func (r *FiledLogsRepository) UpdateGenerationStatus(ctx context.Context, name, status string) error {
	return r.update(ctx, name, map[string]any{"generation_status": status})
}

func (r *FiledLogsRepository) SetFile(ctx context.Context, name string, field domain.FileField, url string) error {
	if _, err := domain.ParseFileField(string(field)); err != nil {
		return err
	}

	return r.update(ctx, name, map[string]any{string(field): url})
}

func (r *FiledLogsRepository) update(ctx context.Context, name string, values map[string]any) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableFiledLogs).
		SetMap(values).
		Set("modified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
