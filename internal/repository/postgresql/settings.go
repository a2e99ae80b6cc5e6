package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

const (
	TableSettings    = "gst_settings"
	TableCredentials = "gst_credentials"
	TableGSTAccounts = "gst_accounts"
)

const AccountTypeOutput = "Output"

type SettingsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Settings reads the single GST settings row together with its credentials.
// A missing row yields zero-value settings.
func (r *SettingsRepository) Settings(ctx context.Context) (*domain.Settings, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("analyze_filed_data").
		From(TableSettings).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	settings := &domain.Settings{}
	err = db.QueryRow(ctx, sql, args...).Scan(&settings.AnalyzeFiledData)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select("service", "gstin", "session_expiry").
		From(TableCredentials).
		OrderBy("gstin", "service").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	settings.Credentials, err = pgx.CollectRows(rows, pgx.RowToStructByName[domain.Credential])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return settings, nil
}

// GSTAccounts returns the non-empty account heads configured for the company
// under the given account type.
func (r *SettingsRepository) GSTAccounts(ctx context.Context, company, accountType string) ([]string, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"COALESCE(cgst_account, '')",
			"COALESCE(sgst_account, '')",
			"COALESCE(igst_account, '')",
			"COALESCE(cess_account, '')",
			"COALESCE(cess_non_advol_account, '')",
		).
		From(TableGSTAccounts).
		Where(sq.Eq{
			"company":      company,
			"account_type": accountType,
		}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}
	defer rows.Close()

	var accounts []string
	for rows.Next() {
		heads := make([]string, 5)
		if err := rows.Scan(&heads[0], &heads[1], &heads[2], &heads[3], &heads[4]); err != nil {
			return nil, scanRowError(err)
		}

		for _, head := range heads {
			if head != "" {
				accounts = append(accounts, head)
			}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, collectRowsError(err)
	}

	return accounts, nil
}
