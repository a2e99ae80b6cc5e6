package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

const (
	TableGLEntries      = "gl_entries"
	TablePaymentEntries = "payment_entries"

	voucherTypePaymentEntry = "Payment Entry"
)

type LedgerRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// AdvanceDetails aggregates GL entries of payment entries per posting date and
// voucher, summing GST credits (paid) and debits (allocated) booked to gstAccounts.
func (r *LedgerRepository) AdvanceDetails(
	ctx context.Context,
	filters *domain.AdvanceFilters,
	gstAccounts []string,
) ([]*domain.AdvanceEntry, error) {
	db := extractDB(ctx, r.pool)

	query, err := advanceDetailsQuery(r.qb, filters, gstAccounts)
	if err != nil {
		return nil, createQueryError(err)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.AdvanceEntry])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return entries, nil
}

func advanceDetailsQuery(
	qb sq.StatementBuilderType,
	filters *domain.AdvanceFilters,
	gstAccounts []string,
) (sq.SelectBuilder, error) {
	gstPaid, err := gstSum("gl.credit_in_account_currency", "gst_paid", gstAccounts)
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	gstAllocated, err := gstSum("gl.debit_in_account_currency", "gst_allocated", gstAccounts)
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	query := qb.
		Select(
			"gl.posting_date",
			"pe.name AS payment_entry",
			"COALESCE(pe.party, '') AS customer",
			"COALESCE(pe.party_name, '') AS customer_name",
			"COALESCE(pe.paid_amount, 0)::float8 AS paid_amount",
			"COALESCE(pe.total_allocated_amount, 0)::float8 AS total_allocated_amount",
		).
		Column(gstPaid).
		Column(gstAllocated).
		Columns(
			"COALESCE(MAX(gl.against_voucher), '') AS against_voucher",
			"COALESCE(pe.place_of_supply, '') AS place_of_supply",
		).
		From(TableGLEntries+" gl").
		Join(TablePaymentEntries+" pe ON pe.name = gl.voucher_no").
		Where(advanceConditions(filters)).
		GroupBy("gl.posting_date", "gl.voucher_no", "pe.name").
		OrderBy("gl.posting_date", "gl.voucher_no")

	return query, nil
}

// gstSum renders SUM(CASE WHEN account IN (...) THEN column ELSE 0 END).
func gstSum(column, alias string, gstAccounts []string) (sq.Sqlizer, error) {
	caseSQL, caseArgs, err := sq.Case().
		When(sq.Eq{"gl.account": gstAccounts}, column).
		Else("0").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s column: %w", alias, err)
	}

	return sq.Expr(fmt.Sprintf("COALESCE(SUM(%s), 0)::float8 AS %s", caseSQL, alias), caseArgs...), nil
}

func advanceConditions(filters *domain.AdvanceFilters) sq.And {
	conditions := sq.And{
		sq.Eq{"gl.is_cancelled": false},
		sq.Eq{"gl.voucher_type": voucherTypePaymentEntry},
		sq.NotEq{"pe.unallocated_amount": nil},
		sq.NotEq{"pe.total_taxes_and_charges": nil},
		sq.Eq{"gl.company": filters.Company},
	}

	if filters.Customer != "" {
		conditions = append(conditions, sq.Eq{"gl.party": filters.Customer})
	}

	if filters.Account != "" {
		conditions = append(conditions, sq.Eq{"pe.paid_from": filters.Account})
	}

	if filters.ShowForPeriod && filters.FromDate != nil {
		conditions = append(conditions, sq.GtOrEq{"gl.posting_date": *filters.FromDate})
	}

	if filters.ToDate != nil {
		conditions = append(conditions, sq.LtOrEq{"gl.posting_date": *filters.ToDate})
	}

	return conditions
}
