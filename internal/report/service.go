package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

const accountTypeOutput = "Output"

type AccountsProvider interface {
	GSTAccounts(ctx context.Context, company, accountType string) ([]string, error)
}

type LedgerReader interface {
	AdvanceDetails(ctx context.Context, filters *domain.AdvanceFilters, gstAccounts []string) ([]*domain.AdvanceEntry, error)
}

// Service builds the GST advance detail report: advances received through
// payment entries with the GST booked on them.
type Service struct {
	log      *slog.Logger
	accounts AccountsProvider
	ledger   LedgerReader
}

func NewService(log *slog.Logger, accounts AccountsProvider, ledger LedgerReader) *Service {
	return &Service{
		log:      log,
		accounts: accounts,
		ledger:   ledger,
	}
}

func (s *Service) Execute(ctx context.Context, filters *domain.AdvanceFilters) ([]domain.Column, []*domain.AdvanceEntry, error) {
	if err := filters.Validate(); err != nil {
		return nil, nil, err
	}

	accounts, err := s.accounts.GSTAccounts(ctx, filters.Company, accountTypeOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get gst accounts: %w", err)
	}

	entries, err := s.ledger.AdvanceDetails(ctx, filters, accounts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get advance details: %w", err)
	}

	s.log.DebugContext(ctx, "fetched gst advance details",
		slog.String("company", filters.Company),
		slog.Int("gst_accounts", len(accounts)),
		slog.Int("entries", len(entries)),
	)

	return Columns(), dedupePayments(entries), nil
}

// dedupePayments blanks amounts already reported on an earlier row of the
// same payment entry, so that totals count each payment once.
func dedupePayments(entries []*domain.AdvanceEntry) []*domain.AdvanceEntry {
	seen := make(map[string]struct{}, len(entries))
	rows := make([]*domain.AdvanceEntry, 0, len(entries))

	for _, entry := range entries {
		row := *entry

		if _, ok := seen[entry.PaymentEntry]; ok && entry.GSTAllocated != 0 {
			row.GSTPaid = 0
			row.PaidAmount = 0

			if entry.PaidAmount == entry.TotalAllocatedAmount {
				row.TotalAllocatedAmount = 0
			}
		}

		seen[entry.PaymentEntry] = struct{}{}
		rows = append(rows, &row)
	}

	return rows
}
