package filing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

// Result counts what a reconciliation did to the stored filed logs.
type Result struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
}

// Reconciler brings stored GSTR-1 filed logs in line with the returns list
// reported by the portal for one GSTIN.
type Reconciler struct {
	log        *slog.Logger
	store      FiledLogStore
	transactor Transactor
}

func NewReconciler(log *slog.Logger, store FiledLogStore, transactor Transactor) *Reconciler {
	return &Reconciler{
		log:        log,
		store:      store,
		transactor: transactor,
	}
}

func (r *Reconciler) Process(ctx context.Context, gstin string, info *domain.ReturnsInfo) (Result, error) {
	names, returns := gstr1Returns(gstin, info)

	var result Result
	err := r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := r.store.FilingStatuses(ctx, names)
		if err != nil {
			return fmt.Errorf("failed to get filing statuses: %w", err)
		}

		for _, name := range names {
			ret := returns[name]

			filingDate, err := ret.FilingDate()
			if err != nil {
				return err
			}

			details := domain.FilingDetails{
				FilingStatus:          ret.Status,
				AcknowledgementNumber: ret.ARN,
				FilingDate:            filingDate,
			}

			status, ok := existing[name]
			switch {
			case ok && status == ret.Status:
				result.Unchanged++

			case ok:
				if err := r.store.UpdateFilingDetails(ctx, name, details); err != nil {
					return fmt.Errorf("failed to update filed log %q: %w", name, err)
				}
				result.Updated++

			default:
				err := r.store.CreateFiledLog(ctx, &domain.FiledLog{
					Name:                  name,
					GSTIN:                 gstin,
					ReturnPeriod:          ret.ReturnPeriod,
					FilingStatus:          details.FilingStatus,
					AcknowledgementNumber: details.AcknowledgementNumber,
					FilingDate:            &details.FilingDate,
				})
				if err != nil {
					return fmt.Errorf("failed to create filed log %q: %w", name, err)
				}
				result.Created++
			}
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	r.log.InfoContext(ctx, "reconciled gstr-1 returns",
		slog.String("gstin", gstin),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("unchanged", result.Unchanged),
	)

	return result, nil
}

// gstr1Returns keys GSTR-1 entries by filed log name. A repeated period keeps
// its first position and the last reported values.
func gstr1Returns(gstin string, info *domain.ReturnsInfo) ([]string, map[string]domain.ReturnInfo) {
	var names []string
	returns := make(map[string]domain.ReturnInfo)

	if info == nil {
		return names, returns
	}

	for _, ret := range info.EFiledList {
		if ret.ReturnType != domain.ReturnTypeGSTR1 {
			continue
		}

		name := domain.FiledLogName(ret.ReturnPeriod, gstin)
		if _, seen := returns[name]; !seen {
			names = append(names, name)
		}
		returns[name] = ret
	}

	return names, returns
}
