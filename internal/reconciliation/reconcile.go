package reconciliation

import (
	"math"
	"slices"
	"strings"
	"time"
)

// Row is one line of the reconciliation result. Purchase or InwardSupply is
// nil when the document is missing on that side.
type Row struct {
	Purchase         *Invoice `json:"purchase,omitempty"`
	InwardSupply     *Invoice `json:"inward_supply,omitempty"`
	MatchStatus      string   `json:"match_status"`
	TaxDiff          float64  `json:"tax_diff"`
	TaxableValueDiff float64  `json:"taxable_value_diff"`
	Differences      []string `json:"differences"`
}

type match struct {
	purchase     *Invoice
	inwardSupply *Invoice
	status       string
}

// Reconcile pairs purchase invoices with inward supplies of the same supplier
// GSTIN. Unpaired documents are reported as missing on the other side.
func Reconcile(purchases, inwardSupplies []*Invoice) []*Row {
	for _, inv := range purchases {
		inv.prepare()
	}
	for _, inv := range inwardSupplies {
		inv.prepare()
	}

	gstins, purBySupplier := groupBySupplier(purchases)
	_, isupBySupplier := groupBySupplier(inwardSupplies)

	var matches []match
	for _, r := range rules {
		for _, gstin := range gstins {
			if len(isupBySupplier[gstin]) == 0 {
				continue
			}

			var found []match
			purBySupplier[gstin], isupBySupplier[gstin], found = matchSupplier(purBySupplier[gstin], isupBySupplier[gstin], r)
			matches = append(matches, found...)
		}
	}

	rows := make([]*Row, 0, len(purchases)+len(inwardSupplies))
	for _, m := range matches {
		rows = append(rows, matchedRow(m))
	}

	for _, gstin := range gstins {
		for _, pur := range purBySupplier[gstin] {
			rows = append(rows, &Row{Purchase: pur, MatchStatus: MatchStatusMissingIn2A2B, Differences: []string{}})
		}
	}

	for _, isup := range inwardSupplies {
		if slices.Contains(isupBySupplier[isup.SupplierGSTIN], isup) {
			rows = append(rows, &Row{InwardSupply: isup, MatchStatus: MatchStatusMissingInPR, Differences: []string{}})
		}
	}

	return rows
}

// matchSupplier applies one rule to the open documents of a single supplier
// and returns what stays unmatched.
func matchSupplier(purchases, inwardSupplies []*Invoice, r rule) ([]*Invoice, []*Invoice, []match) {
	var taxDiffByMonth map[string]float64
	if r.status == MatchStatusResidual {
		taxDiffByMonth = monthlyTaxDifference(purchases, inwardSupplies)
	}

	var (
		matches   []match
		unmatched []*Invoice
		taken     = make(map[*Invoice]struct{})
	)

	for _, pur := range purchases {
		if taxDiffByMonth != nil && math.Abs(taxDiffByMonth[month(pur.BillDate.Time)]) >= residualMaxTaxDiff {
			unmatched = append(unmatched, pur)
			continue
		}

		var paired *Invoice
		for _, isup := range inwardSupplies {
			if _, used := taken[isup]; used {
				continue
			}

			if taxDiffByMonth != nil && month(pur.BillDate.Time) != month(isup.BillDate.Time) {
				continue
			}

			if r.matches(pur, isup) {
				paired = isup
				break
			}
		}

		if paired == nil {
			unmatched = append(unmatched, pur)
			continue
		}

		taken[paired] = struct{}{}
		matches = append(matches, match{purchase: pur, inwardSupply: paired, status: r.status})
	}

	remaining := slices.DeleteFunc(slices.Clone(inwardSupplies), func(isup *Invoice) bool {
		_, used := taken[isup]
		return used
	})

	return unmatched, remaining, matches
}

// monthlyTaxDifference is the purchase minus inward supply tax per bill month.
func monthlyTaxDifference(purchases, inwardSupplies []*Invoice) map[string]float64 {
	diff := make(map[string]float64)
	for _, pur := range purchases {
		diff[month(pur.BillDate.Time)] += pur.totalTax()
	}
	for _, isup := range inwardSupplies {
		diff[month(isup.BillDate.Time)] -= isup.totalTax()
	}

	return diff
}

func matchedRow(m match) *Row {
	status := m.status
	if status == MatchStatusResidual {
		status = MatchStatusMismatch
	}

	pur, isup := m.purchase, m.inwardSupply
	row := &Row{
		Purchase:         pur,
		InwardSupply:     isup,
		MatchStatus:      status,
		TaxDiff:          round2(isup.totalTax() - pur.totalTax()),
		TaxableValueDiff: round2(isup.TaxableValue - pur.TaxableValue),
		Differences:      []string{},
	}

	if status != MatchStatusMismatch {
		if math.Abs(row.TaxDiff) > 0.01 || math.Abs(row.TaxableValueDiff) > 0.01 {
			row.Differences = append(row.Differences, "Rounding Difference")
		}

		return row
	}

	for _, fld := range fields {
		if fld.name == "bill_no" {
			continue
		}

		if fld.value(pur) != fld.value(isup) {
			row.Differences = append(row.Differences, fld.label)
		}
	}

	return row
}

func groupBySupplier(invoices []*Invoice) ([]string, map[string][]*Invoice) {
	var order []string
	grouped := make(map[string][]*Invoice)

	for _, inv := range invoices {
		if _, ok := grouped[inv.SupplierGSTIN]; !ok {
			order = append(order, inv.SupplierGSTIN)
		}
		grouped[inv.SupplierGSTIN] = append(grouped[inv.SupplierGSTIN], inv)
	}

	return order, grouped
}

func month(t time.Time) string {
	return t.Format("200601")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DifferenceList joins the differing field labels for display.
func (r *Row) DifferenceList() string {
	return strings.Join(r.Differences, ", ")
}
