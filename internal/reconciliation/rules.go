package reconciliation

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	MatchStatusExact         = "Exact Match"
	MatchStatusSuggested     = "Suggested Match"
	MatchStatusMismatch      = "Mismatch"
	MatchStatusResidual      = "Residual Match"
	MatchStatusMissingIn2A2B = "Missing in 2A/2B"
	MatchStatusMissingInPR   = "Missing in PR"

	fuzzyMaxDays       = 10
	fuzzyMinSimilarity = 90
	residualMaxTaxDiff = 2
)

type ruleKind int

const (
	exact ruleKind = iota
	fuzzy
	ignore
	tolerance
)

type fieldRule struct {
	kind ruleKind
	diff float64
}

// eq: equal values, fz: fuzzy bill no, na: not compared
var (
	eq = fieldRule{kind: exact}
	fz = fieldRule{kind: fuzzy}
	na = fieldRule{kind: ignore}
)

func within(diff float64) fieldRule {
	return fieldRule{kind: tolerance, diff: diff}
}

// field is one of the compared invoice attributes.
type field struct {
	name  string
	label string
	value func(*Invoice) any
}

var fields = []field{
	{"fy", "Financial Year", func(i *Invoice) any { return i.fy }},
	{"bill_no", "Bill No", func(i *Invoice) any { return i.BillNo }},
	{"place_of_supply", "Place of Supply", func(i *Invoice) any { return i.PlaceOfSupply }},
	{"is_reverse_charge", "Reverse Charge", func(i *Invoice) any { return i.IsReverseCharge }},
	{"cgst", "CGST", func(i *Invoice) any { return i.CGST }},
	{"sgst", "SGST", func(i *Invoice) any { return i.SGST }},
	{"igst", "IGST", func(i *Invoice) any { return i.IGST }},
	{"cess", "CESS", func(i *Invoice) any { return i.cess() }},
	{"taxable_value", "Taxable Amount", func(i *Invoice) any { return i.TaxableValue }},
}

type rule struct {
	status string
	fields [9]fieldRule
}

// rules are applied in order, each pair is matched at most once.
var rules = []rule{
	{MatchStatusExact, [9]fieldRule{eq, eq, eq, eq, within(0), within(0), within(0), within(0), within(0)}},
	{MatchStatusSuggested, [9]fieldRule{eq, fz, eq, eq, within(0), within(0), within(0), within(0), within(0)}},
	{MatchStatusSuggested, [9]fieldRule{eq, eq, eq, eq, within(1), within(1), within(1), within(1), within(2)}},
	{MatchStatusSuggested, [9]fieldRule{eq, fz, eq, eq, within(1), within(1), within(1), within(1), within(2)}},
	{MatchStatusMismatch, [9]fieldRule{eq, eq, na, na, na, na, na, na, na}},
	{MatchStatusMismatch, [9]fieldRule{eq, fz, na, na, na, na, na, na, na}},
	{MatchStatusResidual, [9]fieldRule{eq, na, eq, eq, within(1), within(1), within(1), within(1), within(2)}},
}

func (r rule) matches(pur, isup *Invoice) bool {
	for i, fr := range r.fields {
		if !fr.matches(fields[i], pur, isup) {
			return false
		}
	}

	return true
}

func (fr fieldRule) matches(fld field, pur, isup *Invoice) bool {
	switch fr.kind {
	case exact:
		return fld.value(pur) == fld.value(isup)
	case ignore:
		return true
	case fuzzy:
		return fuzzyMatch(pur, isup)
	default:
		a, _ := fld.value(pur).(float64)
		b, _ := fld.value(isup).(float64)
		return math.Abs(a-b) <= fr.diff
	}
}

// fuzzyMatch compares cleaned bill numbers of invoices dated at most ten days
// apart: one containing the other, or a similarity of at least 90%.
func fuzzyMatch(pur, isup *Invoice) bool {
	days := pur.BillDate.Sub(isup.BillDate.Time).Hours() / 24
	if math.Abs(days) > fuzzyMaxDays {
		return false
	}

	a, b := pur.billNo, isup.billNo
	if a == "" || b == "" {
		return false
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	return similarity(a, b) >= fuzzyMinSimilarity
}

// similarity is 100 for equal strings and falls with the edit distance.
func similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 100
	}

	distance := levenshtein.ComputeDistance(a, b)

	return 100 * (1 - float64(distance)/float64(longest))
}
