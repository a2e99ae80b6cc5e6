package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	ReturnTypeGSTR1 = "GSTR1"

	filingDateLayout = "02-01-2006"
)

// ReturnsInfo is the portal's list of filed returns for one GSTIN.
type ReturnsInfo struct {
	EFiledList []ReturnInfo `json:"EFiledlist"`
}

type ReturnInfo struct {
	Valid        string `csv:"valid"   json:"valid"`
	ModeOfFiling string `csv:"mof"     json:"mof"`
	DateOfFiling string `csv:"dof"     json:"dof"`
	ReturnType   string `csv:"rtntype" json:"rtntype"`
	ReturnPeriod string `csv:"ret_prd" json:"ret_prd"`
	ARN          string `csv:"arn"     json:"arn"`
	Status       string `csv:"status"  json:"status"`
}

func (r *ReturnInfo) Validate() error {
	if r.ReturnType == "" {
		return fmt.Errorf("%w: rtntype is required", ErrInvalidReturn)
	}

	// only GSTR1 entries are reconciled, the rest are ignored as they are
	if r.ReturnType != ReturnTypeGSTR1 {
		return nil
	}

	if len(r.ReturnPeriod) != 6 || strings.Trim(r.ReturnPeriod, "0123456789") != "" {
		return fmt.Errorf("%w: ret_prd %q is not MMYYYY", ErrInvalidReturn, r.ReturnPeriod)
	}

	return nil
}

func (r *ReturnInfo) FilingDate() (time.Time, error) {
	t, err := time.Parse(filingDateLayout, r.DateOfFiling)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid filing date %q for period %s: %w", ErrInvalidReturn, r.DateOfFiling, r.ReturnPeriod, err)
	}

	return t, nil
}

// FilingDetails are the columns refreshed whenever the portal reports a status change.
type FilingDetails struct {
	FilingStatus          string
	AcknowledgementNumber string
	FilingDate            time.Time
}
