package reconciliation

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownPeriod = errors.New("unknown period")

const periodLayout = "012006"

// Periods lists the months between from and to inclusive as MMYYYY.
func Periods(from, to time.Time) []string {
	start := firstDay(from.Month(), from.Year())

	var periods []string
	for m := start; !m.After(to); m = m.AddDate(0, 1, 0) {
		periods = append(periods, m.Format(periodLayout))
	}

	return periods
}

// DateRange resolves a named period ("This Month", "Previous Month",
// "This Quarter", "Previous Quarter", "This Financial Year",
// "Previous Financial Year") relative to now. The range never ends after now.
func DateRange(period string, now time.Time) (time.Time, time.Time, error) {
	if !strings.HasPrefix(period, "This ") && !strings.HasPrefix(period, "Previous ") {
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}
	previous := strings.HasPrefix(period, "Previous ")

	month := int(now.Month())
	year := now.Year()
	quarter := (month + 2) / 3

	startMonth, endMonth := month, month
	startYear, endYear := year, year

	switch strings.TrimPrefix(strings.TrimPrefix(period, "This "), "Previous ") {
	case "Month":
		if previous {
			startMonth = wrapMonth(month - 1)
			endMonth = startMonth
		}

	case "Quarter":
		endMonth = quarter * 3
		if previous {
			endMonth = wrapMonth((quarter - 1) * 3)
		}
		startMonth = endMonth - 2

	case "Financial Year":
		startMonth, endMonth = int(time.April), int(time.March)
		if previous {
			startYear, endYear = year-1, year-1
		}
		if startMonth > month {
			startYear--
		} else {
			endYear++
		}

	default:
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}

	if startMonth > month && !strings.HasSuffix(period, "Financial Year") {
		startYear, endYear = year-1, year-1
	}

	from := firstDay(time.Month(startMonth), startYear)
	to := lastDay(time.Month(endMonth), endYear)
	if to.After(now) {
		to = now
	}

	return from, to, nil
}

func wrapMonth(m int) int {
	if m == 0 {
		return 12
	}

	return m
}

func firstDay(month time.Month, year int) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func lastDay(month time.Month, year int) time.Time {
	return firstDay(month, year).AddDate(0, 1, -1)
}
