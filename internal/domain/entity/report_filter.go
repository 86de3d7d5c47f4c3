package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter is a domain-level filter for report queries.
// Used by repository layer to avoid coupling with the interpreter output.
type ReportFilter struct {
	StartAt     *time.Time // first instant of the first day, clinic time
	EndAt       *time.Time // last instant of the last day, clinic time
	Status      *StatusCode
	PatientName string // ILIKE
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	Limit       int
}

// NewReportFilter expands the calendar days of q into full-day bounds in loc.
func NewReportFilter(q *QueryInterpretation, loc *time.Location, limit int) *ReportFilter {
	if loc == nil {
		loc = time.UTC
	}
	f := &ReportFilter{
		Status:    q.Filters.Status,
		MinAmount: q.Filters.MinAmount,
		MaxAmount: q.Filters.MaxAmount,
		Limit:     limit,
	}
	if q.Filters.PatientName != nil {
		f.PatientName = *q.Filters.PatientName
	}
	if q.DateRange.Start != nil {
		y, m, d := q.DateRange.Start.Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, loc)
		f.StartAt = &start
	}
	if q.DateRange.End != nil {
		y, m, d := q.DateRange.End.Date()
		end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
		f.EndAt = &end
	}
	return f
}
