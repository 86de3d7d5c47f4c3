package nlp

import (
	"time"

	"clinic-report-service/internal/domain/entity"
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMonthSlack enables year rollback for month-name dates: when the stated
// month is more than n months ahead of the reference month, the previous
// year is used. A negative n keeps the reference year unconditionally.
func WithMonthSlack(n int) Option {
	return func(i *Interpreter) {
		i.dates = NewDateRangeResolver(n)
	}
}

// Interpreter runs the full pipeline. It holds no mutable state.
type Interpreter struct {
	dates *DateRangeResolver
}

func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{dates: NewDateRangeResolver(-1)}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret converts text into a query, resolving relative dates against ref.
// The same text and ref always produce the same result.
func (i *Interpreter) Interpret(text string, ref time.Time) *entity.QueryInterpretation {
	t := NewText(text)
	return i.build(t, Classify(t), ref)
}

// InterpretAs runs the pipeline with category forced instead of classified.
func (i *Interpreter) InterpretAs(text string, ref time.Time, category entity.ReportCategory) *entity.QueryInterpretation {
	return i.build(NewText(text), category, ref)
}

func (i *Interpreter) build(t Text, category entity.ReportCategory, ref time.Time) *entity.QueryInterpretation {
	dates := i.dates.Resolve(t, ref)
	filters := ExtractFilters(t, category)

	return &entity.QueryInterpretation{
		OriginalText: t.Original,
		Category:     category,
		DateRange:    dates,
		Filters:      filters,
		Summary:      ComposeSummary(category, dates, filters),
	}
}
