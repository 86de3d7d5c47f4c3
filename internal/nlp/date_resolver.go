package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"clinic-report-service/internal/domain/entity"
)

var monthNames = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

var numeralWords = map[string]int{
	"un": 1, "uno": 1, "una": 1, "dos": 2, "tres": 3, "cuatro": 4, "cinco": 5,
	"seis": 6, "siete": 7, "ocho": 8, "nueve": 9, "diez": 10, "once": 11,
	"doce": 12, "trece": 13, "catorce": 14, "quince": 15, "veinte": 20,
	"treinta": 30, "sesenta": 60, "noventa": 90,
}

var (
	dayRangePattern = regexp.MustCompile(`\b(?:del|desde el) (\d{1,2}|primero) (?:al|hasta el) (\d{1,2}) de ([a-z]+)(?: del? (\d{4}))?\b`)
	singleDayPattern = regexp.MustCompile(`\bel (?:dia )?(\d{1,2}|primero) de ([a-z]+)(?: del? (\d{4}))?\b`)
	lastDaysPattern  = regexp.MustCompile(`\b(?:los )?ultimos (\d{1,3}|[a-z]+) dias\b`)
)

type periodFunc func(ref time.Time) entity.DateRange

// namedPeriod maps a fixed phrase to a range. Order is most specific first.
type namedPeriod struct {
	phrase  []string
	resolve periodFunc
}

var namedPeriods = []namedPeriod{
	{[]string{"anteayer"}, daysAgo(2)},
	{[]string{"antier"}, daysAgo(2)},
	{[]string{"ayer"}, daysAgo(1)},
	{[]string{"hoy"}, daysAgo(0)},
	{[]string{"esta", "semana"}, weekOf(0)},
	{[]string{"semana", "actual"}, weekOf(0)},
	{[]string{"semana", "pasada"}, weekOf(-1)},
	{[]string{"semana", "anterior"}, weekOf(-1)},
	{[]string{"este", "mes"}, monthOf(0)},
	{[]string{"mes", "actual"}, monthOf(0)},
	{[]string{"mes", "pasado"}, monthOf(-1)},
	{[]string{"mes", "anterior"}, monthOf(-1)},
	{[]string{"este", "ano"}, yearOf(0)},
	{[]string{"ano", "actual"}, yearOf(0)},
	{[]string{"ano", "pasado"}, yearOf(-1)},
	{[]string{"ano", "anterior"}, yearOf(-1)},
}

// DateRangeResolver finds the most specific date expression in a Text.
type DateRangeResolver struct {
	// monthSlack < 0 disables year rollback for month-name dates.
	monthSlack int
}

func NewDateRangeResolver(monthSlack int) *DateRangeResolver {
	return &DateRangeResolver{monthSlack: monthSlack}
}

// Resolve returns the range for the first rule that yields a valid date, or
// an empty range.
func (r *DateRangeResolver) Resolve(text Text, ref time.Time) entity.DateRange {
	today := entity.DateOf(ref)

	rng, s, ok := r.explicitRange(text.Normalized, today)
	if ok {
		return rng
	}

	if rng, ok := r.explicitDay(s, today); ok {
		return rng
	}

	if rng, ok := lastDays(s, today); ok {
		return rng
	}

	for _, p := range namedPeriods {
		if phraseIndex(text.Tokens, p.phrase...) >= 0 {
			return p.resolve(today)
		}
	}

	return entity.DateRange{}
}

// explicitRange handles "del D1 al D2 de <mes>". Spans that parse but are
// invalid are blanked in the returned text so lower rules cannot reuse half
// of them.
func (r *DateRangeResolver) explicitRange(s string, today time.Time) (entity.DateRange, string, bool) {
	masked := []byte(s)
	for _, m := range dayRangePattern.FindAllStringSubmatchIndex(s, -1) {
		from, okFrom := parseDay(s[m[2]:m[3]])
		to, okTo := parseDay(s[m[4]:m[5]])
		year := ""
		if m[8] >= 0 {
			year = s[m[8]:m[9]]
		}
		month, okMonth := monthNames[s[m[6]:m[7]]]
		if okFrom && okTo && okMonth {
			y := r.inferYear(month, year, today)
			start, okStart := calendarDate(y, month, from)
			end, okEnd := calendarDate(y, month, to)
			if okStart && okEnd {
				if rng, ok := entity.NewDateRange(start, end); ok {
					return rng, s, true
				}
			}
		}
		for i := m[0]; i < m[1]; i++ {
			masked[i] = ' '
		}
	}
	return entity.DateRange{}, string(masked), false
}

func (r *DateRangeResolver) explicitDay(s string, today time.Time) (entity.DateRange, bool) {
	for _, m := range singleDayPattern.FindAllStringSubmatch(s, -1) {
		day, okDay := parseDay(m[1])
		month, okMonth := monthNames[m[2]]
		if !okDay || !okMonth {
			continue
		}
		date, ok := calendarDate(r.inferYear(month, m[3], today), month, day)
		if !ok {
			continue
		}
		return entity.SingleDay(date), true
	}
	return entity.DateRange{}, false
}

func lastDays(s string, today time.Time) (entity.DateRange, bool) {
	for _, m := range lastDaysPattern.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			var ok bool
			if n, ok = numeralWords[m[1]]; !ok {
				continue
			}
		}
		if n < 1 {
			continue
		}
		return entity.NewDateRange(today.AddDate(0, 0, -(n - 1)), today)
	}
	return entity.DateRange{}, false
}

// inferYear uses an explicit year when given, otherwise the reference year,
// rolled back by one when the month lies further ahead than the slack allows.
func (r *DateRangeResolver) inferYear(month time.Month, explicit string, today time.Time) int {
	if explicit != "" {
		if y, err := strconv.Atoi(explicit); err == nil {
			return y
		}
	}
	year := today.Year()
	if r.monthSlack >= 0 && int(month)-int(today.Month()) > r.monthSlack {
		year--
	}
	return year
}

func parseDay(s string) (int, bool) {
	if strings.EqualFold(s, "primero") {
		return 1, true
	}
	d, err := strconv.Atoi(s)
	if err != nil || d < 1 || d > 31 {
		return 0, false
	}
	return d, true
}

// calendarDate rejects days past the end of the month instead of letting
// time.Date roll them over.
func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func daysAgo(n int) periodFunc {
	return func(ref time.Time) entity.DateRange {
		return entity.SingleDay(ref.AddDate(0, 0, -n))
	}
}

// weekOf returns Monday..Sunday of the week offset weeks away from ref.
func weekOf(offset int) periodFunc {
	return func(ref time.Time) entity.DateRange {
		sinceMonday := (int(ref.Weekday()) + 6) % 7
		monday := ref.AddDate(0, 0, -sinceMonday+7*offset)
		rng, _ := entity.NewDateRange(monday, monday.AddDate(0, 0, 6))
		return rng
	}
}

func monthOf(offset int) periodFunc {
	return func(ref time.Time) entity.DateRange {
		first := time.Date(ref.Year(), ref.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
		rng, _ := entity.NewDateRange(first, first.AddDate(0, 1, -1))
		return rng
	}
}

func yearOf(offset int) periodFunc {
	return func(ref time.Time) entity.DateRange {
		y := ref.Year() + offset
		rng, _ := entity.NewDateRange(
			time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
		)
		return rng
	}
}
