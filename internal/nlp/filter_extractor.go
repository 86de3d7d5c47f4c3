package nlp

import (
	"regexp"
	"sort"
	"strings"

	"clinic-report-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type statusTerm struct {
	phrase []string
	code   entity.StatusCode
}

// statusVocabulary is the status wording of one category. Plural forms of
// the last word match too.
type statusVocabulary []statusTerm

var statusVocabularies = map[entity.ReportCategory]statusVocabulary{
	entity.ReportCategoryAppointments: {
		{[]string{"pendiente"}, entity.StatusPending},
		{[]string{"confirmada"}, entity.StatusConfirmed},
		{[]string{"atendida"}, entity.StatusCompleted},
		{[]string{"cancelada"}, entity.StatusCancelled},
	},
	entity.ReportCategoryInvoices: {
		{[]string{"pendiente"}, entity.StatusPending},
		{[]string{"pagada"}, entity.StatusPaid},
		{[]string{"anulada"}, entity.StatusCancelled},
	},
	entity.ReportCategoryTreatments: {
		{[]string{"propuesto"}, entity.StatusProposed},
		{[]string{"en", "progreso"}, entity.StatusInProgress},
		{[]string{"completado"}, entity.StatusCompleted},
		{[]string{"cancelado"}, entity.StatusCancelled},
	},
}

const amountNumber = `(\d[\d.,]*\d|\d)`

var (
	minAmountPattern     = regexp.MustCompile(`\b(?:mas de|mayor(?:es)? (?:a|que|de)|superior(?:es)? a) ` + amountNumber + `\b`)
	maxAmountPattern     = regexp.MustCompile(`\b(?:menos de|menor(?:es)? (?:a|que|de)|inferior(?:es)? a) ` + amountNumber + `\b`)
	betweenAmountPattern = regexp.MustCompile(`\bentre ` + amountNumber + ` y ` + amountNumber + `\b`)
	separatorPattern     = regexp.MustCompile(`[.,]`)

	quotedNamePattern = regexp.MustCompile(`["“«]\s*([^"”»]+?)\s*["”»]`)
	namedCuePattern   = regexp.MustCompile(`(?i:\b(?:del|de|paciente))\s+(\p{Lu}[\p{L}'-]*(?:\s+\p{Lu}[\p{L}'-]*)*)`)
)

// countNouns follow a number when it counts things rather than money.
var countNouns = map[string]bool{
	"dia": true, "dias": true, "semana": true, "semanas": true, "mes": true, "meses": true,
	"cita": true, "citas": true, "paciente": true, "pacientes": true,
}

var reservedWords = buildReservedWords()

func buildReservedWords() map[string]bool {
	words := map[string]bool{
		"de": true, "del": true, "la": true, "el": true, "los": true, "las": true, "al": true,
		"y": true, "en": true, "con": true, "hoy": true, "ayer": true, "anteayer": true,
		"esta": true, "este": true, "semana": true, "mes": true, "ano": true, "ultimos": true,
		"dias": true, "pasado": true, "pasada": true, "actual": true, "reporte": true,
	}
	for m := range monthNames {
		words[m] = true
	}
	for _, kws := range categoryKeywords {
		for _, kw := range kws {
			words[kw] = true
		}
	}
	for _, vocab := range statusVocabularies {
		for _, term := range vocab {
			for _, w := range term.phrase {
				words[w] = true
				words[w+"s"] = true
			}
		}
	}
	return words
}

// ExtractFilters collects the filters found in text. Status words are looked
// up only in the vocabulary of category.
func ExtractFilters(text Text, category entity.ReportCategory) entity.FilterSet {
	var filters entity.FilterSet

	if code, ok := statusVocabularies[category].find(text.Tokens); ok {
		filters.Status = &code
	}

	filters.MinAmount, filters.MaxAmount = extractAmounts(text.Normalized)

	if name, ok := extractPatientName(text.Original); ok {
		filters.PatientName = &name
	}

	return filters
}

func (v statusVocabulary) find(tokens []string) (entity.StatusCode, bool) {
	for i := range tokens {
		for _, term := range v {
			if term.matchesAt(tokens, i) {
				return term.code, true
			}
		}
	}
	return "", false
}

func (t statusTerm) matchesAt(tokens []string, i int) bool {
	if i+len(t.phrase) > len(tokens) {
		return false
	}
	last := len(t.phrase) - 1
	for j, w := range t.phrase {
		tok := tokens[i+j]
		if tok == w || (j == last && tok == w+"s") {
			continue
		}
		return false
	}
	return true
}

type amountBound struct {
	pos      int
	min, max *decimal.Decimal
}

// extractAmounts returns the first lower and upper bound stated in s.
func extractAmounts(s string) (lower, upper *decimal.Decimal) {
	var bounds []amountBound

	for _, m := range minAmountPattern.FindAllStringSubmatchIndex(s, -1) {
		if v, ok := moneyAt(s, m[2], m[3]); ok {
			bounds = append(bounds, amountBound{pos: m[0], min: &v})
		}
	}
	for _, m := range maxAmountPattern.FindAllStringSubmatchIndex(s, -1) {
		if v, ok := moneyAt(s, m[2], m[3]); ok {
			bounds = append(bounds, amountBound{pos: m[0], max: &v})
		}
	}
	for _, m := range betweenAmountPattern.FindAllStringSubmatchIndex(s, -1) {
		lo, okLo := parseAmount(s[m[2]:m[3]])
		hi, okHi := moneyAt(s, m[4], m[5])
		if !okLo || !okHi {
			continue
		}
		if hi.LessThan(lo) {
			lo, hi = hi, lo
		}
		bounds = append(bounds, amountBound{pos: m[0], min: &lo, max: &hi})
	}

	sort.SliceStable(bounds, func(i, j int) bool { return bounds[i].pos < bounds[j].pos })
	for _, b := range bounds {
		if lower == nil && b.min != nil {
			lower = b.min
		}
		if upper == nil && b.max != nil {
			upper = b.max
		}
	}
	return lower, upper
}

// moneyAt parses s[start:end] unless the following word marks it as a count.
func moneyAt(s string, start, end int) (decimal.Decimal, bool) {
	if next := strings.Fields(s[end:]); len(next) > 0 && countNouns[next[0]] {
		return decimal.Decimal{}, false
	}
	return parseAmount(s[start:end])
}

// parseAmount reads a numeral that may use "." or "," as thousands separator
// and carry a one or two digit decimal part after the last separator.
func parseAmount(s string) (decimal.Decimal, bool) {
	intPart, frac := s, ""
	if last := strings.LastIndexAny(s, ".,"); last >= 0 {
		switch len(s) - last - 1 {
		case 1, 2:
			intPart, frac = s[:last], s[last+1:]
		case 3:
		default:
			return decimal.Decimal{}, false
		}
	}

	groups := separatorPattern.Split(intPart, -1)
	for i, g := range groups {
		if g == "" || (i == 0 && len(g) > 3 && len(groups) > 1) || (i > 0 && len(g) != 3) {
			return decimal.Decimal{}, false
		}
	}

	digits := strings.Join(groups, "")
	if frac != "" {
		digits += "." + frac
	}
	v, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v, true
}

// extractPatientName looks for a quoted span first, then for capitalized
// words after "de", "del" or "paciente".
func extractPatientName(original string) (string, bool) {
	if m := quotedNamePattern.FindStringSubmatch(original); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name, true
		}
	}

	for _, m := range namedCuePattern.FindAllStringSubmatch(original, -1) {
		var kept []string
		for _, w := range strings.Fields(m[1]) {
			if reservedWords[Normalize(w)] {
				break
			}
			kept = append(kept, w)
		}
		if len(kept) > 0 {
			return strings.Join(kept, " "), true
		}
	}
	return "", false
}
