package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jhoicas/invoice-qc/internal/domain/entity"
)

var (
	numericDateToken = regexp.MustCompile(`(\d{1,4})[/\-.](\d{1,2})[/\-.](\d{1,4})`)
	textualDateToken = regexp.MustCompile(`(?i)\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{4}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}`)
)

// NormalizeDate convierte una fecha cruda a YYYY-MM-DD. Prefiere día antes que mes,
// tolera texto alrededor de la fecha y nunca falla: cualquier entrada no interpretable
// devuelve false.
func NormalizeDate(raw string) (out string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if m := numericDateToken.FindStringSubmatch(s); m != nil {
		if t, valid := parseNumericDate(m[1], m[2], m[3]); valid {
			return t.Format(entity.DateLayout), true
		}
	}

	// dateparse puede entrar en pánico con entradas patológicas.
	defer func() {
		if r := recover(); r != nil {
			out, ok = "", false
		}
	}()
	candidate := s
	if tok := textualDateToken.FindString(s); tok != "" {
		candidate = tok
	}
	t, err := dateparse.ParseAny(candidate,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil {
		return "", false
	}
	return t.Format(entity.DateLayout), true
}

// parseNumericDate interpreta a/b/c. Con año de 4 dígitos al inicio es año-mes-día;
// si no, día-mes-año, intercambiando día y mes cuando el mes es imposible.
func parseNumericDate(a, b, c string) (time.Time, bool) {
	first, _ := strconv.Atoi(a)
	second, _ := strconv.Atoi(b)
	third, _ := strconv.Atoi(c)

	if len(a) == 4 {
		return buildDate(first, second, third)
	}
	day, month, year := first, second, expandYear(third, len(c))
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	return buildDate(year, month, day)
}

// expandYear aplica la ventana habitual a los años de dos dígitos (69 -> 2069, 70 -> 1970).
func expandYear(year, digits int) int {
	if digits > 2 {
		return year
	}
	if year < 70 {
		return 2000 + year
	}
	return 1900 + year
}

func buildDate(year, month, day int) (time.Time, bool) {
	if year <= 0 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
