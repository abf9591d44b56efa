package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	displayLayout   = "02/01/2006"
	canonicalLayout = "2006-01-02"
)

var (
	brazilianDatePattern = regexp.MustCompile(`^(\d{1,2})([/-])(\d{1,2})([/-])(\d{4}|\d{2})$`)
	isoDatePattern       = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// ParseDate aceita DD/MM/AAAA, DD-MM-AAAA (ano com 2 ou 4 dígitos, com ou sem
// horário) e o formato canônico AAAA-MM-DD. Datas inexistentes no calendário
// são rejeitadas.
func ParseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(StripBOM(raw))
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, ErrEmptyValue)
	}

	// Descarta o componente de horário
	if fields := strings.Fields(value); len(fields) > 0 {
		value = fields[0]
	}
	if idx := strings.IndexAny(value, "Tt"); idx > 0 {
		value = value[:idx]
	}

	var day, month, year int

	if match := brazilianDatePattern.FindStringSubmatch(value); match != nil {
		if match[2] != match[4] {
			return time.Time{}, fmt.Errorf("%w: separadores diferentes em %q", ErrInvalidDate, raw)
		}
		day, _ = strconv.Atoi(match[1])
		month, _ = strconv.Atoi(match[3])
		year, _ = strconv.Atoi(match[5])
		if len(match[5]) == 2 {
			year += 2000
		}
	} else if match := isoDatePattern.FindStringSubmatch(value); match != nil {
		year, _ = strconv.Atoi(match[1])
		month, _ = strconv.Atoi(match[2])
		day, _ = strconv.Atoi(match[3])
	} else {
		return time.Time{}, fmt.Errorf("%w: formato nao reconhecido %q", ErrInvalidDate, raw)
	}

	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: dia inexistente %q", ErrInvalidDate, raw)
	}

	return date, nil
}

// ParseCanonicalDate é ParseDate devolvendo AAAA-MM-DD
func ParseCanonicalDate(raw string) (string, error) {
	date, err := ParseDate(raw)
	if err != nil {
		return "", err
	}

	return CanonicalDate(date), nil
}

// FormatDate formata no padrão de exibição DD/MM/AAAA
func FormatDate(t time.Time) string {
	return t.Format(displayLayout)
}

// CanonicalDate formata no padrão de armazenamento AAAA-MM-DD
func CanonicalDate(t time.Time) string {
	return t.Format(canonicalLayout)
}
