// Package normalize converte os valores brutos recebidos (texto colado, JSON)
// em valores canônicos: dinheiro, datas, números de pedido e cupons.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/influencer-sales-api/pkg/utils"
)

// MaxAmount é o maior valor que cabe nas colunas NUMERIC(12,2) de vendas
const MaxAmount = 9999999999.99

var (
	ErrEmptyValue    = errors.New("valor vazio")
	ErrInvalidNumber = errors.New("numero invalido")
	ErrInvalidDate   = errors.New("data invalida")
)

// ParseCurrency interpreta um valor monetário em qualquer um dos formatos aceitos
// (número, booleano ou texto com separadores brasileiros ou americanos) e o
// arredonda para centavos. Valores acima de MaxAmount em módulo são recusados.
func ParseCurrency(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, ErrEmptyValue
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return finite(float64(v))
	case int32:
		return finite(float64(v))
	case int64:
		return finite(float64(v))
	case uint:
		return finite(float64(v))
	case uint64:
		return finite(float64(v))
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseCurrencyString(v)
	case fmt.Stringer:
		return parseCurrencyString(v.String())
	default:
		return 0, fmt.Errorf("%w: tipo %T", ErrInvalidNumber, value)
	}
}

// ParseMoney é ParseCurrency com valores negativos limitados a zero
func ParseMoney(value any) (float64, error) {
	parsed, err := ParseCurrency(value)
	if err != nil {
		return 0, err
	}

	if parsed < 0 {
		return 0, nil
	}

	return parsed, nil
}

func parseCurrencyString(raw string) (float64, error) {
	trimmed := strings.TrimSpace(StripBOM(raw))
	if trimmed == "" {
		return 0, ErrEmptyValue
	}

	sanitized := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, trimmed)
	if sanitized == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	lastComma := strings.LastIndex(sanitized, ",")
	lastDot := strings.LastIndex(sanitized, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// 1.234,56
		sanitized = strings.ReplaceAll(sanitized, ".", "")
		sanitized = strings.ReplaceAll(sanitized, ",", ".")
	case lastComma >= 0 && lastDot >= 0:
		// 1,234.56
		sanitized = strings.ReplaceAll(sanitized, ",", "")
	case lastComma >= 0:
		sanitized = strings.ReplaceAll(sanitized, ",", ".")
	}

	parsed, err := strconv.ParseFloat(sanitized, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	return finite(parsed)
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}

	rounded := utils.RoundWithTwoDecimalPlace(v)
	if math.Abs(rounded) > MaxAmount {
		return 0, fmt.Errorf("%w: acima do limite de %.2f", ErrInvalidNumber, MaxAmount)
	}

	return rounded, nil
}
