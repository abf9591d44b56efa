package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxOrderNumberLength é o tamanho máximo aceito para o número do pedido
const MaxOrderNumberLength = 100

// Marcadores de BOM, inclusive o BOM UTF-8 lido como Latin-1
var bomMarkers = []string{"\uFEFF", "\u00ef\u00bb\u00bf"}

// StripBOM remove marcadores de BOM em qualquer posição do texto
func StripBOM(value string) string {
	for _, marker := range bomMarkers {
		value = strings.ReplaceAll(value, marker, "")
	}
	return value
}

// OrderNumber normaliza o número do pedido: sem espaços nas pontas, sem BOM e em
// caixa alta. Retorna "" quando o valor está ausente.
func OrderNumber(raw string) string {
	return strings.ToUpper(strings.TrimSpace(StripBOM(raw)))
}

// Coupon normaliza o cupom para busca; a comparação com o cadastro ignora caixa
func Coupon(raw string) string {
	return strings.TrimSpace(StripBOM(raw))
}

// CleanText prepara o texto colado para ser dividido em linhas: remove BOM,
// normaliza quebras de linha e descarta caracteres de controle (exceto TAB).
func CleanText(text string) []string {
	text = StripBOM(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Map(func(r rune) rune {
			if r != '\t' && unicode.IsControl(r) {
				return -1
			}
			return r
		}, line)
	}

	return lines
}

// HeaderToken reduz um título de coluna à forma comparável: minúsculo, sem
// acentos e apenas com letras e dígitos ASCII.
func HeaderToken(value string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	unaccented, _, err := transform.String(stripper, StripBOM(value))
	if err != nil {
		unaccented = value
	}

	var b strings.Builder
	for _, r := range strings.ToLower(unaccented) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
