package normalize

import (
	"encoding/csv"
	"strings"
)

// Delimiter é o separador de colunas detectado em uma linha
type Delimiter string

const (
	DelimiterTab        Delimiter = "\t"
	DelimiterSemicolon  Delimiter = ";"
	DelimiterComma      Delimiter = ","
	DelimiterWhitespace Delimiter = " "
)

// Name retorna o nome legível do separador
func (d Delimiter) Name() string {
	switch d {
	case DelimiterTab:
		return "tab"
	case DelimiterSemicolon:
		return "semicolon"
	case DelimiterComma:
		return "comma"
	default:
		return "whitespace"
	}
}

// DetectDelimiter procura TAB, depois ponto e vírgula, depois vírgula; sem
// nenhum deles as colunas são separadas por espaços.
func DetectDelimiter(line string) Delimiter {
	switch {
	case strings.Contains(line, string(DelimiterTab)):
		return DelimiterTab
	case strings.Contains(line, string(DelimiterSemicolon)):
		return DelimiterSemicolon
	case strings.Contains(line, string(DelimiterComma)):
		return DelimiterComma
	default:
		return DelimiterWhitespace
	}
}

// DataDelimiter escolhe o separador das linhas de dados quando há cabeçalho.
// O separador do cabeçalho vale se aparece na linha; caso contrário a própria
// linha decide. Sob cabeçalho separado por espaços, a vírgula de linhas com
// várias palavras é tratada como decimal.
func DataDelimiter(header Delimiter, line string) Delimiter {
	if header != DelimiterWhitespace && strings.Contains(line, string(header)) {
		return header
	}

	detected := DetectDelimiter(line)
	if header == DelimiterWhitespace && detected == DelimiterComma && len(strings.Fields(line)) > 1 {
		return DelimiterWhitespace
	}
	return detected
}

// SplitLine divide a linha em células respeitando aspas
func SplitLine(line string, delimiter Delimiter) []string {
	if delimiter == DelimiterWhitespace {
		return strings.Fields(line)
	}

	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = rune(delimiter[0])
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	// Com TAB o trim de espaços iniciais engoliria células vazias
	reader.TrimLeadingSpace = delimiter != DelimiterTab

	cells, err := reader.Read()
	if err != nil {
		cells = strings.Split(line, string(delimiter))
	}

	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}

	return cells
}

// Column identifica um campo canônico da importação
type Column int

const (
	ColumnOrder Column = iota
	ColumnCoupon
	ColumnDate
	ColumnGross
	ColumnDiscount

	columnCount
)

// String retorna o nome do campo
func (c Column) String() string {
	switch c {
	case ColumnOrder:
		return "order"
	case ColumnCoupon:
		return "coupon"
	case ColumnDate:
		return "date"
	case ColumnGross:
		return "gross"
	case ColumnDiscount:
		return "discount"
	default:
		return "unknown"
	}
}

// columnAliases lista os títulos aceitos para cada campo, já na forma de HeaderToken
var columnAliases = [columnCount][]string{
	ColumnOrder: {
		"pedido", "numeropedido", "numerodopedido", "npedido", "nopedido", "numpedido",
		"codigopedido", "codigodopedido", "idpedido", "order", "orderid", "ordernumber",
		"ordercode", "ordernum",
	},
	ColumnCoupon: {
		"cupom", "cupons", "codigocupom", "codigodocupom", "cupomdedesconto", "coupon",
		"couponcode", "discountcode", "codigodesconto",
	},
	ColumnDate: {
		"data", "datavenda", "datadavenda", "datapedido", "datadopedido", "datacompra",
		"datadacompra", "date", "orderdate", "saledate", "createdat",
	},
	ColumnGross: {
		"valorbruto", "bruto", "valor", "valortotal", "total", "vendabruta", "vendasbrutas",
		"gross", "grossvalue", "grosssales", "amount", "subtotal",
	},
	ColumnDiscount: {
		"desconto", "descontos", "valordesconto", "valordodesconto", "discount",
		"discountamount", "discounttotal", "discountvalue",
	},
}

var orderKeywords = []string{"pedido", "order"}

// ColumnMap guarda o índice de cada campo na linha; -1 indica campo ausente
type ColumnMap [columnCount]int

// DefaultColumnMap é o mapeamento posicional: pedido, cupom, data, bruto, desconto
func DefaultColumnMap() ColumnMap {
	return ColumnMap{0, 1, 2, 3, 4}
}

// Index retorna o índice do campo
func (m ColumnMap) Index(c Column) int {
	return m[c]
}

// Cell devolve a célula do campo, ou "" quando a coluna não existe na linha
func (m ColumnMap) Cell(cells []string, c Column) string {
	idx := m[c]
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// DetectHeader verifica se as células formam um cabeçalho (existe uma coluna de
// pedido) e devolve o mapeamento resultante. Sem cabeçalho o mapeamento
// posicional padrão é mantido.
func DetectHeader(cells []string) (ColumnMap, bool) {
	tokens := make([]string, len(cells))
	for i, cell := range cells {
		tokens[i] = HeaderToken(cell)
	}

	detected := ColumnMap{-1, -1, -1, -1, -1}
	claimed := make(map[int]bool, len(tokens))

	for column := Column(0); column < columnCount; column++ {
		for i, token := range tokens {
			if token == "" || claimed[i] {
				continue
			}
			if containsString(columnAliases[column], token) {
				detected[column] = i
				claimed[i] = true
				break
			}
		}
	}

	if detected[ColumnOrder] < 0 {
		for i, token := range tokens {
			if claimed[i] || !isAlphabetic(token) || !containsKeyword(token, orderKeywords) {
				continue
			}
			detected[ColumnOrder] = i
			claimed[i] = true
			break
		}
	}

	if detected[ColumnOrder] < 0 {
		return DefaultColumnMap(), false
	}

	defaults := DefaultColumnMap()
	for column := Column(0); column < columnCount; column++ {
		if detected[column] >= 0 {
			continue
		}
		if !claimed[defaults[column]] {
			detected[column] = defaults[column]
		}
	}

	return detected, true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsKeyword(token string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(token, k) {
			return true
		}
	}
	return false
}

func isAlphabetic(token string) bool {
	for _, r := range token {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return token != ""
}
