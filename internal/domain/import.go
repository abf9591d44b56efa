package domain

// ImportRawValues guarda as células originais de uma linha importada
type ImportRawValues struct {
	OrderNumber string `json:"orderNumber"`
	Coupon      string `json:"cupom"`
	Date        string `json:"date"`
	GrossValue  string `json:"grossValue"`
	Discount    string `json:"discount"`
}

// ImportRow é uma linha analisada da importação em lote
type ImportRow struct {
	Line           int             `json:"line"`
	Raw            ImportRawValues `json:"raw"`
	OrderNumber    string          `json:"orderNumber,omitempty"`
	Coupon         string          `json:"cupom,omitempty"`
	Date           string          `json:"date,omitempty"`
	GrossValue     float64         `json:"grossValue"`
	Discount       float64         `json:"discount"`
	NetValue       float64         `json:"netValue"`
	Commission     float64         `json:"commission"`
	AffiliateID    int64           `json:"influencerId,omitempty"`
	AffiliateName  string          `json:"influencerName,omitempty"`
	CommissionRate float64         `json:"commissionRate"`
	Errors         []string        `json:"errors"`
}

// Valid indica que a linha não acumulou nenhum erro
func (r *ImportRow) Valid() bool {
	return len(r.Errors) == 0
}

type ImportSummary struct {
	Count           int     `json:"count"`
	TotalGross      float64 `json:"totalGross"`
	TotalDiscount   float64 `json:"totalDiscount"`
	TotalNet        float64 `json:"totalNet"`
	TotalCommission float64 `json:"totalCommission"`
}

// ImportAnalysis é o resultado da pré-visualização de uma importação
type ImportAnalysis struct {
	Rows       []*ImportRow  `json:"rows"`
	Summary    ImportSummary `json:"summary"`
	TotalCount int           `json:"totalCount"`
	ValidCount int           `json:"validCount"`
	ErrorCount int           `json:"errorCount"`
	HasErrors  bool          `json:"hasErrors"`
	Delimiter  string        `json:"delimiter"`
	HasHeader  bool          `json:"hasHeader"`
}

// ImportResult é o resultado de uma importação confirmada
type ImportResult struct {
	BatchID  string        `json:"batchId"`
	Inserted int           `json:"inserted"`
	Rows     []*Sale       `json:"rows"`
	Summary  ImportSummary `json:"summary"`
}
