package sales

import (
	"math"

	"github.com/vfg2006/influencer-sales-api/pkg/utils"
)

// ComputeTotals deriva o valor líquido e a comissão de uma venda.
// O líquido nunca é negativo e ambos são arredondados para centavos.
func ComputeTotals(gross, discount, commissionRate float64) (netValue, commission float64) {
	netValue = utils.RoundWithTwoDecimalPlace(math.Max(0, gross-discount))
	commission = utils.RoundWithTwoDecimalPlace(netValue * commissionRate / 100)
	return netValue, commission
}
