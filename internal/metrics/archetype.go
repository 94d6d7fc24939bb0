package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/wallet-wrapped/internal/models"
	"github.com/wallet-wrapped/internal/types"
)

// Archetype rule thresholds.
var (
	whaleNetWorth  = decimal.NewFromInt(50_000)
	degenLossFloor = decimal.NewFromInt(-500)
)

const (
	degenMinTrades       = 100
	alphaMinWinRate      = 65
	alphaMinTrades       = 20
	maximalistMinPercent = 70
	collectorMinCount    = 30
)

// ClassifyArchetype assigns the wallet a single gamified label. Rules are
// priority-ordered and the first match wins; a wallet matching nothing is
// an explorer.
//
// The concentration rule considers the largest portfolio share across all
// holdings rather than trusting the provider's ordering of the list.
func ClassifyArchetype(
	netWorth decimal.Decimal,
	totalProfitLoss decimal.Decimal,
	winRate float64,
	totalTrades int,
	holdings []models.TokenHolding,
	collectionsCount int,
) string {
	switch {
	case netWorth.GreaterThan(whaleNetWorth):
		return types.ArchetypeWhale
	case totalProfitLoss.LessThan(degenLossFloor) && totalTrades > degenMinTrades:
		return types.ArchetypeDegen
	case winRate > alphaMinWinRate && totalTrades > alphaMinTrades:
		return types.ArchetypeAlphaHunter
	case maxPortfolioPercentage(holdings) > maximalistMinPercent:
		return types.ArchetypeMaximalist
	case collectionsCount > collectorMinCount:
		return types.ArchetypeCollector
	default:
		return types.ArchetypeExplorer
	}
}

func maxPortfolioPercentage(holdings []models.TokenHolding) float64 {
	max := 0.0
	for i := range holdings {
		if holdings[i].PortfolioPercentage > max {
			max = holdings[i].PortfolioPercentage
		}
	}
	return max
}
