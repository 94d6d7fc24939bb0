package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/wallet-wrapped/internal/models"
)

// PnLStats is the realized profit-and-loss view over a wallet's trade
// history.
type PnLStats struct {
	TotalProfitLoss decimal.Decimal
	BiggestWin      *models.TradeHighlight
	BiggestLoss     *models.TradeHighlight
	MostTradedToken *models.MostTraded
	WinRate         float64
	TotalTrades     int
}

// AggregatePnL computes realized P/L statistics from per-token trade
// records. Only tokens with at least one sell have realized P/L and
// participate in the profit-derived stats; every record's trade count
// still contributes to TotalTrades. Ties on win/loss/most-traded go to
// the first record in input order.
func AggregatePnL(records []models.TokenTradeRecord) PnLStats {
	stats := PnLStats{}

	profitable := 0
	traded := 0
	for i := range records {
		record := &records[i]
		stats.TotalTrades += record.CountOfTrades

		maxTrades := 0
		if stats.MostTradedToken != nil {
			maxTrades = stats.MostTradedToken.TradeCount
		}
		if record.CountOfTrades > maxTrades {
			stats.MostTradedToken = &models.MostTraded{
				Token:      *record,
				TradeCount: record.CountOfTrades,
			}
		}

		if record.TotalSells <= 0 {
			continue
		}
		traded++

		profit := parseDecimal(record.RealizedProfitUSD)
		stats.TotalProfitLoss = stats.TotalProfitLoss.Add(profit)
		if profit.IsPositive() {
			profitable++
		}

		if stats.BiggestWin == nil || profit.GreaterThan(stats.BiggestWin.ProfitUSD) {
			stats.BiggestWin = &models.TradeHighlight{Token: *record, ProfitUSD: profit}
		}
		// The minimum-profit record is kept even when positive: it is the
		// worst outcome, not necessarily a loss. Consumers check the sign.
		if stats.BiggestLoss == nil || profit.LessThan(stats.BiggestLoss.ProfitUSD) {
			stats.BiggestLoss = &models.TradeHighlight{Token: *record, ProfitUSD: profit}
		}
	}

	if traded > 0 {
		stats.WinRate = float64(profitable) / float64(traded) * 100
	}

	return stats
}
