package metrics

import (
	"strings"

	"github.com/wallet-wrapped/internal/models"
	"github.com/wallet-wrapped/internal/types"
)

// IndexTradeRecords builds a lookup from lowercase token address to trade
// record. Addresses are the identity key linking holdings to trade
// history; providers are inconsistent about casing, so matching is
// case-insensitive throughout.
func IndexTradeRecords(records []models.TokenTradeRecord) map[string]*models.TokenTradeRecord {
	index := make(map[string]*models.TokenTradeRecord, len(records))
	for i := range records {
		index[strings.ToLower(records[i].TokenAddress)] = &records[i]
	}
	return index
}

// AggregateIncome classifies every holding and folds the non-Holding ones
// into a per-category breakdown. Holdings without a matching trade record
// are still classified; the symbol/name heuristics alone can place them
// in Staking, Lending or Liquidity.
func AggregateIncome(holdings []models.TokenHolding, recordsByAddress map[string]*models.TokenTradeRecord) models.IncomeBreakdown {
	breakdown := models.IncomeBreakdown{
		Details: make([]models.IncomeDetail, 0),
	}

	for i := range holdings {
		h := &holdings[i]
		record := recordsByAddress[strings.ToLower(h.TokenAddress)]
		category := ClassifyToken(h, record)
		if category == types.CategoryHolding {
			continue
		}

		switch category {
		case types.CategoryStaking:
			breakdown.Staking = breakdown.Staking.Add(h.USDValue)
		case types.CategoryLending:
			breakdown.Lending = breakdown.Lending.Add(h.USDValue)
		case types.CategoryLiquidity:
			breakdown.Liquidity = breakdown.Liquidity.Add(h.USDValue)
		case types.CategoryAirdrop:
			breakdown.Airdrop = breakdown.Airdrop.Add(h.USDValue)
		}

		breakdown.Details = append(breakdown.Details, models.IncomeDetail{
			Category: category,
			Symbol:   h.Symbol,
			Value:    h.USDValue,
			Logo:     h.DisplayLogo(),
		})
	}

	// Summation order is fixed so the total invariant holds exactly.
	breakdown.Total = breakdown.Staking.
		Add(breakdown.Lending).
		Add(breakdown.Liquidity).
		Add(breakdown.Airdrop)

	return breakdown
}
