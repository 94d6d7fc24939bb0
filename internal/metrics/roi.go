package metrics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wallet-wrapped/internal/models"
)

// RoiResult pairs the holdings augmented with roi/costBasis and the
// portfolio-wide summary.
type RoiResult struct {
	Holdings []models.TokenHolding
	Summary  models.RoiSummary
}

// ComputeROI estimates a cost basis for each holding from its historical
// average buy price and derives per-holding and portfolio-wide ROI.
//
// Holdings with no trade history (or a zero average buy price) get a zero
// cost basis and, by policy, a zero ROI: unknown ROI is reported as 0,
// not as an error. Such holdings still contribute their full current
// value to the portfolio total while adding nothing to the invested
// total, so the weighted average skews upward when much of the portfolio
// lacks history. That approximation is intentional.
func ComputeROI(holdings []models.TokenHolding, recordsByAddress map[string]*models.TokenTradeRecord) RoiResult {
	augmented := make([]models.TokenHolding, len(holdings))
	copy(augmented, holdings)

	totalInvested := decimal.Zero
	totalCurrentValue := decimal.Zero

	for i := range augmented {
		h := &augmented[i]

		costBasis := decimal.Zero
		if record := recordsByAddress[strings.ToLower(h.TokenAddress)]; record != nil {
			if avgBuy := parseDecimal(record.AvgBuyPriceUSD); avgBuy.IsPositive() {
				costBasis = avgBuy.Mul(scaledBalance(h.Balance, h.Decimals))
			}
		}

		h.CostBasis = costBasis
		h.ROI = 0
		if costBasis.IsPositive() {
			h.ROI = h.USDValue.Sub(costBasis).Div(costBasis).InexactFloat64() * 100
		}

		totalInvested = totalInvested.Add(costBasis)
		totalCurrentValue = totalCurrentValue.Add(h.USDValue)
	}

	summary := models.RoiSummary{}
	if totalInvested.IsPositive() {
		summary.AverageRoi = totalCurrentValue.Sub(totalInvested).Div(totalInvested).InexactFloat64() * 100
	}

	for i := range augmented {
		if summary.BestAsset == nil || augmented[i].ROI > summary.BestAsset.ROI {
			best := augmented[i]
			summary.BestAsset = &best
		}
		if summary.WorstAsset == nil || augmented[i].ROI < summary.WorstAsset.ROI {
			worst := augmented[i]
			summary.WorstAsset = &worst
		}
	}

	return RoiResult{Holdings: augmented, Summary: summary}
}
