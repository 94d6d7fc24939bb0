package metrics

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"github.com/wallet-wrapped/internal/models"
)

// Property-based coverage of the aggregation invariants. Generators
// produce provider-shaped records, including zero-sell tokens and
// malformed numeric strings, to exercise the degradation paths.

func genTradeRecord() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 500),              // scaled profit, cents
		gen.Bool(),                        // negative profit
		gen.IntRange(0, 10),               // total sells
		gen.IntRange(0, 10),               // total buys
		gen.IntRange(0, 50),               // count of trades
		gen.IntRange(0, 1<<20),            // address entropy
		gen.OneConstOf("0", "1.5", "bad"), // avg buy price, sometimes malformed
	).Map(func(values []interface{}) models.TokenTradeRecord {
		cents := values[0].(int)
		if values[1].(bool) {
			cents = -cents
		}
		return models.TokenTradeRecord{
			TokenAddress:      fmt.Sprintf("0x%040x", values[5].(int)),
			Symbol:            "TKN",
			Name:              "Token",
			RealizedProfitUSD: decimal.New(int64(cents), -2).String(),
			TotalSells:        values[2].(int),
			TotalBuys:         values[3].(int),
			CountOfTrades:     values[4].(int),
			AvgBuyPriceUSD:    values[6].(string),
		}
	})
}

func genTradeRecords() gopter.Gen {
	return gen.SliceOf(genTradeRecord())
}

func genHolding() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 100_000),  // usd value, cents
		gen.IntRange(0, 1<<20),    // address entropy
		gen.IntRange(0, 18),       // decimals
		gen.IntRange(0, 1_000_000), // raw balance
		gen.OneConstOf("USDC", "STETH", "AUSDC", "UNI-V2", "xyz"),
	).Map(func(values []interface{}) models.TokenHolding {
		return models.TokenHolding{
			TokenAddress: fmt.Sprintf("0x%040x", values[1].(int)),
			Symbol:       values[4].(string),
			Name:         "Token",
			Decimals:     int32(values[2].(int)),
			Balance:      fmt.Sprintf("%d", values[3].(int)),
			USDValue:     decimal.New(int64(values[0].(int)), -2),
		}
	})
}

func genHoldings() gopter.Gen {
	return gen.SliceOf(genHolding())
}

func TestProperties_PnL(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("totalProfitLoss equals the sum over sold tokens", prop.ForAll(
		func(records []models.TokenTradeRecord) bool {
			stats := AggregatePnL(records)
			expected := decimal.Zero
			for _, r := range records {
				if r.TotalSells > 0 {
					expected = expected.Add(parseDecimal(r.RealizedProfitUSD))
				}
			}
			return stats.TotalProfitLoss.Equal(expected)
		},
		genTradeRecords(),
	))

	properties.Property("winRate stays within [0, 100]", prop.ForAll(
		func(records []models.TokenTradeRecord) bool {
			stats := AggregatePnL(records)
			return stats.WinRate >= 0 && stats.WinRate <= 100
		},
		genTradeRecords(),
	))

	properties.Property("winRate is exactly 0 without sold tokens", prop.ForAll(
		func(records []models.TokenTradeRecord) bool {
			for i := range records {
				records[i].TotalSells = 0
			}
			return AggregatePnL(records).WinRate == 0
		},
		genTradeRecords(),
	))

	properties.Property("biggest loss never exceeds biggest win", prop.ForAll(
		func(records []models.TokenTradeRecord) bool {
			stats := AggregatePnL(records)
			if stats.BiggestWin == nil || stats.BiggestLoss == nil {
				return stats.BiggestWin == nil && stats.BiggestLoss == nil
			}
			return !stats.BiggestLoss.ProfitUSD.GreaterThan(stats.BiggestWin.ProfitUSD)
		},
		genTradeRecords(),
	))

	properties.TestingRun(t)
}

func TestProperties_Income(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("total equals the exact category sum", prop.ForAll(
		func(holdings []models.TokenHolding, records []models.TokenTradeRecord) bool {
			breakdown := AggregateIncome(holdings, IndexTradeRecords(records))
			sum := breakdown.Staking.
				Add(breakdown.Lending).
				Add(breakdown.Liquidity).
				Add(breakdown.Airdrop)
			return breakdown.Total.Equal(sum)
		},
		genHoldings(),
		genTradeRecords(),
	))

	properties.Property("every detail entry is a non-Holding category", prop.ForAll(
		func(holdings []models.TokenHolding, records []models.TokenTradeRecord) bool {
			breakdown := AggregateIncome(holdings, IndexTradeRecords(records))
			for _, d := range breakdown.Details {
				switch d.Category {
				case "Staking", "Lending", "Liquidity", "Airdrop":
				default:
					return false
				}
			}
			return true
		},
		genHoldings(),
		genTradeRecords(),
	))

	properties.TestingRun(t)
}

func TestProperties_ROI(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("zero cost basis implies zero roi", prop.ForAll(
		func(holdings []models.TokenHolding) bool {
			result := ComputeROI(holdings, nil)
			for _, h := range result.Holdings {
				if !h.CostBasis.IsZero() || h.ROI != 0 {
					return false
				}
			}
			return true
		},
		genHoldings(),
	))

	properties.Property("best and worst assets are nil iff holdings are empty", prop.ForAll(
		func(holdings []models.TokenHolding, records []models.TokenTradeRecord) bool {
			result := ComputeROI(holdings, IndexTradeRecords(records))
			if len(holdings) == 0 {
				return result.Summary.BestAsset == nil && result.Summary.WorstAsset == nil
			}
			return result.Summary.BestAsset != nil && result.Summary.WorstAsset != nil
		},
		genHoldings(),
		genTradeRecords(),
	))

	properties.Property("best asset roi >= worst asset roi", prop.ForAll(
		func(holdings []models.TokenHolding, records []models.TokenTradeRecord) bool {
			result := ComputeROI(holdings, IndexTradeRecords(records))
			if result.Summary.BestAsset == nil {
				return true
			}
			return result.Summary.BestAsset.ROI >= result.Summary.WorstAsset.ROI
		},
		genHoldings(),
		genTradeRecords(),
	))

	properties.TestingRun(t)
}

func TestProperties_AssembleTotal(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("assembly never panics and keeps holdings count", prop.ForAll(
		func(holdings []models.TokenHolding, records []models.TokenTradeRecord) bool {
			snapshot := Assemble(Inputs{TradeRecords: records, Holdings: holdings})
			return len(snapshot.Holdings) == len(holdings)
		},
		genHoldings(),
		genTradeRecords(),
	))

	properties.TestingRun(t)
}
