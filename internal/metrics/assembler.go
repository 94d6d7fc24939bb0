// Package metrics is the aggregation core of the wallet wrapped service:
// a pure, synchronous transform from raw per-token trade records, current
// holdings and wallet statistics into one coherent analytics snapshot.
//
// The package holds no state across calls and raises no errors. Inputs
// other than trade records and holdings are optional; absence degrades
// the affected snapshot fields to zero values instead of failing. The
// caller re-runs the full assembly whenever any input changes; both
// input lists are small, so recompute-from-scratch is the only supported
// strategy.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/wallet-wrapped/internal/models"
)

// Inputs is the fully-resolved tuple the assembler consumes. TradeRecords
// and Holdings may be empty; the pointer fields may be nil when the
// corresponding provider fetch failed or was skipped.
type Inputs struct {
	TradeRecords []models.TokenTradeRecord
	Holdings     []models.TokenHolding
	Stats        *models.WalletStats
	Summary      *models.TradeSummary
	Chains       *models.ChainActivity
	NetWorth     *models.NetWorth
	NFT          *models.WalletNFT
}

// Assemble derives the metrics snapshot from the resolved inputs. It is
// deterministic: identical inputs always produce an identical snapshot.
func Assemble(in Inputs) *models.MetricsSnapshot {
	recordsByAddress := IndexTradeRecords(in.TradeRecords)

	pnl := AggregatePnL(in.TradeRecords)
	income := AggregateIncome(in.Holdings, recordsByAddress)
	roi := ComputeROI(in.Holdings, recordsByAddress)

	netWorth := decimal.Zero
	if in.NetWorth != nil {
		netWorth = parseDecimal(in.NetWorth.TotalNetWorthUSD)
	}

	collections := 0
	tokenTransfers := 0
	if in.Stats != nil {
		collections = parseInt(in.Stats.Collections)
		tokenTransfers = parseInt(in.Stats.TokenTransfers.Total)
	}

	snapshot := &models.MetricsSnapshot{
		TotalProfitLoss: pnl.TotalProfitLoss,
		BiggestWin:      pnl.BiggestWin,
		BiggestLoss:     pnl.BiggestLoss,
		MostTradedToken: pnl.MostTradedToken,
		WinRate:         pnl.WinRate,
		TotalTrades:     pnl.TotalTrades,
		CurrentNetWorth: netWorth,

		TotalTokenTransfers: tokenTransfers,
		TotalNFTCollections: collections,

		FirstTransactionAt: firstTransactionTimestamp(in.Chains),
		WalletNFT:          in.NFT,

		Holdings: roi.Holdings,
		Income:   income,
		Roi:      roi.Summary,
	}

	snapshot.Archetype = ClassifyArchetype(
		netWorth,
		pnl.TotalProfitLoss,
		pnl.WinRate,
		pnl.TotalTrades,
		roi.Holdings,
		collections,
	)

	if in.Summary != nil {
		snapshot.TotalTradeVolume = parseDecimal(in.Summary.TotalTradeVolume)
		snapshot.TotalBuys = in.Summary.TotalBuys
		snapshot.TotalSells = in.Summary.TotalSells
		snapshot.TotalBoughtVolume = parseDecimal(in.Summary.TotalBoughtVolumeUSD)
		snapshot.TotalSoldVolume = parseDecimal(in.Summary.TotalSoldVolumeUSD)
	}

	return snapshot
}

// firstTransactionTimestamp picks the first active chain's first
// transaction timestamp, or nil when chain activity is absent.
func firstTransactionTimestamp(chains *models.ChainActivity) *string {
	if chains == nil || len(chains.ActiveChains) == 0 {
		return nil
	}
	first := chains.ActiveChains[0].FirstTransaction
	if first == nil || first.BlockTimestamp == "" {
		return nil
	}
	ts := first.BlockTimestamp
	return &ts
}
