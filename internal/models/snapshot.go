package models

import (
	"github.com/shopspring/decimal"

	"github.com/wallet-wrapped/internal/types"
)

// TradeHighlight references a trade record singled out by the P/L
// aggregator (biggest win, biggest loss) together with its signed
// realized profit. The "biggest loss" highlight may carry a positive
// profit when every trade was profitable; consumers must check the sign
// before presenting it as a loss.
type TradeHighlight struct {
	Token     TokenTradeRecord `json:"token"`
	ProfitUSD decimal.Decimal  `json:"profitUsd"`
}

// MostTraded references the trade record with the highest round-trip
// trade count.
type MostTraded struct {
	Token      TokenTradeRecord `json:"token"`
	TradeCount int              `json:"tradeCount"`
}

// IncomeDetail is one non-Holding classified token in the income
// breakdown.
type IncomeDetail struct {
	Category types.IncomeCategory `json:"category"`
	Symbol   string               `json:"symbol"`
	Value    decimal.Decimal      `json:"value"`
	Logo     *string              `json:"logo"`
}

// IncomeBreakdown buckets the wallet's income-like holdings by category.
// Total is always exactly staking + lending + liquidity + airdrop; plain
// holdings are excluded. The struct is always populated, never nil.
type IncomeBreakdown struct {
	Staking   decimal.Decimal `json:"staking"`
	Lending   decimal.Decimal `json:"lending"`
	Liquidity decimal.Decimal `json:"liquidity"`
	Airdrop   decimal.Decimal `json:"airdrop"`
	Total     decimal.Decimal `json:"total"`
	Details   []IncomeDetail  `json:"details"`
}

// RoiSummary covers the return-on-investment view over current holdings.
// BestAsset and WorstAsset are nil iff the wallet holds nothing;
// AverageRoi is weighted by cost basis and is 0 when nothing with a
// known cost basis is held.
type RoiSummary struct {
	BestAsset  *TokenHolding `json:"bestAsset"`
	WorstAsset *TokenHolding `json:"worstAsset"`
	AverageRoi float64       `json:"averageRoi"`
}

// MetricsSnapshot is the single coherent analytics view derived from all
// provider inputs. It is produced fresh on every computation; there is no
// incremental update path. USD amounts are decimals internally and
// serialize as JSON strings; rounding to cents is a presentation concern.
type MetricsSnapshot struct {
	TotalProfitLoss decimal.Decimal `json:"totalProfitLoss"`
	BiggestWin      *TradeHighlight `json:"biggestWin"`
	BiggestLoss     *TradeHighlight `json:"biggestLoss"`
	MostTradedToken *MostTraded     `json:"mostTradedToken"`
	Archetype       string          `json:"archetype"`
	WinRate         float64         `json:"winRate"`
	TotalTrades     int             `json:"totalTrades"`
	CurrentNetWorth decimal.Decimal `json:"currentNetWorth"`

	TotalTokenTransfers int             `json:"totalTokenTransfers"`
	TotalNFTCollections int             `json:"totalNFTCollections"`
	TotalTradeVolume    decimal.Decimal `json:"totalTradeVolume"`
	TotalBuys           int             `json:"totalBuys"`
	TotalSells          int             `json:"totalSells"`
	TotalBoughtVolume   decimal.Decimal `json:"totalBoughtVolume"`
	TotalSoldVolume     decimal.Decimal `json:"totalSoldVolume"`
	FirstTransactionAt  *string         `json:"firstTransactionDate"`

	WalletNFT *WalletNFT `json:"walletNft"`

	Holdings []TokenHolding  `json:"holdings"`
	Income   IncomeBreakdown `json:"income"`
	Roi      RoiSummary      `json:"roi"`
}
