package metrics

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wallet-wrapped/internal/models"
	"github.com/wallet-wrapped/internal/types"
)

func TestAssemble_EmptyWallet(t *testing.T) {
	// All optional inputs absent, no trades, no holdings: everything
	// degrades to zero/nil defaults, nothing panics.
	snapshot := Assemble(Inputs{})

	if !snapshot.TotalProfitLoss.IsZero() {
		t.Errorf("expected zero P/L, got %s", snapshot.TotalProfitLoss)
	}
	if snapshot.WinRate != 0 {
		t.Errorf("expected winRate 0, got %f", snapshot.WinRate)
	}
	if snapshot.TotalTrades != 0 {
		t.Errorf("expected totalTrades 0, got %d", snapshot.TotalTrades)
	}
	if snapshot.Archetype != types.ArchetypeExplorer {
		t.Errorf("expected archetype %q, got %q", types.ArchetypeExplorer, snapshot.Archetype)
	}
	if !snapshot.Income.Total.IsZero() {
		t.Errorf("expected zero income total, got %s", snapshot.Income.Total)
	}
	if snapshot.Roi.AverageRoi != 0 || snapshot.Roi.BestAsset != nil || snapshot.Roi.WorstAsset != nil {
		t.Errorf("unexpected roi summary: %+v", snapshot.Roi)
	}
	if snapshot.BiggestWin != nil || snapshot.BiggestLoss != nil || snapshot.MostTradedToken != nil {
		t.Error("expected nil trade highlights")
	}
	if snapshot.FirstTransactionAt != nil {
		t.Errorf("expected nil first transaction date, got %v", *snapshot.FirstTransactionAt)
	}
	if len(snapshot.Holdings) != 0 {
		t.Errorf("expected empty holdings, got %d", len(snapshot.Holdings))
	}
}

func TestAssemble_FullInputs(t *testing.T) {
	in := Inputs{
		TradeRecords: []models.TokenTradeRecord{
			{
				TokenAddress:      "0xAAA",
				Symbol:            "WIN",
				Name:              "Winner",
				TotalSells:        2,
				TotalBuys:         3,
				AvgBuyPriceUSD:    "10",
				RealizedProfitUSD: "500",
				CountOfTrades:     4,
			},
			{
				TokenAddress:      "0xBBB",
				Symbol:            "LOSE",
				Name:              "Loser",
				TotalSells:        1,
				TotalBuys:         1,
				AvgBuyPriceUSD:    "2",
				RealizedProfitUSD: "-100",
				CountOfTrades:     2,
			},
		},
		Holdings: []models.TokenHolding{
			{
				TokenAddress:        "0xaaa",
				Symbol:              "WIN",
				Name:                "Winner",
				Decimals:            0,
				Balance:             "10",
				USDValue:            decimal.NewFromInt(150),
				PortfolioPercentage: 60,
			},
			{
				TokenAddress:        "0xCCC",
				Symbol:              "WSTETH",
				Name:                "Wrapped stETH",
				Decimals:            0,
				Balance:             "1",
				USDValue:            decimal.NewFromInt(100),
				PortfolioPercentage: 40,
			},
		},
		Stats: &models.WalletStats{
			Collections:    "12",
			TokenTransfers: models.CountedTotal{Total: "345"},
		},
		Summary: &models.TradeSummary{
			TotalTradeVolume:     "12345.67",
			TotalBuys:            40,
			TotalSells:           35,
			TotalBoughtVolumeUSD: "7000.50",
			TotalSoldVolumeUSD:   "5345.17",
		},
		Chains: &models.ChainActivity{
			ActiveChains: []models.ActiveChain{
				{
					Chain: "base",
					FirstTransaction: &models.TransactionAt{
						BlockTimestamp: "2021-07-01T10:00:00.000Z",
					},
				},
			},
		},
		NetWorth: &models.NetWorth{TotalNetWorthUSD: "2500.75"},
		NFT:      &models.WalletNFT{Name: "Warplet #7", TokenID: "7"},
	}

	snapshot := Assemble(in)

	if !snapshot.TotalProfitLoss.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected P/L 400, got %s", snapshot.TotalProfitLoss)
	}
	if snapshot.WinRate != 50 {
		t.Errorf("expected winRate 50, got %f", snapshot.WinRate)
	}
	if snapshot.TotalTrades != 6 {
		t.Errorf("expected totalTrades 6, got %d", snapshot.TotalTrades)
	}
	if snapshot.BiggestWin == nil || snapshot.BiggestWin.Token.Symbol != "WIN" {
		t.Fatalf("unexpected biggest win: %+v", snapshot.BiggestWin)
	}
	if snapshot.BiggestLoss == nil || snapshot.BiggestLoss.Token.Symbol != "LOSE" {
		t.Fatalf("unexpected biggest loss: %+v", snapshot.BiggestLoss)
	}
	if !snapshot.CurrentNetWorth.Equal(decimal.RequireFromString("2500.75")) {
		t.Errorf("expected net worth 2500.75, got %s", snapshot.CurrentNetWorth)
	}
	if snapshot.TotalTokenTransfers != 345 || snapshot.TotalNFTCollections != 12 {
		t.Errorf("unexpected pass-through stats: %d / %d", snapshot.TotalTokenTransfers, snapshot.TotalNFTCollections)
	}
	if !snapshot.TotalTradeVolume.Equal(decimal.RequireFromString("12345.67")) {
		t.Errorf("unexpected trade volume: %s", snapshot.TotalTradeVolume)
	}
	if snapshot.TotalBuys != 40 || snapshot.TotalSells != 35 {
		t.Errorf("unexpected buy/sell counts: %d / %d", snapshot.TotalBuys, snapshot.TotalSells)
	}
	if snapshot.FirstTransactionAt == nil || *snapshot.FirstTransactionAt != "2021-07-01T10:00:00.000Z" {
		t.Errorf("unexpected first transaction date: %v", snapshot.FirstTransactionAt)
	}
	if snapshot.WalletNFT == nil || snapshot.WalletNFT.TokenID != "7" {
		t.Errorf("unexpected wallet NFT: %+v", snapshot.WalletNFT)
	}

	// The WIN holding links to its trade record case-insensitively:
	// cost basis 10 * 10 = 100, worth 150 → ROI 50%.
	if len(snapshot.Holdings) != 2 {
		t.Fatalf("expected 2 holdings, got %d", len(snapshot.Holdings))
	}
	win := snapshot.Holdings[0]
	if !win.CostBasis.Equal(decimal.NewFromInt(100)) || win.ROI != 50 {
		t.Errorf("unexpected WIN holding roi: basis=%s roi=%f", win.CostBasis, win.ROI)
	}

	// The staking holding feeds the income breakdown.
	if !snapshot.Income.Staking.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected staking income 100, got %s", snapshot.Income.Staking)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	in := Inputs{
		TradeRecords: []models.TokenTradeRecord{
			{TokenAddress: "0xA", TotalSells: 1, RealizedProfitUSD: "150.00", CountOfTrades: 1},
			{TokenAddress: "0xB", TotalSells: 2, RealizedProfitUSD: "-3.50", CountOfTrades: 5},
		},
		Holdings: []models.TokenHolding{
			{TokenAddress: "0xA", Symbol: "TKN", Decimals: 6, Balance: "1000000", USDValue: decimal.NewFromInt(42)},
		},
		NetWorth: &models.NetWorth{TotalNetWorthUSD: "123.45"},
	}

	first := Assemble(in)
	second := Assemble(in)

	if !reflect.DeepEqual(first, second) {
		t.Error("assembling identical inputs twice produced different snapshots")
	}
}

func TestAssemble_PartialOptionalInputs(t *testing.T) {
	// Only stats resolved; everything else absent. Fields covered by the
	// missing sources default, the present ones are used.
	snapshot := Assemble(Inputs{
		Stats: &models.WalletStats{
			Collections:    "40",
			TokenTransfers: models.CountedTotal{Total: "7"},
		},
	})

	if snapshot.TotalNFTCollections != 40 || snapshot.TotalTokenTransfers != 7 {
		t.Errorf("unexpected stats: %+v", snapshot)
	}
	// 40 collections and nothing else → JPEG Collector.
	if snapshot.Archetype != types.ArchetypeCollector {
		t.Errorf("expected %q, got %q", types.ArchetypeCollector, snapshot.Archetype)
	}
	if !snapshot.CurrentNetWorth.IsZero() || !snapshot.TotalTradeVolume.IsZero() {
		t.Error("absent optional inputs must default to zero")
	}
}

func TestAssemble_MalformedStatsTreatedAsZero(t *testing.T) {
	snapshot := Assemble(Inputs{
		Stats: &models.WalletStats{
			Collections:    "lots",
			TokenTransfers: models.CountedTotal{Total: ""},
		},
		NetWorth: &models.NetWorth{TotalNetWorthUSD: "n/a"},
	})

	if snapshot.TotalNFTCollections != 0 || snapshot.TotalTokenTransfers != 0 {
		t.Errorf("malformed counts must parse to 0: %+v", snapshot)
	}
	if !snapshot.CurrentNetWorth.IsZero() {
		t.Errorf("malformed net worth must parse to 0, got %s", snapshot.CurrentNetWorth)
	}
}
