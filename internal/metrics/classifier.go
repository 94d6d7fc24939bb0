package metrics

import (
	"regexp"
	"strings"

	"github.com/wallet-wrapped/internal/models"
	"github.com/wallet-wrapped/internal/types"
)

// Token classification heuristics. Categories are not mutually exclusive
// by symbol alone, so the checks run in a fixed priority order and the
// first match wins: Airdrop, Staking, Lending, Liquidity, then the
// Holding default.

// liquidStakingSymbols is the liquid-staking-token allowlist matched
// case-insensitively against the holding's symbol.
var liquidStakingSymbols = []string{
	"STETH", "RETH", "CBETH", "WSTETH", "SFRXETH", "RPL", "EIGEN",
}

// Aave aTokens and Compound cTokens follow an uppercase-prefix naming
// convention. Matched against the original-case symbol on purpose:
// lowercased tickers like "aave" must not trip the prefix check.
var (
	aTokenPattern = regexp.MustCompile(`^A[A-Z]+`)
	cTokenPattern = regexp.MustCompile(`^C[A-Z]+`)
)

// airdropProfitThreshold is the realized-profit percentage above which a
// position is treated as effectively free money.
const airdropProfitThreshold = 1000

// ClassifyToken labels a held token with an income category. The trade
// record is the wallet's trade history for the same token and may be nil;
// symbol and name heuristics still apply without it.
func ClassifyToken(holding *models.TokenHolding, record *models.TokenTradeRecord) types.IncomeCategory {
	symbol := strings.ToUpper(holding.Symbol)
	name := strings.ToUpper(holding.Name)

	if isAirdrop(record) {
		return types.CategoryAirdrop
	}

	for _, s := range liquidStakingSymbols {
		if strings.Contains(symbol, s) {
			return types.CategoryStaking
		}
	}

	if aTokenPattern.MatchString(holding.Symbol) || cTokenPattern.MatchString(holding.Symbol) {
		return types.CategoryLending
	}

	if strings.Contains(name, "LP") ||
		strings.Contains(name, "UNISWAP") ||
		strings.Contains(name, "CURVE") ||
		strings.Contains(name, "BALANCER") ||
		strings.Contains(symbol, "V2") ||
		strings.Contains(symbol, "SLP") {
		return types.CategoryLiquidity
	}

	return types.CategoryHolding
}

// isAirdrop flags tokens received with zero observed purchase cost, or
// with an extreme realized gain over cost basis.
func isAirdrop(record *models.TokenTradeRecord) bool {
	if record == nil {
		return false
	}
	if parseDecimal(record.AvgBuyPriceUSD).IsZero() && record.TotalBuys == 0 {
		return true
	}
	return record.RealizedProfitPercentage > airdropProfitThreshold
}
