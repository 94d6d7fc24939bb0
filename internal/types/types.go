// Package types provides common type definitions for the wallet wrapped system.
package types

// ChainID represents supported blockchain networks, using the chain slugs
// the data providers understand.
type ChainID string

const (
	// ChainEthereum represents the Ethereum mainnet
	ChainEthereum ChainID = "eth"
	// ChainBase represents the Base network
	ChainBase ChainID = "base"
	// ChainPolygon represents the Polygon network
	ChainPolygon ChainID = "polygon"
	// ChainArbitrum represents the Arbitrum network
	ChainArbitrum ChainID = "arbitrum"
	// ChainOptimism represents the Optimism network
	ChainOptimism ChainID = "optimism"
	// ChainBNB represents the BNB Chain (BSC)
	ChainBNB ChainID = "bsc"
	// ChainAvalanche represents the Avalanche C-Chain
	ChainAvalanche ChainID = "avalanche"
)

// DefaultChain is used when a request does not specify a chain.
const DefaultChain = ChainBase

// SupportedChains lists the chains requests may target.
var SupportedChains = []ChainID{
	ChainEthereum,
	ChainBase,
	ChainPolygon,
	ChainArbitrum,
	ChainOptimism,
	ChainBNB,
	ChainAvalanche,
}

// IsSupportedChain reports whether the given chain slug is one we serve.
func IsSupportedChain(chain ChainID) bool {
	for _, c := range SupportedChains {
		if c == chain {
			return true
		}
	}
	return false
}

// IncomeCategory classifies how a held token was acquired or what role it
// plays in the portfolio. CategoryHolding is the default and is excluded
// from the income breakdown.
type IncomeCategory string

const (
	// CategoryStaking represents liquid staking positions (stETH, rETH, ...)
	CategoryStaking IncomeCategory = "Staking"
	// CategoryLending represents lending protocol receipt tokens (aTokens, cTokens)
	CategoryLending IncomeCategory = "Lending"
	// CategoryLiquidity represents LP / yield farming positions
	CategoryLiquidity IncomeCategory = "Liquidity"
	// CategoryAirdrop represents tokens received with no observed purchase cost
	CategoryAirdrop IncomeCategory = "Airdrop"
	// CategoryHolding represents a plain spot holding (not income)
	CategoryHolding IncomeCategory = "Holding"
)

// Wallet archetypes, in classification priority order.
const (
	ArchetypeWhale       = "Based Whale"
	ArchetypeDegen       = "Diamond Handed Degen"
	ArchetypeAlphaHunter = "Alpha Hunter"
	ArchetypeMaximalist  = "Maximalist"
	ArchetypeCollector   = "JPEG Collector"
	ArchetypeExplorer    = "Base Explorer"
)

// ServiceError represents a structured error response
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}
