package models

// WalletStats carries transfer and collection counts from the
// wallet-stats provider. Counts arrive as decimal strings.
type WalletStats struct {
	NFTs           string       `json:"nfts"`
	Collections    string       `json:"collections"`
	Transactions   CountedTotal `json:"transactions"`
	NFTTransfers   CountedTotal `json:"nft_transfers"`
	TokenTransfers CountedTotal `json:"token_transfers"`
}

// CountedTotal wraps a provider count encoded as a string.
type CountedTotal struct {
	Total string `json:"total"`
}

// TradeSummary is the aggregate buy/sell profile from the trade-summary
// provider.
type TradeSummary struct {
	TotalCountOfTrades             int     `json:"total_count_of_trades"`
	TotalTradeVolume               string  `json:"total_trade_volume"`
	TotalRealizedProfitUSD         string  `json:"total_realized_profit_usd"`
	TotalRealizedProfitPercentage  float64 `json:"total_realized_profit_percentage"`
	TotalBuys                      int     `json:"total_buys"`
	TotalSells                     int     `json:"total_sells"`
	TotalBoughtVolumeUSD           string  `json:"total_bought_volume_usd"`
	TotalSoldVolumeUSD             string  `json:"total_sold_volume_usd"`
}

// ChainActivity lists the chains a wallet has touched, with its first and
// last transaction on each.
type ChainActivity struct {
	Address      string        `json:"address"`
	ActiveChains []ActiveChain `json:"active_chains"`
}

// ActiveChain is one chain's activity window for a wallet.
type ActiveChain struct {
	Chain            string         `json:"chain"`
	ChainID          string         `json:"chain_id"`
	FirstTransaction *TransactionAt `json:"first_transaction"`
	LastTransaction  *TransactionAt `json:"last_transaction"`
}

// TransactionAt pins a transaction to a block and timestamp.
type TransactionAt struct {
	BlockNumber     string `json:"block_number"`
	BlockTimestamp  string `json:"block_timestamp"`
	TransactionHash string `json:"transaction_hash"`
}

// NetWorth is the net-worth provider's response: a wallet-wide USD total
// plus optional per-chain splits.
type NetWorth struct {
	TotalNetWorthUSD string          `json:"total_networth_usd"`
	Chains           []ChainNetWorth `json:"chains,omitempty"`
}

// ChainNetWorth is one chain's contribution to the wallet net worth.
type ChainNetWorth struct {
	Chain                  string `json:"chain"`
	NativeBalance          string `json:"native_balance"`
	NativeBalanceFormatted string `json:"native_balance_formatted"`
	NativeBalanceUSD       string `json:"native_balance_usd"`
	TokenBalanceUSD        string `json:"token_balance_usd"`
	NetWorthUSD            string `json:"networth_usd"`
}

// WalletNFT is the identity NFT looked up for the wallet, when it owns one.
type WalletNFT struct {
	Name    string   `json:"name"`
	TokenID string   `json:"tokenId"`
	Image   NFTImage `json:"image"`
}

// NFTImage carries the rendered variants of an NFT image.
type NFTImage struct {
	OriginalURL  string `json:"originalUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PNGURL       string `json:"pngUrl"`
}
