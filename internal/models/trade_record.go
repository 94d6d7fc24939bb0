package models

// TokenTradeRecord is the per-token profitability record returned by the
// trade-history provider. One record exists per token ever traded by a
// wallet on a chain. Amounts arrive as decimal strings to avoid upstream
// floating-point loss; the metrics core owns all parsing and never
// mutates these records.
type TokenTradeRecord struct {
	TokenAddress             string  `json:"token_address"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	Decimals                 string  `json:"decimals"`
	Logo                     string  `json:"logo,omitempty"`
	AvgBuyPriceUSD           string  `json:"avg_buy_price_usd"`
	AvgSellPriceUSD          string  `json:"avg_sell_price_usd"`
	TotalTokensBought        string  `json:"total_tokens_bought"`
	TotalTokensSold          string  `json:"total_tokens_sold"`
	TotalUSDInvested         string  `json:"total_usd_invested"`
	TotalSoldUSD             string  `json:"total_sold_usd"`
	AvgCostOfQuantitySold    string  `json:"avg_cost_of_quantity_sold"`
	CountOfTrades            int     `json:"count_of_trades"`
	TotalBuys                int     `json:"total_buys"`
	TotalSells               int     `json:"total_sells"`
	RealizedProfitUSD        string  `json:"realized_profit_usd"`
	RealizedProfitPercentage float64 `json:"realized_profit_percentage"`
	PossibleSpam             bool    `json:"possible_spam"`
}

// ProfitabilityResponse is the trade-history provider's envelope.
type ProfitabilityResponse struct {
	Result []TokenTradeRecord `json:"result"`
}
