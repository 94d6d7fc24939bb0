package models

import "github.com/shopspring/decimal"

// TokenHolding is one currently-held token with a nonzero balance, as
// returned by the holdings provider. Balance is an integer string scaled
// by Decimals. ROI and CostBasis are NOT provider fields: they are zero
// until the ROI calculator derives them.
type TokenHolding struct {
	TokenAddress        string          `json:"token_address"`
	Name                string          `json:"name"`
	Symbol              string          `json:"symbol"`
	Logo                *string         `json:"logo"`
	Thumbnail           *string         `json:"thumbnail"`
	Decimals            int32           `json:"decimals"`
	Balance             string          `json:"balance"`
	USDPrice            decimal.Decimal `json:"usd_price"`
	USDValue            decimal.Decimal `json:"usd_value"`
	PortfolioPercentage float64         `json:"portfolio_percentage"`

	// Derived at computation time by the metrics core.
	ROI       float64         `json:"roi"`
	CostBasis decimal.Decimal `json:"cost_basis"`
}

// DisplayLogo prefers the thumbnail over the full logo URL, and is nil
// when the provider supplied neither.
func (h *TokenHolding) DisplayLogo() *string {
	if h.Thumbnail != nil && *h.Thumbnail != "" {
		return h.Thumbnail
	}
	if h.Logo != nil && *h.Logo != "" {
		return h.Logo
	}
	return nil
}

// HoldingsResponse is the holdings provider's envelope.
type HoldingsResponse struct {
	Result []TokenHolding `json:"result"`
}
