// Package adapter provides HTTP clients for the upstream data providers.
// Clients are thin: one request per call, context-aware, rate limited and
// without retry logic. Numeric fields stay in their wire shapes; the
// metrics core owns all parsing.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/wallet-wrapped/internal/config"
	"github.com/wallet-wrapped/internal/errors"
	"github.com/wallet-wrapped/internal/models"
	"github.com/wallet-wrapped/internal/types"
)

// MoralisClient fetches wallet trade history, holdings, stats and net
// worth from the Moralis deep-index API.
type MoralisClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewMoralisClient creates a Moralis API client.
func NewMoralisClient(cfg *config.MoralisConfig) *MoralisClient {
	return &MoralisClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// GetWalletProfitability returns the per-token trade history for a wallet
// on a chain.
func (c *MoralisClient) GetWalletProfitability(ctx context.Context, address string, chain types.ChainID) ([]models.TokenTradeRecord, error) {
	var response models.ProfitabilityResponse
	query := url.Values{"chain": {string(chain)}}
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/profitability", address), query, &response); err != nil {
		return nil, err
	}
	return response.Result, nil
}

// GetWalletTokenBalances returns the wallet's current token holdings,
// excluding spam and unverified contracts.
func (c *MoralisClient) GetWalletTokenBalances(ctx context.Context, address string, chain types.ChainID) ([]models.TokenHolding, error) {
	var response models.HoldingsResponse
	query := url.Values{
		"chain":                        {string(chain)},
		"exclude_spam":                 {"true"},
		"exclude_unverified_contracts": {"true"},
	}
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/tokens", address), query, &response); err != nil {
		return nil, err
	}
	return response.Result, nil
}

// GetWalletStats returns transfer and collection counts for a wallet.
func (c *MoralisClient) GetWalletStats(ctx context.Context, address string, chain types.ChainID) (*models.WalletStats, error) {
	var stats models.WalletStats
	query := url.Values{"chain": {string(chain)}}
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/stats", address), query, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetProfitabilitySummary returns the wallet's aggregate buy/sell profile.
func (c *MoralisClient) GetProfitabilitySummary(ctx context.Context, address string, chain types.ChainID) (*models.TradeSummary, error) {
	var summary models.TradeSummary
	query := url.Values{"chain": {string(chain)}}
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/profitability/summary", address), query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetWalletChains returns first/last transaction info across the given
// chains.
func (c *MoralisClient) GetWalletChains(ctx context.Context, address string, chains []types.ChainID) (*models.ChainActivity, error) {
	var activity models.ChainActivity
	query := url.Values{}
	for i, chain := range chains {
		query.Set(fmt.Sprintf("chains[%d]", i), string(chain))
	}
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/chains", address), query, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetNetWorth returns the wallet's total USD net worth over the given
// chains.
func (c *MoralisClient) GetNetWorth(ctx context.Context, address string, chains []types.ChainID) (*models.NetWorth, error) {
	var netWorth models.NetWorth
	query := url.Values{}
	for i, chain := range chains {
		query.Set(fmt.Sprintf("chains[%d]", i), string(chain))
	}
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/net-worth", address), query, &netWorth); err != nil {
		return nil, err
	}
	return &netWorth, nil
}

// get performs a rate-limited GET against the Moralis API and decodes the
// JSON response into out.
func (c *MoralisClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.NewProviderError("moralis", path, err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewProviderError("moralis", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewProviderError("moralis", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.NewProviderStatusError("moralis", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewProviderError("moralis", path, err)
	}
	return nil
}
