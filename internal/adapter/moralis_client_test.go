package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallet-wrapped/internal/config"
	"github.com/wallet-wrapped/internal/types"
)

func newTestMoralisClient(t *testing.T, handler http.HandlerFunc) *MoralisClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewMoralisClient(&config.MoralisConfig{
		APIKey:            "test-key",
		BaseURL:           server.URL,
		RequestsPerSecond: 100,
		Timeout:           5 * time.Second,
	})
}

func TestMoralisClient_GetWalletProfitability(t *testing.T) {
	client := newTestMoralisClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallets/0xabc/profitability", r.URL.Path)
		assert.Equal(t, "base", r.URL.Query().Get("chain"))
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[{
			"token_address":"0xA",
			"symbol":"TKN",
			"realized_profit_usd":"150.00",
			"realized_profit_percentage":12.5,
			"total_sells":1,
			"count_of_trades":3
		}]}`))
	})

	records, err := client.GetWalletProfitability(context.Background(), "0xabc", types.ChainBase)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "0xA", records[0].TokenAddress)
	assert.Equal(t, "150.00", records[0].RealizedProfitUSD)
	assert.Equal(t, 3, records[0].CountOfTrades)
}

func TestMoralisClient_GetWalletTokenBalances(t *testing.T) {
	client := newTestMoralisClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallets/0xabc/tokens", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("exclude_spam"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[{
			"token_address":"0xB",
			"symbol":"USDC",
			"name":"USD Coin",
			"decimals":6,
			"balance":"2500000",
			"usd_price":1.0,
			"usd_value":2.5,
			"portfolio_percentage":100
		}]}`))
	})

	holdings, err := client.GetWalletTokenBalances(context.Background(), "0xabc", types.ChainBase)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "USDC", holdings[0].Symbol)
	assert.Equal(t, int32(6), holdings[0].Decimals)
	assert.Equal(t, "2.5", holdings[0].USDValue.String())
}

func TestMoralisClient_NonOKStatus(t *testing.T) {
	client := newTestMoralisClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetWalletStats(context.Background(), "0xabc", types.ChainBase)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestMoralisClient_GetNetWorth(t *testing.T) {
	client := newTestMoralisClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallets/0xabc/net-worth", r.URL.Path)
		assert.Equal(t, "base", r.URL.Query().Get("chains[0]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_networth_usd":"1234.56"}`))
	})

	netWorth, err := client.GetNetWorth(context.Background(), "0xabc", []types.ChainID{types.ChainBase})
	require.NoError(t, err)
	assert.Equal(t, "1234.56", netWorth.TotalNetWorthUSD)
}
