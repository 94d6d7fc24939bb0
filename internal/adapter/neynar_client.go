package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wallet-wrapped/internal/config"
	"github.com/wallet-wrapped/internal/errors"
)

// NeynarClient resolves Farcaster identities to wallet addresses.
type NeynarClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewNeynarClient creates a Neynar API client.
func NewNeynarClient(cfg *config.NeynarConfig) *NeynarClient {
	return &NeynarClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Neynar wire types, reduced to the fields this service reads.

type neynarUserBulkResponse struct {
	Users []neynarUser `json:"users"`
}

type neynarUser struct {
	FID               int64                   `json:"fid"`
	Username          string                  `json:"username"`
	CustodyAddress    string                  `json:"custody_address"`
	VerifiedAddresses neynarVerifiedAddresses `json:"verified_addresses"`
}

type neynarVerifiedAddresses struct {
	Primary neynarPrimaryAddresses `json:"primary"`
}

type neynarPrimaryAddresses struct {
	EthAddress string `json:"eth_address"`
}

// ResolveWallet returns a FID's primary verified Ethereum address,
// falling back to the custody address.
func (c *NeynarClient) ResolveWallet(ctx context.Context, fid int64) (string, error) {
	endpoint := fmt.Sprintf("%s/user/bulk?fids=%d", c.baseURL, fid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.NewProviderError("neynar", "user/bulk", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.NewProviderError("neynar", "user/bulk", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewProviderStatusError("neynar", "user/bulk", resp.StatusCode)
	}

	var response neynarUserBulkResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", errors.NewProviderError("neynar", "user/bulk", err)
	}

	if len(response.Users) == 0 {
		return "", errors.NewUserNotFoundError(fid)
	}

	user := response.Users[0]
	if user.VerifiedAddresses.Primary.EthAddress != "" {
		return user.VerifiedAddresses.Primary.EthAddress, nil
	}
	if user.CustodyAddress != "" {
		return user.CustodyAddress, nil
	}
	return "", errors.NewUserNotFoundError(fid)
}
