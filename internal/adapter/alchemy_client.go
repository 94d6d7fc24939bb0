package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wallet-wrapped/internal/config"
	"github.com/wallet-wrapped/internal/errors"
	"github.com/wallet-wrapped/internal/models"
)

// AlchemyClient looks up the wallet's Warplet identity NFT on Base.
type AlchemyClient struct {
	apiKey   string
	baseURL  string
	contract string
	client   *http.Client
}

// NewAlchemyClient creates an Alchemy NFT API client.
func NewAlchemyClient(cfg *config.AlchemyConfig) *AlchemyClient {
	return &AlchemyClient{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		contract: cfg.ContractAddress,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

type alchemyOwnedNFTsResponse struct {
	OwnedNFTs []alchemyNFT `json:"ownedNfts"`
}

type alchemyNFT struct {
	Name    string          `json:"name"`
	TokenID string          `json:"tokenId"`
	Image   models.NFTImage `json:"image"`
}

// GetWarpletNFT returns the first Warplet NFT the wallet owns, or nil
// when it owns none.
func (c *AlchemyClient) GetWarpletNFT(ctx context.Context, owner string) (*models.WalletNFT, error) {
	query := url.Values{
		"owner":               {owner},
		"contractAddresses[]": {c.contract},
		"withMetadata":        {"true"},
	}
	endpoint := fmt.Sprintf("%s/nft/v3/%s/getNFTsForOwner?%s", c.baseURL, c.apiKey, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewProviderError("alchemy", "getNFTsForOwner", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewProviderError("alchemy", "getNFTsForOwner", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewProviderStatusError("alchemy", "getNFTsForOwner", resp.StatusCode)
	}

	var response alchemyOwnedNFTsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.NewProviderError("alchemy", "getNFTsForOwner", err)
	}

	if len(response.OwnedNFTs) == 0 {
		return nil, nil
	}

	nft := response.OwnedNFTs[0]
	return &models.WalletNFT{
		Name:    nft.Name,
		TokenID: nft.TokenID,
		Image:   nft.Image,
	}, nil
}
