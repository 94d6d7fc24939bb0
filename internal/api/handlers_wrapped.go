package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/wallet-wrapped/internal/errors"
	"github.com/wallet-wrapped/internal/models"
	"github.com/wallet-wrapped/internal/types"
)

// WrappedResponse is the envelope for snapshot responses. Address is the
// lowercased wallet the snapshot was computed for; FID is present only on
// the user route.
type WrappedResponse struct {
	Address  string                  `json:"address"`
	FID      *int64                  `json:"fid,omitempty"`
	Chain    types.ChainID           `json:"chain"`
	Snapshot *models.MetricsSnapshot `json:"snapshot"`
}

// handleGetWalletWrapped returns the wrapped snapshot for a wallet.
// GET /api/v1/wallets/{address}/wrapped?chain=base
func (s *Server) handleGetWalletWrapped(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	address := vars["address"]

	if !common.IsHexAddress(address) {
		respondServiceError(w, errors.NewInvalidAddressError(address))
		return
	}

	chain, err := chainFromQuery(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	snapshot, err := s.wrappedService.GetWrapped(r.Context(), address, chain)
	if err != nil {
		s.logger.WithError(err).WithField("address", address).Error("wrapped snapshot failed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, WrappedResponse{
		Address:  strings.ToLower(address),
		Chain:    chain,
		Snapshot: snapshot,
	})
}

// handleGetUserWrapped resolves a Farcaster ID to a wallet and returns
// that wallet's snapshot.
// GET /api/v1/users/{fid}/wrapped?chain=base
func (s *Server) handleGetUserWrapped(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fidStr := vars["fid"]

	fid, err := strconv.ParseInt(fidStr, 10, 64)
	if err != nil || fid <= 0 {
		respondServiceError(w, errors.NewInvalidFIDError(fidStr))
		return
	}

	chain, err := chainFromQuery(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	snapshot, address, err := s.wrappedService.GetWrappedByFID(r.Context(), fid, chain)
	if err != nil {
		s.logger.WithError(err).WithField("fid", fid).Error("wrapped snapshot failed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, WrappedResponse{
		Address:  address,
		FID:      &fid,
		Chain:    chain,
		Snapshot: snapshot,
	})
}

// chainFromQuery reads the chain query parameter, defaulting to base.
func chainFromQuery(r *http.Request) (types.ChainID, error) {
	raw := r.URL.Query().Get("chain")
	if raw == "" {
		return types.DefaultChain, nil
	}

	chain := types.ChainID(raw)
	if !types.IsSupportedChain(chain) {
		return "", errors.NewInvalidChainError(raw)
	}
	return chain, nil
}
