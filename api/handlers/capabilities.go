package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sprintertech/sprinter-settlement/registry"
)

type TokenCapabilities struct {
	Symbol        string `json:"symbol"`
	Address       string `json:"address"`
	Decimals      uint8  `json:"decimals"`
	Cctp          bool   `json:"cctp"`
	IntentAssetID string `json:"intentAssetId,omitempty"`
	Stargate      bool   `json:"stargate"`
}

type ChainCapabilities struct {
	Chain          string              `json:"chain"`
	Family         string              `json:"family"`
	ChainID        uint64              `json:"chainId,omitempty"`
	CctpDomain     *uint32             `json:"cctpDomain,omitempty"`
	StargateKey    string              `json:"stargateKey,omitempty"`
	StandardBridge bool                `json:"standardBridge"`
	Tokens         []TokenCapabilities `json:"tokens"`
}

type CapabilitiesHandler struct {
	registry *registry.Registry
}

func NewCapabilitiesHandler(registry *registry.Registry) *CapabilitiesHandler {
	return &CapabilitiesHandler{
		registry: registry,
	}
}

// HandleRequest returns the settlement capabilities of the requested chain
func (h *CapabilitiesHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entry, err := h.registry.Lookup(vars["chain"])
	if errors.Is(err, registry.ErrUnknownChain) {
		JSONError(w, err, http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	capabilities := ChainCapabilities{
		Chain:          entry.Key,
		Family:         string(entry.Family),
		ChainID:        entry.ChainID,
		StargateKey:    entry.StargateKey,
		StandardBridge: entry.StandardBridge,
		Tokens:         make([]TokenCapabilities, 0),
	}
	if entry.Cctp != nil {
		domain := entry.Cctp.Domain
		capabilities.CctpDomain = &domain
	}
	for _, symbol := range entry.Symbols() {
		tc, _ := entry.Token(symbol)
		capabilities.Tokens = append(capabilities.Tokens, TokenCapabilities{
			Symbol:        symbol,
			Address:       tc.Address,
			Decimals:      tc.Decimals,
			Cctp:          tc.Cctp,
			IntentAssetID: tc.IntentAssetID,
			Stargate:      tc.Stargate,
		})
	}

	writeJSON(w, capabilities, http.StatusOK)
}
