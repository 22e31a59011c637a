package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sprintertech/sprinter-settlement/settlement"
)

type Settler interface {
	Execute(ctx context.Context, req *settlement.SettlementRequest) *settlement.SettlementResult
	Preview(ctx context.Context, req *settlement.SettlementRequest) *settlement.SettlementResult
}

type SettlementHandler struct {
	settler Settler
}

func NewSettlementHandler(settler Settler) *SettlementHandler {
	return &SettlementHandler{
		settler: settler,
	}
}

// HandleSettlement routes the settlement request to a strategy and returns its
// result. Unsuccessful results are returned with status code 422.
func (h *SettlementHandler) HandleSettlement(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	h.respond(w, h.settler.Execute(r.Context(), req))
}

// HandlePreview returns an indicative result without moving funds.
func (h *SettlementHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	h.respond(w, h.settler.Preview(r.Context(), req))
}

func (h *SettlementHandler) decode(r *http.Request) (*settlement.SettlementRequest, error) {
	req := &settlement.SettlementRequest{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(req)
	if err != nil {
		return nil, err
	}

	if req.SourceChain == "" {
		return nil, fmt.Errorf("missing field 'sourceChain'")
	}
	if req.DestChain == "" {
		return nil, fmt.Errorf("missing field 'destChain'")
	}
	if req.Amount == "" {
		return nil, fmt.Errorf("missing field 'amount'")
	}
	return req, nil
}

func (h *SettlementHandler) respond(w http.ResponseWriter, result *settlement.SettlementResult) {
	if !result.Success {
		writeJSON(w, result, http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, result, http.StatusOK)
}
