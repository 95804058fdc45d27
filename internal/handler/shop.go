package handler

import (
	"net/http"

	"github.com/forgo/ascend/api/internal/service"
)

// ShopHandler handles the item shop
type ShopHandler struct {
	svc *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(svc *service.ShopService) *ShopHandler {
	return &ShopHandler{svc: svc}
}

// BuyRequest is the body of POST /v1/shop/buy
type BuyRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// Items handles GET /v1/shop/items
func (h *ShopHandler) Items(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	items, err := h.svc.Items(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, items, nil)
}

// Buy handles POST /v1/shop/buy
func (h *ShopHandler) Buy(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	var req BuyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.Buy(r.Context(), hunterID, req.ItemID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, result, nil)
}
