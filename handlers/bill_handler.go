package handlers

import (
	"encoding/json"
	"net/http"

	"siddeshlogistics/apperror"
	"siddeshlogistics/models"
	"siddeshlogistics/services"

	"github.com/shopspring/decimal"
)

type BillHandler struct {
	Bills *services.BillService
}

// BillDetail is a stored bill with everything needed to show or edit it.
type BillDetail struct {
	Bill      *models.Bill       `json:"bill"`
	Shipments []*models.Shipment `json:"shipments"`
	Payments  []*models.Payment  `json:"payments"`
	Draft     models.BillDraft   `json:"draft"`
}

// PreviewTotals recomputes the totals of a draft without saving anything.
func (h *BillHandler) PreviewTotals(w http.ResponseWriter, r *http.Request) {
	var draft models.BillDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}
	draft.Renumber()
	services.RecalculateDraft(&draft)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var draft models.BillDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	bill, err := h.Bills.CreateBill(r.Context(), ownerOf(r), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Bill created successfully",
		Data:    bill,
	})
}

// ListBills handler, optionally filtered with ?status=pending|paid
func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	status := models.BillStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, r, apperror.NewValidationError("status must be pending or paid"))
		return
	}

	bills, err := h.Bills.ListBills(r.Context(), ownerOf(r), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bills})
}

func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	ctx, owner, id := r.Context(), ownerOf(r), r.PathValue("id")

	bill, err := h.Bills.GetBill(ctx, owner, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	shipments := h.Bills.GetShipments(ctx, owner, id)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: BillDetail{
		Bill:      bill,
		Shipments: shipments,
		Payments:  h.Bills.GetPaymentHistory(ctx, owner, id),
		Draft:     services.ToDraft(bill, shipments),
	}})
}

func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	if err := h.Bills.DeleteBill(r.Context(), ownerOf(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Bill deleted successfully"})
}

func (h *BillHandler) GetShipments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    h.Bills.GetShipments(r.Context(), ownerOf(r), r.PathValue("id")),
	})
}

func (h *BillHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    h.Bills.GetPaymentHistory(r.Context(), ownerOf(r), r.PathValue("id")),
	})
}

func (h *BillHandler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount json.RawMessage `json:"amount"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	var amount decimal.Decimal
	if len(req.Amount) == 0 || amount.UnmarshalJSON(req.Amount) != nil {
		writeError(w, r, apperror.NewValidationError("payment amount must be a positive number"))
		return
	}

	bill, err := h.Bills.ApplyPayment(r.Context(), ownerOf(r), r.PathValue("id"), amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Payment recorded",
		Data:    bill,
	})
}

func (h *BillHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.BillStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	bill, err := h.Bills.ToggleStatus(r.Context(), ownerOf(r), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bill})
}
