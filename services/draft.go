package services

import "siddeshlogistics/models"

// UnknownField marks shipment details that cannot be recovered for bills
// saved before shipments had their own collection.
const UnknownField = "N/A"

// ToDraft maps a stored bill and its shipments back into the editable draft
// shape. A bill without shipment records gets one placeholder line carrying
// the bill total.
func ToDraft(bill *models.Bill, shipments []*models.Shipment) models.BillDraft {
	billDate := ""
	if !bill.BillDate.IsZero() {
		billDate = bill.BillDate.Format("2006-01-02")
	}

	draft := models.BillDraft{
		BillNo:          bill.BillNumber,
		Date:            billDate,
		CustomerName:    bill.CustomerName,
		CustomerAddress: bill.CustomerAddress,
		TotalAmount:     bill.TotalAmount,
		AdvanceAmount:   bill.TotalPaid,
		BalanceAmount:   bill.BalanceAmount,
	}

	if len(shipments) == 0 {
		draft.Shipments = []models.ShipmentDraft{{
			SrNo:        1,
			Date:        billDate,
			ContainerNo: UnknownField,
			VehicleNo:   UnknownField,
			From:        UnknownField,
			To:          UnknownField,
			Weight:      UnknownField,
			TotalFair:   bill.TotalAmount.String(),
		}}
		return draft
	}

	draft.Shipments = make([]models.ShipmentDraft, 0, len(shipments))
	for _, s := range shipments {
		line := models.ShipmentDraft{
			SrNo:        s.SrNo,
			ContainerNo: s.ContainerNo,
			VehicleNo:   s.VehicleNo,
			From:        s.FromLocation,
			To:          s.ToLocation,
			Weight:      s.Weight,
			TotalFair:   s.TotalFair.String(),
		}
		if s.Date != nil {
			line.Date = s.Date.Format("2006-01-02")
		}
		draft.Shipments = append(draft.Shipments, line)
	}
	return draft
}
