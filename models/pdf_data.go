package models

// ShipmentRow is a shipment formatted for the printed invoice.
type ShipmentRow struct {
	SrNo        int
	Date        string
	ContainerNo string
	VehicleNo   string
	From        string
	To          string
	Weight      string
	TotalFair   string
}

type BillPDFData struct {
	Company    *InitialSetup
	Bill       *Bill
	Shipments  []ShipmentRow
	Contacts   string // formatted mobile numbers
	Date       string // DD-MM-YYYY
	Total      string
	Advance    string
	Balance    string
	TotalWords string
}
