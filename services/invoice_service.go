package services

import (
	"context"
	"log"
	"strings"

	"siddeshlogistics/apperror"
	"siddeshlogistics/models"
	"siddeshlogistics/repository"
	"siddeshlogistics/utils"
)

// Renderer turns invoice HTML into a PDF.
type Renderer interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}

// PDFUploader stores a rendered invoice and returns where it can be fetched.
type PDFUploader interface {
	Upload(ctx context.Context, key string, body []byte) (string, error)
}

type Invoice struct {
	FileName string
	URL      string
	PDF      []byte
}

// InvoiceService composes the printable invoice of a bill from the bill,
// its shipment lines and the owner's letterhead.
type InvoiceService struct {
	Bills    *BillService
	Initials repository.InitialRepository
	Renderer Renderer
	Uploader PDFUploader // optional
	prefix   string
}

func NewInvoiceService(bills *BillService, initials repository.InitialRepository, renderer Renderer, prefix string) *InvoiceService {
	return &InvoiceService{
		Bills:    bills,
		Initials: initials,
		Renderer: renderer,
		prefix:   prefix,
	}
}

// BuildPDFData gathers everything the invoice template prints.
func (s *InvoiceService) BuildPDFData(ctx context.Context, ownerID, billID string) (*models.BillPDFData, error) {
	bill, err := s.Bills.GetBill(ctx, ownerID, billID)
	if err != nil {
		return nil, err
	}

	initial, err := s.Initials.GetInitial(ctx, ownerID)
	if err != nil {
		return nil, apperror.NewPersistenceError("load initial setup", err)
	}

	draft := ToDraft(bill, s.Bills.GetShipments(ctx, ownerID, billID))
	rows := make([]models.ShipmentRow, 0, len(draft.Shipments))
	for _, line := range draft.Shipments {
		rows = append(rows, models.ShipmentRow{
			SrNo:        line.SrNo,
			Date:        invoiceDate(line.Date),
			ContainerNo: line.ContainerNo,
			VehicleNo:   line.VehicleNo,
			From:        line.From,
			To:          line.To,
			Weight:      line.Weight,
			TotalFair:   utils.FormatINR(ParseAmount(line.TotalFair)),
		})
	}

	return &models.BillPDFData{
		Company:    initial,
		Bill:       bill,
		Shipments:  rows,
		Contacts:   contactLine(initial),
		Date:       utils.FormatInvoiceDate(bill.BillDate),
		Total:      utils.FormatINR(bill.TotalAmount),
		Advance:    utils.FormatINR(bill.TotalPaid),
		Balance:    utils.FormatINR(bill.BalanceAmount),
		TotalWords: utils.AmountInWords(bill.TotalAmount),
	}, nil
}

// Generate renders the invoice. With an uploader configured the PDF is also
// archived and its location saved on the bill; an upload failure only loses
// the archived copy.
func (s *InvoiceService) Generate(ctx context.Context, ownerID, billID string) (*Invoice, error) {
	data, err := s.BuildPDFData(ctx, ownerID, billID)
	if err != nil {
		return nil, err
	}

	html, err := utils.RenderBillHTML(data)
	if err != nil {
		return nil, err
	}
	pdf, err := s.Renderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, err
	}

	inv := &Invoice{
		FileName: utils.PDFFileName(s.prefix, data.Bill.BillNumber),
		PDF:      pdf,
	}

	if s.Uploader != nil {
		url, err := s.Uploader.Upload(ctx, inv.FileName, pdf)
		if err != nil {
			log.Printf("[WARN] invoice %s not archived: %v", inv.FileName, err)
			return inv, nil
		}
		inv.URL = url
	}
	if err := s.Bills.SavePDFLocation(ctx, ownerID, billID, inv.URL); err != nil {
		log.Printf("[WARN] pdf location of bill %s not saved: %v", billID, err)
	}
	return inv, nil
}

func contactLine(initial *models.InitialSetup) string {
	if initial == nil {
		return ""
	}
	parts := make([]string, 0, len(initial.Mobile))
	for _, m := range initial.Mobile {
		if m.Label == "" {
			parts = append(parts, m.Number)
			continue
		}
		parts = append(parts, m.Number+"("+m.Label+")")
	}
	return strings.Join(parts, ", ")
}

func invoiceDate(raw string) string {
	d, ok := parseDate(raw)
	if !ok {
		if raw == "" {
			return "-"
		}
		return raw
	}
	return utils.FormatInvoiceDate(d)
}
