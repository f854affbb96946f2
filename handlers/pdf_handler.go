package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"siddeshlogistics/services"
)

type PDFHandler struct {
	Invoices *services.InvoiceService
	SavePath string // optional local copy directory
}

// BillPDF renders the invoice of a bill and returns it as a download.
func (h *PDFHandler) BillPDF(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Invoices.Generate(r.Context(), ownerOf(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if h.SavePath != "" {
		if err := h.saveCopy(inv); err != nil {
			// Log the error but don't block the response
			log.Printf("[WARN] failed to save %s: %v", inv.FileName, err)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+inv.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(inv.PDF)))
	if inv.URL != "" {
		w.Header().Set("X-File-URL", inv.URL)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(inv.PDF)
}

func (h *PDFHandler) saveCopy(inv *services.Invoice) error {
	if err := os.MkdirAll(h.SavePath, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(h.SavePath, inv.FileName), inv.PDF, 0644)
}
