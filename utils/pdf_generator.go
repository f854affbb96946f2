package utils

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"siddeshlogistics/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

//go:embed templates/bill_template.html
var templateFS embed.FS

var billTemplate = template.Must(template.ParseFS(templateFS, "templates/bill_template.html"))

// RenderBillHTML fills the invoice template.
func RenderBillHTML(data *models.BillPDFData) ([]byte, error) {
	var buf bytes.Buffer
	if err := billTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render bill template: %w", err)
	}
	return buf.Bytes(), nil
}

// ChromePDFRenderer prints HTML to an A4 PDF with headless Chrome.
type ChromePDFRenderer struct {
	// Settle is how long the page gets to lay out before printing.
	Settle time.Duration
}

func NewChromePDFRenderer() *ChromePDFRenderer {
	return &ChromePDFRenderer{Settle: time.Second}
}

func (r *ChromePDFRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	tmpHTML := filepath.Join(os.TempDir(), "bill_"+time.Now().Format("20060102150405.000000000")+".html")
	if err := os.WriteFile(tmpHTML, html, 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(r.Settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdfBuf, nil
}
