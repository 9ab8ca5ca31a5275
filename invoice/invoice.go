// Package invoice renders order invoices to PDF and publishes them through
// the storage layer at invoices/{orderID}.pdf.
package invoice

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/storage"
)

type Generator struct {
	Files     storage.Store
	StoreName string
	Tagline   string
}

func NewGenerator(files storage.Store) *Generator {
	name := os.Getenv("STORE_NAME")
	if name == "" {
		name = "Mitra Buana Jaya Part"
	}
	tagline := os.Getenv("STORE_TAGLINE")
	if tagline == "" {
		tagline = "Solusi oli & sparepart premium"
	}
	return &Generator{Files: files, StoreName: name, Tagline: tagline}
}

// Generate renders the order to PDF, uploads it and returns the public URL.
// The caller is responsible for persisting the URL on the order.
func (g *Generator) Generate(order *models.Order) (string, error) {
	if order == nil || order.ID == "" {
		return "", fmt.Errorf("order id is required for invoice generation")
	}

	pdfBytes, err := g.Render(order)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("invoices/%s.pdf", order.ID)
	url, err := g.Files.Save(path, bytes.NewReader(pdfBytes))
	if err != nil {
		return "", fmt.Errorf("upload invoice: %w", err)
	}
	return url, nil
}

// Render produces the invoice PDF in memory.
func (g *Generator) Render(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 28

	// Header bar
	pdf.SetFillColor(239, 68, 68)
	pdf.Rect(14, 14, contentWidth, 18, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(18, 18)
	pdf.CellFormat(0, 10, "Invoice", "", 0, "L", false, 0, "")

	// Code-128 barcode of the order id
	if img, err := barcodePNG(order.ID); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		pdf.RegisterImageOptionsReader("order-barcode", opts, bytes.NewReader(img))
		pdf.ImageOptions("order-barcode", 14, 36, 60, 10, false, opts, 0, "")
	}
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(14, 47)
	pdf.CellFormat(60, 4, "#"+shortID(order.ID), "", 0, "L", false, 0, "")

	// Seller block on the left, invoice meta on the right
	pdf.SetXY(14, 56)
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth/2, 5, g.StoreName, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth/2, 5, "Invoice #"+shortID(order.ID), "", 1, "R", false, 0, "")
	pdf.SetTextColor(100, 116, 139)
	pdf.SetX(14)
	pdf.CellFormat(contentWidth/2, 5, g.Tagline, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, 5, order.CreatedAt.Format("02 Jan 2006 15:04"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Bill to
	pdf.SetX(14)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentWidth, 5, "Tagihkan ke", "", 1, "L", false, 0, "")
	pdf.SetX(14)
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 12)
	name := order.CustomerName
	if name == "" {
		name = "Pelanggan"
	}
	pdf.CellFormat(contentWidth, 6, name, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Items table
	colWidths := []float64{contentWidth - 80, 20, 30, 30}
	headers := []string{"Item", "Qty", "Harga", "Total"}
	pdf.SetX(14)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(colWidths[i], 6, header, "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "", 9)
	for _, item := range order.Items {
		lineTotal := item.PriceEach * int64(item.Quantity)
		pdf.SetX(14)
		pdf.CellFormat(colWidths[0], 6, item.ProductName, "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, strconv.Itoa(item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, FormatRupiah(item.PriceEach), "", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, FormatRupiah(lineTotal), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	// Totals
	totalsLabelX := 14 + colWidths[0] + colWidths[1]
	drawTotal := func(label, value string, accent bool) {
		pdf.SetX(totalsLabelX)
		if accent {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(239, 68, 68)
		} else {
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(100, 116, 139)
		}
		pdf.CellFormat(colWidths[2], 6, label, "", 0, "L", false, 0, "")
		if !accent {
			pdf.SetTextColor(15, 23, 42)
		}
		pdf.CellFormat(colWidths[3], 6, value, "", 1, "R", false, 0, "")
	}
	drawTotal("Subtotal", FormatRupiah(order.Subtotal), false)
	drawTotal("Ongkir", FormatRupiah(order.ShippingCost), false)
	drawTotal("Total", FormatRupiah(order.Total), true)
	pdf.Ln(6)

	// Payment instructions
	pdf.SetX(14)
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentWidth, 6, "Pembayaran", "T", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetX(14)
	pdf.MultiCell(contentWidth, 5,
		"Transfer sesuai total di atas, lalu unggah bukti pembayaran pada halaman pesanan. "+
			"Pesanan diproses setelah pembayaran terverifikasi.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func barcodePNG(text string) ([]byte, error) {
	code, err := code128.Encode(text)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, 400, 60)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func shortID(id string) string {
	id = strings.ToUpper(id)
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatRupiah renders an integer amount as "Rp 1.234.567".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	out := "Rp " + strings.Join(parts, ".")
	if negative {
		out = "-" + out
	}
	return out
}
