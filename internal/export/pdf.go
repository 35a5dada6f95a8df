package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/latherlab/saponify/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	qrSize       = 30.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// ExportPDF renders a printable recipe sheet: ingredient table, lye and
// water summary, quality indices, advisories, and a QR code encoding
// the recipe snapshot so a phone can re-import it.
func ExportPDF(path string, r model.Recipe, res model.Result) error {
	if len(r.Oils) == 0 {
		return fmt.Errorf("no oils to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize-5, 10, r.Name, "", 0, "L", false, 0, "")

	if err := drawSnapshotQR(pdf, r); err != nil {
		return err
	}

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + qrSize + 5
	y = drawOilsTable(pdf, r, res, y)
	y = drawBatchSummary(pdf, r, res, y+6)
	y = drawQualitySection(pdf, res, y+6)
	drawWarnings(pdf, res, y+6)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by Saponify - Soap Formulation Calculator", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// drawSnapshotQR places a QR code of the versioned recipe snapshot in
// the top-right corner.
func drawSnapshotQR(pdf *fpdf.Fpdf, r model.Recipe) error {
	payload, err := json.Marshal(struct {
		Version int          `json:"version"`
		Recipe  model.Recipe `json:"recipe"`
	}{Version: 1, Recipe: r})
	if err != nil {
		return fmt.Errorf("marshal recipe for QR: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_recipe_%s", r.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

// drawOilsTable renders the ingredient table and returns the next y.
func drawOilsTable(pdf *fpdf.Fpdf, r model.Recipe, res model.Result, y float64) float64 {
	colWidths := []float64{70, 30, 25, 30, 25}
	headers := []string{"Oil", "Weight (g)", "Percent", "SAP mg/g", "Iodine"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetTextColor(0, 0, 0)
	x := marginLeft
	for i, header := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, o := range r.Oils {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		cells := []string{
			o.Name,
			fmt.Sprintf("%.2f", o.WeightG),
			fmt.Sprintf("%.1f%%", o.Percent),
			blankIfZero(o.SAPKoh, "%.0f"),
			blankIfZero(o.IodineValue, "%.0f"),
		}
		x = marginLeft
		for j, cell := range cells {
			pdf.SetXY(x, y)
			align := "C"
			if j == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, align, true, 0, "")
			x += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(colWidths[0], 6, "Total", "1", 0, "L", false, 0, "")
	pdf.SetXY(marginLeft+colWidths[0], y)
	pdf.CellFormat(colWidths[1], 6, fmt.Sprintf("%.2f", res.TotalOilG), "1", 0, "C", false, 0, "")
	return y + 6
}

// drawBatchSummary renders the lye/water/yield block.
func drawBatchSummary(pdf *fpdf.Fpdf, r model.Recipe, res model.Result, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Batch", "", 0, "L", false, 0, "")
	y += 9

	if res.CannotComputeLye {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(contentWidth, 6, "Cannot compute lye: no oil has a known SAP value", "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		return y + 6
	}

	items := []struct {
		label string
		value string
	}{
		{"Lye type", string(r.Lye.Type)},
		{"Superfat", fmt.Sprintf("%.1f%%", r.Lye.SuperfatPct)},
		{"Lye (pure)", fmt.Sprintf("%.2f g", res.Lye.PureG)},
		{"Lye (adjusted)", fmt.Sprintf("%.2f g", res.Lye.AdjustedG)},
		{"Water", fmt.Sprintf("%.2f g", res.WaterG)},
		{"Batch yield", fmt.Sprintf("%.2f g", res.BatchYieldG)},
	}
	if res.Additives.ExtraLyeG > 0 {
		items = append(items, struct {
			label string
			value string
		}{"Lye incl. citric comp. *", fmt.Sprintf("%.2f g", res.LyeWithCitricG)})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(55, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 6
	}
	return y
}

// drawQualitySection renders the quality indices or a no-data note.
func drawQualitySection(pdf *fpdf.Fpdf, res model.Result, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Quality", "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "", 10)
	if !res.Quality.HasData {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(contentWidth, 6, "No fatty-acid data: indices unavailable", "", 0, "L", false, 0, "")
		return y + 6
	}

	for _, idx := range model.QualityIndices {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(40, 6, string(idx)+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(25, 6, fmt.Sprintf("%.1f", res.Quality.Indices[idx]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 6
	}
	extras := []string{fmt.Sprintf("coverage %.0f%%", res.Quality.CoveragePct)}
	if res.Quality.HasIodine {
		extras = append(extras, fmt.Sprintf("iodine %.1f", res.Quality.IodineValue))
	}
	if res.Quality.HasINS {
		extras = append(extras, fmt.Sprintf("INS %.1f", res.Quality.INS))
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(marginLeft+5, y)
	pdf.CellFormat(contentWidth, 5, strings.Join(extras, "  |  "), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return y + 5
}

// drawWarnings renders the advisory list, if any.
func drawWarnings(pdf *fpdf.Fpdf, res model.Result, y float64) {
	if len(res.Warnings) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(180, 90, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 7, "Advisories", "", 0, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, warning := range res.Warnings {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(contentWidth-5, 5, "- "+warning, "", 0, "L", false, 0, "")
		y += 5
	}
}

func blankIfZero(v float64, format string) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprintf(format, v)
}
