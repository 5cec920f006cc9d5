package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	boltgroup "Boltex/internal/calc/boltgroup"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string          `json:"project"`
	Author  string          `json:"author"`
	Title   string          `json:"title"`
	Notes   string          `json:"notes"`
	Calc    boltgroup.Input `json:"calc"`
}

type Handler struct{}

// Generate evaluates the embedded calculation and renders a PDF with the
// summary and the per-bolt force table.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Bolt Group Check"
	}

	res, err := boltgroup.Calculate(input.Calc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	verdict := "FAIL"
	if res.OK {
		verdict = "OK"
	}
	summary := []string{
		fmt.Sprintf("Bolts: %d (%s %s)", res.BoltCount, input.Calc.Grade, input.Calc.Size),
		fmt.Sprintf("Max shear: %.2f kN (capacity %.1f kN)", res.MaxShearKN, res.ShearCapacityKN),
		fmt.Sprintf("Max tension: %.2f kN (capacity %.1f kN)", res.MaxTensionKN, res.TensionCapacityKN),
		fmt.Sprintf("Polar moment Ibp: %.0f mm2", res.PolarMomentMM2),
		fmt.Sprintf("Shear stress: %.1f MPa, tensile stress: %.1f MPa", res.ShearStressMPa, res.TensileStressMPa),
		fmt.Sprintf("Combined ratio: %.3f - %s", res.CombinedRatio, verdict),
	}
	for _, line := range summary {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Bolt forces")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{15, 30, 30, 30, 30}
	headers := []string{"#", "x (mm)", "y (mm)", "V (kN)", "N (kN)"}
	for i, hdr := range headers {
		pdf.CellFormat(widths[i], 6, hdr, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for i, b := range res.Bolts {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f", b.XMM),
			fmt.Sprintf("%.1f", b.YMM),
			fmt.Sprintf("%.3f", b.ShearKN),
			fmt.Sprintf("%.3f", b.TensionKN),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"boltgroup-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
