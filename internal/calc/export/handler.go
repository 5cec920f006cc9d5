package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	boltgroup "Boltex/internal/calc/boltgroup"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

// CSV evaluates the posted input and streams the per-bolt table with a
// summary block as a CSV download.
func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.calculate(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\"boltgroup.csv\"")

	cw := csv.NewWriter(w)
	cw.Write([]string{"bolt", "x_mm", "y_mm", "shear_kn", "tension_kn"})
	for i, b := range res.Bolts {
		cw.Write([]string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.1f", b.XMM),
			fmt.Sprintf("%.1f", b.YMM),
			fmt.Sprintf("%.3f", b.ShearKN),
			fmt.Sprintf("%.3f", b.TensionKN),
		})
	}
	cw.Write(nil)
	cw.Write([]string{"max_shear_kn", fmt.Sprintf("%.3f", res.MaxShearKN)})
	cw.Write([]string{"max_tension_kn", fmt.Sprintf("%.3f", res.MaxTensionKN)})
	cw.Write([]string{"ibp_mm2", fmt.Sprintf("%.0f", res.PolarMomentMM2)})
	cw.Write([]string{"combined_ratio", fmt.Sprintf("%.4f", res.CombinedRatio)})
	cw.Write([]string{"ok", strconv.FormatBool(res.OK)})
	cw.Flush()
}

// XLSX is the spreadsheet variant of CSV.
func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	res, ok := h.calculate(w, r)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"bolt", "x_mm", "y_mm", "shear_kn", "tension_kn"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hdr)
	}
	for i, b := range res.Bolts {
		values := []interface{}{i + 1, b.XMM, b.YMM, b.ShearKN, b.TensionKN}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	row := len(res.Bolts) + 3
	summary := []struct {
		label string
		value interface{}
	}{
		{"max_shear_kn", res.MaxShearKN},
		{"max_tension_kn", res.MaxTensionKN},
		{"ibp_mm2", res.PolarMomentMM2},
		{"combined_ratio", res.CombinedRatio},
		{"ok", res.OK},
	}
	for i, s := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(1, row+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, row+i)
		f.SetCellValue(sheet, labelCell, s.label)
		f.SetCellValue(sheet, valueCell, s.value)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"boltgroup.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (boltgroup.Result, bool) {
	var input boltgroup.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return boltgroup.Result{}, false
	}
	res, err := boltgroup.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return boltgroup.Result{}, false
	}
	return res, true
}
