package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	boltgroup "Boltex/internal/calc/boltgroup"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                `json:"count"`
	Results []boltgroup.Result `json:"results"`
}

// BoltGroups reads one bolt group per spreadsheet row and evaluates each.
// Malformed or failing rows are skipped rather than aborting the import.
func (h *Handler) BoltGroups(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []boltgroup.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		res, err := boltgroup.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// Expected columns: pattern, rows, cols, row_spacing_mm, col_spacing_mm,
// diameter_mm, bolt_count, grade, size, vx_kn, vy_kn, tb_knm, mb_knm, mm_knm,
// nt_kn, prying_allowance.
func parseRow(row []string) (boltgroup.Input, error) {
	if len(row) < 9 {
		return boltgroup.Input{}, fmt.Errorf("bad row")
	}
	in := boltgroup.Input{
		Arrangement: boltgroup.Arrangement{Pattern: strings.TrimSpace(row[0])},
		Grade:       strings.TrimSpace(row[7]),
		Size:        strings.TrimSpace(row[8]),
	}
	in.Arrangement.Rows = toInt(row[1])
	in.Arrangement.Cols = toInt(row[2])
	in.Arrangement.RowSpacingMM = toFloat(row[3])
	in.Arrangement.ColSpacingMM = toFloat(row[4])
	in.Arrangement.DiameterMM = toFloat(row[5])
	in.Arrangement.BoltCount = toInt(row[6])

	loads := []*float64{
		&in.Loads.VxKN, &in.Loads.VyKN, &in.Loads.TbKNM,
		&in.Loads.MbKNM, &in.Loads.MmKNM, &in.Loads.NtKN,
	}
	for j, dst := range loads {
		if len(row) > 9+j && row[9+j] != "" {
			*dst = toFloat(row[9+j])
		}
	}
	if len(row) > 15 && row[15] != "" {
		in.PryingAllowance = toFloat(row[15])
	}
	return in, nil
}

func toFloat(s string) float64 {
	var v float64
	fmt.Sscanf(strings.TrimSpace(s), "%f", &v)
	return v
}

func toInt(s string) int {
	var v int
	fmt.Sscanf(strings.TrimSpace(s), "%d", &v)
	return v
}
