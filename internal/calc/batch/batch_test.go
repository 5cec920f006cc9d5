package batch

import (
	"errors"
	"strings"
	"testing"

	boltgroup "Boltex/internal/calc/boltgroup"
)

func validItem() boltgroup.Input {
	return boltgroup.Input{
		Arrangement: boltgroup.Arrangement{
			Pattern:    boltgroup.PatternCircular,
			DiameterMM: 300,
			BoltCount:  6,
		},
		Loads: boltgroup.Loads{VxKN: 15, NtKN: 30},
		Grade: "Grade 8.8",
		Size:  "M20",
	}
}

func TestEmptyBatch(t *testing.T) {
	if _, err := Calculate(Input{}); err == nil {
		t.Error("Calculate() expected error for empty batch")
	}
}

func TestBatchPreservesOrder(t *testing.T) {
	small := validItem()
	large := validItem()
	large.Loads.VxKN = 150

	res, err := Calculate(Input{Items: []boltgroup.Input{small, large}})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if len(res.Results) != 2 {
		t.Fatalf("Results length = %d, want 2", len(res.Results))
	}
	if res.Results[0].MaxShearKN >= res.Results[1].MaxShearKN {
		t.Errorf("results out of order: %v then %v", res.Results[0].MaxShearKN, res.Results[1].MaxShearKN)
	}
}

func TestBatchAbortsOnFirstFailure(t *testing.T) {
	bad := validItem()
	bad.Size = "M64"

	res, err := Calculate(Input{Items: []boltgroup.Input{validItem(), bad}})
	if !errors.Is(err, boltgroup.ErrUnknownBoltSpec) {
		t.Fatalf("Calculate() error = %v, want ErrUnknownBoltSpec", err)
	}
	if !strings.Contains(err.Error(), "item 1") {
		t.Errorf("error %q does not name the failing item", err)
	}
	if len(res.Results) != 0 {
		t.Errorf("partial results returned on failure: %d", len(res.Results))
	}
}
