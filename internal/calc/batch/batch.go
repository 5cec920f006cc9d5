package batch

import (
	"fmt"

	boltgroup "Boltex/internal/calc/boltgroup"
)

type Input struct {
	Items []boltgroup.Input `json:"items"`
}

type Result struct {
	Results []boltgroup.Result `json:"results"`
}

// Calculate evaluates the items in order. The first failing item aborts the
// whole batch; no partial results are returned.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]boltgroup.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := boltgroup.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
