package boltgroup

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	tol := 1e-9 * math.Max(1, math.Abs(want))
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func rect(rows, cols int, rowSpacing, colSpacing float64) Arrangement {
	return Arrangement{
		Pattern:      PatternRectangular,
		Rows:         rows,
		Cols:         cols,
		RowSpacingMM: rowSpacing,
		ColSpacingMM: colSpacing,
	}
}

func circ(diameter float64, count int) Arrangement {
	return Arrangement{Pattern: PatternCircular, DiameterMM: diameter, BoltCount: count}
}

func TestInsufficientBolts(t *testing.T) {
	tests := []struct {
		name        string
		arrangement Arrangement
	}{
		{"single bolt grid", rect(1, 1, 100, 100)},
		{"single bolt circle", circ(300, 1)},
		{"empty circle", circ(300, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(Input{Arrangement: tt.arrangement, Grade: "Grade 8.8", Size: "M20"})
			if !errors.Is(err, ErrInsufficientBolts) {
				t.Errorf("Calculate() error = %v, want ErrInsufficientBolts", err)
			}
		})
	}
}

func TestUnknownBoltSpec(t *testing.T) {
	_, err := Calculate(Input{Arrangement: rect(2, 2, 100, 100), Grade: "Grade 4.6", Size: "M64"})
	if !errors.Is(err, ErrUnknownBoltSpec) {
		t.Errorf("Calculate() error = %v, want ErrUnknownBoltSpec", err)
	}
}

func TestInvalidArrangement(t *testing.T) {
	tests := []struct {
		name        string
		arrangement Arrangement
	}{
		{"zero spacing", rect(2, 2, 0, 100)},
		{"negative spacing", rect(2, 2, 100, -50)},
		{"zero diameter", circ(0, 8)},
		{"unknown pattern", Arrangement{Pattern: "triangular"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Calculate(Input{Arrangement: tt.arrangement, Grade: "Grade 8.8", Size: "M20"}); err == nil {
				t.Error("Calculate() expected error, got nil")
			}
		})
	}
}

func TestCentroidAtOrigin(t *testing.T) {
	tests := []struct {
		name        string
		arrangement Arrangement
	}{
		{"4x4 grid", rect(4, 4, 150, 160)},
		{"3x5 grid", rect(3, 5, 90, 110)},
		{"single row", rect(1, 6, 75, 75)},
		{"single column", rect(7, 1, 80, 80)},
		{"8 bolt circle", circ(400, 8)},
		{"5 bolt circle", circ(250, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions, err := boltPositions(tt.arrangement)
			if err != nil {
				t.Fatalf("boltPositions() error = %v", err)
			}
			var sumX, sumY float64
			for _, p := range positions {
				sumX += p.x
				sumY += p.y
			}
			if math.Abs(sumX) > 1e-9 || math.Abs(sumY) > 1e-9 {
				t.Errorf("centroid offset = (%v, %v), want origin", sumX, sumY)
			}
		})
	}
}

func TestCircularPolarMoment(t *testing.T) {
	res, err := Calculate(Input{Arrangement: circ(400, 8), Grade: "Grade 8.8", Size: "M20"})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// Closed form n*r^2 for equidistant bolts.
	if res.PolarMomentMM2 != 8*200*200 {
		t.Errorf("PolarMomentMM2 = %v, want %v", res.PolarMomentMM2, 8*200*200)
	}
}

func TestPureAxialUniform(t *testing.T) {
	in := Input{
		Arrangement:     rect(2, 3, 100, 120),
		Loads:           Loads{NtKN: 60},
		Grade:           "Grade 8.8",
		Size:            "M24",
		PryingAllowance: 1.25,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// alpha * Nt / n, identical on every bolt.
	want := 1.25 * 60 / 6
	for i, b := range res.Bolts {
		approx(t, "bolt tension", b.TensionKN, want)
		if b.ShearKN != 0 {
			t.Errorf("bolt %d shear = %v, want 0", i, b.ShearKN)
		}
	}
	approx(t, "MaxTensionKN", res.MaxTensionKN, want)
}

func TestUniformDirectShear(t *testing.T) {
	in := Input{
		Arrangement: circ(300, 4),
		Loads:       Loads{VxKN: 30, VyKN: 40},
		Grade:       "Grade 8.8",
		Size:        "M20",
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// sqrt(Vx^2+Vy^2)/n with no torsion contribution.
	want := math.Sqrt(30*30+40*40) / 4
	for _, b := range res.Bolts {
		approx(t, "bolt shear", b.ShearKN, want)
	}
	approx(t, "MaxShearKN", res.MaxShearKN, want)
}

func TestCircularAxialWithPrying(t *testing.T) {
	in := Input{
		Arrangement:     circ(400, 8),
		Loads:           Loads{NtKN: 80},
		Grade:           "Grade 8.8",
		Size:            "M24",
		PryingAllowance: 1.1,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	for _, b := range res.Bolts {
		approx(t, "bolt tension", b.TensionKN, 11.0)
	}
}

func TestDefaultPryingAllowance(t *testing.T) {
	in := Input{
		Arrangement: rect(2, 2, 100, 100),
		Loads:       Loads{NtKN: 40},
		Grade:       "Grade 4.6",
		Size:        "M16",
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// Omitted allowance falls back to 1.0.
	approx(t, "MaxTensionKN", res.MaxTensionKN, 10)
}

func TestCompressionSideNotClamped(t *testing.T) {
	in := Input{
		Arrangement: rect(2, 2, 100, 100),
		Loads:       Loads{MbKNM: 10},
		Grade:       "Grade 8.8",
		Size:        "M20",
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// ym = 100 mm, so 10e6*50/(2*100^2) = 25 kN on the tension side and
	// -25 kN on the compression side.
	minTension := res.Bolts[0].TensionKN
	for _, b := range res.Bolts {
		if b.TensionKN < minTension {
			minTension = b.TensionKN
		}
	}
	approx(t, "MaxTensionKN", res.MaxTensionKN, 25)
	approx(t, "min bolt tension", minTension, -25)
}

// Regression baseline for the full superposition: 4x4 grid under all six load
// components, Grade 8.8 M24, alpha = 1.1. Expected values derived from the
// elastic distribution formulas at the governing corner bolt (240, 225).
func TestRectangularRegression(t *testing.T) {
	in := Input{
		Arrangement:     rect(4, 4, 150, 160),
		Loads:           Loads{VxKN: 20, VyKN: 5, TbKNM: 10, MbKNM: 50, MmKNM: 10, NtKN: 10},
		Grade:           "Grade 8.8",
		Size:            "M24",
		PryingAllowance: 1.1,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if res.BoltCount != 16 {
		t.Errorf("BoltCount = %d, want 16", res.BoltCount)
	}
	// Ibp = 4*2*(240^2+80^2) + 4*2*(225^2+75^2)
	approx(t, "PolarMomentMM2", res.PolarMomentMM2, 962000)

	fx := -20*1000/16.0 - 10*1e6*225/962000.0
	fy := -5*1000/16.0 - 10*1e6*240/962000.0
	wantShear := math.Sqrt(fx*fx+fy*fy) / 1000
	approx(t, "MaxShearKN", res.MaxShearKN, wantShear)

	wantTension := (10*1000/16.0 + 50*1e6*225/(2*300*300.0) + 10*1e6*240/(2*320*320.0)) * 1.1 / 1000
	approx(t, "MaxTensionKN", res.MaxTensionKN, wantTension)

	wantRatio := math.Pow(wantShear/145, 2) + math.Pow(wantTension/234, 2)
	approx(t, "CombinedRatio", res.CombinedRatio, wantRatio)
	if !res.OK {
		t.Errorf("OK = false, want true (ratio %v)", res.CombinedRatio)
	}

	approx(t, "ShearStressMPa", res.ShearStressMPa, wantShear*1000/353)
	approx(t, "TensileStressMPa", res.TensileStressMPa, wantTension*1000/353)
}

func TestIdempotence(t *testing.T) {
	in := Input{
		Arrangement:     rect(3, 2, 120, 140),
		Loads:           Loads{VxKN: 12, VyKN: -7, TbKNM: 3, MbKNM: 20, MmKNM: -5, NtKN: 15},
		Grade:           "Grade 10.9",
		Size:            "M24",
		PryingAllowance: 1.2,
	}
	first, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	second, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Calculate() is not deterministic for identical inputs")
	}
}
