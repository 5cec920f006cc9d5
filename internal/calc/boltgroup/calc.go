package boltgroup

import (
	"errors"
	"math"

	catalog "Boltex/internal/catalog"
)

const (
	PatternRectangular = "rectangular"
	PatternCircular    = "circular"
)

var (
	// ErrInsufficientBolts rejects groups of fewer than two bolts; a single
	// bolt cannot carry torsion or moment by force distribution.
	ErrInsufficientBolts = errors.New("bolt group needs at least two bolts")
	// ErrUnknownBoltSpec rejects grade/size pairs missing from the catalog.
	ErrUnknownBoltSpec = errors.New("unknown bolt grade or size")

	errInvalidArrangement = errors.New("invalid arrangement")
)

// Arrangement describes the fastener pattern. Rectangular uses rows/cols and
// spacings, circular uses diameter and bolt count; the unused fields are
// ignored.
type Arrangement struct {
	Pattern      string  `json:"pattern"`
	Rows         int     `json:"rows,omitempty"`
	Cols         int     `json:"cols,omitempty"`
	RowSpacingMM float64 `json:"row_spacing_mm,omitempty"`
	ColSpacingMM float64 `json:"col_spacing_mm,omitempty"`
	DiameterMM   float64 `json:"diameter_mm,omitempty"`
	BoltCount    int     `json:"bolt_count,omitempty"`
}

// Loads are the six applied load components at the group centroid.
// Nt is tension-positive.
type Loads struct {
	VxKN  float64 `json:"vx_kn"`
	VyKN  float64 `json:"vy_kn"`
	TbKNM float64 `json:"tb_knm"`
	MbKNM float64 `json:"mb_knm"`
	MmKNM float64 `json:"mm_knm"`
	NtKN  float64 `json:"nt_kn"`
}

type Input struct {
	Arrangement     Arrangement `json:"arrangement"`
	Loads           Loads       `json:"loads"`
	Grade           string      `json:"grade"`
	Size            string      `json:"size"`
	PryingAllowance float64     `json:"prying_allowance"`
}

// BoltForce is the demand on one bolt, position relative to the group
// centroid.
type BoltForce struct {
	XMM       float64 `json:"x_mm"`
	YMM       float64 `json:"y_mm"`
	ShearKN   float64 `json:"shear_kn"`
	TensionKN float64 `json:"tension_kn"`
}

type Result struct {
	BoltCount         int         `json:"bolt_count"`
	MaxShearKN        float64     `json:"max_shear_kn"`
	MaxTensionKN      float64     `json:"max_tension_kn"`
	PolarMomentMM2    float64     `json:"ibp_mm2"`
	ShearCapacityKN   float64     `json:"shear_capacity_kn"`
	TensionCapacityKN float64     `json:"tension_capacity_kn"`
	ShearStressMPa    float64     `json:"shear_stress_mpa"`
	TensileStressMPa  float64     `json:"tensile_stress_mpa"`
	CombinedRatio     float64     `json:"combined_ratio"`
	OK                bool        `json:"ok"`
	Bolts             []BoltForce `json:"bolts"`
	Notes             string      `json:"notes"`
}

type position struct {
	x, y float64
}

// Calculate distributes the applied loads over the bolt group by elastic
// rigid-body theory and checks the governing bolt against the catalog
// capacities. Pure function of its input; safe to call concurrently.
func Calculate(in Input) (Result, error) {
	if in.PryingAllowance < 1 {
		in.PryingAllowance = 1.0
	}
	positions, err := boltPositions(in.Arrangement)
	if err != nil {
		return Result{}, err
	}
	if len(positions) < 2 {
		return Result{}, ErrInsufficientBolts
	}
	spec, ok := catalog.Lookup(in.Grade, in.Size)
	if !ok {
		return Result{}, ErrUnknownBoltSpec
	}

	n := float64(len(positions))

	// Polar moment (per unit bolt area) and section-modulus half-depths.
	var ibp, xm, ym float64
	if in.Arrangement.Pattern == PatternCircular {
		r := in.Arrangement.DiameterMM / 2
		ibp = n * r * r
		xm, ym = r, r
	} else {
		for _, p := range positions {
			ibp += p.x*p.x + p.y*p.y
		}
		xm = float64(in.Arrangement.Cols) * in.Arrangement.ColSpacingMM / 2
		ym = float64(in.Arrangement.Rows) * in.Arrangement.RowSpacingMM / 2
	}

	bolts := make([]BoltForce, 0, len(positions))
	var maxShear, maxTension float64
	for i, p := range positions {
		// Direct shear share plus torsional contribution, in N. The reaction
		// opposes the applied load, hence the negations.
		fx := -in.Loads.VxKN*1000/n - in.Loads.TbKNM*1e6*p.y/ibp
		fy := -in.Loads.VyKN*1000/n - in.Loads.TbKNM*1e6*p.x/ibp
		shear := math.Sqrt(fx*fx+fy*fy) / 1000

		// Axial share plus biaxial bending. Compression-side bending terms
		// are not clamped: the model keeps every bolt in the elastic group.
		t := in.Loads.NtKN * 1000 / n
		t += in.Loads.MbKNM * 1e6 * p.y / (2 * ym * ym)
		t += in.Loads.MmKNM * 1e6 * p.x / (2 * xm * xm)
		tension := t * in.PryingAllowance / 1000

		if i == 0 || shear > maxShear {
			maxShear = shear
		}
		if i == 0 || tension > maxTension {
			maxTension = tension
		}
		bolts = append(bolts, BoltForce{XMM: p.x, YMM: p.y, ShearKN: shear, TensionKN: tension})
	}

	ratio := math.Pow(maxShear/spec.ShearCapacityKN, 2) + math.Pow(maxTension/spec.TensionCapacityKN, 2)

	return Result{
		BoltCount:         len(positions),
		MaxShearKN:        maxShear,
		MaxTensionKN:      maxTension,
		PolarMomentMM2:    ibp,
		ShearCapacityKN:   spec.ShearCapacityKN,
		TensionCapacityKN: spec.TensionCapacityKN,
		ShearStressMPa:    maxShear * 1000 / spec.TensileAreaMM2,
		TensileStressMPa:  maxTension * 1000 / spec.TensileAreaMM2,
		CombinedRatio:     ratio,
		OK:                ratio <= 1.0,
		Bolts:             bolts,
		Notes:             "Elastic bolt-group distribution; no neutral-axis shift.",
	}, nil
}

// boltPositions enumerates bolt coordinates centred on the group centroid.
func boltPositions(a Arrangement) ([]position, error) {
	switch a.Pattern {
	case PatternRectangular:
		if a.Rows < 1 || a.Cols < 1 || a.RowSpacingMM <= 0 || a.ColSpacingMM <= 0 {
			return nil, errInvalidArrangement
		}
		pts := make([]position, 0, a.Rows*a.Cols)
		for r := 0; r < a.Rows; r++ {
			y := float64(r)*a.RowSpacingMM - float64(a.Rows-1)*a.RowSpacingMM/2
			for c := 0; c < a.Cols; c++ {
				x := float64(c)*a.ColSpacingMM - float64(a.Cols-1)*a.ColSpacingMM/2
				pts = append(pts, position{x: x, y: y})
			}
		}
		return pts, nil
	case PatternCircular:
		if a.DiameterMM <= 0 || a.BoltCount < 0 {
			return nil, errInvalidArrangement
		}
		r := a.DiameterMM / 2
		pts := make([]position, a.BoltCount)
		for i := range pts {
			ang := float64(i) * 2 * math.Pi / float64(a.BoltCount)
			pts[i] = position{x: r * math.Cos(ang), y: r * math.Sin(ang)}
		}
		return pts, nil
	}
	return nil, errInvalidArrangement
}
