package catalog

// BoltSpec holds the tabulated design capacities for one grade/size pair.
// Capacities are single-shear values with threads in the shear plane.
type BoltSpec struct {
	Grade               string  `json:"grade"`
	Size                string  `json:"size"`
	ShearCapacityKN     float64 `json:"phi_vf_kn"`
	TensionCapacityKN   float64 `json:"phi_ntf_kn"`
	TensileAreaMM2      float64 `json:"tensile_area_mm2"`
	UltimateStrengthMPa float64 `json:"fuf_mpa"`
}

// Static catalog, phi = 0.8: phiVf = 0.62*phi*fuf*As, phiNtf = phi*fuf*As.
var specs = []BoltSpec{
	{"Grade 4.6", "M12", 16.7, 27, 84.3, 400},
	{"Grade 4.6", "M16", 31.1, 50.2, 157, 400},
	{"Grade 4.6", "M20", 48.6, 78.4, 245, 400},
	{"Grade 4.6", "M24", 70, 113, 353, 400},
	{"Grade 4.6", "M30", 111, 180, 561, 400},
	{"Grade 4.6", "M36", 162, 261, 817, 400},
	{"Grade 8.8", "M12", 34.7, 56, 84.3, 830},
	{"Grade 8.8", "M16", 64.6, 104, 157, 830},
	{"Grade 8.8", "M20", 101, 163, 245, 830},
	{"Grade 8.8", "M24", 145, 234, 353, 830},
	{"Grade 8.8", "M30", 231, 373, 561, 830},
	{"Grade 8.8", "M36", 336, 543, 817, 830},
	{"Grade 10.9", "M16", 77.9, 126, 157, 1000},
	{"Grade 10.9", "M20", 122, 196, 245, 1000},
	{"Grade 10.9", "M24", 175, 282, 353, 1000},
	{"Grade 10.9", "M30", 278, 449, 561, 1000},
}

// Grades returns the distinct grade labels in catalog order.
func Grades() []string {
	var grades []string
	for _, s := range specs {
		if len(grades) == 0 || grades[len(grades)-1] != s.Grade {
			grades = append(grades, s.Grade)
		}
	}
	return grades
}

// Sizes returns the sizes available for a grade, in catalog order.
// Unknown grades yield an empty list.
func Sizes(grade string) []string {
	var sizes []string
	for _, s := range specs {
		if s.Grade == grade {
			sizes = append(sizes, s.Size)
		}
	}
	return sizes
}

// Lookup returns the spec for an exact grade/size match. A miss is a normal
// outcome (incompatible selection), not an error.
func Lookup(grade, size string) (BoltSpec, bool) {
	for _, s := range specs {
		if s.Grade == grade && s.Size == size {
			return s, true
		}
	}
	return BoltSpec{}, false
}
