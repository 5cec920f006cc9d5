package catalog

import (
	"reflect"
	"testing"
)

func TestGradesOrdered(t *testing.T) {
	want := []string{"Grade 4.6", "Grade 8.8", "Grade 10.9"}
	if got := Grades(); !reflect.DeepEqual(got, want) {
		t.Errorf("Grades() = %v, want %v", got, want)
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		grade string
		want  []string
	}{
		{"Grade 4.6", []string{"M12", "M16", "M20", "M24", "M30", "M36"}},
		{"Grade 8.8", []string{"M12", "M16", "M20", "M24", "M30", "M36"}},
		{"Grade 10.9", []string{"M16", "M20", "M24", "M30"}},
		{"Grade 12.9", nil},
	}
	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			if got := Sizes(tt.grade); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sizes(%q) = %v, want %v", tt.grade, got, tt.want)
			}
		})
	}
}

func TestLookupGrade46M12(t *testing.T) {
	spec, ok := Lookup("Grade 4.6", "M12")
	if !ok {
		t.Fatal("Lookup() miss for Grade 4.6 M12")
	}
	if spec.ShearCapacityKN != 16.7 {
		t.Errorf("ShearCapacityKN = %v, want 16.7", spec.ShearCapacityKN)
	}
	if spec.TensionCapacityKN != 27 {
		t.Errorf("TensionCapacityKN = %v, want 27", spec.TensionCapacityKN)
	}
	if spec.TensileAreaMM2 != 84.3 {
		t.Errorf("TensileAreaMM2 = %v, want 84.3", spec.TensileAreaMM2)
	}
	if spec.UltimateStrengthMPa != 400 {
		t.Errorf("UltimateStrengthMPa = %v, want 400", spec.UltimateStrengthMPa)
	}
}

func TestLookupMiss(t *testing.T) {
	tests := []struct {
		name        string
		grade, size string
	}{
		{"unknown grade", "Grade 12.9", "M20"},
		{"unknown size", "Grade 8.8", "M64"},
		{"size not offered for grade", "Grade 10.9", "M12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Lookup(tt.grade, tt.size); ok {
				t.Errorf("Lookup(%q, %q) unexpectedly found a spec", tt.grade, tt.size)
			}
		})
	}
}

func TestTensionNeverBelowShearCapacity(t *testing.T) {
	// Sanity over the whole table: phiNtf = phiVf/0.62 > phiVf, and every
	// entry carries positive area and strength.
	for _, grade := range Grades() {
		for _, size := range Sizes(grade) {
			spec, ok := Lookup(grade, size)
			if !ok {
				t.Fatalf("Lookup(%q, %q) miss for listed pair", grade, size)
			}
			if spec.TensionCapacityKN <= spec.ShearCapacityKN {
				t.Errorf("%s %s: phiNtf %v <= phiVf %v", grade, size, spec.TensionCapacityKN, spec.ShearCapacityKN)
			}
			if spec.TensileAreaMM2 <= 0 || spec.UltimateStrengthMPa <= 0 {
				t.Errorf("%s %s: non-positive area or strength", grade, size)
			}
		}
	}
}
