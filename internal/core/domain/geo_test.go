package domain

import (
	"math"
	"testing"
)

func TestDistanceKm_IdenticalPointsAreZero(t *testing.T) {
	p := Coordinate{Lat: 50.4501, Lng: 30.5234}
	if d := p.DistanceKm(p); d != 0 {
		t.Errorf("distance between identical points must be exactly zero, got %v", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := Coordinate{Lat: 50.4501, Lng: 30.5234}
	b := Coordinate{Lat: 49.8397, Lng: 24.0297}

	ab := a.DistanceKm(b)
	ba := b.DistanceKm(a)
	if math.Abs(ab-ba) > 1e-6 {
		t.Errorf("distance must be symmetric: a->b=%v b->a=%v", ab, ba)
	}
}

func TestDistanceKm_NonNegative(t *testing.T) {
	cases := []struct {
		a, b Coordinate
	}{
		{Coordinate{0, 0}, Coordinate{0, 0}},
		{Coordinate{50.4501, 30.5234}, Coordinate{50.4502, 30.5235}},
		{Coordinate{-33.8688, 151.2093}, Coordinate{51.5074, -0.1278}},
		{Coordinate{90, 0}, Coordinate{-90, 0}},
	}
	for _, tc := range cases {
		if d := tc.a.DistanceKm(tc.b); d < 0 {
			t.Errorf("distance %v -> %v is negative: %v", tc.a, tc.b, d)
		}
	}
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	cases := []struct {
		name      string
		a, b      Coordinate
		want      float64
		tolerance float64
	}{
		{
			name:      "one degree of latitude at the equator",
			a:         Coordinate{0, 0},
			b:         Coordinate{1, 0},
			want:      111.19,
			tolerance: 0.01,
		},
		{
			name:      "kyiv to lviv",
			a:         Coordinate{50.4501, 30.5234},
			b:         Coordinate{49.8397, 24.0297},
			want:      468,
			tolerance: 3,
		},
		{
			name:      "london to paris",
			a:         Coordinate{51.5074, -0.1278},
			b:         Coordinate{48.8566, 2.3522},
			want:      343.5,
			tolerance: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.DistanceKm(tc.b)
			if math.Abs(got-tc.want) > tc.tolerance {
				t.Errorf("expected ~%v km, got %v km", tc.want, got)
			}
		})
	}
}

func TestDistanceKm_AntipodalPointsNearHalfCircumference(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0, Lng: 180}

	want := math.Pi * earthRadiusKm
	if got := a.DistanceKm(b); math.Abs(got-want) > 0.01 {
		t.Errorf("antipodal distance: expected ~%v, got %v", want, got)
	}
}
