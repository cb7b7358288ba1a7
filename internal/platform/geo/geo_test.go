package geo

import (
	"math"
	"testing"
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	points := []Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 28.6139, Lng: 77.2090},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 90, Lng: 0},
	}
	for _, p := range points {
		if d := Distance(p, p); d > 1e-9 {
			t.Errorf("Distance(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinate{Lat: 28.6139, Lng: 77.2090}
	b := Coordinate{Lat: 19.0760, Lng: 72.8777}

	d1 := Distance(a, b)
	d2 := Distance(b, a)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistance_DelhiFixture(t *testing.T) {
	// Connaught Place to a point ~1.4 km away. The haversine result must land
	// in the 1.3-1.5 km band; a planar approximation would drift.
	a := Coordinate{Lat: 28.6139, Lng: 77.2090}
	b := Coordinate{Lat: 28.6200, Lng: 77.2200}

	d := Distance(a, b)
	if d < 1.3 || d > 1.5 {
		t.Errorf("Distance = %v km, want between 1.3 and 1.5", d)
	}
}

func TestDistance_NeverNegative(t *testing.T) {
	cases := []struct{ a, b Coordinate }{
		{Coordinate{Lat: 90, Lng: 0}, Coordinate{Lat: -90, Lng: 0}},
		{Coordinate{Lat: 0, Lng: 179.9}, Coordinate{Lat: 0, Lng: -179.9}},
		{Coordinate{Lat: 28.6139, Lng: 77.2090}, Coordinate{Lat: 28.7041, Lng: 77.1025}},
	}
	for _, tc := range cases {
		if d := Distance(tc.a, tc.b); d < 0 {
			t.Errorf("Distance(%v, %v) = %v, want >= 0", tc.a, tc.b, d)
		}
	}
}

func TestDistance_Antipodal(t *testing.T) {
	// Half the Earth's circumference, ~20015 km.
	d := Distance(Coordinate{Lat: 0, Lng: 0}, Coordinate{Lat: 0, Lng: 180})
	want := math.Pi * EarthRadiusKm
	if math.Abs(d-want) > 1.0 {
		t.Errorf("antipodal distance = %v, want ~%v", d, want)
	}
}

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"delhi", Coordinate{Lat: 28.6139, Lng: 77.2090}, true},
		{"origin", Coordinate{Lat: 0, Lng: 0}, true},
		{"lat too high", Coordinate{Lat: 90.1, Lng: 0}, false},
		{"lat too low", Coordinate{Lat: -90.1, Lng: 0}, false},
		{"lng too high", Coordinate{Lat: 0, Lng: 180.1}, false},
		{"lng too low", Coordinate{Lat: 0, Lng: -180.1}, false},
		{"boundary", Coordinate{Lat: -90, Lng: 180}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
