package hospital

import (
	"testing"

	"github.com/swasthya/triage/internal/platform/geo"
)

var delhiOrigin = geo.Coordinate{Lat: 28.6139, Lng: 77.2090}

func testCatalog() *Catalog {
	hospitals := []Hospital{
		{
			ID: 1, Name: "AIIMS Delhi", Address: "Ansari Nagar",
			Lat: 28.5672, Lng: 77.2100, Phone: "+91-11-26588500",
			EmergencyServices: true, Ayushman: true, Beds: 2478, ICUBeds: 200,
			Specialties: []string{"Cardiology", "Neurology", "Oncology"}, Rating: 4.6,
		},
		{
			ID: 2, Name: "Max Super Speciality", Address: "Saket",
			Lat: 28.5286, Lng: 77.2193, Phone: "+91-11-26515050",
			EmergencyServices: true, Ayushman: false, Beds: 500, ICUBeds: 60,
			Specialties: []string{"Cardiology", "Orthopedics"}, Rating: 4.4,
		},
		{
			ID: 3, Name: "Safdarjung Hospital", Address: "Ansari Nagar West",
			Lat: 28.5706, Lng: 77.2063, Phone: "+91-11-26707444",
			EmergencyServices: true, Ayushman: true, Beds: 1531, ICUBeds: 120,
			Specialties: []string{"General Medicine", "Pediatrics"}, Rating: 4.1,
		},
		{
			ID: 4, Name: "Jaipur Golden Hospital", Address: "Rohini",
			Lat: 28.7128, Lng: 77.1106, Phone: "+91-11-27525555",
			EmergencyServices: false, Ayushman: true, Beds: 260, ICUBeds: 30,
			Specialties: []string{"Nephrology"}, Rating: 3.9,
		},
		{
			// Far outside the 50 km default radius (Jaipur).
			ID: 5, Name: "SMS Hospital Jaipur", Address: "JLN Marg, Jaipur",
			Lat: 26.9055, Lng: 75.8164, Phone: "+91-141-2560291",
			EmergencyServices: true, Ayushman: true, Beds: 1800, ICUBeds: 150,
			Specialties: []string{"Cardiology"}, Rating: 4.2,
		},
	}
	empaneled := []EligibilityDetails{
		{HospitalID: 1, Scheme: "PM-JAY", CoverageAmount: 500000, ValidUntil: "2026-12-31"},
		{HospitalID: 3, Scheme: "PM-JAY", CoverageAmount: 500000, ValidUntil: "2026-12-31"},
		// Entry for a hospital id not present in the hospital list; the
		// program table may list details the main dataset lacks.
		{HospitalID: 99, Scheme: "PM-JAY", CoverageAmount: 500000},
	}
	return NewCatalog(hospitals, empaneled)
}

func TestRank_SortedByDistanceWithinRadius(t *testing.T) {
	ranker := NewRanker(testCatalog())

	got := ranker.Rank(delhiOrigin, false, DefaultMaxDistanceKm, DefaultLimit)
	if len(got) != 4 {
		t.Fatalf("got %d hospitals, want 4 (Jaipur excluded)", len(got))
	}
	for i := range got {
		if got[i].DistanceKm > DefaultMaxDistanceKm {
			t.Errorf("hospital %q at %.1f km exceeds max distance", got[i].Name, got[i].DistanceKm)
		}
		if i > 0 && got[i].DistanceKm < got[i-1].DistanceKm {
			t.Errorf("results not sorted: %.1f km before %.1f km", got[i-1].DistanceKm, got[i].DistanceKm)
		}
	}
	for _, h := range got {
		if h.ID == 5 {
			t.Error("hospital beyond max distance was returned")
		}
	}
}

func TestRank_AyushmanOnly(t *testing.T) {
	ranker := NewRanker(testCatalog())

	got := ranker.Rank(delhiOrigin, true, DefaultMaxDistanceKm, DefaultLimit)
	if len(got) == 0 {
		t.Fatal("expected ayushman hospitals within radius")
	}
	for _, h := range got {
		if !h.Ayushman {
			t.Errorf("non-ayushman hospital %q returned with ayushmanOnly=true", h.Name)
		}
	}
}

func TestRank_AttachesEligibilityDetails(t *testing.T) {
	ranker := NewRanker(testCatalog())

	got := ranker.Rank(delhiOrigin, true, DefaultMaxDistanceKm, DefaultLimit)
	for _, h := range got {
		switch h.ID {
		case 1, 3:
			if h.AyushmanDetails == nil {
				t.Errorf("hospital %d: expected ayushman details", h.ID)
			} else if h.AyushmanDetails.Scheme != "PM-JAY" {
				t.Errorf("hospital %d: scheme = %q", h.ID, h.AyushmanDetails.Scheme)
			}
		case 4:
			// Empaneled flag set but no program entry; absence is valid.
			if h.AyushmanDetails != nil {
				t.Errorf("hospital 4: unexpected ayushman details %+v", h.AyushmanDetails)
			}
		}
	}
}

func TestRank_TravelTimeEstimate(t *testing.T) {
	ranker := NewRanker(testCatalog())

	got := ranker.Rank(delhiOrigin, false, DefaultMaxDistanceKm, DefaultLimit)
	for _, h := range got {
		// Fixed heuristic: minutes = round(km * 2). Distances are rounded to
		// one decimal place, so allow the rounding slack.
		lo := int(2 * (h.DistanceKm - 0.05))
		hi := int(2*(h.DistanceKm+0.05)) + 1
		if h.TravelTimeMin < lo || h.TravelTimeMin > hi {
			t.Errorf("hospital %q: travel time %d min for %.1f km", h.Name, h.TravelTimeMin, h.DistanceKm)
		}
	}
}

func TestRank_RespectsLimit(t *testing.T) {
	ranker := NewRanker(testCatalog())

	got := ranker.Rank(delhiOrigin, false, DefaultMaxDistanceKm, 2)
	if len(got) != 2 {
		t.Fatalf("got %d hospitals, want 2", len(got))
	}
	// The two nearest must survive the cap.
	if got[0].ID != 1 && got[0].ID != 3 {
		t.Errorf("nearest hospital id = %d, want AIIMS or Safdarjung", got[0].ID)
	}
}

func TestRank_EmptyCatalog(t *testing.T) {
	ranker := NewRanker(NewCatalog(nil, nil))

	got := ranker.Rank(delhiOrigin, false, DefaultMaxDistanceKm, DefaultLimit)
	if len(got) != 0 {
		t.Fatalf("got %d hospitals from empty catalog, want 0", len(got))
	}
}

func TestBySpecialty_CaseInsensitive(t *testing.T) {
	ranker := NewRanker(testCatalog())

	got := ranker.BySpecialty("cardiology", delhiOrigin, false)
	if len(got) != 2 {
		t.Fatalf("got %d cardiology hospitals, want 2", len(got))
	}
	for _, h := range got {
		if h.ID != 1 && h.ID != 2 {
			t.Errorf("unexpected hospital %d in cardiology results", h.ID)
		}
	}
}

func TestBySpecialty_FilterAppliedAfterCap(t *testing.T) {
	// Build a catalog where 10 non-matching hospitals are nearer than the
	// only specialty match. The match falls outside the top-10 cap, so the
	// specialty query returns nothing even though a match exists farther out.
	// This pins the current filter-after-cap behavior.
	hospitals := make([]Hospital, 0, 11)
	for i := 1; i <= 10; i++ {
		hospitals = append(hospitals, Hospital{
			ID: i, Name: "Clinic", Lat: 28.6139 + float64(i)*0.001, Lng: 77.2090,
			Specialties: []string{"General Medicine"},
		})
	}
	hospitals = append(hospitals, Hospital{
		ID: 11, Name: "Burn Centre", Lat: 28.80, Lng: 77.2090,
		Specialties: []string{"Burn Care"},
	})
	ranker := NewRanker(NewCatalog(hospitals, nil))

	got := ranker.BySpecialty("Burn Care", delhiOrigin, false)
	if len(got) != 0 {
		t.Fatalf("got %d results, want 0 under filter-after-cap ordering", len(got))
	}
}

func TestEmergencyContacts(t *testing.T) {
	ranker := NewRanker(testCatalog())

	got := ranker.EmergencyContacts(1)
	if got == nil {
		t.Fatal("expected contacts for hospital 1")
	}
	if got.EmergencyPhone != "+91-11-26588500" {
		t.Errorf("emergency phone = %q", got.EmergencyPhone)
	}
	if got.AmbulancePhone != "+91-11-26588500" {
		t.Errorf("ambulance phone should fall back to main phone, got %q", got.AmbulancePhone)
	}
	if !got.EmergencyServices {
		t.Error("expected emergency services true")
	}

	if c := ranker.EmergencyContacts(404); c != nil {
		t.Errorf("expected nil for unknown hospital, got %+v", c)
	}
}
