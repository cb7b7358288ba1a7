package hospital

import (
	"github.com/swasthya/triage/internal/platform/geo"
)

// Hospital is a single facility record from the hospital dataset. Records are
// immutable after catalog load.
type Hospital struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type,omitempty"`
	Address           string   `json:"address"`
	Lat               float64  `json:"lat"`
	Lng               float64  `json:"lng"`
	Phone             string   `json:"phone"`
	AmbulanceContact  string   `json:"ambulance_contact,omitempty"`
	EmergencyServices bool     `json:"emergency_services"`
	Ayushman          bool     `json:"ayushman"`
	Beds              int      `json:"beds"`
	ICUBeds           int      `json:"icu_beds"`
	AmbulanceService  bool     `json:"ambulance_service"`
	Specialties       []string `json:"specialties,omitempty"`
	Rating            float64  `json:"rating"`
}

// Location returns the hospital's coordinate.
func (h *Hospital) Location() geo.Coordinate {
	return geo.Coordinate{Lat: h.Lat, Lng: h.Lng}
}

// EligibilityDetails holds the Ayushman Bharat empanelment record for a
// hospital. A hospital may have no entry; that is not an error.
type EligibilityDetails struct {
	HospitalID         int      `json:"hospital_id"`
	Scheme             string   `json:"scheme,omitempty"`
	CoverageAmount     int      `json:"coverage_amount,omitempty"`
	SpecialtiesCovered []string `json:"specialties_covered,omitempty"`
	ValidUntil         string   `json:"valid_until,omitempty"`
}

// RankedHospital is a Hospital annotated with the distance from the query
// origin and a travel-time estimate. Built per request, never persisted.
type RankedHospital struct {
	Hospital
	DistanceKm      float64             `json:"distance_km"`
	TravelTimeMin   int                 `json:"travel_time_min"`
	AyushmanDetails *EligibilityDetails `json:"ayushman_details,omitempty"`
}

// EmergencyContacts is the contact summary for a single hospital.
type EmergencyContacts struct {
	EmergencyPhone    string `json:"emergency_phone"`
	AmbulancePhone    string `json:"ambulance_phone"`
	EmergencyServices bool   `json:"emergency_services"`
}
