package hospital

import (
	"math"
	"sort"
	"strings"

	"github.com/swasthya/triage/internal/platform/geo"
)

// Ranking defaults. Rank callers may tighten the limit further.
const (
	DefaultMaxDistanceKm = 50.0
	DefaultLimit         = 10

	// travelTimeFactor converts kilometers to an estimated travel time in
	// minutes. A fixed heuristic, not a routing calculation.
	travelTimeFactor = 2.0
)

// Ranker produces distance-annotated, filtered, sorted hospital lists from a
// read-only catalog. It holds no mutable state and is safe for concurrent use.
type Ranker struct {
	catalog *Catalog
}

// NewRanker creates a Ranker over the given catalog.
func NewRanker(catalog *Catalog) *Ranker {
	return &Ranker{catalog: catalog}
}

// Rank returns the hospitals within maxDistanceKm of origin, annotated with
// distance and travel time, sorted ascending by distance, truncated to limit.
// When ayushmanOnly is true, only Ayushman-empaneled hospitals are returned.
// An empty catalog or zero matches yields an empty slice, never an error.
//
// Hospitals exactly at maxDistanceKm are included; only strictly farther
// records are excluded. Ties on rounded distance keep catalog order.
func (r *Ranker) Rank(origin geo.Coordinate, ayushmanOnly bool, maxDistanceKm float64, limit int) []RankedHospital {
	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]RankedHospital, 0, len(r.catalog.Hospitals()))
	for _, h := range r.catalog.Hospitals() {
		distance := geo.Distance(origin, h.Location())
		if distance > maxDistanceKm {
			continue
		}
		if ayushmanOnly && !h.Ayushman {
			continue
		}

		rh := RankedHospital{
			Hospital:      h,
			DistanceKm:    roundTo1(distance),
			TravelTimeMin: int(math.Round(distance * travelTimeFactor)),
		}
		if h.Ayushman {
			rh.AyushmanDetails = r.catalog.EligibilityFor(h.ID)
		}
		ranked = append(ranked, rh)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// BySpecialty returns ranked hospitals offering the given specialty. The
// specialty match is case-insensitive and applied after the distance ranking
// and cap, so it can return fewer results than farther matches would allow.
// That filter-after-cap ordering is deliberate parity with existing behavior.
func (r *Ranker) BySpecialty(specialty string, origin geo.Coordinate, ayushmanOnly bool) []RankedHospital {
	ranked := r.Rank(origin, ayushmanOnly, DefaultMaxDistanceKm, DefaultLimit)

	matched := make([]RankedHospital, 0, len(ranked))
	for _, h := range ranked {
		for _, s := range h.Specialties {
			if strings.EqualFold(s, specialty) {
				matched = append(matched, h)
				break
			}
		}
	}
	return matched
}

// EmergencyContacts returns the emergency contact details for a hospital, or
// nil when the hospital is unknown. The ambulance phone falls back to the
// main phone when no dedicated ambulance contact exists.
func (r *Ranker) EmergencyContacts(hospitalID int) *EmergencyContacts {
	h := r.catalog.ByID(hospitalID)
	if h == nil {
		return nil
	}
	ambulance := h.AmbulanceContact
	if ambulance == "" {
		ambulance = h.Phone
	}
	return &EmergencyContacts{
		EmergencyPhone:    h.Phone,
		AmbulancePhone:    ambulance,
		EmergencyServices: h.EmergencyServices,
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
