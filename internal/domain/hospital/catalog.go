package hospital

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Catalog is the in-memory hospital dataset plus the eligibility-program
// cross-reference. It is loaded once at startup and read-only afterwards, so
// it is safe to share across concurrent requests without locking.
type Catalog struct {
	hospitals []Hospital
	ayushman  map[int]*EligibilityDetails
}

type hospitalFile struct {
	Hospitals []Hospital `json:"hospitals"`
}

type ayushmanFile struct {
	AyushmanEmpaneled []EligibilityDetails `json:"ayushman_empaneled"`
}

// LoadCatalog reads the hospital and Ayushman datasets from dataDir. Load
// failures never propagate: a missing or malformed hospital file substitutes
// a built-in minimal record set, and a missing eligibility file substitutes
// an empty program table.
func LoadCatalog(dataDir string, logger zerolog.Logger) *Catalog {
	c := &Catalog{ayushman: make(map[int]*EligibilityDetails)}

	hospPath := filepath.Join(dataDir, "hospitals.json")
	data, err := os.ReadFile(hospPath)
	if err == nil {
		var f hospitalFile
		if uerr := json.Unmarshal(data, &f); uerr == nil && len(f.Hospitals) > 0 {
			c.hospitals = f.Hospitals
		} else {
			err = uerr
		}
	}
	if c.hospitals == nil {
		logger.Warn().Err(err).Str("path", hospPath).Msg("hospital dataset unavailable, using fallback records")
		c.hospitals = fallbackHospitals()
	}
	logger.Info().Int("count", len(c.hospitals)).Msg("loaded hospitals")

	ayushPath := filepath.Join(dataDir, "ayushman_hospitals.json")
	data, err = os.ReadFile(ayushPath)
	if err == nil {
		var f ayushmanFile
		if uerr := json.Unmarshal(data, &f); uerr == nil {
			for i := range f.AyushmanEmpaneled {
				e := f.AyushmanEmpaneled[i]
				c.ayushman[e.HospitalID] = &e
			}
		} else {
			err = uerr
		}
	}
	if err != nil {
		logger.Warn().Err(err).Str("path", ayushPath).Msg("ayushman dataset unavailable, using empty program table")
	}
	logger.Info().Int("count", len(c.ayushman)).Msg("loaded ayushman empanelments")

	return c
}

// NewCatalog builds a catalog from already-loaded records. Used by tests and
// by callers that source records elsewhere.
func NewCatalog(hospitals []Hospital, empaneled []EligibilityDetails) *Catalog {
	c := &Catalog{
		hospitals: hospitals,
		ayushman:  make(map[int]*EligibilityDetails, len(empaneled)),
	}
	for i := range empaneled {
		e := empaneled[i]
		c.ayushman[e.HospitalID] = &e
	}
	return c
}

// Hospitals returns all records in catalog order.
func (c *Catalog) Hospitals() []Hospital {
	return c.hospitals
}

// EligibilityFor returns the Ayushman empanelment record for a hospital, or
// nil when the hospital is not listed.
func (c *Catalog) EligibilityFor(hospitalID int) *EligibilityDetails {
	return c.ayushman[hospitalID]
}

// ByID returns the hospital with the given id, or nil when absent.
func (c *Catalog) ByID(id int) *Hospital {
	for i := range c.hospitals {
		if c.hospitals[i].ID == id {
			return &c.hospitals[i]
		}
	}
	return nil
}

func fallbackHospitals() []Hospital {
	return []Hospital{
		{
			ID:                1,
			Name:              "Local Government Hospital",
			Type:              "Government",
			Address:           "Main Road, City Center",
			Lat:               28.6139,
			Lng:               77.2090,
			Phone:             "+91-XXX-XXXXXXX",
			EmergencyServices: true,
			Ayushman:          true,
			Beds:              100,
			ICUBeds:           10,
			AmbulanceService:  true,
			Rating:            4.0,
		},
	}
}
