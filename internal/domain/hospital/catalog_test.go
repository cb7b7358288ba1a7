package hospital

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCatalog_FromFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hospitals.json", `{
		"hospitals": [
			{"id": 1, "name": "AIIMS Delhi", "lat": 28.5672, "lng": 77.21, "ayushman": true},
			{"id": 2, "name": "Max Saket", "lat": 28.5286, "lng": 77.2193, "ayushman": false}
		]
	}`)
	writeFile(t, dir, "ayushman_hospitals.json", `{
		"ayushman_empaneled": [
			{"hospital_id": 1, "scheme": "PM-JAY", "coverage_amount": 500000, "valid_until": "2026-12-31"}
		]
	}`)

	c := LoadCatalog(dir, zerolog.Nop())
	if len(c.Hospitals()) != 2 {
		t.Fatalf("got %d hospitals, want 2", len(c.Hospitals()))
	}

	e := c.EligibilityFor(1)
	if e == nil || e.CoverageAmount != 500000 {
		t.Errorf("EligibilityFor(1) = %+v", e)
	}
	if c.EligibilityFor(2) != nil {
		t.Error("EligibilityFor(2) should be nil")
	}
}

func TestLoadCatalog_MissingHospitalFileUsesFallback(t *testing.T) {
	c := LoadCatalog(t.TempDir(), zerolog.Nop())

	if len(c.Hospitals()) == 0 {
		t.Fatal("expected fallback hospital records")
	}
	if c.Hospitals()[0].Name != "Local Government Hospital" {
		t.Errorf("fallback hospital = %q", c.Hospitals()[0].Name)
	}
}

func TestLoadCatalog_MalformedHospitalFileUsesFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hospitals.json", `{"hospitals": [`)

	c := LoadCatalog(dir, zerolog.Nop())
	if len(c.Hospitals()) == 0 {
		t.Fatal("expected fallback hospital records after parse failure")
	}
}

func TestLoadCatalog_MissingAyushmanFileIsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hospitals.json", `{"hospitals": [{"id": 1, "name": "X", "lat": 28.6, "lng": 77.2}]}`)

	c := LoadCatalog(dir, zerolog.Nop())
	if c.EligibilityFor(1) != nil {
		t.Error("expected empty ayushman table")
	}
}

func TestCatalog_ByID(t *testing.T) {
	c := testCatalog()

	if h := c.ByID(3); h == nil || h.Name != "Safdarjung Hospital" {
		t.Errorf("ByID(3) = %+v", h)
	}
	if h := c.ByID(404); h != nil {
		t.Errorf("ByID(404) = %+v, want nil", h)
	}
}
