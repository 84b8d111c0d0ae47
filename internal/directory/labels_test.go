package directory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLabels(t *testing.T) {
	labels := DefaultLabels()

	if got := labels.Country("United States"); got != "USA" {
		t.Errorf("Expected USA, got %s", got)
	}
	if got := labels.Country("France"); got != "France" {
		t.Errorf("Expected France unchanged, got %s", got)
	}
	if got := labels.Gender(GenderFemale); got != "F" {
		t.Errorf("Expected F, got %s", got)
	}
	if got := labels.Gender(GenderMale); got != "M" {
		t.Errorf("Expected M, got %s", got)
	}
	if got := labels.Gender(""); got != "M" {
		t.Errorf("Expected M for anything but female, got %s", got)
	}
}

func TestLoadLabels_EmptyPath(t *testing.T) {
	labels, err := LoadLabels("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := labels.Country("United States"); got != "USA" {
		t.Errorf("Expected default label, got %s", got)
	}
}

func TestLoadLabels_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.yml")
	content := "countries:\n  United Kingdom: UK\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write labels: %v", err)
	}

	labels, err := LoadLabels(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := labels.Country("United Kingdom"); got != "UK" {
		t.Errorf("Expected UK, got %s", got)
	}
	if got := labels.Country("United States"); got != "USA" {
		t.Errorf("Expected default USA to survive the merge, got %s", got)
	}
}

func TestLoadLabels_Errors(t *testing.T) {
	if _, err := LoadLabels(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("countries: [unclosed"), 0o644); err != nil {
		t.Fatalf("write labels: %v", err)
	}
	if _, err := LoadLabels(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLabelsRow(t *testing.T) {
	labels := DefaultLabels()
	row := labels.Row(UserRecord{
		ID:         7,
		FirstName:  "Emily",
		MaidenName: "Smith",
		LastName:   "Johnson",
		Gender:     GenderFemale,
		Age:        28,
		Title:      "Sales Manager",
		State:      "Alabama",
		Country:    "United States",
	})

	if row.FullName != "Emily Smith Johnson" {
		t.Errorf("Expected full name Emily Smith Johnson, got %q", row.FullName)
	}
	if row.Demography != "F/28" {
		t.Errorf("Expected demography F/28, got %s", row.Demography)
	}
	if row.Designation != "Sales Manager" {
		t.Errorf("Expected designation Sales Manager, got %s", row.Designation)
	}
	if row.Location != "Alabama, USA" {
		t.Errorf("Expected location Alabama, USA, got %s", row.Location)
	}

	male := labels.Row(UserRecord{Gender: GenderMale, Age: 40, State: "Île-de-France", Country: "France"})
	if male.Demography != "M/40" {
		t.Errorf("Expected demography M/40, got %s", male.Demography)
	}
	if male.Location != "Île-de-France, France" {
		t.Errorf("Expected location Île-de-France, France, got %s", male.Location)
	}
}
