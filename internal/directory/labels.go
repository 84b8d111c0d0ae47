package directory

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Labels maps raw field values to their display form. Labels never affect
// filtering, sorting or pagination.
type Labels struct {
	Countries map[string]string `yaml:"countries"`
}

// DefaultLabels abbreviates "United States" and leaves other countries as is.
func DefaultLabels() Labels {
	return Labels{
		Countries: map[string]string{
			"United States": "USA",
		},
	}
}

// LoadLabels reads a labels YAML file and merges it over the defaults. An
// empty path returns the defaults.
func LoadLabels(path string) (Labels, error) {
	labels := DefaultLabels()
	if path == "" {
		return labels, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Labels{}, fmt.Errorf("read labels file: %w", err)
	}
	var file Labels
	if err := yaml.Unmarshal(b, &file); err != nil {
		return Labels{}, fmt.Errorf("parse labels file: %w", err)
	}
	for raw, label := range file.Countries {
		labels.Countries[raw] = label
	}
	return labels, nil
}

// Country returns the display label for a raw country value.
func (l Labels) Country(country string) string {
	if label, ok := l.Countries[country]; ok {
		return label
	}
	return country
}

// Gender abbreviates a raw gender: "female" is F, anything else M.
func (l Labels) Gender(gender Gender) string {
	if gender == GenderFemale {
		return "F"
	}
	return "M"
}

// Row maps a record to its display row.
func (l Labels) Row(r UserRecord) UserRow {
	return UserRow{
		ID:          r.ID,
		Image:       r.Image,
		FirstName:   r.FirstName,
		FullName:    strings.Join([]string{r.FirstName, r.MaidenName, r.LastName}, " "),
		Demography:  fmt.Sprintf("%s/%d", l.Gender(r.Gender), r.Age),
		Designation: r.Title,
		Location:    fmt.Sprintf("%s, %s", r.State, l.Country(r.Country)),
	}
}
