package directory

import (
	"github.com/WailSalutem-Health-Care/employee-directory/internal/pagination"
)

// Gender is the enumerated gender reported by the collaborator.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// UserRecord is one user as returned by the collaborator. Records are
// read-only once loaded.
type UserRecord struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	MaidenName string `json:"maidenName"`
	LastName   string `json:"lastName"`
	Gender     Gender `json:"gender"`
	Age        int    `json:"age"`
	Image      string `json:"image"`
	Title      string `json:"title"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// UserRow is the display form of a record for the current page.
type UserRow struct {
	ID          int    `json:"id"`
	Image       string `json:"image"`
	FirstName   string `json:"firstName"`
	FullName    string `json:"fullName"`
	Demography  string `json:"demography"`
	Designation string `json:"designation"`
	Location    string `json:"location"`
}

// CountryOption is one entry of the country selector.
type CountryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Projection is the filtered, sorted and paginated view of the collection
// for one ViewState.
type Projection struct {
	State      ViewState       `json:"state"`
	Records    []UserRecord    `json:"-"`
	Rows       []UserRow       `json:"users"`
	Countries  []CountryOption `json:"countries"`
	Pagination pagination.Meta `json:"pagination"`
}
