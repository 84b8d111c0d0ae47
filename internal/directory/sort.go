package directory

import (
	"cmp"
	"strings"
)

// SortColumn enumerates the sortable table columns.
type SortColumn int

const (
	SortNone SortColumn = iota
	SortByID
	SortByFirstName
	SortByGender
)

// SortColumns lists the sortable columns in header order.
var SortColumns = []SortColumn{SortByID, SortByFirstName, SortByGender}

var sortColumnKeys = map[SortColumn]string{
	SortByID:        "id",
	SortByFirstName: "firstName",
	SortByGender:    "gender",
}

// Key returns the query value for the column, empty for SortNone.
func (c SortColumn) Key() string {
	return sortColumnKeys[c]
}

// ParseSortColumn maps a query value to a column. Unknown values report false.
func ParseSortColumn(key string) (SortColumn, bool) {
	for col, k := range sortColumnKeys {
		if k == key {
			return col, true
		}
	}
	return SortNone, false
}

// compare orders two records by the column's raw value.
func (c SortColumn) compare(a, b UserRecord) int {
	switch c {
	case SortByID:
		return cmp.Compare(a.ID, b.ID)
	case SortByFirstName:
		return strings.Compare(a.FirstName, b.FirstName)
	case SortByGender:
		return strings.Compare(string(a.Gender), string(b.Gender))
	}
	return 0
}

// SortDirection is the ordering applied to the active column.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseSortDirection maps a query value to a direction; anything other than
// "descending" is ascending.
func ParseSortDirection(s string) SortDirection {
	if s == "descending" {
		return Descending
	}
	return Ascending
}

// Arrow is the header indicator for the direction.
func (d SortDirection) Arrow() string {
	if d == Descending {
		return "↓"
	}
	return "↑"
}
