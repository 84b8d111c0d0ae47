package directory

import (
	"slices"

	"github.com/WailSalutem-Health-Care/employee-directory/internal/pagination"
)

// Filter keeps the records matching both active predicates. Empty filters
// match everything; comparison is an exact match on the raw value.
func Filter(records []UserRecord, country, gender string) []UserRecord {
	out := make([]UserRecord, 0, len(records))
	for _, r := range records {
		if country != "" && r.Country != country {
			continue
		}
		if gender != "" && string(r.Gender) != gender {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort returns a stably sorted copy of records. SortNone preserves order.
func Sort(records []UserRecord, col SortColumn, dir SortDirection) []UserRecord {
	out := slices.Clone(records)
	if col == SortNone {
		return out
	}
	slices.SortStableFunc(out, func(a, b UserRecord) int {
		c := col.compare(a, b)
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// Paginate slices out the requested page and reports the pagination meta.
func Paginate(records []UserRecord, page int) ([]UserRecord, pagination.Meta) {
	params := pagination.NewParams(page)
	return pagination.Slice(records, params), params.CalculateMeta(len(records))
}

// Countries returns the distinct countries of records in first-seen order.
func Countries(records []UserRecord) []string {
	seen := make(map[string]bool)
	var countries []string
	for _, r := range records {
		if !seen[r.Country] {
			seen[r.Country] = true
			countries = append(countries, r.Country)
		}
	}
	return countries
}

// Project runs filter, sort and paginate over the base collection.
func Project(records []UserRecord, state ViewState, labels Labels) Projection {
	filtered := Filter(records, state.Country, state.Gender)
	sorted := Sort(filtered, state.SortKey, state.Direction)
	page, meta := Paginate(sorted, state.Page)

	rows := make([]UserRow, len(page))
	for i, r := range page {
		rows[i] = labels.Row(r)
	}

	countries := Countries(records)
	options := make([]CountryOption, len(countries))
	for i, c := range countries {
		options[i] = CountryOption{Value: c, Label: labels.Country(c)}
	}

	return Projection{
		State:      state,
		Records:    page,
		Rows:       rows,
		Countries:  options,
		Pagination: meta,
	}
}
