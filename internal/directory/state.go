package directory

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/WailSalutem-Health-Care/employee-directory/internal/pagination"
)

// ViewState is the viewer's filter, sort and page selection. Transitions
// return a new value and leave the receiver untouched.
type ViewState struct {
	Page      int
	Country   string
	Gender    string
	SortKey   SortColumn
	Direction SortDirection
}

// DefaultViewState is the initial state: no filter, no sort, page 1.
func DefaultViewState() ViewState {
	return ViewState{Page: pagination.DefaultPage}
}

// SelectCountry sets the country filter. The page is kept as is, so the
// viewer can land past the last page of the new result set.
func (s ViewState) SelectCountry(country string) ViewState {
	s.Country = country
	return s
}

// SelectGender sets the gender filter. The page is kept as is.
func (s ViewState) SelectGender(gender string) ViewState {
	s.Gender = gender
	return s
}

// ActivateSort handles a click on a sortable header. Clicking the active
// column while ascending flips it to descending; every other case sorts the
// column ascending.
func (s ViewState) ActivateSort(col SortColumn) ViewState {
	if s.SortKey == col && s.Direction == Ascending {
		s.Direction = Descending
	} else {
		s.Direction = Ascending
	}
	s.SortKey = col
	return s
}

// CanPrevious reports whether Previous changes the state.
func (s ViewState) CanPrevious() bool {
	return s.Page > 1
}

// Previous moves one page back; no-op on page 1.
func (s ViewState) Previous() ViewState {
	if s.CanPrevious() {
		s.Page--
	}
	return s
}

// CanNext reports whether Next changes the state for the given page count.
func (s ViewState) CanNext(totalPages int) bool {
	return s.Page < totalPages
}

// Next moves one page forward; no-op on the last page or when there are no
// pages at all.
func (s ViewState) Next(totalPages int) ViewState {
	if s.CanNext(totalPages) {
		s.Page++
	}
	return s
}

// ParseViewState reads the state from the request query string.
func ParseViewState(r *http.Request) ViewState {
	q := r.URL.Query()
	params := pagination.ParseParams(r)

	state := ViewState{
		Page:    params.Page,
		Country: q.Get("country"),
		Gender:  q.Get("gender"),
	}
	if col, ok := ParseSortColumn(q.Get("sort")); ok {
		state.SortKey = col
		state.Direction = ParseSortDirection(q.Get("dir"))
	}
	return state
}

// Query encodes the state as query parameters, omitting defaults.
func (s ViewState) Query() url.Values {
	q := url.Values{}
	if s.Country != "" {
		q.Set("country", s.Country)
	}
	if s.Gender != "" {
		q.Set("gender", s.Gender)
	}
	if s.SortKey != SortNone {
		q.Set("sort", s.SortKey.Key())
		q.Set("dir", s.Direction.String())
	}
	if s.Page > 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	return q
}

// Href returns the relative link for the state on the given path.
func (s ViewState) Href(path string) string {
	if encoded := s.Query().Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}

// MarshalJSON encodes the state with the sort column in its query form.
func (s ViewState) MarshalJSON() ([]byte, error) {
	wire := struct {
		Page      int    `json:"page"`
		Country   string `json:"country"`
		Gender    string `json:"gender"`
		Sort      string `json:"sort,omitempty"`
		Direction string `json:"direction,omitempty"`
	}{
		Page:    s.Page,
		Country: s.Country,
		Gender:  s.Gender,
	}
	if s.SortKey != SortNone {
		wire.Sort = s.SortKey.Key()
		wire.Direction = s.Direction.String()
	}
	return json.Marshal(wire)
}
