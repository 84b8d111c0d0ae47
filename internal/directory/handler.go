package directory

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/WailSalutem-Health-Care/employee-directory/internal/templates"
	"github.com/a-h/templ"
)

// htmxRequestHeader marks partial page updates issued by HTMX.
const htmxRequestHeader = "HX-Request"

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Page renders the directory as HTML. HTMX requests receive only the
// directory fragment.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	state := ParseViewState(r)
	projection := h.service.Project(r.Context(), state)
	view := buildPageView(r.URL.Path, projection)

	if strings.EqualFold(r.Header.Get(htmxRequestHeader), "true") {
		templ.Handler(templates.DirectoryContent(view)).ServeHTTP(w, r)
		return
	}
	templ.Handler(templates.DirectoryPage(view)).ServeHTTP(w, r)
}

// ListUsers returns the projection for the query-string state as JSON.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	state := ParseViewState(r)
	projection := h.service.Project(r.Context(), state)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(projection); err != nil {
		log.Printf("Failed to encode users projection: %v", err)
	}
}

var sortableHeaders = map[string]SortColumn{
	"ID":         SortByID,
	"FullName":   SortByFirstName,
	"Demography": SortByGender,
}

var tableHeaders = []string{"ID", "Image", "FullName", "Demography", "Designation", "Location"}

var genderOptions = []templates.Option{
	{Value: string(GenderMale), Label: "Male"},
	{Value: string(GenderFemale), Label: "Female"},
}

func buildPageView(path string, p Projection) templates.DirectoryPageView {
	if path == "" {
		path = "/"
	}
	state := p.State

	headers := make([]templates.HeaderCell, 0, len(tableHeaders))
	for _, label := range tableHeaders {
		cell := templates.HeaderCell{Label: label}
		if col, ok := sortableHeaders[label]; ok {
			cell.Href = state.ActivateSort(col).Href(path)
			if state.SortKey == col {
				cell.Indicator = state.Direction.Arrow()
			}
		}
		headers = append(headers, cell)
	}

	countries := make([]templates.Option, len(p.Countries))
	for i, c := range p.Countries {
		countries[i] = templates.Option{Value: c.Value, Label: c.Label, Selected: c.Value == state.Country}
	}
	genders := make([]templates.Option, len(genderOptions))
	for i, g := range genderOptions {
		g.Selected = g.Value == state.Gender
		genders[i] = g
	}

	var hidden []templates.HiddenField
	if state.SortKey != SortNone {
		hidden = append(hidden,
			templates.HiddenField{Name: "sort", Value: state.SortKey.Key()},
			templates.HiddenField{Name: "dir", Value: state.Direction.String()},
		)
	}
	if state.Page > 1 {
		hidden = append(hidden, templates.HiddenField{Name: "page", Value: strconv.Itoa(state.Page)})
	}

	rows := make([]templates.UserRow, len(p.Rows))
	for i, r := range p.Rows {
		rows[i] = templates.UserRow{
			ID:          strconv.Itoa(r.ID),
			Image:       r.Image,
			ImageAlt:    r.FirstName,
			FullName:    r.FullName,
			Demography:  r.Demography,
			Designation: r.Designation,
			Location:    r.Location,
		}
	}

	totalPages := p.Pagination.TotalPages
	return templates.DirectoryPageView{
		Action:    path,
		Countries: countries,
		Genders:   genders,
		Hidden:    hidden,
		Headers:   headers,
		Rows:      rows,
		Pager: templates.Pager{
			PreviousHref:     state.Previous().Href(path),
			PreviousDisabled: !state.CanPrevious(),
			NextHref:         state.Next(totalPages).Href(path),
			NextDisabled:     !state.CanNext(totalPages),
		},
	}
}
