package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageTitle is the heading and document title of the directory page.
const PageTitle = "Employee Data"

// Option is one selector entry.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// HiddenField is a form field carried through a submit unchanged.
type HiddenField struct {
	Name  string
	Value string
}

// HeaderCell is a table header. Cells with an empty Href are not sortable.
type HeaderCell struct {
	Label     string
	Href      string
	Indicator string
}

// UserRow represents a row in the directory table.
type UserRow struct {
	ID          string
	Image       string
	ImageAlt    string
	FullName    string
	Demography  string
	Designation string
	Location    string
}

// Pager holds the previous/next controls.
type Pager struct {
	PreviousHref     string
	PreviousDisabled bool
	NextHref         string
	NextDisabled     bool
}

// DirectoryPageView provides data for the directory page.
type DirectoryPageView struct {
	Action    string
	Countries []Option
	Genders   []Option

	// Hidden carries the sort and page selection through filter submits.
	Hidden  []HiddenField
	Headers []HeaderCell
	Rows    []UserRow
	Pager   Pager
}

// DirectoryPage renders the full HTML document.
func DirectoryPage(view DirectoryPageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.raw(`<title>`)
		p.text(PageTitle)
		p.raw(`</title></head><body>`)
		if p.err != nil {
			return p.err
		}
		if err := DirectoryContent(view).Render(ctx, w); err != nil {
			return err
		}
		p.raw(`</body></html>`)
		return p.err
	})
}

// DirectoryContent renders the filters, table and pager. It is also the
// fragment returned to HTMX requests.
func DirectoryContent(view DirectoryPageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<div id="directory" class="container mx-auto p-4">`)
		p.raw(`<div class="flex justify-between items-center mb-4"><h1 class="text-2xl font-bold text-left">`)
		p.text(PageTitle)
		p.raw(`</h1>`)
		writeFilters(p, view)
		p.raw(`</div>`)
		writeTable(p, view)
		writePager(p, view.Pager)
		p.raw(`</div>`)
		return p.err
	})
}

func writeFilters(p *printer, view DirectoryPageView) {
	p.raw(`<form class="flex" method="get" action="`)
	p.url(view.Action)
	p.raw(`">`)
	for _, h := range view.Hidden {
		p.raw(`<input type="hidden" name="`)
		p.text(h.Name)
		p.raw(`" value="`)
		p.text(h.Value)
		p.raw(`">`)
	}
	writeSelect(p, "country", "All Countries", view.Countries)
	writeSelect(p, "gender", "All Genders", view.Genders)
	p.raw(`<noscript><button type="submit">Filter</button></noscript></form>`)
}

func writeSelect(p *printer, name, allLabel string, options []Option) {
	p.raw(`<select name="`)
	p.text(name)
	p.raw(`" class="mr-2 px-4 py-2 border border-gray-300 rounded" onchange="this.form.submit()">`)
	anySelected := false
	for _, o := range options {
		anySelected = anySelected || o.Selected
	}
	writeOption(p, Option{Value: "", Label: allLabel, Selected: !anySelected})
	for _, o := range options {
		writeOption(p, o)
	}
	p.raw(`</select>`)
}

func writeOption(p *printer, o Option) {
	p.raw(`<option value="`)
	p.text(o.Value)
	p.raw(`"`)
	if o.Selected {
		p.raw(` selected`)
	}
	p.raw(`>`)
	p.text(o.Label)
	p.raw(`</option>`)
}

func writeTable(p *printer, view DirectoryPageView) {
	p.raw(`<table class="min-w-full bg-white text-center border border-gray-300"><thead class="bg-green-600 text-white"><tr>`)
	for _, h := range view.Headers {
		p.raw(`<th class="py-2 px-4 border border-gray-300">`)
		if h.Href == "" {
			p.text(h.Label)
		} else {
			p.raw(`<a href="`)
			p.url(h.Href)
			p.raw(`" hx-get="`)
			p.url(h.Href)
			p.raw(`" hx-target="#directory" hx-swap="outerHTML">`)
			p.text(h.Label)
			if h.Indicator != "" {
				p.raw(` `)
				p.text(h.Indicator)
			}
			p.raw(`</a>`)
		}
		p.raw(`</th>`)
	}
	p.raw(`</tr></thead><tbody>`)
	for _, r := range view.Rows {
		p.raw(`<tr class="text-xl align-middle">`)
		p.cell(r.ID)
		p.raw(`<td class="py-2 px-4 border border-gray-300"><img src="`)
		p.url(r.Image)
		p.raw(`" alt="`)
		p.text(r.ImageAlt)
		p.raw(`" class="w-8 h-8 rounded-full mx-auto"></td>`)
		p.cell(r.FullName)
		p.cell(r.Demography)
		p.cell(r.Designation)
		p.cell(r.Location)
		p.raw(`</tr>`)
	}
	p.raw(`</tbody></table>`)
}

func writePager(p *printer, pager Pager) {
	p.raw(`<div class="flex justify-between mt-4">`)
	writePagerButton(p, "Previous", pager.PreviousHref, pager.PreviousDisabled)
	writePagerButton(p, "Next", pager.NextHref, pager.NextDisabled)
	p.raw(`</div>`)
}

func writePagerButton(p *printer, label, href string, disabled bool) {
	if disabled {
		p.raw(`<button class="px-4 py-2 bg-gray-700 text-white rounded-xl w-32 disabled:opacity-50" disabled>`)
		p.text(label)
		p.raw(`</button>`)
		return
	}
	p.raw(`<a class="px-4 py-2 bg-gray-700 text-white rounded-xl w-32" href="`)
	p.url(href)
	p.raw(`" hx-get="`)
	p.url(href)
	p.raw(`" hx-target="#directory" hx-swap="outerHTML">`)
	p.text(label)
	p.raw(`</a>`)
}

// printer writes markup and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *printer) url(s string) {
	p.text(string(templ.URL(s)))
}

func (p *printer) cell(s string) {
	p.raw(`<td class="py-2 px-4 border border-gray-300">`)
	p.text(s)
	p.raw(`</td>`)
}
