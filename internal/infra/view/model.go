package view

import (
	"net/url"
	"strconv"
	"strings"

	"charview/internal/domain/catalog"
	"charview/internal/pkg/pagination"
)

// FormValues mirrors the current filters so the search form re-renders
// with its fields populated.
type FormValues struct {
	Name     string
	Status   string
	Gender   string
	Location string
}

// CharacterCard is one card in the results grid.
type CharacterCard struct {
	ID          int
	Name        string
	Image       string
	Species     string
	Status      string
	StatusClass string
	DetailURL   string
}

// PagerEntry is a single pagination control.
type PagerEntry struct {
	Page     int
	URL      string
	Current  bool
	Ellipsis bool
}

// Pager is the rendered pagination strip.
type Pager struct {
	PrevURL string
	NextURL string
	Entries []PagerEntry
}

// HomeData feeds the home page template.
type HomeData struct {
	Title      string
	Form       FormValues
	Locations  []string
	Characters []CharacterCard
	HasError   bool
	Pager      Pager
}

// DetailRow is one label/value line on the detail page.
type DetailRow struct {
	Label string
	Value string
}

// DetailData feeds the character detail template.
type DetailData struct {
	Title   string
	Name    string
	Image   string
	Details []DetailRow
}

// NotFoundData feeds the 404 page template.
type NotFoundData struct {
	Title string
}

// NewCharacterCard maps a catalog character onto a grid card, applying
// the same display fallbacks as the detail of the upstream data allows.
func NewCharacterCard(c catalog.Character) CharacterCard {
	name := c.Name
	if name == "" {
		name = "Unknown"
	}
	image := c.Image
	if image == "" {
		image = "/static/placeholder.png"
	}
	return CharacterCard{
		ID:          c.ID,
		Name:        name,
		Image:       image,
		Species:     c.Species,
		Status:      c.Status,
		StatusClass: statusClass(c.Status),
		DetailURL:   "/character/" + strconv.Itoa(c.ID),
	}
}

// NewDetailData maps a catalog character onto the detail page model.
func NewDetailData(c catalog.Character) DetailData {
	name := c.Name
	if name == "" {
		name = "Unknown"
	}
	return DetailData{
		Title: name + " - Rick & Morty",
		Name:  name,
		Image: c.Image,
		Details: []DetailRow{
			{Label: "Status", Value: c.Status},
			{Label: "Species", Value: c.Species},
			{Label: "Gender", Value: c.Gender},
			{Label: "Origin", Value: c.Origin.Name},
			{Label: "Location", Value: c.Location.Name},
			{Label: "Episodes", Value: strconv.Itoa(len(c.Episodes))},
		},
	}
}

// NewPager derives the pagination strip: a window of page links around
// currentPage plus prev/next arrows driven by the presence markers.
// Every link carries the current filters and an explicit page value.
func NewPager(form FormValues, info catalog.PageInfo, currentPage int) Pager {
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > info.Pages {
		currentPage = info.Pages
	}

	pager := Pager{}
	if info.Prev {
		pager.PrevURL = pageURL(form, currentPage-1)
	}
	if info.Next {
		pager.NextURL = pageURL(form, currentPage+1)
	}

	for _, entry := range pagination.Window(currentPage, info.Pages) {
		if entry.Ellipsis {
			pager.Entries = append(pager.Entries, PagerEntry{Ellipsis: true})
			continue
		}
		pager.Entries = append(pager.Entries, PagerEntry{
			Page:    entry.Page,
			URL:     pageURL(form, entry.Page),
			Current: entry.Page == currentPage,
		})
	}
	return pager
}

func pageURL(form FormValues, page int) string {
	params := url.Values{}
	if form.Name != "" {
		params.Set("name", form.Name)
	}
	if form.Status != "" {
		params.Set("status", form.Status)
	}
	if form.Gender != "" {
		params.Set("gender", form.Gender)
	}
	if form.Location != "" {
		params.Set("location", form.Location)
	}
	params.Set("page", strconv.Itoa(page))
	return "/?" + params.Encode()
}

func statusClass(status string) string {
	switch strings.ToLower(status) {
	case "alive":
		return "status-alive"
	case "dead":
		return "status-dead"
	default:
		return "status-unknown"
	}
}
