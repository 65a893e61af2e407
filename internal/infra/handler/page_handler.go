package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"charview/internal/app/browse"
	"charview/internal/domain/catalog"
	"charview/internal/infra/view"
	"charview/internal/platform/server"
)

const homeTitle = "Rick & Morty Character Viewer"

// Browser resolves one page of the character catalog.
type Browser interface {
	Browse(ctx context.Context, params browse.Params) (browse.Result, error)
}

// LocationLister returns the location names for the search form selector.
type LocationLister interface {
	LocationNames(ctx context.Context) ([]string, error)
}

// CharacterGetter fetches a single character for the detail page.
type CharacterGetter interface {
	CharacterByID(ctx context.Context, id int) (catalog.Character, error)
}

// PageHandler serves the server-rendered pages.
type PageHandler struct {
	browser    Browser
	locations  LocationLister
	characters CharacterGetter
	renderer   *view.Renderer
	logger     *slog.Logger
}

// NewPageHandler builds a PageHandler.
func NewPageHandler(browser Browser, locations LocationLister, characters CharacterGetter, renderer *view.Renderer, logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		browser:    browser,
		locations:  locations,
		characters: characters,
		renderer:   renderer,
		logger:     logger,
	}
}

// RegisterRoutes adds the page routes.
func (h *PageHandler) RegisterRoutes(r chiRouter) {
	r.Get("/", h.handleHome)
	r.Get("/character/{id}", h.handleDetail)
}

// handleHome renders the search page. The catalog query and the
// location-selector fetch run concurrently; if either fails the page
// degrades to the error state as a whole, still answering 200.
func (h *PageHandler) handleHome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := browse.Params{
		Name:     firstValue(q, "name"),
		Status:   firstValue(q, "status"),
		Gender:   firstValue(q, "gender"),
		Location: firstValue(q, "location"),
		Page:     pageValue(q),
	}

	var (
		result        browse.Result
		locationNames []string
	)

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		result, err = h.browser.Browse(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		locationNames, err = h.locations.LocationNames(gctx)
		return err
	})

	hasError := false
	if err := g.Wait(); err != nil {
		h.logger.Error("load characters failed",
			"error", err,
			"request_id", server.RequestIDFromContext(r.Context()),
		)
		hasError = true
		result = browse.Result{Info: catalog.EmptyPageInfo()}
		locationNames = nil
	}

	form := view.FormValues{
		Name:     params.Name,
		Status:   params.Status,
		Gender:   params.Gender,
		Location: params.Location,
	}

	data := view.HomeData{
		Title:     homeTitle,
		Form:      form,
		Locations: locationNames,
		HasError:  hasError,
		Pager:     view.NewPager(form, result.Info, params.Page),
	}
	for _, c := range result.Characters {
		data.Characters = append(data.Characters, view.NewCharacterCard(c))
	}

	h.render(w, r, http.StatusOK, "home", data)
}

// handleDetail renders one character. Any upstream problem, not just a
// 404, resolves to the not-found page.
func (h *PageHandler) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		h.renderNotFound(w, r)
		return
	}

	character, err := h.characters.CharacterByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			h.logger.Error("load character failed",
				"id", id,
				"error", err,
				"request_id", server.RequestIDFromContext(r.Context()),
			)
		}
		h.renderNotFound(w, r)
		return
	}

	h.render(w, r, http.StatusOK, "detail", view.NewDetailData(character))
}

func (h *PageHandler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "notfound", view.NotFoundData{
		Title: "Not Found - Rick & Morty",
	})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, page, data); err != nil {
		h.logger.Error("render page failed",
			"page", page,
			"error", err,
			"request_id", server.RequestIDFromContext(r.Context()),
		)
	}
}
