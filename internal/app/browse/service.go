// Package browse resolves one page of the character catalog per request,
// either through the upstream search or scoped to a location's residents.
package browse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"charview/internal/domain/catalog"
)

// Source abstracts the upstream catalog queries the service needs.
type Source interface {
	SearchCharacters(ctx context.Context, query catalog.Query) ([]catalog.Character, catalog.PageInfo, error)
	SearchLocations(ctx context.Context, name string) ([]catalog.Location, error)
	CharactersByIDs(ctx context.Context, ids []int) ([]catalog.Character, error)
}

// Params are the parsed request filters driving one browse call.
// Location selects the query mode: when set, filtering and pagination
// happen locally on the location's residents.
type Params struct {
	Name     string
	Status   string
	Gender   string
	Location string
	Page     int
}

// Result is the uniform outcome shape of both query modes.
type Result struct {
	Characters []catalog.Character
	Info       catalog.PageInfo
}

func emptyResult() Result {
	return Result{Characters: []catalog.Character{}, Info: catalog.EmptyPageInfo()}
}

// Service answers catalog browse queries.
type Service struct {
	source   Source
	pageSize int
	logger   *slog.Logger
}

// NewService builds a browse service. pageSize caps the locally paginated
// location mode; values below 1 fall back to the upstream page size.
func NewService(source Source, pageSize int, logger *slog.Logger) *Service {
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:   source,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Browse resolves the characters for the given filters. An upstream 404
// yields an empty result with nil error; any other upstream failure is
// returned for the caller to turn into the page-level error state.
func (s *Service) Browse(ctx context.Context, params Params) (Result, error) {
	if s.source == nil {
		return Result{}, errors.New("browse: source not configured")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	if strings.TrimSpace(params.Location) != "" {
		return s.browseByLocation(ctx, params, page)
	}
	return s.browseDirect(ctx, params, page)
}

// browseDirect delegates filtering and pagination to the upstream API.
func (s *Service) browseDirect(ctx context.Context, params Params, page int) (Result, error) {
	characters, info, err := s.source.SearchCharacters(ctx, catalog.Query{
		Name:   params.Name,
		Status: params.Status,
		Gender: params.Gender,
		Page:   page,
	})
	if errors.Is(err, catalog.ErrNotFound) {
		return emptyResult(), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("browse: search characters: %w", err)
	}

	if characters == nil {
		characters = []catalog.Character{}
	}
	return Result{Characters: characters, Info: info}, nil
}

// browseByLocation resolves the residents of the first matching location,
// then filters and paginates them locally because the batch endpoint has
// no server-side filtering.
func (s *Service) browseByLocation(ctx context.Context, params Params, page int) (Result, error) {
	locations, err := s.source.SearchLocations(ctx, params.Location)
	if errors.Is(err, catalog.ErrNotFound) {
		return emptyResult(), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("browse: search locations: %w", err)
	}
	if len(locations) == 0 {
		return emptyResult(), nil
	}

	ids := residentIDs(locations[0].Residents)
	s.logger.Debug("location scoped browse",
		"location", locations[0].Name,
		"residents", len(ids),
	)
	if len(ids) == 0 {
		return emptyResult(), nil
	}

	characters, err := s.source.CharactersByIDs(ctx, ids)
	if errors.Is(err, catalog.ErrNotFound) {
		return emptyResult(), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("browse: fetch residents: %w", err)
	}

	filtered := catalog.Filter(characters, catalog.Filters{
		Name:   params.Name,
		Status: params.Status,
		Gender: params.Gender,
	})

	return paginate(filtered, page, s.pageSize), nil
}

// paginate slices one page out of filtered and synthesizes presence
// markers in place of continuation tokens.
func paginate(filtered []catalog.Character, page, pageSize int) Result {
	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Characters: filtered[start:end],
		Info: catalog.PageInfo{
			Pages: totalPages,
			Prev:  page > 1,
			Next:  page < totalPages,
		},
	}
}

// residentIDs extracts the numeric identity from each resident URL (the
// final path segment), dropping anything that does not parse.
func residentIDs(residents []string) []int {
	ids := make([]int, 0, len(residents))
	for _, resident := range residents {
		segment := resident
		if idx := strings.LastIndex(segment, "/"); idx >= 0 {
			segment = segment[idx+1:]
		}
		id, err := strconv.Atoi(segment)
		if err != nil || id < 1 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
