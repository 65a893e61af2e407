package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charview/internal/app/browse"
	"charview/internal/domain/catalog"
	"charview/internal/infra/view"
)

type fakeBrowser struct {
	result     browse.Result
	err        error
	lastParams browse.Params
}

func (f *fakeBrowser) Browse(ctx context.Context, params browse.Params) (browse.Result, error) {
	f.lastParams = params
	return f.result, f.err
}

type fakeLocations struct {
	names []string
	err   error
}

func (f *fakeLocations) LocationNames(ctx context.Context) ([]string, error) {
	return f.names, f.err
}

type fakeGetter struct {
	character catalog.Character
	err       error
	lastID    int
}

func (f *fakeGetter) CharacterByID(ctx context.Context, id int) (catalog.Character, error) {
	f.lastID = id
	return f.character, f.err
}

func newTestServer(t *testing.T, browser *fakeBrowser, locations *fakeLocations, getter *fakeGetter) http.Handler {
	t.Helper()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	page := NewPageHandler(browser, locations, getter, renderer, nil)
	return NewRouter(RouterConfig{PageHandler: page})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHomeRendersCharacters(t *testing.T) {
	browser := &fakeBrowser{
		result: browse.Result{
			Characters: []catalog.Character{
				{ID: 1, Name: "Rick Sanchez", Status: "Alive", Species: "Human"},
				{ID: 2, Name: "Morty Smith", Status: "Alive", Species: "Human"},
			},
			Info: catalog.PageInfo{Pages: 42, Next: true},
		},
	}
	locations := &fakeLocations{names: []string{"Earth (C-137)", "Citadel of Ricks"}}
	srv := newTestServer(t, browser, locations, &fakeGetter{})

	rec := get(t, srv, "/?name=rick&status=alive&page=2")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Rick Sanchez")
	assert.Contains(t, body, "Morty Smith")
	assert.Contains(t, body, "Citadel of Ricks")
	assert.Contains(t, body, `value="rick"`)

	assert.Equal(t, browse.Params{Name: "rick", Status: "alive", Page: 2}, browser.lastParams)
}

func TestHomeMultiValuedParamFirstWins(t *testing.T) {
	browser := &fakeBrowser{result: browse.Result{Info: catalog.EmptyPageInfo()}}
	srv := newTestServer(t, browser, &fakeLocations{}, &fakeGetter{})

	rec := get(t, srv, "/?name=rick&name=morty&gender=male&gender=female")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rick", browser.lastParams.Name)
	assert.Equal(t, "male", browser.lastParams.Gender)
}

func TestHomeNormalizesBadPage(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non-numeric", "/?page=abc"},
		{"negative", "/?page=-3"},
		{"zero", "/?page=0"},
		{"missing", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser := &fakeBrowser{result: browse.Result{Info: catalog.EmptyPageInfo()}}
			srv := newTestServer(t, browser, &fakeLocations{}, &fakeGetter{})

			rec := get(t, srv, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, browser.lastParams.Page)
		})
	}
}

func TestHomeNoResults(t *testing.T) {
	browser := &fakeBrowser{result: browse.Result{
		Characters: []catalog.Character{},
		Info:       catalog.EmptyPageInfo(),
	}}
	srv := newTestServer(t, browser, &fakeLocations{}, &fakeGetter{})

	rec := get(t, srv, "/?name=nobody")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No characters found")
}

func TestHomeDegradesToErrorState(t *testing.T) {
	tests := []struct {
		name      string
		browser   *fakeBrowser
		locations *fakeLocations
	}{
		{
			name:      "browse fails",
			browser:   &fakeBrowser{err: errors.New("connection refused")},
			locations: &fakeLocations{names: []string{"Earth"}},
		},
		{
			name:      "location list fails",
			browser:   &fakeBrowser{result: browse.Result{Characters: []catalog.Character{{ID: 1, Name: "Rick Sanchez"}}, Info: catalog.EmptyPageInfo()}},
			locations: &fakeLocations{err: errors.New("timeout")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.browser, tt.locations, &fakeGetter{})

			rec := get(t, srv, "/")
			// Upstream failures still answer 200 with the error message.
			require.Equal(t, http.StatusOK, rec.Code)

			body := rec.Body.String()
			assert.Contains(t, body, "Failed to load characters")
			assert.NotContains(t, body, "Rick Sanchez")
			assert.NotContains(t, body, "pager-button")
		})
	}
}

func TestDetailRendersCharacter(t *testing.T) {
	getter := &fakeGetter{character: catalog.Character{
		ID:       42,
		Name:     "Scary Terry",
		Status:   "Alive",
		Species:  "Human",
		Gender:   "Male",
		Origin:   catalog.PlaceRef{Name: "Nightmare"},
		Location: catalog.PlaceRef{Name: "Nightmare"},
		Episodes: []string{"e1"},
	}}
	srv := newTestServer(t, &fakeBrowser{}, &fakeLocations{}, getter)

	rec := get(t, srv, "/character/42")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, getter.lastID)

	body := rec.Body.String()
	assert.Contains(t, body, "Scary Terry")
	assert.Contains(t, body, "<strong>Origin:</strong> Nightmare")
}

func TestDetailNotFound(t *testing.T) {
	tests := []struct {
		name   string
		target string
		getter *fakeGetter
	}{
		{
			name:   "upstream 404",
			target: "/character/9999",
			getter: &fakeGetter{err: catalog.ErrNotFound},
		},
		{
			name:   "upstream failure",
			target: "/character/1",
			getter: &fakeGetter{err: errors.New("boom")},
		},
		{
			name:   "non-numeric id",
			target: "/character/abc",
			getter: &fakeGetter{},
		},
		{
			name:   "zero id",
			target: "/character/0",
			getter: &fakeGetter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &fakeBrowser{}, &fakeLocations{}, tt.getter)

			rec := get(t, srv, tt.target)
			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Character not found")
		})
	}
}
