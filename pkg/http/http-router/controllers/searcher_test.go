package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	helper "github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router/router-helper"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/overpass"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeService struct {
	gotFilter datastructure.SearchFilter
	gotNear   *datastructure.Coordinate
	points    []datastructure.PointOfInterest
	err       error
}

func (f *fakeService) Regions(prefix string) ([]string, error) {
	if prefix == "men" {
		return []string{"Mendoza"}, nil
	}
	return []string{"Mendoza", "Salta"}, nil
}

func (f *fakeService) Taxonomy() datastructure.Taxonomy {
	return datastructure.Taxonomy{
		Categories: []string{"alojamiento", "naturaleza", "turismo"},
		Landscapes: []string{"cerros_y_montañas", "rios_y_mar"},
	}
}

func (f *fakeService) Search(ctx context.Context, filter datastructure.SearchFilter,
	near *datastructure.Coordinate) ([]datastructure.PointOfInterest, error) {
	f.gotFilter = filter
	f.gotNear = near
	return f.points, f.err
}

func (f *fakeService) Stats(ctx context.Context, filter datastructure.SearchFilter) (datastructure.SearchStats, error) {
	f.gotFilter = filter
	if f.err != nil {
		return datastructure.SearchStats{}, f.err
	}
	return searcher.Summarize(f.points), nil
}

func newTestRouter(svc SearchService) *httprouter.Router {
	router := httprouter.New()
	New(svc, zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apiError {
	t.Helper()
	var e apiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	return e
}

func TestRegionsHandler(t *testing.T) {
	router := newTestRouter(&fakeService{})

	rr := do(t, router, http.MethodGet, "/api/regions", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": ["Mendoza", "Salta"]}`, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/api/regions?q=men", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": ["Mendoza"]}`, rr.Body.String())
}

func TestTaxonomyHandler(t *testing.T) {
	rr := do(t, newTestRouter(&fakeService{}), http.MethodGet, "/api/taxonomy", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": {
		"categories": ["alojamiento", "naturaleza", "turismo"],
		"landscapes": ["cerros_y_montañas", "rios_y_mar"]
	}}`, rr.Body.String())
}

func TestSearchHandler(t *testing.T) {
	svc := &fakeService{points: []datastructure.PointOfInterest{
		{ID: 7, Kind: "node", Name: "Cerro Aconcagua", Category: "naturaleza", Lat: -32.6532, Lon: -70.0109, Region: "Mendoza"},
	}}
	router := newTestRouter(svc)

	rr := do(t, router, http.MethodPost, "/api/search",
		`{"region": "mendoza", "category": "naturaleza", "near_lat": -32.9, "near_lon": -68.8}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, datastructure.SearchFilter{Region: "mendoza", Category: "naturaleza"}, svc.gotFilter)
	require.NotNil(t, svc.gotNear)
	assert.Equal(t, datastructure.Coordinate{Lat: -32.9, Lon: -68.8}, *svc.gotNear)

	var resp struct {
		Data []datastructure.PointOfInterest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, svc.points, resp.Data)
}

func TestSearchHandlerBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"region": `},
		{"latitude out of range", `{"landscape": "rios_y_mar", "near_lat": 95, "near_lon": 0}`},
		{"longitude without latitude", `{"landscape": "rios_y_mar", "near_lon": -60}`},
		{"region too long", fmt.Sprintf(`{"region": %q}`, strings.Repeat("x", 65))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rr := do(t, newTestRouter(svc), http.MethodPost, "/api/search", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "bad_request", decodeError(t, rr).Error.Code)
			assert.True(t, svc.gotFilter.IsZero(), "service must not be called")
		})
	}
}

func TestSearchErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid filter", searcher.ErrInvalidFilter, http.StatusBadRequest, "invalid_filter"},
		{"empty query", searcher.ErrEmptyQuery, http.StatusBadRequest, "empty_query"},
		{"unknown region", &searcher.UnknownRegionError{Name: "Atlantis"}, http.StatusNotFound, "unknown_region"},
		{"no queries", searcher.ErrNoQueriesGenerated, http.StatusUnprocessableEntity, "no_queries_generated"},
		{"transport", fmt.Errorf("search region AR-M: %w", &overpass.TransportError{StatusCode: 504}),
			http.StatusBadGateway, "transport_failure"},
		{"deadline", fmt.Errorf("search region AR-M: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "timeout"},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, newTestRouter(&fakeService{err: tt.err}), http.MethodPost, "/api/search", `{}`)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, decodeError(t, rr).Error.Code)
		})
	}
}

func TestUnknownRegionMessageCarriesSuggestions(t *testing.T) {
	svc := &fakeService{err: &searcher.UnknownRegionError{Name: "Cordoba", Suggestions: []string{"Córdoba"}}}
	rr := do(t, newTestRouter(svc), http.MethodGet, "/api/search/region/Cordoba/category/turismo", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, decodeError(t, rr).Error.Message, "Córdoba")
}

func TestSearchByPathHandlers(t *testing.T) {
	svc := &fakeService{points: []datastructure.PointOfInterest{}}
	router := newTestRouter(svc)

	rr := do(t, router, http.MethodGet, "/api/search/landscape/rios_y_mar", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, datastructure.SearchFilter{Landscape: "rios_y_mar"}, svc.gotFilter)
	assert.Nil(t, svc.gotNear)
	assert.JSONEq(t, `{"data": []}`, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/api/search/region/Entre%20R%C3%ADos/category/alojamiento", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, datastructure.SearchFilter{Region: "Entre Ríos", Category: "alojamiento"}, svc.gotFilter)
}

func TestStatsHandler(t *testing.T) {
	svc := &fakeService{points: []datastructure.PointOfInterest{
		{ID: 1, Category: "naturaleza"},
		{ID: 2, Category: "naturaleza"},
		{ID: 3, Category: "turismo"},
	}}

	rr := do(t, newTestRouter(svc), http.MethodPost, "/api/stats", `{"landscape": "cerros_y_montañas"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": {"total": 3, "categories": {"naturaleza": 2, "turismo": 1}}}`, rr.Body.String())
	assert.Equal(t, datastructure.SearchFilter{Landscape: "cerros_y_montañas"}, svc.gotFilter)
}

func TestSearchCancelledByClient(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	router := httprouter.New()
	svc := &fakeService{err: fmt.Errorf("search region AR-M: %w", context.Canceled)}
	New(svc, zap.New(core)).Routes(helper.NewRouteGroup(router, "/api"))

	rr := do(t, router, http.MethodGet, "/api/search/landscape/rios_y_mar", "")
	assert.Equal(t, STATUS_CLIENT_CLOSED_REQUEST, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Zero(t, logs.FilterLevelExact(zap.ErrorLevel).Len())
}
