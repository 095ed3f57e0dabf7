package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	helper "github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router/router-helper"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

const (
	MAX_BODY_BYTES = 1 << 16
)

type searchAPI struct {
	searchService SearchService
	validator     *requestValidator
	log           *zap.Logger
}

func New(searchService SearchService, log *zap.Logger) *searchAPI {
	return &searchAPI{
		searchService: searchService,
		validator:     newRequestValidator(),
		log:           log,
	}
}

func (api *searchAPI) Routes(group *helper.RouteGroup) {
	group.GET("/regions", api.regions)
	group.GET("/taxonomy", api.taxonomy)
	group.POST("/search", api.search)
	group.GET("/search/landscape/:id", api.searchByLandscape)
	group.GET("/search/region/:region/category/:id", api.searchByCategory)
	group.POST("/stats", api.stats)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// regionsResponse model info
//
//	@Description	region display names.
type regionsResponse struct {
	Data []string `json:"data"`
}

// regions godoc
// @Summary		list the region display names accepted by search.
// @Description	list the region display names accepted by search, optionally narrowed by an accent-insensitive prefix.
// @Tags			regions
// @ID regions
// @Param			q	query	string	false	"name prefix"
// @Produce		application/json
// @Router			/api/regions [get]
// @Success		200	{object}	regionsResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) regions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	names, err := api.searchService.Regions(r.URL.Query().Get("q"))
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": names}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// taxonomyResponse model info
//
//	@Description	selectable category and landscape ids.
type taxonomyResponse struct {
	Data datastructure.Taxonomy `json:"data"`
}

// taxonomy godoc
// @Summary		list category and landscape ids.
// @Description	list category and landscape ids.
// @Tags			regions
// @ID taxonomy
// @Produce		application/json
// @Router			/api/taxonomy [get]
// @Success		200	{object}	taxonomyResponse
func (api *searchAPI) taxonomy(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.searchService.Taxonomy()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// searchRequest model info
//
//	@Description	request body for search and stats. region picks a single-region search, without it the landscape is searched in every region.
type searchRequest struct {
	Region    string   `json:"region" validate:"omitempty,max=64"`             // region display name, case-insensitive.
	Category  string   `json:"category" validate:"omitempty,max=64"`           // category id.
	Landscape string   `json:"landscape" validate:"omitempty,max=64"`          // landscape id.
	NearLat   *float64 `json:"near_lat" validate:"omitempty,min=-90,max=90"`   // order results by distance from this latitude.
	NearLon   *float64 `json:"near_lon" validate:"omitempty,min=-180,max=180"` // order results by distance from this longitude.
}

func (req searchRequest) filter() datastructure.SearchFilter {
	return datastructure.SearchFilter{
		Region:    req.Region,
		Category:  req.Category,
		Landscape: req.Landscape,
	}
}

func (req searchRequest) near() *datastructure.Coordinate {
	if req.NearLat == nil || req.NearLon == nil {
		return nil
	}
	return &datastructure.Coordinate{Lat: *req.NearLat, Lon: *req.NearLon}
}

func (api *searchAPI) decodeSearchRequest(w http.ResponseWriter, r *http.Request) (searchRequest, error) {
	var request searchRequest
	r.Body = http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return request, err
	}
	if err := api.validator.Struct(request); err != nil {
		return request, err
	}
	if (request.NearLat == nil) != (request.NearLon == nil) {
		return request, errors.New("validation error: near_lat and near_lon must be given together")
	}
	return request, nil
}

// searchResponse model info
//
//	@Description	response body for search results.
type searchResponse struct {
	Data []datastructure.PointOfInterest `json:"data"` // deduplicated points of interest.
}

// search godoc
// @Summary		search points of interest in one region or, by landscape, in every region.
// @Description	search points of interest in one region or, by landscape, in every region. Nationwide searches skip regions whose request fails.
// @Tags			search
// @ID search
// @Param			body	body	searchRequest	true	"filter"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/search [post]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
// @Failure		502	{object}	errorResponse
func (api *searchAPI) search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	request, err := api.decodeSearchRequest(w, r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	results, err := api.searchService.Search(r.Context(), request.filter(), request.near())
	if err != nil {
		api.SearchErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// searchByLandscape godoc
// @Summary		search a landscape in every region.
// @Description	search a landscape in every region.
// @Tags			search
// @ID search-by-landscape
// @Param			id	path	string	true	"landscape id"
// @Produce		application/json
// @Router			/api/search/landscape/{id} [get]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) searchByLandscape(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	filter := datastructure.SearchFilter{Landscape: ps.ByName("id")}

	results, err := api.searchService.Search(r.Context(), filter, nil)
	if err != nil {
		api.SearchErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// searchByCategory godoc
// @Summary		search a category in one region.
// @Description	search a category in one region.
// @Tags			search
// @ID search-by-category
// @Param			region	path	string	true	"region display name"
// @Param			id		path	string	true	"category id"
// @Produce		application/json
// @Router			/api/search/region/{region}/category/{id} [get]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
// @Failure		502	{object}	errorResponse
func (api *searchAPI) searchByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	filter := datastructure.SearchFilter{
		Region:   ps.ByName("region"),
		Category: ps.ByName("id"),
	}

	results, err := api.searchService.Search(r.Context(), filter, nil)
	if err != nil {
		api.SearchErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// statsResponse model info
//
//	@Description	response body for search statistics.
type statsResponse struct {
	Data datastructure.SearchStats `json:"data"`
}

// stats godoc
// @Summary		count the points a search returns, in total and per category label.
// @Description	count the points a search returns, in total and per category label.
// @Tags			search
// @ID stats
// @Param			body	body	searchRequest	true	"filter"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/stats [post]
// @Success		200	{object}	statsResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
// @Failure		502	{object}	errorResponse
func (api *searchAPI) stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	request, err := api.decodeSearchRequest(w, r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	stats, err := api.searchService.Stats(r.Context(), request.filter())
	if err != nil {
		api.SearchErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": stats}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
