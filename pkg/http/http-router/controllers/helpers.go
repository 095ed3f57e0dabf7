package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	helper "github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router/router-helper"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"
)

// nginx convention for a request the client abandoned
const STATUS_CLIENT_CLOSED_REQUEST = 499

type envelope map[string]any

// writeJSON marshals data structure to encoded JSON response.
func (api *searchAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

func (api *searchAPI) logError(r *http.Request, err error) {
	api.log.Error(err.Error(),
		zap.String("request_method", r.Method),
		zap.String("request_url", r.URL.String()),
		zap.String("request_id", r.Header.Get(helper.REQUEST_ID_HEADER)),
	)
}

func (api *searchAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, code string,
	message string) {
	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = message

	if err := api.writeJSON(w, status, envelope{"error": resp.Error}, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *searchAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *searchAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_error",
		"the server encountered a problem and could not process your request")
}

// SearchErrorResponse maps searcher failures to status codes.
func (api *searchAPI) SearchErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		// client went away, nobody reads the body
		api.log.Debug("request cancelled by client", zap.String("request_url", r.URL.String()))
		w.WriteHeader(STATUS_CLIENT_CLOSED_REQUEST)
	case errors.Is(err, context.DeadlineExceeded):
		api.errorResponse(w, r, http.StatusGatewayTimeout, "timeout", "the search did not finish in time")
	case errors.Is(err, searcher.ErrInvalidFilter):
		api.errorResponse(w, r, http.StatusBadRequest, "invalid_filter", err.Error())
	case errors.Is(err, searcher.ErrEmptyQuery):
		api.errorResponse(w, r, http.StatusBadRequest, "empty_query", err.Error())
	case errors.Is(err, searcher.ErrUnknownRegion):
		api.errorResponse(w, r, http.StatusNotFound, "unknown_region", err.Error())
	case errors.Is(err, searcher.ErrNoQueriesGenerated):
		api.errorResponse(w, r, http.StatusUnprocessableEntity, "no_queries_generated", err.Error())
	case errors.Is(err, searcher.ErrTransport):
		api.logError(r, err)
		api.errorResponse(w, r, http.StatusBadGateway, "transport_failure",
			"the overpass service could not be reached, try again later")
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newRequestValidator() *requestValidator {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return &requestValidator{validate: validate, trans: trans}
}

// Struct validates s and returns the translated messages as one error.
func (v *requestValidator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	vv := translateError(err, v.trans)
	vvString := []string{}
	for _, e := range vv {
		vvString = append(vvString, e.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
