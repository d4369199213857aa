package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shilpokotha/shilpokotha-backend/api/responses"
	"github.com/shilpokotha/shilpokotha-backend/api/validators"
	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/logger"
)

// ListProducts runs the filter, sort, paginate pipeline over the
// catalog from query parameters.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		state, err := validators.ParseFilterState(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		option, err := validators.ParseSortOption(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page := svc.ListProducts(r.Context(), state, option, validators.ParsePagination(r))
		responses.WriteSuccess(w, page)
	}
}

// GetProduct returns one product by its catalog id.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// GetFacets returns the facet metadata the listing sidebar renders.
func GetFacets(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Facets(r.Context()))
	}
}
