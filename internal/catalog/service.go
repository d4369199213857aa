package catalog

import (
	"context"
	"fmt"

	"github.com/shilpokotha/shilpokotha-backend/pkg/enums"
	"github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/pagination"
)

// Service exposes the catalog to the HTTP layer.
type Service interface {
	ListProducts(ctx context.Context, state FilterState, option enums.SortOption, params pagination.Params) Page
	GetProduct(ctx context.Context, productID string) (Product, error)
	Facets(ctx context.Context) Facets
}

type service struct {
	catalog *Catalog
}

// NewService wires the catalog service.
func NewService(c *Catalog) (Service, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	return &service{catalog: c}, nil
}

// ListProducts runs the filter, sort, paginate pipeline in that order.
func (s *service) ListProducts(ctx context.Context, state FilterState, option enums.SortOption, params pagination.Params) Page {
	filtered := Filter(s.catalog.All(), state)
	sorted := Sort(filtered, option)
	return Paginate(sorted, params)
}

// GetProduct returns the product with the given id.
func (s *service) GetProduct(ctx context.Context, productID string) (Product, error) {
	product, ok := s.catalog.ByID(productID)
	if !ok {
		return Product{}, errors.New(errors.CodeNotFound, fmt.Sprintf("product %s not found", productID))
	}
	return product, nil
}

// Facets returns the static facet metadata the listing sidebar renders.
func (s *service) Facets(ctx context.Context) Facets {
	return storefrontFacets
}
